package parser

import (
	"testing"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

func TestLayoutExtractors(t *testing.T) {
	tests := []struct {
		name          string
		extract       func(string) Fields
		text          string
		wantAmount    float64
		wantPayer     string
		wantPayee     string
		wantTxID      string
		wantDate      string
		wantBank      string
		wantPayerBank string
	}{
		{
			name:          "bmg fused labels",
			extract:       extractBMG,
			text:          "aplicativobmg comprovante de envio pix valorr$1.250,00 iddatransação:BMG12345678 datadopagamento:10/01/2024",
			wantAmount:    1250.00,
			wantTxID:      "BMG12345678",
			wantDate:      "10/01/2024",
			wantPayerBank: constants.BankBMG,
		},
		{
			name:    "bmg spaced labels",
			extract: extractBMG,
			text: "Banco BMG Comprovante de envio Pix Valor R$ 99,90 " +
				"Dados de quem pagou Nome: Carlos Souza CPF 111.222.333-44 " +
				"Dados do recebedor Nome: Ana Lima CPF ***.444.555-** " +
				"ID da transação: 1234ABCD90 Data do pagamento: 12/02/2024",
			wantAmount:    99.90,
			wantPayer:     "Carlos Souza",
			wantPayee:     "Ana Lima",
			wantTxID:      "1234ABCD90",
			wantDate:      "12/02/2024",
			wantPayerBank: constants.BankBMG,
		},
		{
			name:    "sicoob",
			extract: extractSicoob,
			text: "Sicoob comprovante Pix Debitado de: José Pereira CPF 123.456.789-00 " +
				"Favorecido: Mercearia Central CNPJ 11.222.333/0001-44 " +
				"Autenticação: A1B2C3D4E5",
			wantPayer: "José Pereira",
			wantPayee: "Mercearia Central",
			wantTxID:  "A1B2C3D4E5",
			wantBank:  constants.BankSicoob,
		},
		{
			name:    "bradesco",
			extract: extractBradesco,
			text: "Bradesco comprovante de transação Pix " +
				"Dados de quem pagou Nome: Paulo Dias CPF 222.333.444-55 " +
				"Dados de quem recebeu Nome: Rita Gomes CPF ***.111.222-** " +
				"Número de controle: CTRL1234567",
			wantPayer: "Paulo Dias",
			wantPayee: "Rita Gomes",
			wantTxID:  "CTRL1234567",
		},
		{
			name:    "mercado pago",
			extract: extractMercadoPago,
			text: "Comprovante Mercado Pago Transferência Pix de Lucas Prado CPF 333.444.555-66 " +
				"para Ana Beatriz Souza CPF ***.777.888-** Número de operação: 123456789",
			wantPayer: "Lucas Prado",
			wantPayee: "Ana Beatriz Souza",
			wantTxID:  "123456789",
			wantBank:  constants.BankMercadoPago,
		},
		{
			name:    "inter",
			extract: extractInter,
			text: "Banco Inter Pix enviado Quem pagou Bruno Costa CPF 444.555.666-77 " +
				"Quem recebeu Clara Nunes CPF ***.888.999-** " +
				"ID da transação: 1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			wantPayer: "Bruno Costa",
			wantPayee: "Clara Nunes",
			wantTxID:  "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.extract(NewDocument(tt.text).Text)
			if tt.wantAmount != 0 {
				if f.Amount == nil || *f.Amount != tt.wantAmount {
					t.Errorf("Amount = %v, want %v", f.Amount, tt.wantAmount)
				}
			}
			checkOptStr(t, "PayerName", f.PayerName, tt.wantPayer)
			checkOptStr(t, "PayeeName", f.PayeeName, tt.wantPayee)
			checkOptStr(t, "TransactionID", f.TransactionID, tt.wantTxID)
			checkOptStr(t, "TransferDate", f.TransferDate, tt.wantDate)
			checkOptStr(t, "BankName", f.BankName, tt.wantBank)
			checkOptStr(t, "PayerBankName", f.PayerBankName, tt.wantPayerBank)
		})
	}
}

// A layout's own institution capture names the destination bank; the
// whole-document keyword scan must only fill the field when no layout
// claimed it.
func TestParseDestinationInstitutionBeatsKeywordScan(t *testing.T) {
	text := "Comprovante de transferência R$ 80,00 Data: 05/03/2024 " +
		"Origem Nome: João da Silva Instituição NU PAGAMENTOS - IP " +
		"Destino Nome: Loja ABC Instituição Banco XYZ Pagamentos S.A. Agência 0001 Conta 12345 " +
		"ID da Transação: E12345678ABCDEF"

	res := NewParser(GatePolicy{}, nil).Parse(text, "recibo.pdf")

	if res.Status != constants.TxStatusProcessed {
		t.Fatalf("Status = %v, want %v", res.Status, constants.TxStatusProcessed)
	}
	f := res.Fields
	checkOptStr(t, "BankName", f.BankName, "Banco XYZ Pagamentos S.A.")
	checkOptStr(t, "PayerBankName", f.PayerBankName, "NU PAGAMENTOS - IP")
	checkOptStr(t, "PayerName", f.PayerName, "João da Silva")
	checkOptStr(t, "PayeeName", f.PayeeName, "Loja ABC")
	checkOptStr(t, "TransactionID", f.TransactionID, "E12345678ABCDEF")
}

func TestParsePayerInstitutionOverridesKeywordScan(t *testing.T) {
	text := "Sicoob comprovante Pix Dados do pagador Maria CPF 123.456.789-01 " +
		"Instituição Banco Bradesco S.A. Comprovante emitido"

	res := NewParser(GatePolicy{}, nil).Parse(text, "recibo.pdf")

	checkOptStr(t, "BankName", res.Fields.BankName, constants.BankBradesco)
}
