package parser

import (
	"testing"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

func TestParseNubankReceipt(t *testing.T) {
	text := "Comprovante de transferência R$ 150,00 Data: 20/11/2023 Hora: 10:30 " +
		"Origem Nome: João da Silva Instituição NU PAGAMENTOS - IP " +
		"Destino Nome: Maria Oliveira " +
		"ID da Transação: EBC1234567890ABCDEF1234567890"

	res := NewParser(GatePolicy{}, nil).Parse(text, "nubank_20-11-2023.pdf")

	if res.Status != constants.TxStatusProcessed {
		t.Fatalf("Status = %v, want %v", res.Status, constants.TxStatusProcessed)
	}
	if res.UsedFilenameFallback {
		t.Error("UsedFilenameFallback = true, want false")
	}
	f := res.Fields
	if f.Amount == nil || *f.Amount != 150.00 {
		t.Errorf("Amount = %v, want 150.00", f.Amount)
	}
	checkOptStr(t, "TransferDate", f.TransferDate, "20/11/2023")
	checkOptStr(t, "TransferTime", f.TransferTime, "10:30")
	checkOptStr(t, "PayerName", f.PayerName, "João da Silva")
	checkOptStr(t, "PayeeName", f.PayeeName, "Maria Oliveira")
	checkOptStr(t, "TransactionID", f.TransactionID, "EBC1234567890ABCDEF1234567890")
	checkOptStr(t, "BankName", f.BankName, constants.BankNubank)
}

func TestParseEmptyTextUsesFilename(t *testing.T) {
	res := NewParser(GatePolicy{}, nil).Parse("", "Sicoob_2025-10-15_17-40-26.pdf")

	if res.Status != constants.TxStatusManualReview {
		t.Fatalf("Status = %v, want %v", res.Status, constants.TxStatusManualReview)
	}
	if !res.UsedFilenameFallback {
		t.Error("UsedFilenameFallback = false, want true")
	}
	f := res.Fields
	checkOptStr(t, "TransferDate", f.TransferDate, "15/10/2025")
	checkOptStr(t, "TransferTime", f.TransferTime, "17:40:26")
	checkOptStr(t, "BankName", f.BankName, constants.BankSicoob)
	checkOptStr(t, "Notes", f.Notes, FilenameFallbackNote)
}

func TestParseThinTextNeedsReview(t *testing.T) {
	res := NewParser(GatePolicy{}, nil).Parse("valor R$ 50,00", "recibo.pdf")

	if res.Status != constants.TxStatusManualReview {
		t.Fatalf("Status = %v, want %v", res.Status, constants.TxStatusManualReview)
	}
	f := res.Fields
	if f.Amount == nil || *f.Amount != 50.00 {
		t.Errorf("Amount = %v, want 50.00", f.Amount)
	}
	if f.PayerName != nil {
		t.Errorf("PayerName = %q, want nil", *f.PayerName)
	}
}

func TestParseDerivesKeyType(t *testing.T) {
	text := "Comprovante de pagamento PIX Data: 02/02/2024 às 09:00 " +
		"Pagador: Carlos Souza Favorecido: Ana Lima chave: ana@example.com " +
		"ID da transação: ABCDEF1234567890"

	res := NewParser(GatePolicy{}, nil).Parse(text, "recibo.pdf")

	checkOptStr(t, "PixKey", res.Fields.PixKey, "ana@example.com")
	if res.Fields.KeyType == nil || *res.Fields.KeyType != constants.KeyTypeEmail {
		t.Errorf("KeyType = %v, want %v", res.Fields.KeyType, constants.KeyTypeEmail)
	}
}

func TestClassifyGate(t *testing.T) {
	p := NewParser(GatePolicy{}, nil)
	base := Fields{
		PayerName:     strPtr("a"),
		PayeeName:     strPtr("b"),
		TransactionID: strPtr("c"),
	}

	if got := p.classify(base, false); got != constants.TxStatusProcessed {
		t.Errorf("all three present: got %v, want PROCESSED", got)
	}

	drop := []struct {
		name string
		mut  func(Fields) Fields
	}{
		{"payer", func(f Fields) Fields { f.PayerName = nil; return f }},
		{"payee", func(f Fields) Fields { f.PayeeName = nil; return f }},
		{"transaction id", func(f Fields) Fields { f.TransactionID = nil; return f }},
	}
	for _, d := range drop {
		t.Run("missing "+d.name, func(t *testing.T) {
			if got := p.classify(d.mut(base), false); got != constants.TxStatusManualReview {
				t.Errorf("got %v, want MANUAL_REVIEW", got)
			}
		})
	}

	t.Run("amount and bank do not affect default gate", func(t *testing.T) {
		f := base
		f.Amount = nil
		f.BankName = nil
		if got := p.classify(f, false); got != constants.TxStatusProcessed {
			t.Errorf("got %v, want PROCESSED", got)
		}
	})

	t.Run("filename fallback forces review", func(t *testing.T) {
		if got := p.classify(base, true); got != constants.TxStatusManualReview {
			t.Errorf("got %v, want MANUAL_REVIEW", got)
		}
	})
}

func TestClassifyGatePolicy(t *testing.T) {
	base := Fields{
		PayerName:     strPtr("a"),
		PayeeName:     strPtr("b"),
		TransactionID: strPtr("c"),
	}

	strict := NewParser(GatePolicy{RequireAmount: true, RequireBank: true}, nil)
	if got := strict.classify(base, false); got != constants.TxStatusManualReview {
		t.Errorf("strict gate without amount/bank: got %v, want MANUAL_REVIEW", got)
	}

	full := base
	full.Amount = floatPtr(10)
	full.BankName = strPtr("Sicoob")
	if got := strict.classify(full, false); got != constants.TxStatusProcessed {
		t.Errorf("strict gate with amount+bank: got %v, want PROCESSED", got)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	text := "Comprovante R$ 99,90 Data: 01/01/2024 Pagador: A B Favorecido: C D ID da transação: XYZ123456789"
	p := NewParser(GatePolicy{}, nil)
	a := p.Parse(text, "f.pdf")
	b := p.Parse(text, "f.pdf")
	if a.Status != b.Status {
		t.Errorf("status differs across runs: %v vs %v", a.Status, b.Status)
	}
	if (a.Fields.PayerName == nil) != (b.Fields.PayerName == nil) {
		t.Error("payer presence differs across runs")
	}
}
