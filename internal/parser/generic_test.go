package parser

import "testing"

func TestExtractGeneric(t *testing.T) {
	text := "Comprovante de transferência Valor: R$ 250,00 Data: 10/05/2024 às 14:22 " +
		"Pagador: Carlos Souza CPF 123.456.789-01 " +
		"Favorecido: Ana Lima chave pix: ana.lima@example.com " +
		"ID da transação: E12345678202405101422000000001XY"
	f := extractGeneric(NewDocument(text))

	if f.Amount == nil || *f.Amount != 250.00 {
		t.Errorf("Amount = %v, want 250.00", f.Amount)
	}
	checkOptStr(t, "TransferDate", f.TransferDate, "10/05/2024")
	checkOptStr(t, "TransferTime", f.TransferTime, "14:22")
	checkOptStr(t, "PayerName", f.PayerName, "Carlos Souza")
	checkOptStr(t, "PayeeName", f.PayeeName, "Ana Lima")
	checkOptStr(t, "PixKey", f.PixKey, "ana.lima@example.com")
}

func TestExtractGenericTxID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"end to end id", "pagamento E12345678202405101422000000001XY concluído", "E12345678202405101422000000001XY"},
		{"labeled id", "ID da Transação: ABC123DEF456GH", "ABC123DEF456GH"},
		{"ocr misread 1d", "1d da transação: ABC123DEF456GH", "ABC123DEF456GH"},
		{"protocolo", "protocolo: 0123456789ABCDEF0123", "0123456789ABCDEF0123"},
		{"short candidate rejected", "id: abc", ""},
		{"nothing", "comprovante pix", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractGenericTxID(tt.text); got != tt.want {
				t.Errorf("extractGenericTxID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractGenericKey(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled email", "chave pix: joao@example.com valor", "joao@example.com"},
		{"labeled implausible falls to shapes", "chave: pagamento para 123.456.789-01 hoje", "123.456.789-01"},
		{"bare uuid", "destino 123e4567-e89b-42d3-a456-426614174000 banco", "123e4567-e89b-42d3-a456-426614174000"},
		{"bare phone", "contato +55 11 91234-5678 obrigado", "+55 11 91234-5678"},
		{"none", "sem chave nenhuma aqui", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractGenericKey(tt.text); got != tt.want {
				t.Errorf("extractGenericKey(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractGenericNotes(t *testing.T) {
	f := extractGeneric(NewDocument("Valor R$ 30,00 Observação: aluguel de março ID da transação: ABCDEF123456789"))
	checkOptStr(t, "Notes", f.Notes, "aluguel de março")
}
