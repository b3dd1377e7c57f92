package parser

import (
	"testing"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

func TestIdentifyBank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"payer institution block wins over earlier keyword",
			"Comprovante Nubank Dados do pagador José Santos CPF 123.456.789-01 Instituição Banco Bradesco S.A. Comprovante emitido",
			constants.BankBradesco,
		},
		{
			"whole document keyword scan",
			"transferência concluída via banco do brasil app",
			constants.BankBB,
		},
		{
			"keyword order pagseguro before inter",
			"pagamento via pagseguro internet instituição de pagamento",
			constants.BankPagBank,
		},
		{
			"accented itau",
			"comprovante itaú unibanco",
			constants.BankItau,
		},
		{
			"no match",
			"comprovante de transferência pix",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyBank(NewDocument(tt.text))
			if got != tt.want {
				t.Errorf("IdentifyBank() = %q, want %q", got, tt.want)
			}
		})
	}
}
