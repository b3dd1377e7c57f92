package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reCaixaPayee  = regexp.MustCompile(`(?i)dados do recebedor\s*nome:?\s*(.+?)\s*(?:cpf|cnpj|institui[çc][ãa]o|dados do pagador|$)`)
	reCaixaPayer  = regexp.MustCompile(`(?i)dados do pagador\s*nome:?\s*(.+?)\s*(?:cpf|cnpj|institui[çc][ãa]o|$)`)
	reCaixaAmount = regexp.MustCompile(`(?i)(?:valor|total|r\$)\s*([\d.,]+)`)
	reCaixaTxID   = regexp.MustCompile(`(?i)(?:id da transa[çc][ãa]o|transa[çc][ãa]o id|c[óo]digo da transa[çc][ãa]o)[:\s]*([A-Za-z0-9]{32})`)
	// labelled key: email, dotted CPF, CNPJ, phone, or UUID
	reCaixaKey = regexp.MustCompile(`(?i)(?:chave pix|chave)[:\s]*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}|\d{3}\.?\d{3}\.?\d{3}-?\d{2}|\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}|\+?\d{2}\s?\d{2}\s?\d{4,5}-?\d{4}|[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12})`)
)

var caixaLayout = LayoutExtractor{
	Name:     "caixa",
	Bank:     constants.BankCaixa,
	Triggers: []string{"caixa econômica", "caixa economica"},
	Extract:  extractCaixa,
}

func extractCaixa(text string) Fields {
	var f Fields
	f.PayeeName = strPtr(captureAfter(reCaixaPayee, text))
	f.PayerName = strPtr(captureAfter(reCaixaPayer, text))
	if m := reCaixaAmount.FindStringSubmatch(text); m != nil {
		if v, ok := ParseBRL(m[1]); ok {
			f.Amount = floatPtr(v)
		}
	}
	f.TransactionID = strPtr(captureAfter(reCaixaTxID, text))
	if key := captureAfter(reCaixaKey, text); key != "" {
		f.PixKey = strPtr(key)
	}
	return f
}
