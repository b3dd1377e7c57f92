package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reMPPayee = regexp.MustCompile(`(?i)\bpara\s+([A-Za-zÀ-ú\s]+?)\s+(?:cpf|cnpj|chave)`)
	reMPPayer = regexp.MustCompile(`(?i)\bde\s+([A-Za-zÀ-ú\s]+?)\s+(?:cpf|cnpj|institui[çc][ãa]o)`)
	reMPTxID  = regexp.MustCompile(`(?i)(?:n[úu]mero de opera[çc][ãa]o|id da transa[çc][ãa]o):?\s*([A-Za-z0-9\-]+)`)
)

var mercadoPagoLayout = LayoutExtractor{
	Name:     "mercado-pago",
	Bank:     constants.BankMercadoPago,
	Triggers: []string{"mercado pago"},
	Extract:  extractMercadoPago,
}

func extractMercadoPago(text string) Fields {
	var f Fields
	f.BankName = strPtr(constants.BankMercadoPago)
	f.PayeeName = strPtr(captureAfter(reMPPayee, text))
	f.PayerName = strPtr(captureAfter(reMPPayer, text))
	f.TransactionID = strPtr(captureAfter(reMPTxID, text))
	return f
}
