package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	rePagbankPayer = regexp.MustCompile(`(?i)\bde\s+([A-Za-zÀ-ú\s]+?)\s+(?:cpf|institui[çc][ãa]o|para)`)
	rePagbankPayee = regexp.MustCompile(`(?i)\bpara\s+([A-Za-zÀ-ú\s]+?)\s+(?:cpf|cnpj|chave|institui[çc][ãa]o)`)
	rePagbankTxID  = regexp.MustCompile(`(?i)(?:id da transa[çc][ãa]o|c[óo]digo de autentica[çc][ãa]o):?\s*([A-Za-z0-9\-]+)`)
)

var pagbankLayout = LayoutExtractor{
	Name: "pagbank",
	Bank: constants.BankPagBank,
	Triggers: []string{
		"pagbank (pagseguro internet instituição de pagamento s.a.)",
		"pagseguro internet",
	},
	Extract: extractPagbank,
}

func extractPagbank(text string) Fields {
	var f Fields
	f.BankName = strPtr(constants.BankPagBank)
	f.PayerName = strPtr(captureAfter(rePagbankPayer, text))
	f.PayeeName = strPtr(captureAfter(rePagbankPayee, text))
	f.TransactionID = strPtr(captureAfter(rePagbankTxID, text))
	return f
}
