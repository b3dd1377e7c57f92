package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reSicoobPayee = regexp.MustCompile(`(?i)(?:favorecido|creditado para):?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|$)`)
	reSicoobPayer = regexp.MustCompile(`(?i)(?:debitado de|pagador):?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*favorecido|$)`)
	reSicoobTxID  = regexp.MustCompile(`(?i)(?:autentica[çc][ãa]o|protocolo):?\s*([A-Za-z0-9\-]{8,})`)
)

var sicoobLayout = LayoutExtractor{
	Name:     "sicoob",
	Bank:     constants.BankSicoob,
	Triggers: []string{"sicoob"},
	Extract:  extractSicoob,
}

func extractSicoob(text string) Fields {
	var f Fields
	f.BankName = strPtr(constants.BankSicoob)
	f.PayeeName = strPtr(captureAfter(reSicoobPayee, text))
	f.PayerName = strPtr(captureAfter(reSicoobPayer, text))
	f.TransactionID = strPtr(captureAfter(reSicoobTxID, text))
	return f
}
