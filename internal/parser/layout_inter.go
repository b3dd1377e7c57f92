package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reInterPayee = regexp.MustCompile(`(?i)quem\s*recebeu\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|$)`)
	reInterPayer = regexp.MustCompile(`(?i)quem\s*pagou\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*quem\s*recebeu|$)`)
	// Inter stamps a UUID transaction id on its receipts
	reInterTxID = regexp.MustCompile(`(?i)id\s*da\s*transa[çc][ãa]o:?\s*([a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12})`)
)

var interLayout = LayoutExtractor{
	Name:     "inter",
	Bank:     constants.BankInter,
	Triggers: []string{"banco inter"},
	Extract:  extractInter,
}

func extractInter(text string) Fields {
	var f Fields
	f.PayeeName = strPtr(captureAfter(reInterPayee, text))
	f.PayerName = strPtr(captureAfter(reInterPayer, text))
	f.TransactionID = strPtr(captureAfter(reInterTxID, text))
	return f
}
