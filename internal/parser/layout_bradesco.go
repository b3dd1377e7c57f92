package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reBradescoPayer = regexp.MustCompile(`(?i)dados\s*de\s*quem\s*pagou\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*dados\s*de\s*quem\s*recebeu|$)`)
	reBradescoPayee = regexp.MustCompile(`(?i)dados\s*de\s*quem\s*recebeu\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|$)`)
	reBradescoTxID  = regexp.MustCompile(`(?i)(?:n[úu]mero\s*de\s*controle|autentica[çc][ãa]o):?\s*([A-Za-z0-9.\-]{8,})`)
)

var bradescoLayout = LayoutExtractor{
	Name:     "bradesco",
	Bank:     constants.BankBradesco,
	Triggers: []string{"bradesco"},
	Extract:  extractBradesco,
}

func extractBradesco(text string) Fields {
	var f Fields
	f.PayerName = strPtr(captureAfter(reBradescoPayer, text))
	f.PayeeName = strPtr(captureAfter(reBradescoPayee, text))
	f.TransactionID = strPtr(captureAfter(reBradescoTxID, text))
	return f
}
