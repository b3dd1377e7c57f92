package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var reBBPayer = regexp.MustCompile(`(?i)pagador:?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*ag[êe]ncia|\s*agencia|\s*conta|\s*data|\s*valor|\s*id|\s*transa[çc][ãa]o|\s*protocolo|$)`)

var bancoDoBrasilLayout = LayoutExtractor{
	Name:     "banco-do-brasil",
	Bank:     constants.BankBB,
	Triggers: []string{"banco do brasil"},
	Extract:  extractBancoDoBrasil,
}

func extractBancoDoBrasil(text string) Fields {
	var f Fields
	f.PayerName = strPtr(captureAfter(reBBPayer, text))
	return f
}
