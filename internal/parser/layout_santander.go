package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reSantanderPayee = regexp.MustCompile(`(?i)dados do recebedor\s*para:?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|$)`)
	reSantanderPayer = regexp.MustCompile(`(?i)dados do pagador\s*de:?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*ag[êe]ncia|\s*agencia|\s*conta|\s*data|\s*valor|\s*id|\s*transa[çc][ãa]o|\s*protocolo|\s*para|\s*informa[çc][ãa]o para o recebedor|$)`)
	reSantanderPayerBank = regexp.MustCompile(`(?i)dados do pagador\s*(?:de\s*.{0,80}?\s*)?institui[çc][ãa]o\s*(.+?)(?:\s*comprovante|$)`)
	reSantanderNotes     = regexp.MustCompile(`(?i)informa[çc][ãa]o para o recebedor\s*(.+?)(?:\s*forma de pagamento|\s*ag\s*\d+|\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*ag[êe]ncia|\s*agencia|\s*conta|\s*data|\s*valor|\s*id|\s*transa[çc][ãa]o|\s*protocolo|$)`)
)

var santanderLayout = LayoutExtractor{
	Name:     "santander",
	Bank:     constants.BankSantander,
	Triggers: []string{"bco santander (brasil) s.a."},
	Extract:  extractSantander,
}

func extractSantander(text string) Fields {
	var f Fields
	f.PayeeName = strPtr(captureAfter(reSantanderPayee, text))
	f.PayerName = strPtr(captureAfter(reSantanderPayer, text))
	f.PayerBankName = strPtr(captureAfter(reSantanderPayerBank, text))
	f.Notes = strPtr(captureAfter(reSantanderNotes, text))
	return f
}
