package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// Nubank receipts label both legs with "Origem"/"Destino" blocks; captures
// run until the next block label.
var (
	reNubankPayer = regexp.MustCompile(`(?i)origem\s*nome:?\s*(.+?)(?:\s*destino\s*nome|\s*institui[çc][ãa]o|\s*ag[êe]ncia|\s*agencia|\s*conta|\s*cpf|$)`)
	reNubankPayee = regexp.MustCompile(`(?i)destino\s*nome:?\s*(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|\s*ag[êe]ncia|\s*agencia|\s*conta|\s*id\s*da\s*transa[çc][ãa]o|$)`)
	reNubankPayerBank = regexp.MustCompile(`(?i)institui[çc][ãa]o\s*(nu pagamentos - ip)`)
	reNubankPayeeBank = regexp.MustCompile(`(?i)destino\s*.{0,120}?institui[çc][ãa]o\s*(.+?)(?:\s*ag[êe]ncia|\s*agencia|\s*conta|\s*tipo de conta|$)`)
	reNubankTxID      = regexp.MustCompile(`(?i)(?:id|1d) da transa[çc][ãa]o:?\s*([A-Za-z0-9\-_]+)`)
	reNubankAgency    = regexp.MustCompile(`(?i)\s*ag[êe]ncia\s*\d+`)
)

var nubankLayout = LayoutExtractor{
	Name:     "nubank",
	Bank:     constants.BankNubank,
	Triggers: []string{"instituição nu pagamentos - ip", "instituicao nu pagamentos - ip"},
	Extract:  extractNubank,
}

func extractNubank(text string) Fields {
	var f Fields
	f.PayerName = strPtr(captureAfter(reNubankPayer, text))
	f.PayeeName = strPtr(captureAfter(reNubankPayee, text))
	f.PayerBankName = strPtr(captureAfter(reNubankPayerBank, text))
	if payeeBank := captureAfter(reNubankPayeeBank, text); payeeBank != "" {
		// "Instituição Banco X Agência 0001" -> drop the agency tail
		f.BankName = strPtr(reNubankAgency.ReplaceAllString(payeeBank, ""))
	}
	f.TransactionID = strPtr(captureAfter(reNubankTxID, text))
	return f
}
