package parser

import (
	"regexp"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// BMG receipts come from the noisiest OCR in the fleet: labels and values
// frequently arrive fused ("valorr$", "iddatransação"). Every literal space
// in these patterns is \s* so zero-whitespace joins still match.
var (
	reBMGAmount = regexp.MustCompile(`(?i)valor\s*r\s*\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`)
	reBMGTxID   = regexp.MustCompile(`(?i)id\s*da\s*transa[çc][ãa]o:?\s*([A-Za-z0-9\-]{8,})`)
	reBMGPayer  = regexp.MustCompile(`(?i)dados\s*de\s*quem\s*pagou\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*dados\s*do\s*recebedor|$)`)
	reBMGPayee  = regexp.MustCompile(`(?i)dados\s*do\s*recebedor\s*(?:nome:?\s*)?(.+?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|$)`)
	reBMGDate   = regexp.MustCompile(`(?i)data\s*(?:do\s*pagamento)?:?\s*(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{4})`)
)

var bmgLayout = LayoutExtractor{
	Name:     "bmg",
	Bank:     constants.BankBMG,
	Triggers: []string{"bmg", "aplicativobmg", "comprovante de envio pix"},
	Extract:  extractBMG,
}

func extractBMG(text string) Fields {
	var f Fields
	if m := reBMGAmount.FindStringSubmatch(text); m != nil {
		if v, ok := ParseBRL(m[1]); ok {
			f.Amount = floatPtr(v)
		}
	}
	f.TransactionID = strPtr(captureAfter(reBMGTxID, text))
	f.PayerName = strPtr(captureAfter(reBMGPayer, text))
	f.PayeeName = strPtr(captureAfter(reBMGPayee, text))
	if m := reBMGDate.FindStringSubmatch(text); m != nil {
		if d := NormalizeDate(m[1]); d != nil {
			f.TransferDate = strPtr(d.String())
		}
	}
	f.PayerBankName = strPtr(constants.BankBMG)
	return f
}
