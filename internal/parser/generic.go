package parser

import "regexp"

// Generic fallback patterns. These run on every document after the
// layout-specific extractors, filling whatever fields are still empty.
var (
	reGenPayee = regexp.MustCompile(`(?i)(?:benefici[áa]rio|recebedor|favorecido|para):?\s*(?:nome:?\s*)?([A-Za-zÀ-ú][A-Za-zÀ-ú\s.&\-]{2,80}?)(?:\s*cpf|\s*cnpj|\s*chave|\s*institui[çc][ãa]o|\s*banco|\s*ag[êe]ncia|\s*conta|$)`)
	reGenPayer = regexp.MustCompile(`(?i)(?:pagador|de\s*quem\s*pagou|origem):?\s*(?:nome:?\s*)?([A-Za-zÀ-ú][A-Za-zÀ-ú\s.&\-]{2,80}?)(?:\s*cpf|\s*cnpj|\s*institui[çc][ãa]o|\s*banco|\s*ag[êe]ncia|\s*conta|$)`)

	// Transaction id candidates, longest label first. The "1d" alternative
	// covers a frequent OCR misread of "Id".
	reGenTxIDLabeled = regexp.MustCompile(`(?i)(?:id|1d)\s*da\s*transa[çc][ãa]o:?\s*([A-Za-z0-9\-_]{8,})`)
	reGenTxIDAlt     = regexp.MustCompile(`(?i)(?:autentica[çc][ãa]o|protocolo|n[úu]mero\s*de\s*controle|id):?\s*([A-Za-z0-9\-_]{16,})`)
	reGenTxIDE2E     = regexp.MustCompile(`\b([ED]\d{8}\d{12}[A-Za-z0-9]{11})\b`)

	// Pix key candidates in label context. Validated by IsPlausibleKey
	// before acceptance.
	reGenKey = regexp.MustCompile(`(?i)chave(?:\s*pix)?:?\s*([^\s]+(?:\s[^\s]+)??)`)
	// Bare key shapes scanned when no labeled key is present.
	genKeyShapes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		regexp.MustCompile(`\+55\s?\d{2}\s?9?\d{4}[\-\s]?\d{4}`),
		regexp.MustCompile(`\b[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}\b`),
		regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`),
		regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`),
	}

	reGenNotes = regexp.MustCompile(`(?i)(?:observa[çc][ãa]o|coment[áa]rio|descri[çc][ãa]o|mensagem):?\s*(.+?)(?:\s*id\s*da\s*transa[çc][ãa]o|\s*autentica[çc][ãa]o|$)`)
)

func extractGeneric(doc Document) Fields {
	var f Fields
	text := doc.Text

	f.Amount = ExtractAmount(text)
	if d := NormalizeDate(text); d != nil {
		f.TransferDate = strPtr(d.String())
	}
	if t, ok := NormalizeTime(text); ok {
		f.TransferTime = strPtr(t)
	}
	f.PayeeName = strPtr(captureAfter(reGenPayee, text))
	f.PayerName = strPtr(captureAfter(reGenPayer, text))
	f.TransactionID = strPtr(extractGenericTxID(text))
	f.PixKey = strPtr(extractGenericKey(text))
	f.Notes = strPtr(captureAfter(reGenNotes, text))
	return f
}

func extractGenericTxID(text string) string {
	if id := captureAfter(reGenTxIDE2E, text); id != "" {
		return id
	}
	if id := captureAfter(reGenTxIDLabeled, text); id != "" {
		return id
	}
	return captureAfter(reGenTxIDAlt, text)
}

func extractGenericKey(text string) string {
	if k := captureAfter(reGenKey, text); k != "" && IsPlausibleKey(k) {
		return k
	}
	for _, re := range genKeyShapes {
		if m := re.FindString(text); m != "" && IsPlausibleKey(m) {
			return m
		}
	}
	return ""
}
