// Package parser turns raw OCR text from a PIX receipt into a structured
// transaction record. The pipeline is strictly ordered: bank identification,
// triggered layout extractors in priority order, generic fallback for the
// remaining gaps, and a filename heuristic when the text itself is too thin
// to trust.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// minTextLength is the threshold below which document text is considered too
// thin and the filename heuristic kicks in.
const minTextLength = 50

// FilenameFallbackNote marks records whose fields were recovered from the
// filename rather than the document text.
const FilenameFallbackNote = "fields recovered from filename; verify against the original document"

// GatePolicy configures the completeness gate. Payer, payee and transaction
// id are always required; amount and bank are opt-in extras.
type GatePolicy struct {
	RequireAmount bool
	RequireBank   bool
}

// Result is the outcome of parsing one document.
type Result struct {
	Fields               Fields
	Status               constants.TxStatus
	SourceFilename       string
	RawText              string
	UsedFilenameFallback bool
}

// Parser runs the extraction pipeline. The zero-value gate requires only
// payer, payee and transaction id.
type Parser struct {
	gate   GatePolicy
	logger *slog.Logger
}

func NewParser(gate GatePolicy, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{gate: gate, logger: logger}
}

// Parse extracts structured fields from raw document text and its source
// filename. It never returns an error: any panic inside an extractor is
// converted into an ERROR-status result so the record is recorded rather
// than dropped.
func (p *Parser) Parse(rawText, filename string) (res Result) {
	res.SourceFilename = filename
	res.RawText = rawText

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("extraction fault",
				slog.String("filename", filename),
				slog.Any("fault", r))
			res.Status = constants.TxStatusError
			res.Fields.Notes = strPtr(fmt.Sprintf("extraction fault: %v", r))
		}
	}()

	doc := NewDocument(rawText)
	payerBank := IdentifyPayerBank(doc)
	scanned := ScanBankKeyword(doc)
	bank := payerBank
	if bank == "" {
		bank = scanned
	}

	// Bank priority: the payer context block overrides everything, a layout's
	// own institution capture comes next, and the unqualified keyword scan
	// only fills the field when nothing better claimed it.
	partials := make([]Fields, 0, len(layouts)+3)
	if payerBank != "" {
		partials = append(partials, Fields{BankName: strPtr(payerBank)})
	}
	for _, l := range layouts {
		if l.Triggered(doc, bank) {
			p.logger.Debug("layout triggered",
				slog.String("filename", filename),
				slog.String("layout", l.Name))
			partials = append(partials, l.Extract(doc.Text))
		}
	}
	if scanned != "" {
		partials = append(partials, Fields{BankName: strPtr(scanned)})
	}
	partials = append(partials, extractGeneric(doc))
	res.Fields = Merge(partials...)

	if len(strings.TrimSpace(rawText)) < minTextLength || res.Fields.TransferDate == nil {
		res.UsedFilenameFallback = true
		res.Fields = Merge(res.Fields, ExtractFromFilename(filename))
	}

	if res.Fields.PixKey != nil && res.Fields.KeyType == nil {
		kt := ClassifyKey(*res.Fields.PixKey)
		res.Fields.KeyType = &kt
	}

	res.Status = p.classify(res.Fields, res.UsedFilenameFallback)
	if res.UsedFilenameFallback && res.Fields.Notes == nil {
		res.Fields.Notes = strPtr(FilenameFallbackNote)
	}
	return res
}

// classify evaluates the completeness gate. Falling back to the filename is
// itself evidence of low-confidence extraction, so that path always lands in
// manual review no matter how many fields it recovered.
func (p *Parser) classify(f Fields, usedFilename bool) constants.TxStatus {
	if usedFilename {
		return constants.TxStatusManualReview
	}
	complete := f.PayerName != nil && f.PayeeName != nil && f.TransactionID != nil
	if p.gate.RequireAmount {
		complete = complete && f.Amount != nil
	}
	if p.gate.RequireBank {
		complete = complete && f.BankName != nil
	}
	if complete {
		return constants.TxStatusProcessed
	}
	return constants.TxStatusManualReview
}
