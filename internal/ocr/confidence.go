package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[/.\-]\d{1,2}[/.\-]\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reCurrency  = regexp.MustCompile(`r\$`)
	reAmountish = regexp.MustCompile(`\b\d{1,3}(\.\d{3})*,\d{2}\b`)
	rePixish    = regexp.MustCompile(`\b(pix|comprovante|transfer[êe]ncia|pagamento)\b`)
)

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common PIX receipt artifacts: a date, an R$ value,
	// a comma-decimal amount, PIX wording. Each adds a little.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reCurrency.MatchString(txtL) {
		score += 0.15
	}
	if reAmountish.MatchString(txtL) {
		score += 0.15
	}
	if rePixish.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
