package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Monetary values use the Brazilian convention unconditionally: comma is the
// decimal separator, period the thousands separator.
var (
	reAmountRS = []*regexp.Regexp{
		regexp.MustCompile(`(?i)valor[:\s]*r\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
		regexp.MustCompile(`(?i)pago[:\s]*r\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
		regexp.MustCompile(`(?i)r\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
	}
	reAmountBare = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)\s*reais?`),
		regexp.MustCompile(`(?i)valor[:\s]*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
		regexp.MustCompile(`(?i)pago[:\s]*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
	}
)

// ParseBRL converts "1.234,56" to 1234.56.
func ParseBRL(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractAmount finds the transfer value in text. "R$"-prefixed patterns are
// tried first and short-circuit on the first hit; bare-number patterns
// ("150,00 reais", "valor 150,00") are only consulted when no R$ form exists.
func ExtractAmount(text string) *float64 {
	for _, re := range reAmountRS {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := ParseBRL(m[1]); ok {
				return floatPtr(v)
			}
		}
	}
	for _, re := range reAmountBare {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := ParseBRL(m[1]); ok {
				return floatPtr(v)
			}
		}
	}
	return nil
}
