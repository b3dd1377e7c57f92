package parser

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// rePayerInstitution captures the institution line inside an explicit
// "dados do pagador ... instituição" block. When present it names the payer's
// bank, which beats a blind whole-document keyword scan: the blind scan can
// just as easily hit the payee's institution, and a wrong unqualified match
// is worse than no match.
var rePayerInstitution = regexp.MustCompile(`(?i)dados do pagador\s*.{0,80}?\s*cpf\s*.{0,80}?\s*institui[çc][ãa]o\s*(.{1,120}?)(?:\s*comprovante|$)`)

// IdentifyPayerBank resolves the canonical institution named in the payer
// context block, or "" when the document has no such block.
func IdentifyPayerBank(doc Document) string {
	if m := rePayerInstitution.FindStringSubmatch(doc.Text); m != nil {
		inst := strings.ToLower(strings.TrimSpace(m[1]))
		for _, bk := range constants.BankKeywords {
			if strings.Contains(inst, bk.Keyword) {
				return bk.Canonical
			}
		}
	}
	return ""
}

// ScanBankKeyword returns the first table-order keyword hit anywhere in the
// document. Unqualified: the hit may belong to either leg of the transfer,
// so callers treat it as a last-resort fill, never an override.
func ScanBankKeyword(doc Document) string {
	for _, bk := range constants.BankKeywords {
		if doc.Contains(bk.Keyword) {
			return bk.Canonical
		}
	}
	return ""
}

// IdentifyBank resolves the canonical institution name for a document.
// Priority: payer-institution context block first, then first keyword match
// over the whole text in table order. Empty string means no match.
func IdentifyBank(doc Document) string {
	if b := IdentifyPayerBank(doc); b != "" {
		return b
	}
	return ScanBankKeyword(doc)
}
