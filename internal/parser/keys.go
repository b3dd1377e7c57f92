package parser

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

var (
	reKeyCPF   = regexp.MustCompile(`^\d{11}$`)
	reKeyCNPJ  = regexp.MustCompile(`^\d{14}$`)
	reKeyEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	reKeyPhone = regexp.MustCompile(`^\+55\s?\d{2}\s?\d{4,5}\s?\d{4}$`)
	reKeyUUID  = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)
)

var reKeyPunct = regexp.MustCompile(`[./\-]`)

// IsPlausibleKey reports whether candidate has the shape of a PIX key:
// CPF (11 digits), CNPJ (14 digits), email, +55 phone, or a random key
// (UUID grouping). CPF and CNPJ are accepted with or without their usual
// dotted punctuation. Anything shorter than 5 characters is rejected
// outright.
func IsPlausibleKey(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if len(candidate) < 5 {
		return false
	}
	digits := reKeyPunct.ReplaceAllString(candidate, "")
	switch {
	case reKeyCPF.MatchString(digits),
		reKeyCNPJ.MatchString(digits),
		reKeyEmail.MatchString(candidate),
		reKeyPhone.MatchString(candidate),
		reKeyPhone.MatchString(digits),
		reKeyUUID.MatchString(candidate):
		return true
	}
	return false
}

// ClassifyKey derives the key type from the key's shape. Only meaningful for
// keys that passed IsPlausibleKey; anything unrecognized is a random key.
func ClassifyKey(key string) constants.KeyType {
	key = strings.TrimSpace(key)
	digits := reKeyPunct.ReplaceAllString(key, "")
	switch {
	case strings.Contains(key, "@"):
		return constants.KeyTypeEmail
	case strings.Contains(key, "+55"):
		return constants.KeyTypePhone
	case reKeyCPF.MatchString(digits):
		return constants.KeyTypeCPF
	case reKeyCNPJ.MatchString(digits):
		return constants.KeyTypeCNPJ
	default:
		return constants.KeyTypeRandom
	}
}
