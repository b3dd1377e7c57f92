package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// Filename heuristic. Receipts saved from phones often carry the transfer
// date, time, bank and amount in the filename itself, which survives even
// when the image OCRs to garbage.
var (
	reFnameDateISO  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reFnameDateBR   = regexp.MustCompile(`(\d{2})-(\d{2})-(\d{4})`)
	reFnameDateLong = regexp.MustCompile(`(?i)(\d{1,2})\s*de\s*([a-zç]+)\.?\s*(?:de\s*)?(\d{4})`)
	reFnameTime     = regexp.MustCompile(`(\d{2})[-.](\d{2})[-.](\d{2})`)
	reFnameAmount   = regexp.MustCompile(`(?i)r\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`)
)

// ExtractFromFilename mines the filename for date, time, bank and amount.
// The matched date span is cut out of the name before time matching so a
// "2025-10-15" date cannot shadow a "17-40-26" time stamp.
func ExtractFromFilename(filename string) Fields {
	var f Fields
	name := strings.ReplaceAll(filename, "_", " ")
	rest := name

	if m := reFnameDateISO.FindStringSubmatchIndex(name); m != nil {
		y, mo, d := name[m[2]:m[3]], name[m[4]:m[5]], name[m[6]:m[7]]
		f.TransferDate = strPtr(fmt.Sprintf("%s/%s/%s", d, mo, y))
		rest = name[:m[0]] + name[m[1]:]
	} else if m := reFnameDateBR.FindStringSubmatchIndex(name); m != nil {
		d, mo, y := name[m[2]:m[3]], name[m[4]:m[5]], name[m[6]:m[7]]
		f.TransferDate = strPtr(fmt.Sprintf("%s/%s/%s", d, mo, y))
		rest = name[:m[0]] + name[m[1]:]
	} else if m := reFnameDateLong.FindStringSubmatch(name); m != nil {
		if mo, ok := monthNumbers[strings.ToLower(m[2])]; ok {
			f.TransferDate = strPtr(fmt.Sprintf("%s/%s/%s", pad2(m[1]), mo, m[3]))
			rest = strings.Replace(name, m[0], "", 1)
		}
	}

	if m := reFnameTime.FindStringSubmatch(rest); m != nil {
		if m[1] < "24" && m[2] < "60" && m[3] < "60" {
			f.TransferTime = strPtr(fmt.Sprintf("%s:%s:%s", m[1], m[2], m[3]))
		}
	}

	lower := strings.ToLower(name)
	for _, bk := range constants.BankKeywords {
		if strings.Contains(lower, bk.Keyword) {
			f.BankName = strPtr(bk.Canonical)
			break
		}
	}

	if m := reFnameAmount.FindStringSubmatch(name); m != nil {
		if v, ok := ParseBRL(m[1]); ok {
			f.Amount = floatPtr(v)
		}
	}
	return f
}
