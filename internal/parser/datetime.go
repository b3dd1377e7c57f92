package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// monthNumbers maps Portuguese month names and their 3-letter abbreviations
// to zero-padded month numbers.
var monthNumbers = map[string]string{
	"jan": "01", "janeiro": "01",
	"fev": "02", "fevereiro": "02",
	"mar": "03", "marco": "03", "março": "03",
	"abr": "04", "abril": "04",
	"mai": "05", "maio": "05",
	"jun": "06", "junho": "06",
	"jul": "07", "julho": "07",
	"ago": "08", "agosto": "08",
	"set": "09", "setembro": "09",
	"out": "10", "outubro": "10",
	"nov": "11", "novembro": "11",
	"dez": "12", "dezembro": "12",
}

var (
	reDateDMY  = regexp.MustCompile(`(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})`)
	reDateYMD  = regexp.MustCompile(`(\d{4})[/.\-](\d{1,2})[/.\-](\d{1,2})`)
	reDateLong = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+([a-zà-ú]+)\.?\s+de\s+(\d{4})`)
	reTime     = regexp.MustCompile(`(?:^|\s)(\d{1,2}:\d{2}(?::\d{2})?)(?:\s|$)`)
)

// Date is a normalized calendar date with zero-padded components. No time
// zone is assumed.
type Date struct {
	Day   string
	Month string
	Year  string
}

// String renders the canonical DD/MM/YYYY form used on receipts.
func (d Date) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Day, d.Month, d.Year)
}

// ISO renders YYYY-MM-DD for the database date column.
func (d Date) ISO() string {
	return fmt.Sprintf("%s-%s-%s", d.Year, d.Month, d.Day)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// NormalizeDate parses a textual date in DD/MM/YYYY, YYYY/MM/DD (separators
// '/', '-', '.'), or Portuguese long form "D de MMMM de YYYY". The group
// carrying 4 digits disambiguates component order. Returns nil when nothing
// matches; callers treat nil as "date unknown", not an error.
func NormalizeDate(raw string) *Date {
	if m := reDateDMY.FindStringSubmatch(raw); m != nil {
		return &Date{Day: pad2(m[1]), Month: pad2(m[2]), Year: m[3]}
	}
	if m := reDateYMD.FindStringSubmatch(raw); m != nil {
		return &Date{Day: pad2(m[3]), Month: pad2(m[2]), Year: m[1]}
	}
	if m := reDateLong.FindStringSubmatch(raw); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[2])]; ok {
			return &Date{Day: pad2(m[1]), Month: month, Year: m[3]}
		}
	}
	return nil
}

// NormalizeTime finds a time-of-day token (HH:MM or HH:MM:SS) bounded by
// whitespace or string edges, so fragments of dates are never captured.
func NormalizeTime(raw string) (string, bool) {
	m := reTime.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}
