package parser

import (
	"github.com/joseph-ayodele/pix-tracker/constants"
)

// Fields is an immutable partial field set produced by a single extractor.
// All members are optional; nil means the extractor had nothing to say.
type Fields struct {
	Amount        *float64
	PayerName     *string
	PayeeName     *string
	PixKey        *string
	KeyType       *constants.KeyType
	TransferDate  *string // DD/MM/YYYY
	TransferTime  *string // HH:MM or HH:MM:SS
	BankName      *string
	PayerBankName *string
	TransactionID *string
	Notes         *string
}

// Merge folds partials in priority order into one field set. The first
// partial to populate a field wins; later partials only fill gaps. This is
// what protects a high-priority layout extraction from being clobbered by a
// co-triggered layout or the generic fallback.
func Merge(partials ...Fields) Fields {
	var out Fields
	for _, p := range partials {
		if out.Amount == nil {
			out.Amount = p.Amount
		}
		if out.PayerName == nil {
			out.PayerName = p.PayerName
		}
		if out.PayeeName == nil {
			out.PayeeName = p.PayeeName
		}
		if out.PixKey == nil {
			out.PixKey = p.PixKey
		}
		if out.KeyType == nil {
			out.KeyType = p.KeyType
		}
		if out.TransferDate == nil {
			out.TransferDate = p.TransferDate
		}
		if out.TransferTime == nil {
			out.TransferTime = p.TransferTime
		}
		if out.BankName == nil {
			out.BankName = p.BankName
		}
		if out.PayerBankName == nil {
			out.PayerBankName = p.PayerBankName
		}
		if out.TransactionID == nil {
			out.TransactionID = p.TransactionID
		}
		if out.Notes == nil {
			out.Notes = p.Notes
		}
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
