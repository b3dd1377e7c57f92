package utils

import (
	"fmt"
	"time"

	"github.com/joseph-ayodele/pix-tracker/gen/ent"
	pixpb "github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1"
	"github.com/joseph-ayodele/pix-tracker/internal/entity"
)

func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Truncate caps s at max runes. Column widths are enforced here rather than
// letting the database reject a whole record over one oversized OCR capture.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// TruncatePtr is Truncate lifted over optional strings.
func TruncatePtr(p *string, max int) *string {
	if p == nil {
		return nil
	}
	t := Truncate(*p, max)
	return &t
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToTransaction(e *ent.PixTransaction) *entity.PixTransaction {
	return &entity.PixTransaction{
		ID:             e.ID,
		SourceFilename: e.SourceFilename,
		Amount:         e.Amount,
		PayerName:      e.PayerName,
		PayeeName:      e.PayeeName,
		PixKey:         e.PixKey,
		KeyType:        e.KeyType,
		TransferDate:   e.TransferDate,
		TransferTime:   e.TransferTime,
		BankName:       e.BankName,
		PayerBankName:  e.PayerBankName,
		TransactionID:  e.TransactionID,
		Status:         e.Status,
		Notes:          e.Notes,
		ExtractedJSON:  e.ExtractedJSON,
		ProcessedAt:    e.ProcessedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToReviewTransaction(e *ent.ReviewTransaction) *entity.PixTransaction {
	return &entity.PixTransaction{
		ID:             e.ID,
		SourceFilename: e.SourceFilename,
		Amount:         e.Amount,
		PayerName:      e.PayerName,
		PayeeName:      e.PayeeName,
		PixKey:         e.PixKey,
		KeyType:        e.KeyType,
		TransferDate:   e.TransferDate,
		TransferTime:   e.TransferTime,
		BankName:       e.BankName,
		PayerBankName:  e.PayerBankName,
		TransactionID:  e.TransactionID,
		Status:         e.Status,
		Notes:          e.Notes,
		RawText:        e.RawText,
		ExtractedJSON:  e.ExtractedJSON,
		ProcessedAt:    e.ProcessedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPBTransaction(t *entity.PixTransaction) *pixpb.Transaction {
	pb := &pixpb.Transaction{
		Id:             t.ID.String(),
		SourceFilename: t.SourceFilename,
		PayerName:      StrOrEmpty(t.PayerName),
		PayeeName:      StrOrEmpty(t.PayeeName),
		PixKey:         StrOrEmpty(t.PixKey),
		KeyType:        StrOrEmpty(t.KeyType),
		TransferTime:   StrOrEmpty(t.TransferTime),
		BankName:       StrOrEmpty(t.BankName),
		PayerBankName:  StrOrEmpty(t.PayerBankName),
		TransactionId:  StrOrEmpty(t.TransactionID),
		Status:         t.Status,
		Notes:          StrOrEmpty(t.Notes),
		ProcessedAt:    t.ProcessedAt.UTC().Format(time.RFC3339),
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.Amount != nil {
		pb.Amount = fmt.Sprintf("%.2f", *t.Amount)
	}
	if t.TransferDate != nil {
		pb.TransferDate = t.TransferDate.Format("2006-01-02")
	}
	return pb
}
