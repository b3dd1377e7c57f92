// Package export renders stored transactions as XLSX workbooks.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/pix-tracker/internal/entity"
	"github.com/joseph-ayodele/pix-tracker/internal/repository"
	"github.com/joseph-ayodele/pix-tracker/internal/utils"
)

// Service is a tiny façade over the transaction repository that produces
// XLSX bytes for exports.
type Service struct {
	repo   repository.TransactionRepository
	logger *slog.Logger
}

func NewService(repo repository.TransactionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) for the given
// transfer-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> every processed transaction.
// When includeReview is set, a second sheet carries the review queue.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, from, to *time.Time, includeReview bool) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.repo.ListProcessed(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// excelize creates "Sheet1" by default; drop it once our sheet exists.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	if err := writeSheet(f, sheet, recs); err != nil {
		return nil, err
	}

	reviewRows := 0
	if includeReview {
		const reviewSheet = "Review Queue"
		if _, err := f.NewSheet(reviewSheet); err != nil {
			return nil, err
		}
		review, err := s.repo.ListReview(ctx)
		if err != nil {
			return nil, fmt.Errorf("query review queue: %w", err)
		}
		if err := writeSheet(f, reviewSheet, review); err != nil {
			return nil, err
		}
		reviewRows = len(review)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"review_rows", reviewRows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, recs []*entity.PixTransaction) error {
	headers := []string{
		"Transfer Date",
		"Time",
		"Amount (BRL)",
		"Payer",
		"Payer Bank",
		"Payee",
		"Payee Bank",
		"PIX Key",
		"Key Type",
		"Transaction ID",
		"Status",
		"Source File",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if r.TransferDate != nil {
			write(1, r.TransferDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, utils.StrOrEmpty(r.TransferTime))
		if r.Amount != nil {
			write(3, fmt.Sprintf("%.2f", *r.Amount))
		} else {
			write(3, "")
		}
		write(4, utils.StrOrEmpty(r.PayerName))
		write(5, utils.StrOrEmpty(r.PayerBankName))
		write(6, utils.StrOrEmpty(r.PayeeName))
		write(7, utils.StrOrEmpty(r.BankName))
		write(8, utils.StrOrEmpty(r.PixKey))
		write(9, utils.StrOrEmpty(r.KeyType))
		write(10, utils.StrOrEmpty(r.TransactionID))
		write(11, r.Status)
		write(12, r.SourceFilename)
		write(13, utils.Truncate(utils.StrOrEmpty(r.Notes), 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 10) // time
	_ = f.SetColWidth(sheet, "C", "C", 14) // amount
	_ = f.SetColWidth(sheet, "D", "G", 28) // parties and banks
	_ = f.SetColWidth(sheet, "H", "H", 32) // key
	_ = f.SetColWidth(sheet, "I", "I", 12) // key type
	_ = f.SetColWidth(sheet, "J", "J", 36) // transaction id
	_ = f.SetColWidth(sheet, "K", "K", 16) // status
	_ = f.SetColWidth(sheet, "L", "L", 40) // file
	_ = f.SetColWidth(sheet, "M", "M", 48) // notes
	return nil
}
