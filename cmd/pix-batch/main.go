package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/pix-tracker/gen/ent"
	"github.com/joseph-ayodele/pix-tracker/internal/common"
	"github.com/joseph-ayodele/pix-tracker/internal/export"
	"github.com/joseph-ayodele/pix-tracker/internal/ingest"
	"github.com/joseph-ayodele/pix-tracker/internal/ocr"
	"github.com/joseph-ayodele/pix-tracker/internal/parser"
	processor "github.com/joseph-ayodele/pix-tracker/internal/pipeline"
	repo "github.com/joseph-ayodele/pix-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem         = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir           = flag.String("dir", "", "directory to process receipts from (required)")
		out           = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr       = flag.String("from", "", "from date YYYY-MM-DD")
		toStr         = flag.String("to", "", "to date YYYY-MM-DD")
		includeReview = flag.Bool("include-review", true, "add a sheet with the manual-review queue")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "pix-transactions.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLiteInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --inmem is set\n")
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		entc = client
		defer repo.Close(entc, pool, logger)
	}

	txRepo := repo.NewTransactionRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
		Timeout:       cfg.OCR.Timeout,
	}, logger)

	p := parser.NewParser(parser.GatePolicy{
		RequireAmount: cfg.Parser.RequireAmount,
		RequireBank:   cfg.Parser.RequireBank,
	}, logger)

	proc := processor.NewProcessor(processor.Config{
		ReprocessReview: cfg.Parser.ReprocessReview,
	}, extractor, p, txRepo, logger)

	logger.Info("starting batch processing", "dir", *dir, "workers", cfg.Ingest.Workers)
	_, stats, err := ingest.ProcessDirectory(ctx, proc, *dir, cfg.Ingest.Workers, logger)
	if err != nil {
		logger.Error("failed to process directory", "error", err)
		os.Exit(1)
	}
	logger.Info("processing complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"skipped", stats.Skipped,
		"failed", stats.Failed)

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(txRepo, logger)
	xlsxBytes, err := exportService.ExportTransactionsXLSX(ctx, from, to, *includeReview)
	if err != nil {
		logger.Error("failed to export transactions", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files matched: %d\n", stats.Matched)
	fmt.Printf("- Processed: %d\n", stats.Succeeded)
	fmt.Printf("- Skipped: %d\n", stats.Skipped)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	fmt.Printf("- Output: %s\n", *out)
}
