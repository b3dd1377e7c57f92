// Package processor coordinates the per-document pipeline: text extraction,
// field parsing, completeness classification, and persistence into the
// processed or review store.
package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joseph-ayodele/pix-tracker/constants"
	"github.com/joseph-ayodele/pix-tracker/internal/common"
	"github.com/joseph-ayodele/pix-tracker/internal/entity"
	"github.com/joseph-ayodele/pix-tracker/internal/ocr"
	"github.com/joseph-ayodele/pix-tracker/internal/parser"
	"github.com/joseph-ayodele/pix-tracker/internal/repository"
	"github.com/joseph-ayodele/pix-tracker/internal/utils"
)

// Column widths enforced before persistence.
const (
	maxFilenameLen = 500
	maxNameLen     = 255
	maxKeyLen      = 500
	maxBankLen     = 200
	maxTxIDLen     = 500
	maxStatusLen   = 100
)

// Upload apps append an export timestamp to filenames
// ("recibo_2025-10-15T17-40-26-123Z.pdf"). It is stripped so re-exports of
// the same document dedupe to one logical filename.
var reTimestampSuffix = regexp.MustCompile(`_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z`)

// TextExtractor is the OCR/PDF black box. *ocr.Extractor satisfies it.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Config holds pipeline behavior flags.
type Config struct {
	// ReprocessReview permits re-running extraction for filenames already
	// parked in the review store; when false such files are skipped.
	ReprocessReview bool
}

// FileResult is the per-file outcome reported to batch callers. One bad
// file never fails a whole batch.
type FileResult struct {
	Filename string
	Status   constants.ResultStatus
	Message  string
	Record   *entity.PixTransaction
}

type Processor struct {
	logger    *slog.Logger
	cfg       Config
	extractor TextExtractor
	parser    *parser.Parser
	repo      repository.TransactionRepository
	schema    map[string]any
	inflight  *inflightSet
}

func NewProcessor(cfg Config, extractor TextExtractor, p *parser.Parser, repo repository.TransactionRepository, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		cfg:       cfg,
		extractor: extractor,
		parser:    p,
		repo:      repo,
		schema:    parser.BuildTransactionJSONSchema(),
		inflight:  newInflightSet(),
	}
}

// ProcessDocument runs the full pipeline for one file. originalName
// overrides the on-disk name when the caller knows the upload name; pass ""
// to use the path's base name.
func (p *Processor) ProcessDocument(ctx context.Context, path, originalName string) FileResult {
	filename := originalName
	if filename == "" {
		filename = filepath.Base(path)
	}
	filename = utils.Truncate(canonicalFilename(filename), maxFilenameLen)
	log := p.logger.With("filename", filename)
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("request_id", rid)
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) == "" {
		return FileResult{
			Filename: filename,
			Status:   constants.ResultError,
			Message:  fmt.Sprintf("%v: %q", common.ErrUnsupportedFile, ext),
		}
	}

	if !p.inflight.TryAcquire(filename) {
		log.Warn("document already in flight, skipping")
		return FileResult{
			Filename: filename,
			Status:   constants.ResultSkipped,
			Message:  common.ErrInFlight.Error(),
		}
	}
	defer p.inflight.Release(filename)

	if !p.cfg.ReprocessReview {
		existing, err := p.repo.FindReview(ctx, filename)
		if err != nil {
			return FileResult{Filename: filename, Status: constants.ResultError, Message: err.Error()}
		}
		if existing != nil {
			log.Info("filename already parked for review, skipping")
			return FileResult{
				Filename: filename,
				Status:   constants.ResultSkipped,
				Message:  "already awaiting manual review",
			}
		}
	}

	extraction, err := p.extractor.Extract(ctx, path)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		return p.persistError(ctx, filename, fmt.Sprintf("text extraction failed: %v", err))
	}
	log.Info("text extracted",
		"method", extraction.Method,
		"pages", extraction.Pages,
		"confidence", extraction.Confidence,
		"duration", extraction.Duration,
	)

	res := p.parser.Parse(extraction.Text, filename)
	record := p.buildRecord(res)

	saved, err := p.persist(ctx, record, res)
	if err != nil {
		log.Error("failed to persist extraction", "error", err)
		return FileResult{Filename: filename, Status: constants.ResultError, Message: err.Error()}
	}

	log.Info("document processed", "status", saved.Status)
	return FileResult{
		Filename: filename,
		Status:   constants.ResultSuccess,
		Message:  string(res.Status),
		Record:   saved,
	}
}

// persist routes the record by completeness: processed records land in the
// main store (and leave the review store if they graduated), everything
// else lands in the review store.
func (p *Processor) persist(ctx context.Context, record *entity.PixTransaction, res parser.Result) (*entity.PixTransaction, error) {
	if res.Status == constants.TxStatusProcessed {
		saved, err := p.repo.SaveProcessed(ctx, record)
		if err != nil {
			return nil, err
		}
		if _, err := p.repo.DeleteReview(ctx, record.SourceFilename); err != nil {
			return nil, err
		}
		return saved, nil
	}
	raw := res.RawText
	record.RawText = &raw
	return p.repo.SaveReview(ctx, record)
}

// persistError writes a terminal error record to the review store. The
// fault is recorded, never silently dropped.
func (p *Processor) persistError(ctx context.Context, filename, msg string) FileResult {
	record := &entity.PixTransaction{
		SourceFilename: filename,
		Status:         string(constants.TxStatusError),
		Notes:          &msg,
	}
	saved, err := p.repo.SaveReview(ctx, record)
	if err != nil {
		return FileResult{Filename: filename, Status: constants.ResultError, Message: msg + "; " + err.Error()}
	}
	return FileResult{
		Filename: filename,
		Status:   constants.ResultError,
		Message:  msg,
		Record:   saved,
	}
}

func (p *Processor) buildRecord(res parser.Result) *entity.PixTransaction {
	f := res.Fields
	record := &entity.PixTransaction{
		SourceFilename: res.SourceFilename,
		Amount:         f.Amount,
		PayerName:      utils.TruncatePtr(f.PayerName, maxNameLen),
		PayeeName:      utils.TruncatePtr(f.PayeeName, maxNameLen),
		PixKey:         utils.TruncatePtr(f.PixKey, maxKeyLen),
		TransferTime:   f.TransferTime,
		BankName:       utils.TruncatePtr(f.BankName, maxBankLen),
		PayerBankName:  utils.TruncatePtr(f.PayerBankName, maxBankLen),
		TransactionID:  utils.TruncatePtr(f.TransactionID, maxTxIDLen),
		Status:         utils.Truncate(string(res.Status), maxStatusLen),
		Notes:          f.Notes,
		ProcessedAt:    time.Now(),
	}
	if f.KeyType != nil {
		kt := string(*f.KeyType)
		record.KeyType = &kt
	}
	if f.TransferDate != nil {
		if d := parser.NormalizeDate(*f.TransferDate); d != nil {
			if t, err := utils.ParseYMD(d.ISO()); err == nil {
				record.TransferDate = &t
			}
		}
	}

	if audit, err := parser.MarshalAudit(res); err == nil {
		if err := parser.ValidateJSONAgainstSchema(p.schema, audit); err != nil {
			p.logger.Warn("audit record failed schema validation",
				"filename", res.SourceFilename, "error", err)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(audit, &m); err == nil {
			record.ExtractedJSON = m
		}
	}
	return record
}

// canonicalFilename strips the export timestamp suffix from the name stem.
func canonicalFilename(name string) string {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	return reTimestampSuffix.ReplaceAllString(stem, "") + ext
}
