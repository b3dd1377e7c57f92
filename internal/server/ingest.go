package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pixpb "github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1"
	"github.com/joseph-ayodele/pix-tracker/internal/common"
	"github.com/joseph-ayodele/pix-tracker/internal/ingest"
	processor "github.com/joseph-ayodele/pix-tracker/internal/pipeline"
	"github.com/joseph-ayodele/pix-tracker/internal/utils"
)

type IngestionService struct {
	pixpb.UnimplementedIngestionServiceServer
	processor *processor.Processor
	workers   int
	logger    *slog.Logger
}

func NewIngestionService(proc *processor.Processor, workers int, logger *slog.Logger) *IngestionService {
	if workers <= 0 {
		workers = 4
	}
	return &IngestionService{
		processor: proc,
		workers:   workers,
		logger:    logger,
	}
}

// ProcessDocument runs one file through the pipeline synchronously and
// reports the outcome.
func (s *IngestionService) ProcessDocument(ctx context.Context, req *pixpb.ProcessDocumentRequest) (*pixpb.ProcessDocumentResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	v := common.NewValidator().Field("path", path, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid process request", "error", err)
		return nil, err
	}

	s.logger.Info("starting document processing", "path", path)
	res := s.processor.ProcessDocument(ctx, path, strings.TrimSpace(req.GetOriginalName()))
	return toPBResult(res), nil
}

func (s *IngestionService) ProcessDirectory(ctx context.Context, req *pixpb.ProcessDirectoryRequest) (*pixpb.ProcessDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("process directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	workers := int(req.GetWorkers())
	if workers <= 0 {
		workers = s.workers
	}

	s.logger.Info("starting directory processing", "root", root, "workers", workers)
	results, stats, err := ingest.ProcessDirectory(ctx, s.processor, root, workers, s.logger)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "process directory: %v", err)
	}
	s.logger.Info("directory processing completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)

	out := &pixpb.ProcessDirectoryResponse{
		Scanned:   stats.Scanned,
		Matched:   stats.Matched,
		Succeeded: stats.Succeeded,
		Skipped:   stats.Skipped,
		Failed:    stats.Failed,
		Results:   make([]*pixpb.ProcessDocumentResponse, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, toPBResult(r))
	}
	return out, nil
}

func toPBResult(r processor.FileResult) *pixpb.ProcessDocumentResponse {
	resp := &pixpb.ProcessDocumentResponse{
		Filename: r.Filename,
		Result:   string(r.Status),
		Message:  r.Message,
	}
	if r.Record != nil {
		resp.Transaction = utils.ToPBTransaction(r.Record)
	}
	return resp
}
