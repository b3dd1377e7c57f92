package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pixpb "github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1"
	"github.com/joseph-ayodele/pix-tracker/internal/export"
)

type ExportServer struct {
	pixpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportTransactions(ctx context.Context, req *pixpb.ExportTransactionsRequest) (*pixpb.ExportTransactionsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportTransactionsXLSX(ctx, fromPtr, toPtr, req.GetIncludeReview())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &pixpb.ExportTransactionsResponse{Xlsx: xlsx}, nil
}
