package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pixpb "github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1"
	"github.com/joseph-ayodele/pix-tracker/internal/common"
	"github.com/joseph-ayodele/pix-tracker/internal/repository"
	"github.com/joseph-ayodele/pix-tracker/internal/utils"
)

func maxLen(n int) common.ValidationRule {
	return func(fieldName string, value interface{}) *common.ValidationError {
		return common.MaxLength(fieldName, value, n)
	}
}

type TransactionService struct {
	pixpb.UnimplementedTransactionsServiceServer
	repo   repository.TransactionRepository
	logger *slog.Logger
}

func NewTransactionService(repo repository.TransactionRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TransactionService) ListTransactions(ctx context.Context, req *pixpb.ListTransactionsRequest) (*pixpb.ListTransactionsResponse, error) {
	v := common.NewValidator()
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		v.Field("from_date", fd, common.DateISO)
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		v.Field("to_date", td, common.DateISO)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid list request", "error", err)
		return nil, err
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, _ := utils.ParseYMD(fd)
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, _ := utils.ParseYMD(td)
		toDate = &to
	}

	s.logger.Info("listing transactions", "from_date", fromDate, "to_date", toDate)
	recs, err := s.repo.ListProcessed(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, status.Errorf(codes.Internal, "list transactions: %v", err)
	}
	s.logger.Info("transactions listed successfully", "count", len(recs))

	out := make([]*pixpb.Transaction, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBTransaction(r))
	}
	return &pixpb.ListTransactionsResponse{Transactions: out}, nil
}

func (s *TransactionService) ListReviewTransactions(ctx context.Context, _ *pixpb.ListReviewTransactionsRequest) (*pixpb.ListReviewTransactionsResponse, error) {
	recs, err := s.repo.ListReview(ctx)
	if err != nil {
		s.logger.Error("failed to list review queue", "error", err)
		return nil, status.Errorf(codes.Internal, "list review queue: %v", err)
	}
	s.logger.Info("review queue listed", "count", len(recs))

	out := make([]*pixpb.Transaction, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBTransaction(r))
	}
	return &pixpb.ListReviewTransactionsResponse{Transactions: out}, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, req *pixpb.DeleteTransactionRequest) (*pixpb.DeleteTransactionResponse, error) {
	filename := strings.TrimSpace(req.GetSourceFilename())
	v := common.NewValidator().Field("source_filename", filename, common.Required, maxLen(500))
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid delete request", "error", err)
		return nil, err
	}

	deleted, err := s.repo.DeleteByFilename(ctx, filename)
	if err != nil {
		s.logger.Error("failed to delete transaction", "source_filename", filename, "error", err)
		return nil, status.Errorf(codes.Internal, "delete transaction: %v", err)
	}
	if deleted == 0 {
		return nil, status.Error(codes.NotFound, "no transaction with that source_filename")
	}
	s.logger.Info("transaction deleted", "source_filename", filename, "rows", deleted)
	return &pixpb.DeleteTransactionResponse{Deleted: int32(deleted)}, nil
}
