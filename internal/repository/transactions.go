package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/pix-tracker/gen/ent"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
	"github.com/joseph-ayodele/pix-tracker/internal/entity"
	"github.com/joseph-ayodele/pix-tracker/internal/utils"
)

// TransactionRepository persists extraction results. The processed and
// review stores are separate tables with the same filename key; which one a
// record lands in is decided by the caller, never here.
type TransactionRepository interface {
	FindProcessed(ctx context.Context, filename string) (*entity.PixTransaction, error)
	FindReview(ctx context.Context, filename string) (*entity.PixTransaction, error)
	SaveProcessed(ctx context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error)
	SaveReview(ctx context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error)
	DeleteReview(ctx context.Context, filename string) (int, error)
	DeleteByFilename(ctx context.Context, filename string) (int, error)
	ListProcessed(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.PixTransaction, error)
	ListReview(ctx context.Context) ([]*entity.PixTransaction, error)
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{
		client: client,
		logger: logger,
	}
}

func (r *transactionRepository) FindProcessed(ctx context.Context, filename string) (*entity.PixTransaction, error) {
	rec, err := r.client.PixTransaction.Query().
		Where(pixtransaction.SourceFilename(filename)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query processed transaction", "filename", filename, "error", err)
		return nil, err
	}
	return utils.ToTransaction(rec), nil
}

func (r *transactionRepository) FindReview(ctx context.Context, filename string) (*entity.PixTransaction, error) {
	rec, err := r.client.ReviewTransaction.Query().
		Where(reviewtransaction.SourceFilename(filename)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query review transaction", "filename", filename, "error", err)
		return nil, err
	}
	return utils.ToReviewTransaction(rec), nil
}

// SaveProcessed upserts by filename: re-ingesting the same document updates
// the existing row in place rather than inserting a duplicate.
func (r *transactionRepository) SaveProcessed(ctx context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error) {
	existing, err := r.client.PixTransaction.Query().
		Where(pixtransaction.SourceFilename(tx.SourceFilename)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		upd := r.client.PixTransaction.UpdateOneID(existing.ID).
			ClearAmount().SetNillableAmount(tx.Amount).
			ClearPayerName().SetNillablePayerName(tx.PayerName).
			ClearPayeeName().SetNillablePayeeName(tx.PayeeName).
			ClearPixKey().SetNillablePixKey(tx.PixKey).
			ClearKeyType().SetNillableKeyType(tx.KeyType).
			ClearTransferDate().SetNillableTransferDate(tx.TransferDate).
			ClearTransferTime().SetNillableTransferTime(tx.TransferTime).
			ClearBankName().SetNillableBankName(tx.BankName).
			ClearPayerBankName().SetNillablePayerBankName(tx.PayerBankName).
			ClearTransactionID().SetNillableTransactionID(tx.TransactionID).
			ClearNotes().SetNillableNotes(tx.Notes).
			SetStatus(tx.Status).
			SetProcessedAt(time.Now())
		if tx.ExtractedJSON != nil {
			upd = upd.SetExtractedJSON(tx.ExtractedJSON)
		}
		rec, err := upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update processed transaction", "filename", tx.SourceFilename, "error", err)
			return nil, err
		}
		return utils.ToTransaction(rec), nil
	}

	crt := r.client.PixTransaction.Create().
		SetSourceFilename(tx.SourceFilename).
		SetNillableAmount(tx.Amount).
		SetNillablePayerName(tx.PayerName).
		SetNillablePayeeName(tx.PayeeName).
		SetNillablePixKey(tx.PixKey).
		SetNillableKeyType(tx.KeyType).
		SetNillableTransferDate(tx.TransferDate).
		SetNillableTransferTime(tx.TransferTime).
		SetNillableBankName(tx.BankName).
		SetNillablePayerBankName(tx.PayerBankName).
		SetNillableTransactionID(tx.TransactionID).
		SetNillableNotes(tx.Notes).
		SetStatus(tx.Status)
	if tx.ExtractedJSON != nil {
		crt = crt.SetExtractedJSON(tx.ExtractedJSON)
	}
	rec, err := crt.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert processed transaction", "filename", tx.SourceFilename, "error", err)
		return nil, err
	}
	return utils.ToTransaction(rec), nil
}

func (r *transactionRepository) SaveReview(ctx context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error) {
	existing, err := r.client.ReviewTransaction.Query().
		Where(reviewtransaction.SourceFilename(tx.SourceFilename)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		upd := r.client.ReviewTransaction.UpdateOneID(existing.ID).
			ClearAmount().SetNillableAmount(tx.Amount).
			ClearPayerName().SetNillablePayerName(tx.PayerName).
			ClearPayeeName().SetNillablePayeeName(tx.PayeeName).
			ClearPixKey().SetNillablePixKey(tx.PixKey).
			ClearKeyType().SetNillableKeyType(tx.KeyType).
			ClearTransferDate().SetNillableTransferDate(tx.TransferDate).
			ClearTransferTime().SetNillableTransferTime(tx.TransferTime).
			ClearBankName().SetNillableBankName(tx.BankName).
			ClearPayerBankName().SetNillablePayerBankName(tx.PayerBankName).
			ClearTransactionID().SetNillableTransactionID(tx.TransactionID).
			ClearNotes().SetNillableNotes(tx.Notes).
			ClearRawText().SetNillableRawText(tx.RawText).
			SetStatus(tx.Status).
			SetProcessedAt(time.Now())
		if tx.ExtractedJSON != nil {
			upd = upd.SetExtractedJSON(tx.ExtractedJSON)
		}
		rec, err := upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update review transaction", "filename", tx.SourceFilename, "error", err)
			return nil, err
		}
		return utils.ToReviewTransaction(rec), nil
	}

	crt := r.client.ReviewTransaction.Create().
		SetSourceFilename(tx.SourceFilename).
		SetNillableAmount(tx.Amount).
		SetNillablePayerName(tx.PayerName).
		SetNillablePayeeName(tx.PayeeName).
		SetNillablePixKey(tx.PixKey).
		SetNillableKeyType(tx.KeyType).
		SetNillableTransferDate(tx.TransferDate).
		SetNillableTransferTime(tx.TransferTime).
		SetNillableBankName(tx.BankName).
		SetNillablePayerBankName(tx.PayerBankName).
		SetNillableTransactionID(tx.TransactionID).
		SetNillableNotes(tx.Notes).
		SetNillableRawText(tx.RawText).
		SetStatus(tx.Status)
	if tx.ExtractedJSON != nil {
		crt = crt.SetExtractedJSON(tx.ExtractedJSON)
	}
	rec, err := crt.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert review transaction", "filename", tx.SourceFilename, "error", err)
		return nil, err
	}
	return utils.ToReviewTransaction(rec), nil
}

func (r *transactionRepository) DeleteReview(ctx context.Context, filename string) (int, error) {
	n, err := r.client.ReviewTransaction.Delete().
		Where(reviewtransaction.SourceFilename(filename)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete review transaction", "filename", filename, "error", err)
		return 0, err
	}
	return n, nil
}

// DeleteByFilename removes the record from both stores. Operator action
// only; extraction itself never deletes.
func (r *transactionRepository) DeleteByFilename(ctx context.Context, filename string) (int, error) {
	n1, err := r.client.PixTransaction.Delete().
		Where(pixtransaction.SourceFilename(filename)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete processed transaction", "filename", filename, "error", err)
		return 0, err
	}
	n2, err := r.DeleteReview(ctx, filename)
	if err != nil {
		return n1, err
	}
	return n1 + n2, nil
}

func (r *transactionRepository) ListProcessed(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.PixTransaction, error) {
	q := r.client.PixTransaction.Query()
	if fromDate != nil {
		q = q.Where(pixtransaction.TransferDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(pixtransaction.TransferDateLTE(*toDate))
	}
	recs, err := q.Order(pixtransaction.ByTransferDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list processed transactions", "error", err)
		return nil, err
	}

	result := make([]*entity.PixTransaction, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToTransaction(rec)
	}
	return result, nil
}

func (r *transactionRepository) ListReview(ctx context.Context) ([]*entity.PixTransaction, error) {
	recs, err := r.client.ReviewTransaction.Query().
		Order(reviewtransaction.ByProcessedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list review transactions", "error", err)
		return nil, err
	}

	result := make([]*entity.PixTransaction, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReviewTransaction(rec)
	}
	return result, nil
}
