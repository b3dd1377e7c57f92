package processor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/joseph-ayodele/pix-tracker/constants"
	"github.com/joseph-ayodele/pix-tracker/internal/entity"
	"github.com/joseph-ayodele/pix-tracker/internal/ocr"
	"github.com/joseph-ayodele/pix-tracker/internal/parser"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, string) (ocr.ExtractionResult, error) {
	if s.err != nil {
		return ocr.ExtractionResult{}, s.err
	}
	return ocr.ExtractionResult{Text: s.text, Method: "pdf-text", Pages: 1}, nil
}

// memRepo is an in-memory TransactionRepository.
type memRepo struct {
	mu        sync.Mutex
	processed map[string]*entity.PixTransaction
	review    map[string]*entity.PixTransaction
}

func newMemRepo() *memRepo {
	return &memRepo{
		processed: map[string]*entity.PixTransaction{},
		review:    map[string]*entity.PixTransaction{},
	}
}

func (m *memRepo) FindProcessed(_ context.Context, filename string) (*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processed[filename], nil
}

func (m *memRepo) FindReview(_ context.Context, filename string) (*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.review[filename], nil
}

func (m *memRepo) SaveProcessed(_ context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed[tx.SourceFilename] = tx
	return tx, nil
}

func (m *memRepo) SaveReview(_ context.Context, tx *entity.PixTransaction) (*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.review[tx.SourceFilename] = tx
	return tx, nil
}

func (m *memRepo) DeleteReview(_ context.Context, filename string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.review[filename]; !ok {
		return 0, nil
	}
	delete(m.review, filename)
	return 1, nil
}

func (m *memRepo) DeleteByFilename(ctx context.Context, filename string) (int, error) {
	m.mu.Lock()
	n := 0
	if _, ok := m.processed[filename]; ok {
		delete(m.processed, filename)
		n++
	}
	m.mu.Unlock()
	n2, _ := m.DeleteReview(ctx, filename)
	return n + n2, nil
}

func (m *memRepo) ListProcessed(context.Context, *time.Time, *time.Time) ([]*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.PixTransaction, 0, len(m.processed))
	for _, tx := range m.processed {
		out = append(out, tx)
	}
	return out, nil
}

func (m *memRepo) ListReview(context.Context) ([]*entity.PixTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.PixTransaction, 0, len(m.review))
	for _, tx := range m.review {
		out = append(out, tx)
	}
	return out, nil
}

func newTestProcessor(cfg Config, ex TextExtractor, repo *memRepo) *Processor {
	return NewProcessor(cfg, ex, parser.NewParser(parser.GatePolicy{}, nil), repo, nil)
}

const completeReceipt = "Comprovante de transferência R$ 150,00 Data: 20/11/2023 Hora: 10:30 " +
	"Origem Nome: João da Silva Instituição NU PAGAMENTOS - IP " +
	"Destino Nome: Maria Oliveira " +
	"ID da Transação: EBC1234567890ABCDEF1234567890"

func TestProcessDocumentComplete(t *testing.T) {
	repo := newMemRepo()
	p := newTestProcessor(Config{}, stubExtractor{text: completeReceipt}, repo)

	res := p.ProcessDocument(context.Background(), "/in/recibo.pdf", "")

	if res.Status != constants.ResultSuccess {
		t.Fatalf("Status = %v (%s), want success", res.Status, res.Message)
	}
	rec := repo.processed["recibo.pdf"]
	if rec == nil {
		t.Fatal("record not in processed store")
	}
	if rec.Status != string(constants.TxStatusProcessed) {
		t.Errorf("record status = %q, want PROCESSED", rec.Status)
	}
	if rec.TransferDate == nil || rec.TransferDate.Format("2006-01-02") != "2023-11-20" {
		t.Errorf("TransferDate = %v, want 2023-11-20", rec.TransferDate)
	}
	if rec.ExtractedJSON == nil {
		t.Error("ExtractedJSON not populated")
	}
	if len(repo.review) != 0 {
		t.Errorf("review store should be empty, has %d", len(repo.review))
	}
}

func TestProcessDocumentIncompleteGoesToReview(t *testing.T) {
	repo := newMemRepo()
	p := newTestProcessor(Config{}, stubExtractor{text: "comprovante de pagamento valor R$ 50,00 em 02/02/2024 para fulano"}, repo)

	res := p.ProcessDocument(context.Background(), "/in/parcial.pdf", "")

	if res.Status != constants.ResultSuccess {
		t.Fatalf("Status = %v (%s), want success", res.Status, res.Message)
	}
	rec := repo.review["parcial.pdf"]
	if rec == nil {
		t.Fatal("record not in review store")
	}
	if rec.Status != string(constants.TxStatusManualReview) {
		t.Errorf("record status = %q, want MANUAL_REVIEW", rec.Status)
	}
	if rec.RawText == nil {
		t.Error("review record should carry the raw text")
	}
	if len(repo.processed) != 0 {
		t.Errorf("processed store should be empty, has %d", len(repo.processed))
	}
}

func TestProcessDocumentGraduatesFromReview(t *testing.T) {
	repo := newMemRepo()
	repo.review["recibo.pdf"] = &entity.PixTransaction{
		SourceFilename: "recibo.pdf",
		Status:         string(constants.TxStatusManualReview),
	}
	p := newTestProcessor(Config{ReprocessReview: true}, stubExtractor{text: completeReceipt}, repo)

	res := p.ProcessDocument(context.Background(), "/in/recibo.pdf", "")

	if res.Status != constants.ResultSuccess {
		t.Fatalf("Status = %v (%s), want success", res.Status, res.Message)
	}
	if repo.processed["recibo.pdf"] == nil {
		t.Error("record should have moved to processed store")
	}
	if repo.review["recibo.pdf"] != nil {
		t.Error("record should have left the review store")
	}
}

func TestProcessDocumentSkipsParkedReview(t *testing.T) {
	repo := newMemRepo()
	repo.review["recibo.pdf"] = &entity.PixTransaction{
		SourceFilename: "recibo.pdf",
		Status:         string(constants.TxStatusManualReview),
	}
	p := newTestProcessor(Config{}, stubExtractor{text: completeReceipt}, repo)

	res := p.ProcessDocument(context.Background(), "/in/recibo.pdf", "")

	if res.Status != constants.ResultSkipped {
		t.Fatalf("Status = %v, want skipped", res.Status)
	}
	if repo.processed["recibo.pdf"] != nil {
		t.Error("skipped file must not be written to the processed store")
	}
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	repo := newMemRepo()
	p := newTestProcessor(Config{}, stubExtractor{err: errors.New("tesseract: context deadline exceeded")}, repo)

	res := p.ProcessDocument(context.Background(), "/in/ruim.pdf", "")

	if res.Status != constants.ResultError {
		t.Fatalf("Status = %v, want error", res.Status)
	}
	rec := repo.review["ruim.pdf"]
	if rec == nil {
		t.Fatal("faulted extraction must still be recorded")
	}
	if rec.Status != string(constants.TxStatusError) {
		t.Errorf("record status = %q, want ERROR", rec.Status)
	}
	if rec.Notes == nil {
		t.Error("fault description should be in notes")
	}
}

func TestProcessDocumentUnsupportedExtension(t *testing.T) {
	repo := newMemRepo()
	p := newTestProcessor(Config{}, stubExtractor{text: completeReceipt}, repo)

	res := p.ProcessDocument(context.Background(), "/in/notas.txt", "")

	if res.Status != constants.ResultError {
		t.Fatalf("Status = %v, want error", res.Status)
	}
	if len(repo.processed)+len(repo.review) != 0 {
		t.Error("unsupported files must not touch the stores")
	}
}

func TestCanonicalFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"recibo_2025-10-15T17-40-26-123Z.pdf", "recibo.pdf"},
		{"recibo.pdf", "recibo.pdf"},
		{"Sicoob_2025-10-15_17-40-26.pdf", "Sicoob_2025-10-15_17-40-26.pdf"},
	}
	for _, tt := range tests {
		if got := canonicalFilename(tt.in); got != tt.want {
			t.Errorf("canonicalFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInflightSet(t *testing.T) {
	s := newInflightSet()
	if !s.TryAcquire("a.pdf") {
		t.Fatal("first acquire should succeed")
	}
	if s.TryAcquire("a.pdf") {
		t.Fatal("second acquire of the same file should fail")
	}
	if !s.TryAcquire("b.pdf") {
		t.Fatal("different file should be independent")
	}
	s.Release("a.pdf")
	if !s.TryAcquire("a.pdf") {
		t.Fatal("acquire after release should succeed")
	}
}

func TestProcessDocumentReingestUpdatesInPlace(t *testing.T) {
	repo := newMemRepo()
	p := newTestProcessor(Config{}, stubExtractor{text: completeReceipt}, repo)

	first := p.ProcessDocument(context.Background(), "/in/recibo.pdf", "")
	second := p.ProcessDocument(context.Background(), "/in/recibo.pdf", "")

	if first.Status != constants.ResultSuccess || second.Status != constants.ResultSuccess {
		t.Fatalf("both runs should succeed: %v, %v", first.Status, second.Status)
	}
	if len(repo.processed) != 1 {
		t.Errorf("re-ingestion must not duplicate: %d records", len(repo.processed))
	}
}
