package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubRunner returns canned output per binary name.
type stubRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(s.outputs[name]), nil, nil
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractPDFWithEmbeddedText(t *testing.T) {
	text := "Comprovante de transferência PIX Valor R$ 150,00 Data 20/11/2023 " +
		"Pagador João da Silva Favorecido Maria Oliveira"
	r := &stubRunner{outputs: map[string]string{"pdftotext": text}}

	res, err := newTestExtractor(r).Extract(context.Background(), "/tmp/recibo.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("Method = %q, want pdf-text", res.Method)
	}
	if !strings.Contains(res.Text, "João da Silva") {
		t.Errorf("Text lost content: %q", res.Text)
	}
	for _, c := range r.calls {
		if c == "pdftoppm" || c == "tesseract" {
			t.Errorf("rasterization ran despite good text layer: %v", r.calls)
		}
	}
	if res.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5 for a rich receipt", res.Confidence)
	}
}

func TestExtractPDFThinTextFallsBackToOCR(t *testing.T) {
	r := &stubRunner{
		outputs: map[string]string{"pdftotext": "   \n  "},
		errs:    map[string]error{"pdftoppm": errors.New("no pages")},
	}

	_, err := newTestExtractor(r).Extract(context.Background(), "/tmp/scan.pdf")
	if err == nil {
		t.Fatal("expected rasterization error to surface")
	}
	var sawPpm bool
	for _, c := range r.calls {
		if c == "pdftoppm" {
			sawPpm = true
		}
	}
	if !sawPpm {
		t.Errorf("thin text layer should trigger pdftoppm, calls: %v", r.calls)
	}
}

func TestExtractImage(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{"tesseract": "valor R$ 50,00 pix"}}

	res, err := newTestExtractor(r).Extract(context.Background(), "/tmp/recibo.jpg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "image-ocr" {
		t.Errorf("Method = %q, want image-ocr", res.Method)
	}
	if res.Language != "por" {
		t.Errorf("Language = %q, want por (default)", res.Language)
	}
	if res.Text != "valor R$ 50,00 pix" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	r := &stubRunner{}
	if _, err := newTestExtractor(r).Extract(context.Background(), "/tmp/notas.txt"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if len(r.calls) != 0 {
		t.Errorf("no binary should run for unsupported files, calls: %v", r.calls)
	}
}

func TestExtractImageTesseractFailure(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"tesseract": errors.New("exit 1")}}
	_, err := newTestExtractor(r).Extract(context.Background(), "/tmp/recibo.png")
	if err == nil {
		t.Fatal("expected tesseract failure to surface")
	}
}
