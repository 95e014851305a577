package ocr

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// stubRunner records invocations and plays back canned output.
type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	s.calls++
	return s.stdout, s.stderr, s.err
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, slog.Default())
	e.runner = r
	return e
}

func TestExtract_ImageRunsOCR(t *testing.T) {
	r := &stubRunner{stdout: []byte("POLICY NO: HX-2231\nTotal: 540.00\n")}
	e := newTestExtractor(r)

	text, err := e.Extract(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "POLICY NO: HX-2231\nTotal: 540.00" {
		t.Errorf("unexpected text: %q", text)
	}
	if r.calls != 1 {
		t.Errorf("expected one tesseract invocation, got %d", r.calls)
	}
}

func TestExtract_BlankImageReturnsEmptyNotError(t *testing.T) {
	r := &stubRunner{stdout: []byte("  \n\n  ")}
	e := newTestExtractor(r)

	text, err := e.Extract(context.Background(), []byte{1, 2, 3}, "image/jpeg")
	if err != nil {
		t.Fatalf("blank image must not be an error, got %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestExtract_PDFAlwaysEmpty(t *testing.T) {
	r := &stubRunner{stdout: []byte("should never be used")}
	e := newTestExtractor(r)

	text, err := e.Extract(context.Background(), []byte("%PDF-1.7 lots of content"), "application/pdf")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "" {
		t.Errorf("pdf extraction must return empty text, got %q", text)
	}
	if r.calls != 0 {
		t.Errorf("pdf must not invoke OCR, got %d calls", r.calls)
	}
}

func TestExtract_UnknownMIMEEmpty(t *testing.T) {
	r := &stubRunner{}
	e := newTestExtractor(r)

	text, err := e.Extract(context.Background(), []byte("hello"), "text/plain")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "" || r.calls != 0 {
		t.Errorf("unsupported mime: text=%q calls=%d", text, r.calls)
	}
}

func TestExtract_ExecFailureRaises(t *testing.T) {
	r := &stubRunner{err: errors.New("boom"), stderr: []byte("cannot open input")}
	e := newTestExtractor(r)

	_, err := e.Extract(context.Background(), []byte{1}, "image/png")
	if err == nil {
		t.Fatal("expected infrastructure failure to surface")
	}
}

func TestNormalize(t *testing.T) {
	in := "LINE ONE\r\n\r\n\r\n\r\nLINE TWO\t\tX   Y  \n----------\nEND"
	got := Normalize(in)
	want := "LINE ONE\n\nLINE TWO X Y\n\nEND"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
