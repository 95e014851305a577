package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // e.g., 6 is good for uniform block of text
	OEM           int // 1 = LSTM; leave 0 to use default
}

// Extractor converts uploaded document bytes into plain text.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract routes on MIME type. Images run OCR; empty text from an unreadable
// image is not an error. PDF extraction is a documented no-op and always
// returns empty text. Any other content type returns empty text. Only
// infrastructure failures (temp file, tesseract exec) return an error.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	start := time.Now()
	format := constants.MapMIMEToFormat(mimeType)
	e.logger.Debug("starting text extraction", "mime_type", mimeType, "format", format, "bytes", len(data))

	switch format {
	case constants.IMAGE:
		text, err := e.extractImage(ctx, data, mimeType)
		if err != nil {
			return "", err
		}
		e.logger.Debug("text extraction done",
			"mime_type", mimeType,
			"text_len", len(text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return text, nil
	case constants.PDF:
		// PDF text extraction is not supported; verification proceeds on an
		// empty transcript and the aggregator flags the claim accordingly.
		e.logger.Warn("pdf extraction skipped", "bytes", len(data))
		return "", nil
	default:
		e.logger.Warn("unsupported content type for extraction", "mime_type", mimeType)
		return "", nil
	}
}

func (e *Extractor) extractImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	tmp, err := os.CreateTemp("", "ci-ocr-*"+extForMIME(mimeType))
	if err != nil {
		return "", &common.UpstreamError{Stage: common.StageExtract, Cause: fmt.Errorf("create temp file: %w", err)}
	}
	path := tmp.Name()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			e.logger.Warn("failed to remove ocr temp file", "path", path, "error", rmErr)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", &common.UpstreamError{Stage: common.StageExtract, Cause: fmt.Errorf("write temp file: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return "", &common.UpstreamError{Stage: common.StageExtract, Cause: fmt.Errorf("close temp file: %w", err)}
	}

	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return "", &common.UpstreamError{Stage: common.StageExtract, Cause: err}
	}
	return Normalize(txt), nil
}

// tesseractOCR acquires one worker process for the call and releases it when
// the command exits.
func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, common.Truncate(string(errb), 512))
	}
	return string(out), nil
}

func extForMIME(mimeType string) string {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.Contains(mt, "png"):
		return ".png"
	case strings.Contains(mt, "jpeg"), strings.Contains(mt, "jpg"):
		return ".jpg"
	case strings.Contains(mt, "webp"):
		return ".webp"
	case strings.Contains(mt, "tiff"):
		return ".tiff"
	case strings.Contains(mt, "bmp"):
		return ".bmp"
	default:
		return ".img"
	}
}
