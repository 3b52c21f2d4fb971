// Package ocr turns scanned filing PDFs into per-page markdown text using
// the Typhoon OCR API. Pages are rasterized locally with poppler, then
// sent one at a time through a shared rate limiter.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// PageText is one page's OCR output.
type PageText struct {
	PageNumber int
	Text       string
}

// Extractor rasterizes PDFs and OCRs the page images.
type Extractor struct {
	cfg     common.OCRConfig
	client  *typhoonClient
	limiter *rate.Limiter
	runner  Runner
	logger  *slog.Logger

	pdftoppm string
	dpi      int
}

// NewExtractor builds an Extractor. The rate limiter is shared by every
// page request the extractor sends, whatever the caller's concurrency.
func NewExtractor(cfg common.OCRConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 2
	}
	return &Extractor{
		cfg:      cfg,
		client:   newTyphoonClient(cfg, logger),
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		runner:   execRunner{},
		logger:   logger,
		pdftoppm: "pdftoppm",
		dpi:      200,
	}
}

// ExtractDocument OCRs every page of a PDF, in page order.
func (e *Extractor) ExtractDocument(ctx context.Context, pdfPath string) ([]PageText, error) {
	start := time.Now()

	tmpDir, err := os.MkdirTemp("", "disclosure-ocr-*")
	if err != nil {
		return nil, common.WrapError(err, "create raster dir")
	}
	defer os.RemoveAll(tmpDir)

	images, err := e.rasterize(ctx, pdfPath, tmpDir)
	if err != nil {
		return nil, err
	}

	pages := make([]PageText, 0, len(images))
	for i, img := range images {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, common.WrapError(err, "rate limit wait")
		}
		text, err := e.client.OCRImage(ctx, img)
		if err != nil {
			return nil, common.WrapError(err, fmt.Sprintf("ocr page %d", i+1))
		}
		pages = append(pages, PageText{PageNumber: i + 1, Text: text})
	}

	e.logger.Info("ocr.doc.ok",
		"path", pdfPath,
		"pages", len(pages),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return pages, nil
}

// rasterize shells out to pdftoppm and returns page PNGs in page order.
func (e *Extractor) rasterize(ctx context.Context, pdfPath, outDir string) ([]string, error) {
	prefix := filepath.Join(outDir, "page")
	_, stderr, err := e.runner.Run(ctx, e.pdftoppm,
		"-png", "-r", fmt.Sprint(e.dpi), pdfPath, prefix)
	if err != nil {
		return nil, common.NewAppError("OCR_RASTER", strings.TrimSpace(string(stderr)), err)
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, common.WrapError(err, "glob raster pages")
	}
	if len(matches) == 0 {
		return nil, common.NewAppError("OCR_RASTER", "no pages produced", common.ErrInvalidInput)
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order
	sort.Strings(matches)
	return matches, nil
}
