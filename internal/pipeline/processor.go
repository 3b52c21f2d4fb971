// Package pipeline drives a run end to end: OCR, fragment parsing with a
// bounded page pool, the merge barrier, then serialized normalization.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/export"
	"github.com/nacc-tools/disclosure-etl/internal/llm"
	"github.com/nacc-tools/disclosure-etl/internal/merge"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
	"github.com/nacc-tools/disclosure-etl/internal/ocr"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
	"github.com/nacc-tools/disclosure-etl/internal/worker"
)

// Processor runs the extraction stages for one document at a time. Page
// parsing fans out across the pool; everything after the merge barrier is
// single-threaded.
type Processor struct {
	cfg        common.ParseConfig
	extractor  *ocr.Extractor
	pageParser llm.PageParser
	docParser  llm.DocumentParser
	merger     *merge.Merger
	normalizer *normalize.Normalizer
	exporter   *export.Service
	reg        *registry.Registry
	logger     *slog.Logger
}

// NewProcessor wires the stages together.
func NewProcessor(
	cfg common.ParseConfig,
	extractor *ocr.Extractor,
	pageParser llm.PageParser,
	docParser llm.DocumentParser,
	merger *merge.Merger,
	normalizer *normalize.Normalizer,
	exporter *export.Service,
	reg *registry.Registry,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:        cfg,
		extractor:  extractor,
		pageParser: pageParser,
		docParser:  docParser,
		merger:     merger,
		normalizer: normalizer,
		exporter:   exporter,
		reg:        reg,
		logger:     logger,
	}
}

// pageJob parses one page inside the pool.
type pageJob struct {
	parser llm.PageParser
	req    llm.PageRequest
}

// pageResult carries the fragment out of the pool. A parse failure becomes
// a failed fragment, never a lost page: the merge confidence math needs
// every page accounted for.
type pageResult struct {
	fragment entity.Fragment
	err      error
}

func (r pageResult) GetError() error { return r.err }

func (j pageJob) Execute(ctx context.Context) worker.Result {
	frag, err := j.parser.ParsePage(ctx, j.req)
	if err != nil {
		return pageResult{
			fragment: entity.Fragment{PageNumber: j.req.PageNumber, Error: err.Error()},
			err:      fmt.Errorf("page %d: %w: %v", j.req.PageNumber, common.ErrPageExtraction, err),
		}
	}
	return pageResult{fragment: frag}
}

// ProcessDocument takes one PDF through OCR, parsing, and merge. When the
// document's canonical artifact already exists it is loaded and returned
// without re-running extraction, making re-runs idempotent.
func (p *Processor) ProcessDocument(ctx context.Context, pdfPath string) (*entity.CanonicalDocument, error) {
	docID, naccID := p.identify(pdfPath)

	if p.exporter.ArtifactExists(docID) {
		p.logger.Info("pipeline.doc.skip", "doc_id", docID, "reason", "artifact exists")
		return p.loadArtifact(docID)
	}

	pages, err := p.extractor.ExtractDocument(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("ocr %s: %w: %v", docID, common.ErrDocumentExtraction, err)
	}

	var fragments []entity.Fragment
	if p.cfg.Mode == constants.ParseModeCombined {
		fragments = p.parseCombined(ctx, docID, naccID, pages)
	} else {
		fragments = p.parsePages(ctx, docID, naccID, pages)
	}

	doc := p.merger.Merge(docID, naccID, fragments)
	if _, err := p.exporter.WriteCanonicalJSON(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseCombined sends the whole document in one request. The single
// fragment means confidence is all or nothing.
func (p *Processor) parseCombined(ctx context.Context, docID string, naccID int, pages []ocr.PageText) []entity.Fragment {
	texts := make([]string, 0, len(pages))
	for _, pg := range pages {
		texts = append(texts, pg.Text)
	}
	frag, err := p.docParser.ParseDocument(ctx, llm.DocumentRequest{
		DocID:   docID,
		NaccID:  naccID,
		OCRText: strings.Join(texts, "\n\n"),
	})
	if err != nil {
		p.logger.Error("pipeline.doc.parse_failed", "doc_id", docID,
			"error", fmt.Errorf("%w: %v", common.ErrDocumentExtraction, err))
		return []entity.Fragment{{PageNumber: 1, Error: err.Error()}}
	}
	return []entity.Fragment{frag}
}

// parsePages fans pages across the pool and reassembles fragments in page
// order at the barrier.
func (p *Processor) parsePages(ctx context.Context, docID string, naccID int, pages []ocr.PageText) []entity.Fragment {
	pool := worker.NewSizedPool(ctx, p.cfg.PageWorkers, len(pages))
	pool.Start()
	for _, pg := range pages {
		pool.Submit(pageJob{parser: p.pageParser, req: llm.PageRequest{
			DocID:      docID,
			NaccID:     naccID,
			PageNumber: pg.PageNumber,
			OCRText:    pg.Text,
		}})
	}

	results := pool.Wait()
	fragments := make([]entity.Fragment, 0, len(results))
	for _, res := range results {
		pr := res.(pageResult)
		if pr.err != nil {
			p.logger.Warn("pipeline.page.failed", "doc_id", docID, "error", pr.err)
		}
		fragments = append(fragments, pr.fragment)
	}
	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].PageNumber < fragments[j].PageNumber
	})
	return fragments
}

// identify resolves a file to its registry identity. Files the registry
// does not know keep their filename stem as doc_id so their artifacts are
// still traceable.
func (p *Processor) identify(pdfPath string) (string, int) {
	base := filepath.Base(pdfPath)
	if info := p.reg.DocByLocation(base); info != nil {
		return info.DocID, info.NaccID
	}
	p.logger.Warn("pipeline.doc.unregistered", "file", base, "error", common.ErrReferenceMiss)
	return strings.TrimSuffix(base, filepath.Ext(base)), 0
}

func (p *Processor) loadArtifact(docID string) (*entity.CanonicalDocument, error) {
	data, err := os.ReadFile(p.exporter.ArtifactPath(docID))
	if err != nil {
		return nil, common.WrapError(err, "read artifact "+docID)
	}
	var doc entity.CanonicalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(err, "decode artifact "+docID)
	}
	return &doc, nil
}
