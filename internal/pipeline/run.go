package pipeline

import (
	"context"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/ingest"
	"github.com/nacc-tools/disclosure-etl/internal/store"
	"github.com/nacc-tools/disclosure-etl/internal/worker"
)

// docJob extracts one filing inside the document pool. Each job spins up
// its own page pool, so the two widths nest.
type docJob struct {
	proc   *Processor
	index  int
	filing ingest.Filing
}

// docResult carries the merged document back to the single consumer.
type docResult struct {
	index  int
	filing ingest.Filing
	doc    *entity.CanonicalDocument
	err    error
}

func (r docResult) GetError() error { return r.err }

func (j docJob) Execute(ctx context.Context) worker.Result {
	doc, err := j.proc.ProcessDocument(ctx, j.filing.Path)
	return docResult{index: j.index, filing: j.filing, doc: doc, err: err}
}

// Run processes every PDF under inputDir. Extraction fans out across the
// document pool; normalization happens afterwards on this goroutine only,
// in discovery order, because the sequence counters and accumulators have
// exactly one writer. A failed document is logged and skipped; it never
// aborts the run.
func (p *Processor) Run(ctx context.Context, inputDir string) error {
	start := time.Now()

	filings, _, err := ingest.DiscoverFilings(inputDir, p.reg, p.logger)
	if err != nil {
		return err
	}
	p.logger.Info("pipeline.run.start", "input_dir", inputDir, "files", len(filings), "mode", string(p.cfg.Mode))

	pool := worker.NewSizedPool(ctx, p.cfg.DocWorkers, len(filings))
	pool.Start()
	for i, f := range filings {
		pool.Submit(docJob{proc: p, index: i, filing: f})
	}
	results := pool.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	docs := make([]docResult, 0, len(results))
	for _, res := range results {
		docs = append(docs, res.(docResult))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].index < docs[j].index })

	processed, failed := 0, 0
	for _, r := range docs {
		if r.err != nil {
			p.logger.Error("pipeline.doc.failed", "file", filepath.Base(r.filing.Path), "error", r.err)
			failed++
			continue
		}
		if _, err := p.normalizer.Process(r.doc, r.filing.Info, nil); err != nil {
			p.logger.Error("pipeline.doc.normalize_failed", "doc_id", r.doc.DocID, "error", err)
			failed++
			continue
		}
		processed++
	}

	p.logger.Info("pipeline.run.ok",
		"processed", processed,
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Finalize persists the accumulated tables, cross-checks the roll-up
// against the store's SQL, and writes every export artifact.
func (p *Processor) Finalize(ctx context.Context, st *store.Store) error {
	tables := &p.normalizer.Tables

	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.InsertTables(ctx, tables); err != nil {
		return err
	}

	aggs := aggregate.NewAggregator(p.logger).Aggregate(tables)
	sqlAggs, err := st.AggregateByNacc(ctx)
	if err != nil {
		return err
	}
	if !aggregatesMatch(aggs, sqlAggs) {
		p.logger.Error("pipeline.aggregate.mismatch",
			"in_memory", len(aggs), "sql", len(sqlAggs))
		return common.NewAppError("AGG_MISMATCH", "in-memory and sql roll-ups disagree", common.ErrInternal)
	}
	p.logger.Info("pipeline.aggregate.crosscheck_ok", "filings", len(aggs))

	if err := p.exporter.WriteCSVs(tables); err != nil {
		return err
	}
	if err := p.exporter.WriteAggregatesCSV(aggs); err != nil {
		return err
	}
	if _, err := p.exporter.WriteSummaryXLSX(tables, aggs); err != nil {
		return err
	}
	return nil
}

// aggregatesMatch compares the two roll-up paths. Counts must be exact;
// valuation totals get a small epsilon since SQL may sum in a different
// order.
func aggregatesMatch(a, b []aggregate.DocumentAggregate) bool {
	if len(a) != len(b) {
		return false
	}
	const eps = 1e-6
	for i := range a {
		x, y := a[i], b[i]
		if x.NaccID != y.NaccID || x.DocID != y.DocID ||
			x.AssetCount != y.AssetCount || x.LandCount != y.LandCount ||
			x.BuildingCount != y.BuildingCount || x.VehicleCount != y.VehicleCount ||
			x.OtherCount != y.OtherCount || x.RelativeCount != y.RelativeCount ||
			x.HasDeceasedRelative != y.HasDeceasedRelative {
			return false
		}
		if math.Abs(x.LandValuation-y.LandValuation) > eps ||
			math.Abs(x.BuildingValuation-y.BuildingValuation) > eps ||
			math.Abs(x.VehicleValuation-y.VehicleValuation) > eps ||
			math.Abs(x.OtherValuation-y.OtherValuation) > eps ||
			math.Abs(x.TotalValuationSubmitter-y.TotalValuationSubmitter) > eps ||
			math.Abs(x.TotalValuationSpouse-y.TotalValuationSpouse) > eps ||
			math.Abs(x.TotalValuationChild-y.TotalValuationChild) > eps ||
			math.Abs(x.OwnedSubmitterValuation-y.OwnedSubmitterValuation) > eps ||
			math.Abs(x.OwnedSpouseValuation-y.OwnedSpouseValuation) > eps ||
			math.Abs(x.OwnedChildValuation-y.OwnedChildValuation) > eps {
			return false
		}
	}
	return true
}
