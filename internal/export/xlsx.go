package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

// WriteSummaryXLSX renders the full workbook: the summary sheet first, one
// sheet per relational table, and the per-filing roll-up last. Returns the
// written path.
func (s *Service) WriteSummaryXLSX(t *normalize.Tables, aggs []aggregate.DocumentAggregate) (string, error) {
	start := time.Now()

	f := excelize.NewFile()

	specs := tableSpecs(t)
	// summary leads the workbook; it is the last spec in table order
	ordered := make([]tableSpec, 0, len(specs))
	ordered = append(ordered, specs[len(specs)-1])
	ordered = append(ordered, specs[:len(specs)-1]...)

	if err := renameDefaultSheet(f, ordered[0].table); err != nil {
		return "", err
	}
	for _, spec := range ordered[1:] {
		if _, err := f.NewSheet(spec.table); err != nil {
			return "", err
		}
	}

	for _, spec := range ordered {
		if err := writeSheet(f, spec.table, spec.header, spec.rows); err != nil {
			return "", err
		}
	}

	const aggSheet = "aggregate"
	if _, err := f.NewSheet(aggSheet); err != nil {
		return "", err
	}
	aggRows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		aggRows = append(aggRows, aggregateRow(a))
	}
	if err := writeSheet(f, aggSheet, aggregateHeader, aggRows); err != nil {
		return "", err
	}

	// Widen the identity columns on the summary sheet
	_ = f.SetColWidth(ordered[0].table, "B", "B", 16)
	_ = f.SetColWidth(ordered[0].table, "C", "G", 22)

	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", common.WrapError(err, "create output dir")
	}
	path := filepath.Join(s.outDir, fmt.Sprintf("%s_summary.xlsx", s.prefix))
	if err := f.SaveAs(path); err != nil {
		return "", common.WrapError(err, "xlsx write")
	}

	s.logger.Info("export.xlsx.ok",
		"path", path,
		"sheets", len(ordered)+1,
		"rows", len(t.Summaries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	def := f.GetSheetName(0)
	if def == name {
		return nil
	}
	return f.SetSheetName(def, name)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
