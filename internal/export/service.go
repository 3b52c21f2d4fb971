// Package export renders the normalized tables to their delivery formats:
// one CSV per table, a canonical JSON artifact per document, and an XLSX
// summary workbook. The "-" placeholder for absent values exists only
// here; upstream packages keep optionals as nil pointers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

// Service writes export artifacts under OutputDir, naming table CSVs
// <prefix>_<table>.csv.
type Service struct {
	prefix string
	outDir string
	logger *slog.Logger
}

// NewService builds an export Service.
func NewService(prefix, outDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{prefix: prefix, outDir: outDir, logger: logger}
}

// ArtifactPath is where the canonical JSON for a document lands.
func (s *Service) ArtifactPath(docID string) string {
	return filepath.Join(s.outDir, "json", docID+".json")
}

// ArtifactExists reports whether a document's canonical JSON already exists.
// Runs skip documents whose artifact is present.
func (s *Service) ArtifactExists(docID string) bool {
	_, err := os.Stat(s.ArtifactPath(docID))
	return err == nil
}

// WriteCanonicalJSON persists the merged document as its run artifact.
func (s *Service) WriteCanonicalJSON(doc *entity.CanonicalDocument) (string, error) {
	path := s.ArtifactPath(doc.DocID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", common.WrapError(err, "create artifact dir")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", common.WrapError(err, "marshal canonical document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", common.WrapError(err, "write canonical document")
	}
	s.logger.Info("export.json.ok", "doc_id", doc.DocID, "path", path)
	return path, nil
}

// WriteCSVs renders every table to its CSV file.
func (s *Service) WriteCSVs(t *normalize.Tables) error {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return common.WrapError(err, "create output dir")
	}

	specs := tableSpecs(t)
	for _, f := range specs {
		path := filepath.Join(s.outDir, fmt.Sprintf("%s_%s.csv", s.prefix, f.table))
		if err := writeCSV(path, f.header, f.rows); err != nil {
			return common.WrapError(err, "write "+f.table)
		}
	}

	s.logger.Info("export.csv.ok", "dir", s.outDir, "tables", len(specs))
	return nil
}

// tableSpec pairs one table's header with its rendered rows. The CSV and
// XLSX writers share the same specs so their columns cannot drift apart.
type tableSpec struct {
	table  string
	header []string
	rows   [][]string
}

func tableSpecs(t *normalize.Tables) []tableSpec {
	return []tableSpec{
		{"submitter_info", submitterHeader, submitterRows(t.SubmitterInfos)},
		{"submitter_position", positionHeader("submitter_id"), positionRows(t.SubmitterPositions)},
		{"submitter_old_name", oldNameHeader("submitter_id"), oldNameRows(t.SubmitterOldNames)},
		{"spouse_info", spouseHeader, spouseRows(t.SpouseInfos)},
		{"spouse_position", positionHeader("spouse_id"), positionRows(t.SpousePositions)},
		{"spouse_old_name", oldNameHeader("spouse_id"), oldNameRows(t.SpouseOldNames)},
		{"relative_info", relativeHeader, relativeRows(t.RelativeInfos)},
		{"statement", statementHeader, statementRows(t.Statements)},
		{"statement_detail", statementDetailHeader, statementDetailRows(t.StatementDetails)},
		{"asset", assetHeader, assetRows(t.Assets)},
		{"asset_land_info", landHeader, landRows(t.LandInfos)},
		{"asset_building_info", buildingHeader, buildingRows(t.BuildingInfos)},
		{"asset_vehicle_info", vehicleHeader, vehicleRows(t.VehicleInfos)},
		{"asset_other_asset_info", otherHeader, otherRows(t.OtherInfos)},
		{"summary", summaryHeader, summaryRows(t.Summaries)},
	}
}

// WriteAggregatesCSV renders the per-filing roll-up.
func (s *Service) WriteAggregatesCSV(aggs []aggregate.DocumentAggregate) error {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return common.WrapError(err, "create output dir")
	}
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, aggregateRow(a))
	}
	path := filepath.Join(s.outDir, fmt.Sprintf("%s_aggregate.csv", s.prefix))
	if err := writeCSV(path, aggregateHeader, rows); err != nil {
		return common.WrapError(err, "write aggregate")
	}
	s.logger.Info("export.aggregate.ok", "path", path, "rows", len(rows))
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Cell renderers. Absent values become the placeholder; booleans become 1/0.

func strCell(s string) string {
	if s == "" {
		return constants.Sentinel
	}
	return s
}

func strPtrCell(s *string) string {
	if s == nil || *s == "" {
		return constants.Sentinel
	}
	return *s
}

func intPtrCell(i *int) string {
	if i == nil {
		return constants.Sentinel
	}
	return strconv.Itoa(*i)
}

func floatPtrCell(f *float64) string {
	if f == nil {
		return constants.Sentinel
	}
	return formatFloat(*f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
