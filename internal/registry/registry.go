// Package registry loads the externally supplied reference registries:
// document info, NACC filing details, and the submitter roster. Registry
// values are authoritative: extraction can misread identifiers, the
// registry cannot. Normalization overrides extracted doc_id/nacc_id
// with registry values whenever a row matches.
package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// DocInfo is one row of the document registry, keyed by source filename.
type DocInfo struct {
	DocID          string
	NaccID         int
	DocLocationURL string
	TypeID         int
}

// NaccDetail is one row of the filing-detail registry, keyed by nacc_id.
type NaccDetail struct {
	NaccID        int
	Title         string
	FirstName     string
	LastName      string
	Position      string
	SubmittedDate string
}

// SubmitterRecord is one row of the submitter registry.
type SubmitterRecord struct {
	SubmitterID   int
	Title         string
	FirstName     string
	LastName      string
	Position      string
	SubmittedDate string
}

// Registry holds the three reference tables. Docs preserves input-file
// order; that order drives the ordering of every export.
type Registry struct {
	Docs       []DocInfo
	Details    []NaccDetail
	Submitters []SubmitterRecord

	docByURL     map[string]int
	detailByNacc map[int]int
	logger       *slog.Logger
}

// New builds an empty registry.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		docByURL:     make(map[string]int),
		detailByNacc: make(map[int]int),
		logger:       logger,
	}
}

// Load reads the three registry CSVs from dir. Missing files are tolerated:
// lookups against an absent table fall through the precedence chain.
func Load(dir string, logger *slog.Logger) (*Registry, error) {
	r := New(logger)

	if err := r.loadDocs(filepath.Join(dir, "doc_info.csv")); err != nil {
		return nil, common.WrapError(err, "load doc registry")
	}
	if err := r.loadDetails(filepath.Join(dir, "nacc_detail.csv")); err != nil {
		return nil, common.WrapError(err, "load detail registry")
	}
	if err := r.loadSubmitters(filepath.Join(dir, "submitter.csv")); err != nil {
		return nil, common.WrapError(err, "load submitter registry")
	}

	r.logger.Info("registry.load.ok",
		"docs", len(r.Docs), "details", len(r.Details), "submitters", len(r.Submitters))
	return r, nil
}

// AddDoc appends a document row and indexes it by location.
func (r *Registry) AddDoc(d DocInfo) {
	r.Docs = append(r.Docs, d)
	r.docByURL[d.DocLocationURL] = len(r.Docs) - 1
}

// AddDetail appends a filing-detail row and indexes it by nacc_id.
func (r *Registry) AddDetail(d NaccDetail) {
	r.Details = append(r.Details, d)
	r.detailByNacc[d.NaccID] = len(r.Details) - 1
}

// AddSubmitter appends a submitter row.
func (r *Registry) AddSubmitter(s SubmitterRecord) {
	r.Submitters = append(r.Submitters, s)
}

// DocOrdinal returns a source filename's position in doc_info input order,
// or -1 when unregistered. Export rows follow this order.
func (r *Registry) DocOrdinal(url string) int {
	if i, ok := r.docByURL[url]; ok {
		return i
	}
	return -1
}

// DocByLocation returns the registry row for a source filename, or nil.
func (r *Registry) DocByLocation(url string) *DocInfo {
	if i, ok := r.docByURL[url]; ok {
		return &r.Docs[i]
	}
	return nil
}

// DetailByNaccID returns the detail registry row for a nacc_id, or nil.
func (r *Registry) DetailByNaccID(naccID int) *NaccDetail {
	if i, ok := r.detailByNacc[naccID]; ok {
		return &r.Details[i]
	}
	return nil
}

// FindSubmitter matches a submitter registry row by name. An exact
// (first, last) match wins; when none exists it falls back to the first row
// sharing the first name. The fallback can mislink people who share a first
// name; it is kept to match the established registry semantics.
func (r *Registry) FindSubmitter(firstName, lastName string) *SubmitterRecord {
	if firstName == "" {
		return nil
	}
	for i := range r.Submitters {
		if r.Submitters[i].FirstName == firstName && r.Submitters[i].LastName == lastName {
			return &r.Submitters[i]
		}
	}
	for i := range r.Submitters {
		if r.Submitters[i].FirstName == firstName {
			return &r.Submitters[i]
		}
	}
	return nil
}

func (r *Registry) loadDocs(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("registry.docs.missing", "path", path)
			return nil
		}
		return err
	}
	for _, row := range rows {
		r.AddDoc(DocInfo{
			DocID:          row["doc_id"],
			NaccID:         atoi(row["nacc_id"]),
			DocLocationURL: row["doc_location_url"],
			TypeID:         atoi(row["type_id"]),
		})
	}
	return nil
}

func (r *Registry) loadDetails(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("registry.details.missing", "path", path)
			return nil
		}
		return err
	}
	for _, row := range rows {
		r.AddDetail(NaccDetail{
			NaccID:        atoi(row["nacc_id"]),
			Title:         row["title"],
			FirstName:     row["first_name"],
			LastName:      row["last_name"],
			Position:      row["position"],
			SubmittedDate: row["submitted_date"],
		})
	}
	return nil
}

func (r *Registry) loadSubmitters(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("registry.submitters.missing", "path", path)
			return nil
		}
		return err
	}
	for _, row := range rows {
		r.AddSubmitter(SubmitterRecord{
			SubmitterID:   atoi(row["submitter_id"]),
			Title:         row["title"],
			FirstName:     row["first_name"],
			LastName:      row["last_name"],
			Position:      row["position"],
			SubmittedDate: row["submitted_date"],
		})
	}
	return nil
}

// readCSV reads a header-keyed CSV preserving row order. Registry files come
// from spreadsheet exports, so a UTF-8 BOM on the header is stripped.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
