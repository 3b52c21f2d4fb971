// Package merge reconciles ordered per-page fragments into one canonical
// document per filing.
package merge

import (
	"log/slog"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// Merger folds page fragments into a canonical document.
type Merger struct {
	logger *slog.Logger
}

// NewMerger builds a Merger.
func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger}
}

// Merge combines fragments (in page order) into one canonical document.
//
// A fragment carrying an error marker counts against confidence but is
// excluded from merging. Empty input yields a failed document with
// confidence 0 and empty fields.
func (m *Merger) Merge(docID string, naccID int, fragments []entity.Fragment) *entity.CanonicalDocument {
	doc := &entity.CanonicalDocument{
		DocID:            docID,
		NaccID:           naccID,
		Relatives:        []entity.Relative{},
		Statements:       []entity.Statement{},
		StatementDetails: []entity.StatementDetail{},
		Assets:           []entity.Asset{},
	}

	successful := 0
	for i := range fragments {
		frag := &fragments[i]
		if frag.Failed() {
			m.logger.Warn("merge.page.failed", "doc_id", docID, "page", frag.PageNumber, "error", frag.Error)
			continue
		}
		successful++

		doc.SubmitterInfo = mergeSubmitter(doc.SubmitterInfo, frag.SubmitterInfo)
		doc.SpouseInfo = mergeSpouse(doc.SpouseInfo, frag.SpouseInfo)
		doc.Relatives = append(doc.Relatives, frag.Relatives...)
		doc.Statements = append(doc.Statements, frag.Statements...)
		doc.StatementDetails = append(doc.StatementDetails, frag.StatementDetails...)
		doc.Assets = append(doc.Assets, frag.Assets...)
	}

	doc.Relatives = dedupeRelatives(doc.Relatives)
	doc.Statements = dedupeStatements(doc.Statements)

	// Fresh 1-based indices after merge/dedup; per-page indices are discarded.
	for i := range doc.Assets {
		idx := i + 1
		doc.Assets[i].Index = &idx
	}
	for i := range doc.Relatives {
		idx := i + 1
		doc.Relatives[i].Index = &idx
	}

	if total := len(fragments); total > 0 {
		doc.ConfidenceScore = float64(successful) / float64(total)
	}
	doc.ExtractionStatus = constants.StatusForConfidence(doc.ConfidenceScore)

	m.logger.Info("merge.doc.ok",
		"doc_id", docID,
		"pages", len(fragments),
		"successful", successful,
		"status", string(doc.ExtractionStatus),
		"assets", len(doc.Assets),
		"relatives", len(doc.Relatives),
	)
	return doc
}

// mergeSubmitter merges field-by-field: a field already set in the
// accumulator is kept, a newly seen value fills a previously empty field,
// and list-valued sub-fields are concatenated, never overwritten.
func mergeSubmitter(acc, next *entity.SubmitterInfo) *entity.SubmitterInfo {
	if next == nil {
		return acc
	}
	if acc == nil {
		cp := *next
		return &cp
	}
	fillStr(&acc.Title, next.Title)
	fillStr(&acc.FirstName, next.FirstName)
	fillStr(&acc.LastName, next.LastName)
	fillInt(&acc.Age, next.Age)
	fillStr(&acc.MaritalStatus, next.MaritalStatus)
	fillInt(&acc.StatusDate, next.StatusDate)
	fillInt(&acc.StatusMonth, next.StatusMonth)
	fillInt(&acc.StatusYear, next.StatusYear)
	fillStr(&acc.SubDistrict, next.SubDistrict)
	fillStr(&acc.District, next.District)
	fillStr(&acc.Province, next.Province)
	fillStr(&acc.PostCode, next.PostCode)
	fillStr(&acc.PhoneNumber, next.PhoneNumber)
	fillStr(&acc.MobileNumber, next.MobileNumber)
	fillStr(&acc.Email, next.Email)
	acc.Positions = append(acc.Positions, next.Positions...)
	acc.OldNames = append(acc.OldNames, next.OldNames...)
	return acc
}

func mergeSpouse(acc, next *entity.SpouseInfo) *entity.SpouseInfo {
	if next == nil {
		return acc
	}
	if acc == nil {
		cp := *next
		return &cp
	}
	fillStr(&acc.Title, next.Title)
	fillStr(&acc.FirstName, next.FirstName)
	fillStr(&acc.LastName, next.LastName)
	fillStr(&acc.TitleEN, next.TitleEN)
	fillStr(&acc.FirstNameEN, next.FirstNameEN)
	fillStr(&acc.LastNameEN, next.LastNameEN)
	fillInt(&acc.Age, next.Age)
	fillStr(&acc.Status, next.Status)
	fillInt(&acc.StatusDate, next.StatusDate)
	fillInt(&acc.StatusMonth, next.StatusMonth)
	fillInt(&acc.StatusYear, next.StatusYear)
	fillStr(&acc.SubDistrict, next.SubDistrict)
	fillStr(&acc.District, next.District)
	fillStr(&acc.Province, next.Province)
	fillStr(&acc.PostCode, next.PostCode)
	fillStr(&acc.PhoneNumber, next.PhoneNumber)
	fillStr(&acc.MobileNumber, next.MobileNumber)
	fillStr(&acc.Email, next.Email)
	acc.Positions = append(acc.Positions, next.Positions...)
	acc.OldNames = append(acc.OldNames, next.OldNames...)
	return acc
}

// dedupeRelatives collapses relatives sharing (first, last, relationship);
// the first occurrence wins.
func dedupeRelatives(relatives []entity.Relative) []entity.Relative {
	type key struct {
		first, last string
		rel         int
	}
	seen := make(map[key]struct{}, len(relatives))
	out := relatives[:0]
	for _, r := range relatives {
		k := key{strDeref(r.FirstName), strDeref(r.LastName), intDeref(r.RelationshipID)}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// dedupeStatements collapses statements sharing statement_type_id, keeping
// the record with strictly more populated fields. Ties keep the first
// occurrence, and the first occurrence also fixes the output position.
func dedupeStatements(statements []entity.Statement) []entity.Statement {
	pos := make(map[int]int, len(statements))
	var out []entity.Statement
	for _, s := range statements {
		typeID := intDeref(s.StatementTypeID)
		if i, ok := pos[typeID]; ok {
			if populated(s) > populated(out[i]) {
				out[i] = s
			}
			continue
		}
		pos[typeID] = len(out)
		out = append(out, s)
	}
	if out == nil {
		out = []entity.Statement{}
	}
	return out
}

func populated(s entity.Statement) int {
	n := 0
	if s.StatementTypeID != nil {
		n++
	}
	if s.ValuationSubmitter != nil {
		n++
	}
	if s.ValuationSpouse != nil {
		n++
	}
	if s.ValuationChild != nil {
		n++
	}
	return n
}

func fillStr(dst **string, src *string) {
	if *dst == nil || **dst == "" {
		if src != nil && *src != "" {
			*dst = src
		}
	}
}

func fillInt(dst **int, src *int) {
	if *dst == nil && src != nil {
		*dst = src
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
