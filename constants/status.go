package constants

// ExtractionStatus is the canonical status stamped on a merged document.
type ExtractionStatus string

// Stable values (store these exact strings in exports).
const (
	ExtractionSuccess ExtractionStatus = "success" // every page fragment usable
	ExtractionPartial ExtractionStatus = "partial" // at least one page failed
	ExtractionFailed  ExtractionStatus = "failed"  // zero usable fragments
)

// StatusForConfidence maps the successful-fragment fraction to a status.
func StatusForConfidence(score float64) ExtractionStatus {
	switch {
	case score <= 0:
		return ExtractionFailed
	case score >= 1:
		return ExtractionSuccess
	default:
		return ExtractionPartial
	}
}

// Sentinel is the export-boundary placeholder for fields no source supplied.
// In-memory absence is always a nil pointer; the literal appears only in
// flat exports.
const Sentinel = "-"

// ParseMode selects how a document's OCR pages are sent to the LLM.
type ParseMode string

const (
	ParseModeCombined   ParseMode = "combined"
	ParseModePageByPage ParseMode = "page_by_page"
)
