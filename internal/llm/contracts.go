package llm

import (
	"context"

	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// PageRequest is one page's OCR text handed to the parser.
type PageRequest struct {
	DocID      string
	NaccID     int
	PageNumber int
	PageType   string
	OCRText    string
}

// DocumentRequest is a whole document's OCR text, used in combined mode.
type DocumentRequest struct {
	DocID   string
	NaccID  int
	OCRText string
}

// PageParser turns one page of OCR text into a fragment.
type PageParser interface {
	ParsePage(ctx context.Context, req PageRequest) (entity.Fragment, error)
}

// DocumentParser turns a whole document's OCR text into a single fragment
// covering every section. Combined mode feeds merge with exactly this one
// fragment.
type DocumentParser interface {
	ParseDocument(ctx context.Context, req DocumentRequest) (entity.Fragment, error)
}
