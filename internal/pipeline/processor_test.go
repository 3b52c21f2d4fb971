package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/llm"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
)

type failingPageParser struct{}

func (failingPageParser) ParsePage(ctx context.Context, req llm.PageRequest) (entity.Fragment, error) {
	return entity.Fragment{}, errors.New("upstream refused")
}

func TestPageJobMarksExtractionFailure(t *testing.T) {
	job := pageJob{parser: failingPageParser{}, req: llm.PageRequest{DocID: "D1", PageNumber: 3}}

	res := job.Execute(context.Background())
	pr, ok := res.(pageResult)
	require.True(t, ok)

	require.Error(t, pr.GetError())
	assert.True(t, errors.Is(pr.err, common.ErrPageExtraction))

	// the page is never lost: a failed parse still yields a marker fragment
	assert.Equal(t, 3, pr.fragment.PageNumber)
	assert.NotEmpty(t, pr.fragment.Error)
}

func TestIdentifyFallsBackToFilenameStem(t *testing.T) {
	reg := registry.New(nil)
	reg.AddDoc(registry.DocInfo{DocID: "D7", NaccID: 700, DocLocationURL: "filing_700.pdf"})

	p := NewProcessor(common.ParseConfig{}, nil, nil, nil, nil, nil, nil, reg, nil)

	docID, naccID := p.identify("/input/filing_700.pdf")
	assert.Equal(t, "D7", docID)
	assert.Equal(t, 700, naccID)

	docID, naccID = p.identify("/input/unknown_filing.pdf")
	assert.Equal(t, "unknown_filing", docID)
	assert.Zero(t, naccID)
}
