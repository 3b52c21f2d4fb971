package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVsRendersPlaceholders(t *testing.T) {
	dir := t.TempDir()
	svc := NewService("Output", dir, nil)

	tables := &normalize.Tables{
		SubmitterInfos: []entity.SubmitterRow{{
			SubmitterID: 1, NaccID: 100, DocID: "D1",
			FirstName: strp("สมชาย"), Age: intp(52),
			LatestSubmittedDate: "2026-03-15",
		}},
		LandInfos: []entity.LandInfoRow{{
			AssetID: 1, NaccID: 100, LandNumber: "114172",
			LatestSubmittedDate: "2026-03-15",
		}},
	}

	require.NoError(t, svc.WriteCSVs(tables))

	rows := readCSVFile(t, filepath.Join(dir, "Output_submitter_info.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "submitter_id", rows[0][0])

	data := rows[1]
	assert.Equal(t, "1", data[0])
	assert.Equal(t, "D1", data[2])
	assert.Equal(t, "-", data[3]) // title absent
	assert.Equal(t, "สมชาย", data[4])
	assert.Equal(t, "52", data[6])

	land := readCSVFile(t, filepath.Join(dir, "Output_asset_land_info.csv"))
	require.Len(t, land, 2)
	assert.Equal(t, "114172", land[1][3])
	assert.Equal(t, "-", land[1][2]) // land_type empty

	// every table file exists even when its slice is empty
	empty := readCSVFile(t, filepath.Join(dir, "Output_asset_vehicle_info.csv"))
	require.Len(t, empty, 1)
}

func TestWriteAggregatesCSV(t *testing.T) {
	dir := t.TempDir()
	svc := NewService("Output", dir, nil)

	aggs := []aggregate.DocumentAggregate{{
		NaccID: 100, DocID: "D1", AssetCount: 2, LandCount: 1, VehicleCount: 1,
		RelativeCount: 2, LandValuation: 900000, VehicleValuation: 600000.5,
		TotalValuationSubmitter: 1500.5, OwnedSubmitterValuation: 1500000.5,
		HasDeceasedRelative: true,
	}}
	require.NoError(t, svc.WriteAggregatesCSV(aggs))

	rows := readCSVFile(t, filepath.Join(dir, "Output_aggregate.csv"))
	require.Len(t, rows, 2)
	header, data := rows[0], rows[1]
	assert.Equal(t, "100", data[0])
	assert.Equal(t, "900000", data[8])
	assert.Equal(t, "land_valuation", header[8])
	assert.Equal(t, "1500.5", data[12])
	assert.Equal(t, "total_valuation_submitter", header[12])
	assert.Equal(t, "1500000.5", data[15])
	assert.Equal(t, "1", data[18])
	assert.Equal(t, "has_deceased_relative", header[18])
}

func TestCanonicalJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewService("Output", dir, nil)

	doc := &entity.CanonicalDocument{DocID: "D1", NaccID: 100, ConfidenceScore: 1.0}

	assert.False(t, svc.ArtifactExists("D1"))
	path, err := svc.WriteCanonicalJSON(doc)
	require.NoError(t, err)
	assert.True(t, svc.ArtifactExists("D1"))
	assert.Equal(t, svc.ArtifactPath("D1"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"doc_id": "D1"`)
}
