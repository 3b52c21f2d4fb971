package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

func fp(f float64) *float64 { return &f }

func sampleTables() *normalize.Tables {
	return &normalize.Tables{
		Summaries: []entity.SummaryRow{
			{NaccID: 100, DocID: "D1"},
			{NaccID: 101, DocID: "D2"},
		},
		Assets: []entity.AssetRow{
			{AssetID: 1, NaccID: 100, AssetTypeID: 1, Valuation: fp(900000), OwnerBySubmitter: true},
			{AssetID: 2, NaccID: 100, AssetTypeID: 18, Valuation: fp(600000), OwnerBySubmitter: true, OwnerBySpouse: true},
			{AssetID: 3, NaccID: 101, AssetTypeID: 39},
		},
		LandInfos:     []entity.LandInfoRow{{AssetID: 1, NaccID: 100}},
		VehicleInfos:  []entity.VehicleInfoRow{{AssetID: 2, NaccID: 100}},
		OtherInfos:    []entity.OtherInfoRow{{AssetID: 3, NaccID: 101}},
		RelativeInfos: []entity.RelativeRow{
			{RelativeID: 1, NaccID: 100, IsDeath: false},
			{RelativeID: 2, NaccID: 100, IsDeath: true},
			{RelativeID: 3, NaccID: 101, IsDeath: false},
		},
		Statements: []entity.StatementRow{
			{NaccID: 100, ValuationSubmitter: fp(1000), ValuationSpouse: fp(200)},
			{NaccID: 100, ValuationSubmitter: fp(500)},
			{NaccID: 101, ValuationChild: fp(75)},
		},
	}
}

func TestAggregateRollsUpPerFiling(t *testing.T) {
	aggs := NewAggregator(nil).Aggregate(sampleTables())

	require.Len(t, aggs, 2)

	first := aggs[0]
	assert.Equal(t, 100, first.NaccID)
	assert.Equal(t, "D1", first.DocID)
	assert.Equal(t, 2, first.AssetCount)
	assert.Equal(t, 1, first.LandCount)
	assert.Equal(t, 1, first.VehicleCount)
	assert.Zero(t, first.BuildingCount)
	assert.Equal(t, 2, first.RelativeCount)
	assert.Equal(t, 900000.0, first.LandValuation)
	assert.Equal(t, 600000.0, first.VehicleValuation)
	assert.Zero(t, first.BuildingValuation)
	assert.Equal(t, 1500.0, first.TotalValuationSubmitter)
	assert.Equal(t, 200.0, first.TotalValuationSpouse)
	assert.Equal(t, 1500000.0, first.OwnedSubmitterValuation)
	assert.Equal(t, 600000.0, first.OwnedSpouseValuation)
	assert.Zero(t, first.OwnedChildValuation)
	assert.True(t, first.HasDeceasedRelative)

	second := aggs[1]
	assert.Equal(t, 101, second.NaccID)
	assert.Equal(t, 1, second.AssetCount)
	assert.Equal(t, 1, second.OtherCount)
	assert.Zero(t, second.OtherValuation) // asset without a valuation contributes nothing
	assert.Equal(t, 75.0, second.TotalValuationChild)
	assert.False(t, second.HasDeceasedRelative)
}

func TestAggregatePartitionSumsToAssetCount(t *testing.T) {
	for _, agg := range NewAggregator(nil).Aggregate(sampleTables()) {
		assert.Equal(t, agg.AssetCount,
			agg.LandCount+agg.BuildingCount+agg.VehicleCount+agg.OtherCount)
	}
}

func TestAggregateSharedNaccID(t *testing.T) {
	// Unregistered filings all land on nacc_id 0. Each still gets its own
	// roll-up row, carrying the full nacc-level figures, the same way the
	// store's correlated subqueries credit them.
	tables := &normalize.Tables{
		Summaries: []entity.SummaryRow{
			{NaccID: 0, DocID: "unreg-b"},
			{NaccID: 0, DocID: "unreg-a"},
		},
		Assets: []entity.AssetRow{
			{AssetID: 1, NaccID: 0, AssetTypeID: 18, Valuation: fp(400000)},
		},
		VehicleInfos:  []entity.VehicleInfoRow{{AssetID: 1, NaccID: 0}},
		RelativeInfos: []entity.RelativeRow{{RelativeID: 1, NaccID: 0, IsDeath: true}},
		Statements: []entity.StatementRow{
			{NaccID: 0, ValuationSubmitter: fp(1000)},
		},
	}

	aggs := NewAggregator(nil).Aggregate(tables)
	require.Len(t, aggs, 2)

	// ordered by doc_id within the shared nacc_id
	assert.Equal(t, "unreg-a", aggs[0].DocID)
	assert.Equal(t, "unreg-b", aggs[1].DocID)

	for _, agg := range aggs {
		assert.Equal(t, 0, agg.NaccID)
		assert.Equal(t, 1, agg.AssetCount)
		assert.Equal(t, 1, agg.VehicleCount)
		assert.Equal(t, 400000.0, agg.VehicleValuation)
		assert.Equal(t, 1, agg.RelativeCount)
		assert.Equal(t, 1000.0, agg.TotalValuationSubmitter)
		assert.True(t, agg.HasDeceasedRelative)
	}
}

func TestAggregateEmptyTables(t *testing.T) {
	aggs := NewAggregator(nil).Aggregate(&normalize.Tables{})
	assert.Empty(t, aggs)
}
