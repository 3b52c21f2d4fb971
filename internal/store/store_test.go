package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

func fp(f float64) *float64 { return &f }
func strp(s string) *string { return &s }

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), common.StoreConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(st.Close)
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testTables() *normalize.Tables {
	return &normalize.Tables{
		SubmitterInfos: []entity.SubmitterRow{
			{SubmitterID: 1, NaccID: 100, DocID: "D1", FirstName: strp("สมชาย"), LatestSubmittedDate: "2026-03-15"},
		},
		SpouseInfos: []entity.SpouseRow{
			{SpouseID: 1, SubmitterID: 1, NaccID: 100, FirstName: strp("สมหญิง"), LatestSubmittedDate: "2026-03-15"},
		},
		RelativeInfos: []entity.RelativeRow{
			{RelativeID: 1, SubmitterID: 1, NaccID: 100, IsDeath: true, LatestSubmittedDate: "2026-03-15"},
			{RelativeID: 2, SubmitterID: 1, NaccID: 100, LatestSubmittedDate: "2026-03-15"},
		},
		Statements: []entity.StatementRow{
			{NaccID: 100, SubmitterID: 1, ValuationSubmitter: fp(1000), ValuationSpouse: fp(250), LatestSubmittedDate: "2026-03-15"},
			{NaccID: 100, SubmitterID: 1, ValuationSubmitter: fp(500), LatestSubmittedDate: "2026-03-15"},
		},
		Assets: []entity.AssetRow{
			{AssetID: 1, SubmitterID: 1, NaccID: 100, AssetTypeID: 1, Valuation: fp(900000),
				OwnerBySubmitter: true, LatestSubmittedDate: "2026-03-15"},
			{AssetID: 2, SubmitterID: 1, NaccID: 100, AssetTypeID: 18, Valuation: fp(600000),
				OwnerBySubmitter: true, OwnerBySpouse: true, LatestSubmittedDate: "2026-03-15"},
		},
		LandInfos:    []entity.LandInfoRow{{AssetID: 1, NaccID: 100, LandNumber: "114172", LatestSubmittedDate: "2026-03-15"}},
		VehicleInfos: []entity.VehicleInfoRow{{AssetID: 2, NaccID: 100, Brand: "Toyota", LatestSubmittedDate: "2026-03-15"}},
		Summaries: []entity.SummaryRow{
			{NaccID: 100, DocID: "D1", NdTitle: "-", NdFirstName: "สมชาย", NdLastName: "-",
				NdPosition: "-", NdSubmittedDate: "-", SubmitterID: 1,
				StatementValuationSubmitterTotal: 1500, StatementValuationSpouseTotal: 250,
				AssetCount: 2, RelativeCount: 2, ExtractionStatus: "success",
				ConfidenceScore: 1.0, LatestSubmittedDate: "2026-03-15"},
		},
	}
}

func TestInsertAndAggregate(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	tables := testTables()

	require.NoError(t, st.InsertTables(ctx, tables))

	aggs, err := st.AggregateByNacc(ctx)
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	agg := aggs[0]
	assert.Equal(t, 100, agg.NaccID)
	assert.Equal(t, "D1", agg.DocID)
	assert.Equal(t, 2, agg.AssetCount)
	assert.Equal(t, 1, agg.LandCount)
	assert.Equal(t, 1, agg.VehicleCount)
	assert.Zero(t, agg.BuildingCount)
	assert.Equal(t, 2, agg.RelativeCount)
	assert.Equal(t, 900000.0, agg.LandValuation)
	assert.Equal(t, 600000.0, agg.VehicleValuation)
	assert.Zero(t, agg.BuildingValuation)
	assert.Equal(t, 1500.0, agg.TotalValuationSubmitter)
	assert.Equal(t, 250.0, agg.TotalValuationSpouse)
	assert.Zero(t, agg.TotalValuationChild)
	assert.Equal(t, 1500000.0, agg.OwnedSubmitterValuation)
	assert.Equal(t, 600000.0, agg.OwnedSpouseValuation)
	assert.Zero(t, agg.OwnedChildValuation)
	assert.True(t, agg.HasDeceasedRelative)
}

func TestSQLAggregateMatchesInMemory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	tables := testTables()

	require.NoError(t, st.InsertTables(ctx, tables))

	sqlAggs, err := st.AggregateByNacc(ctx)
	require.NoError(t, err)

	memAggs := aggregate.NewAggregator(nil).Aggregate(tables)
	assert.Equal(t, memAggs, sqlAggs)
}

func TestSQLAggregateSharedNaccID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// Two unregistered filings share nacc_id 0; both roll-up paths must
	// emit one row per summary entry and stay in agreement.
	tables := &normalize.Tables{
		Summaries: []entity.SummaryRow{
			{NaccID: 0, DocID: "unreg-a", NdTitle: "-", NdFirstName: "-", NdLastName: "-",
				NdPosition: "-", NdSubmittedDate: "-", SubmitterID: 1,
				ExtractionStatus: "partial", LatestSubmittedDate: "2026-03-15"},
			{NaccID: 0, DocID: "unreg-b", NdTitle: "-", NdFirstName: "-", NdLastName: "-",
				NdPosition: "-", NdSubmittedDate: "-", SubmitterID: 2,
				ExtractionStatus: "partial", LatestSubmittedDate: "2026-03-15"},
		},
		Assets: []entity.AssetRow{
			{AssetID: 1, SubmitterID: 1, NaccID: 0, AssetTypeID: 18, Valuation: fp(400000),
				OwnerBySubmitter: true, LatestSubmittedDate: "2026-03-15"},
		},
		VehicleInfos: []entity.VehicleInfoRow{{AssetID: 1, NaccID: 0, LatestSubmittedDate: "2026-03-15"}},
		Statements: []entity.StatementRow{
			{NaccID: 0, SubmitterID: 1, ValuationSubmitter: fp(1000), LatestSubmittedDate: "2026-03-15"},
		},
	}

	require.NoError(t, st.InsertTables(ctx, tables))

	sqlAggs, err := st.AggregateByNacc(ctx)
	require.NoError(t, err)
	require.Len(t, sqlAggs, 2)
	assert.Equal(t, "unreg-a", sqlAggs[0].DocID)
	assert.Equal(t, "unreg-b", sqlAggs[1].DocID)

	memAggs := aggregate.NewAggregator(nil).Aggregate(tables)
	assert.Equal(t, memAggs, sqlAggs)
}

func TestHealthCheck(t *testing.T) {
	st := openTestStore(t)
	assert.NoError(t, st.HealthCheck(context.Background()))
}

func TestRebindPostgresPlaceholders(t *testing.T) {
	s := &Store{postgres: true}
	assert.Equal(t, "INSERT INTO x (a, b) VALUES ($1,$2)", s.rebind("INSERT INTO x (a, b) VALUES (?,?)"))

	s.postgres = false
	assert.Equal(t, "VALUES (?,?)", s.rebind("VALUES (?,?)"))
}
