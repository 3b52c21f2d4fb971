package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func fp(f float64) *float64 { return &f }

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newTestNormalizer(reg *registry.Registry) *Normalizer {
	n := NewNormalizer(reg, NewSequence(), nil)
	n.now = fixedClock
	return n
}

func sampleDoc() *entity.CanonicalDocument {
	return &entity.CanonicalDocument{
		DocID:            "D2",
		NaccID:           100,
		ExtractionStatus: constants.ExtractionSuccess,
		ConfidenceScore:  1.0,
		SubmitterInfo: &entity.SubmitterInfo{
			Title:     strp("นาย"),
			FirstName: strp("สมชาย"),
			LastName:  strp("ใจดี"),
			Positions: []entity.Position{{Index: intp(1), Position: strp("นายกเทศมนตรี")}},
			OldNames:  []entity.OldName{{Index: intp(1), FirstName: strp("สมชาติ")}},
		},
		SpouseInfo: &entity.SpouseInfo{
			Title:     strp("นาง"),
			FirstName: strp("สมหญิง"),
			LastName:  strp("ใจดี"),
			Age:       intp(48),
		},
		Relatives: []entity.Relative{
			{Index: intp(1), RelationshipID: intp(5), FirstName: strp("สมปอง"), IsDeath: true},
		},
		Statements: []entity.Statement{
			{StatementTypeID: intp(1), ValuationSubmitter: fp(1000), ValuationSpouse: fp(500)},
			{StatementTypeID: intp(2), ValuationSubmitter: fp(250), ValuationChild: fp(50)},
		},
		StatementDetails: []entity.StatementDetail{
			{StatementDetailTypeID: intp(1), Index: intp(1), Detail: strp("เงินฝากธนาคาร"), ValuationSubmitter: fp(1000)},
		},
		Assets: []entity.Asset{
			{Index: intp(1), AssetTypeID: intp(constants.AssetLandChanote),
				AssetName: strp("โฉนดที่ดิน เลขที่ 114172 กรุงเทพมหานคร"), Valuation: fp(2000000)},
			{Index: intp(2), AssetTypeID: intp(constants.AssetCondo),
				AssetName: strp("ห้องชุดเลขที่ 120/45 อาคารลุมพินี จังหวัดนนทบุรี")},
			{Index: intp(3), AssetTypeID: intp(constants.AssetCar),
				AssetName: strp("รถยนต์ Toyota Camry")},
			{Index: intp(4), AssetTypeID: intp(constants.AssetGold),
				AssetName: strp("ทองคำแท่ง 10 บาท")},
		},
	}
}

func TestProcessAssetPartitionIsTotal(t *testing.T) {
	n := newTestNormalizer(nil)

	_, err := n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)

	tb := n.Tables
	require.Len(t, tb.Assets, 4)
	assert.Len(t, tb.LandInfos, 1)
	assert.Len(t, tb.BuildingInfos, 1)
	assert.Len(t, tb.VehicleInfos, 1)
	assert.Len(t, tb.OtherInfos, 1)

	// exactly one sub-row per asset id
	subRows := len(tb.LandInfos) + len(tb.BuildingInfos) + len(tb.VehicleInfos) + len(tb.OtherInfos)
	assert.Equal(t, len(tb.Assets), subRows)
}

func TestProcessTextExtractFallback(t *testing.T) {
	n := newTestNormalizer(nil)

	_, err := n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)

	land := n.Tables.LandInfos[0]
	assert.Equal(t, "โฉนด", land.LandType)
	assert.Equal(t, "114172", land.LandNumber)
	assert.Equal(t, "กรุงเทพมหานคร", land.Province)

	vehicle := n.Tables.VehicleInfos[0]
	assert.Equal(t, "Toyota", vehicle.Brand)
	assert.Equal(t, "รถยนต์", vehicle.VehicleType)

	other := n.Tables.OtherInfos[0]
	assert.Equal(t, "ทองคำแท่ง 10 บาท", other.Description)
}

func TestProcessKeepsProvidedSubRecord(t *testing.T) {
	n := newTestNormalizer(nil)
	doc := sampleDoc()
	doc.Assets = []entity.Asset{{
		Index:       intp(1),
		AssetTypeID: intp(constants.AssetLandChanote),
		AssetName:   strp("โฉนดที่ดิน เลขที่ 999"),
		LandInfo: &entity.LandInfo{
			LandType: "โฉนด", LandNumber: "114172", Province: "เชียงใหม่",
		},
	}}

	_, err := n.Process(doc, nil, nil)
	require.NoError(t, err)

	land := n.Tables.LandInfos[0]
	assert.Equal(t, "114172", land.LandNumber)
	assert.Equal(t, "เชียงใหม่", land.Province)
}

func TestProcessRegistryOverridesIdentity(t *testing.T) {
	n := newTestNormalizer(nil)
	docInfo := &registry.DocInfo{DocID: "D1", NaccID: 777}

	_, err := n.Process(sampleDoc(), docInfo, nil)
	require.NoError(t, err)

	tb := n.Tables
	assert.Equal(t, "D1", tb.SubmitterInfos[0].DocID)
	assert.Equal(t, 777, tb.SubmitterInfos[0].NaccID)
	assert.Equal(t, 777, tb.SpouseInfos[0].NaccID)
	assert.Equal(t, 777, tb.RelativeInfos[0].NaccID)
	assert.Equal(t, 777, tb.Statements[0].NaccID)
	assert.Equal(t, 777, tb.Assets[0].NaccID)
	assert.Equal(t, 777, tb.LandInfos[0].NaccID)
	assert.Equal(t, "D1", tb.Summaries[0].DocID)
	assert.Equal(t, 777, tb.Summaries[0].NaccID)
}

func TestProcessSurrogateKeysAndClock(t *testing.T) {
	n := newTestNormalizer(nil)

	sid, err := n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sid)

	sid, err = n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sid)

	tb := n.Tables
	// asset ids keep counting across documents
	assert.Equal(t, 1, tb.Assets[0].AssetID)
	assert.Equal(t, 5, tb.Assets[4].AssetID)
	assert.Equal(t, "2026-03-15", tb.Assets[0].LatestSubmittedDate)
}

func TestProcessDeterministicFromSameSeed(t *testing.T) {
	a := newTestNormalizer(nil)
	b := newTestNormalizer(nil)

	_, err := a.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)
	_, err = b.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Tables, b.Tables)
}

func TestProcessSummaryResolvesFromRegistries(t *testing.T) {
	reg := registry.New(nil)
	reg.AddDetail(registry.NaccDetail{
		NaccID: 100, Title: "นาย", FirstName: "สมชาย", LastName: "ใจดี",
		Position: "นายกเทศมนตรี", SubmittedDate: "2025-01-10",
	})
	reg.AddSubmitter(registry.SubmitterRecord{
		SubmitterID: 9, FirstName: "สมชาย", LastName: "ใจดี", Position: "สส.",
	})

	n := newTestNormalizer(reg)
	_, err := n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)

	s := n.Tables.Summaries[0]
	// detail registry outranks the submitter registry
	assert.Equal(t, "นายกเทศมนตรี", s.NdPosition)
	assert.Equal(t, "สมชาย", s.NdFirstName)
	assert.Equal(t, "2025-01-10", s.NdSubmittedDate)
	// spouse fields come from the payload
	assert.Equal(t, "สมหญิง", *s.SpouseFirstName)
	assert.Equal(t, 48, *s.SpouseAge)
	// statement totals
	assert.Equal(t, 1250.0, s.StatementValuationSubmitterTotal)
	assert.Equal(t, 500.0, s.StatementValuationSpouseTotal)
	assert.Equal(t, 50.0, s.StatementValuationChildTotal)
	assert.Equal(t, 4, s.AssetCount)
	assert.Equal(t, 1, s.RelativeCount)
}

func TestProcessSummarySentinelWhenNoRegistry(t *testing.T) {
	n := newTestNormalizer(nil)

	_, err := n.Process(sampleDoc(), nil, nil)
	require.NoError(t, err)

	s := n.Tables.Summaries[0]
	assert.Equal(t, constants.Sentinel, s.NdTitle)
	assert.Equal(t, constants.Sentinel, s.NdPosition)
}

func TestResolvePrecedence(t *testing.T) {
	assert.Equal(t, "a", Resolve("a", "b"))
	assert.Equal(t, "b", Resolve("", "b"))
	assert.Equal(t, constants.Sentinel, Resolve("", ""))
	assert.Equal(t, constants.Sentinel, Resolve())
}

func TestSequenceStartsAtOne(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 1, s.NextAsset())
	assert.Equal(t, 2, s.NextAsset())
	assert.Equal(t, 1, s.NextRelative())
	assert.Equal(t, 1, s.NextSubmitter())
	assert.Equal(t, 1, s.NextSpouse())
}
