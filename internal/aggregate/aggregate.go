// Package aggregate computes per-filing roll-ups from the normalized
// tables. The same figures are also computable in SQL by the store; the
// two paths must agree, and the store's query is the cross-check.
package aggregate

import (
	"log/slog"
	"sort"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

// DocumentAggregate is the per-filing roll-up, keyed by nacc_id.
//
// AssetCount always equals LandCount + BuildingCount + VehicleCount +
// OtherCount: every asset lands in exactly one sub-table. The Owned*
// valuations partition by ownership flag, so an asset held jointly
// contributes to each flagged owner.
type DocumentAggregate struct {
	NaccID        int
	DocID         string
	AssetCount    int
	LandCount     int
	BuildingCount int
	VehicleCount  int
	OtherCount    int
	RelativeCount int

	LandValuation           float64
	BuildingValuation       float64
	VehicleValuation        float64
	OtherValuation          float64
	TotalValuationSubmitter float64
	TotalValuationSpouse    float64
	TotalValuationChild     float64
	OwnedSubmitterValuation float64
	OwnedSpouseValuation    float64
	OwnedChildValuation     float64
	HasDeceasedRelative     bool
}

// Aggregator computes roll-ups from in-memory tables.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator builds an Aggregator.
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// Aggregate rolls the tables up into one row per summary entry, ordered by
// (nacc_id, doc_id) ascending to match the store's query ordering.
//
// Detail rows carry only a nacc_id, so when two summary rows share one
// (unregistered filings all land on nacc_id 0) each of them is credited
// with the full nacc-level figures, exactly as the store's correlated
// subqueries compute them.
func (a *Aggregator) Aggregate(t *normalize.Tables) []DocumentAggregate {
	aggs := make([]*DocumentAggregate, 0, len(t.Summaries))
	byNacc := make(map[int][]*DocumentAggregate, len(t.Summaries))

	for _, s := range t.Summaries {
		agg := &DocumentAggregate{NaccID: s.NaccID, DocID: s.DocID}
		aggs = append(aggs, agg)
		byNacc[s.NaccID] = append(byNacc[s.NaccID], agg)
	}

	for _, row := range t.Assets {
		val := 0.0
		if row.Valuation != nil {
			val = *row.Valuation
		}
		group := constants.GroupForAssetType(row.AssetTypeID)
		for _, agg := range byNacc[row.NaccID] {
			agg.AssetCount++
			switch group {
			case constants.GroupLand:
				agg.LandValuation += val
			case constants.GroupBuilding:
				agg.BuildingValuation += val
			case constants.GroupVehicle:
				agg.VehicleValuation += val
			default:
				agg.OtherValuation += val
			}
			if row.OwnerBySubmitter {
				agg.OwnedSubmitterValuation += val
			}
			if row.OwnerBySpouse {
				agg.OwnedSpouseValuation += val
			}
			if row.OwnerByChild {
				agg.OwnedChildValuation += val
			}
		}
	}
	for _, row := range t.LandInfos {
		for _, agg := range byNacc[row.NaccID] {
			agg.LandCount++
		}
	}
	for _, row := range t.BuildingInfos {
		for _, agg := range byNacc[row.NaccID] {
			agg.BuildingCount++
		}
	}
	for _, row := range t.VehicleInfos {
		for _, agg := range byNacc[row.NaccID] {
			agg.VehicleCount++
		}
	}
	for _, row := range t.OtherInfos {
		for _, agg := range byNacc[row.NaccID] {
			agg.OtherCount++
		}
	}
	for _, row := range t.RelativeInfos {
		for _, agg := range byNacc[row.NaccID] {
			agg.RelativeCount++
			if row.IsDeath {
				agg.HasDeceasedRelative = true
			}
		}
	}
	for _, row := range t.Statements {
		for _, agg := range byNacc[row.NaccID] {
			if row.ValuationSubmitter != nil {
				agg.TotalValuationSubmitter += *row.ValuationSubmitter
			}
			if row.ValuationSpouse != nil {
				agg.TotalValuationSpouse += *row.ValuationSpouse
			}
			if row.ValuationChild != nil {
				agg.TotalValuationChild += *row.ValuationChild
			}
		}
	}

	out := make([]DocumentAggregate, 0, len(aggs))
	for _, agg := range aggs {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NaccID != out[j].NaccID {
			return out[i].NaccID < out[j].NaccID
		}
		return out[i].DocID < out[j].DocID
	})

	a.logger.Info("aggregate.ok", "filings", len(out))
	return out
}
