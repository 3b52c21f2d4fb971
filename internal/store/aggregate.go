package store

import (
	"context"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// aggregateQuery is the SQL side of the roll-up cross-check. It must produce
// exactly what aggregate.Aggregator computes from the in-memory tables.
const aggregateQuery = `
SELECT
	s.nacc_id,
	s.doc_id,
	(SELECT COUNT(*) FROM asset a WHERE a.nacc_id = s.nacc_id)                  AS asset_count,
	(SELECT COUNT(*) FROM asset_land_info l WHERE l.nacc_id = s.nacc_id)        AS land_count,
	(SELECT COUNT(*) FROM asset_building_info b WHERE b.nacc_id = s.nacc_id)    AS building_count,
	(SELECT COUNT(*) FROM asset_vehicle_info v WHERE v.nacc_id = s.nacc_id)     AS vehicle_count,
	(SELECT COUNT(*) FROM asset_other_asset_info o WHERE o.nacc_id = s.nacc_id) AS other_count,
	(SELECT COUNT(*) FROM relative_info r WHERE r.nacc_id = s.nacc_id)          AS relative_count,
	COALESCE((SELECT SUM(a.valuation) FROM asset a
		JOIN asset_land_info l ON l.asset_id = a.asset_id AND l.nacc_id = a.nacc_id
		WHERE a.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a
		JOIN asset_building_info b ON b.asset_id = a.asset_id AND b.nacc_id = a.nacc_id
		WHERE a.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a
		JOIN asset_vehicle_info v ON v.asset_id = a.asset_id AND v.nacc_id = a.nacc_id
		WHERE a.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a
		JOIN asset_other_asset_info o ON o.asset_id = a.asset_id AND o.nacc_id = a.nacc_id
		WHERE a.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(st.valuation_submitter) FROM statement st WHERE st.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(st.valuation_spouse)    FROM statement st WHERE st.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(st.valuation_child)     FROM statement st WHERE st.nacc_id = s.nacc_id), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a WHERE a.nacc_id = s.nacc_id AND a.owner_by_submitter = 1), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a WHERE a.nacc_id = s.nacc_id AND a.owner_by_spouse = 1), 0),
	COALESCE((SELECT SUM(a.valuation) FROM asset a WHERE a.nacc_id = s.nacc_id AND a.owner_by_child = 1), 0),
	COALESCE((SELECT MAX(r.is_death) FROM relative_info r WHERE r.nacc_id = s.nacc_id), 0)
FROM summary s
ORDER BY s.nacc_id, s.doc_id`

// AggregateByNacc computes the per-filing roll-up in SQL, one row per
// summary entry, ordered by (nacc_id, doc_id) ascending.
func (s *Store) AggregateByNacc(ctx context.Context) ([]aggregate.DocumentAggregate, error) {
	rows, err := s.db.QueryContext(ctx, aggregateQuery)
	if err != nil {
		return nil, common.WrapError(err, "query aggregate")
	}
	defer rows.Close()

	var out []aggregate.DocumentAggregate
	for rows.Next() {
		var agg aggregate.DocumentAggregate
		var death int
		if err := rows.Scan(
			&agg.NaccID, &agg.DocID,
			&agg.AssetCount, &agg.LandCount, &agg.BuildingCount,
			&agg.VehicleCount, &agg.OtherCount, &agg.RelativeCount,
			&agg.LandValuation, &agg.BuildingValuation,
			&agg.VehicleValuation, &agg.OtherValuation,
			&agg.TotalValuationSubmitter, &agg.TotalValuationSpouse,
			&agg.TotalValuationChild,
			&agg.OwnedSubmitterValuation, &agg.OwnedSpouseValuation,
			&agg.OwnedChildValuation, &death,
		); err != nil {
			return nil, common.WrapError(err, "scan aggregate row")
		}
		agg.HasDeceasedRelative = death != 0
		out = append(out, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "iterate aggregate rows")
	}
	return out, nil
}
