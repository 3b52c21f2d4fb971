package store

import (
	"context"
	"database/sql"

	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
)

// InsertTables writes every accumulated row in one transaction.
func (s *Store) InsertTables(ctx context.Context, t *normalize.Tables) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin insert tx")
	}
	defer tx.Rollback()

	if err := s.insertAll(ctx, tx, t); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit insert tx")
	}

	s.logger.Info("store.insert.ok",
		"submitters", len(t.SubmitterInfos),
		"assets", len(t.Assets),
		"summaries", len(t.Summaries),
	)
	return nil
}

func (s *Store) insertAll(ctx context.Context, tx *sql.Tx, t *normalize.Tables) error {
	for _, r := range t.SubmitterInfos {
		if err := s.exec(ctx, tx, `INSERT INTO submitter_info (
			submitter_id, nacc_id, doc_id, title, first_name, last_name, age,
			marital_status, status_date, status_month, status_year,
			sub_district, district, province, post_code,
			phone_number, mobile_number, email, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.SubmitterID, r.NaccID, r.DocID, r.Title, r.FirstName, r.LastName, r.Age,
			r.MaritalStatus, r.StatusDate, r.StatusMonth, r.StatusYear,
			r.SubDistrict, r.District, r.Province, r.PostCode,
			r.PhoneNumber, r.MobileNumber, r.Email, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert submitter_info")
		}
	}
	for _, r := range t.SubmitterPositions {
		if err := s.execPosition(ctx, tx, "submitter_position", "submitter_id", r); err != nil {
			return err
		}
	}
	for _, r := range t.SpousePositions {
		if err := s.execPosition(ctx, tx, "spouse_position", "spouse_id", r); err != nil {
			return err
		}
	}
	for _, r := range t.SubmitterOldNames {
		if err := s.execOldName(ctx, tx, "submitter_old_name", "submitter_id", r); err != nil {
			return err
		}
	}
	for _, r := range t.SpouseOldNames {
		if err := s.execOldName(ctx, tx, "spouse_old_name", "spouse_id", r); err != nil {
			return err
		}
	}
	for _, r := range t.SpouseInfos {
		if err := s.exec(ctx, tx, `INSERT INTO spouse_info (
			spouse_id, submitter_id, nacc_id, title, first_name, last_name,
			title_en, first_name_en, last_name_en, age, status,
			status_date, status_month, status_year,
			sub_district, district, province, post_code,
			phone_number, mobile_number, email, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.SpouseID, r.SubmitterID, r.NaccID, r.Title, r.FirstName, r.LastName,
			r.TitleEN, r.FirstNameEN, r.LastNameEN, r.Age, r.Status,
			r.StatusDate, r.StatusMonth, r.StatusYear,
			r.SubDistrict, r.District, r.Province, r.PostCode,
			r.PhoneNumber, r.MobileNumber, r.Email, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert spouse_info")
		}
	}
	for _, r := range t.RelativeInfos {
		if err := s.exec(ctx, tx, `INSERT INTO relative_info (
			relative_id, submitter_id, nacc_id, relative_index, relationship_id,
			title, first_name, last_name, age, address, occupation,
			school, workplace, workplace_location, latest_submitted_date, is_death
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.RelativeID, r.SubmitterID, r.NaccID, r.Index, r.RelationshipID,
			r.Title, r.FirstName, r.LastName, r.Age, r.Address, r.Occupation,
			r.School, r.Workplace, r.WorkplaceLocation, r.LatestSubmittedDate, boolInt(r.IsDeath),
		); err != nil {
			return common.WrapError(err, "insert relative_info")
		}
	}
	for _, r := range t.Statements {
		if err := s.exec(ctx, tx, `INSERT INTO statement (
			nacc_id, statement_type_id, valuation_submitter, submitter_id,
			valuation_spouse, valuation_child, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?)`,
			r.NaccID, r.StatementTypeID, r.ValuationSubmitter, r.SubmitterID,
			r.ValuationSpouse, r.ValuationChild, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert statement")
		}
	}
	for _, r := range t.StatementDetails {
		if err := s.exec(ctx, tx, `INSERT INTO statement_detail (
			nacc_id, submitter_id, statement_detail_type_id, detail_index, detail,
			valuation_submitter, valuation_spouse, valuation_child, note,
			latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?,?)`,
			r.NaccID, r.SubmitterID, r.StatementDetailTypeID, r.Index, r.Detail,
			r.ValuationSubmitter, r.ValuationSpouse, r.ValuationChild, r.Note,
			r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert statement_detail")
		}
	}
	for _, r := range t.Assets {
		if err := s.exec(ctx, tx, `INSERT INTO asset (
			asset_id, submitter_id, nacc_id, asset_index, asset_type_id,
			asset_type_other, asset_name, date_acquiring_type_id,
			acquiring_date, acquiring_month, acquiring_year,
			date_ending_type_id, ending_date, ending_month, ending_year,
			asset_acquisition_type_id, valuation,
			owner_by_submitter, owner_by_spouse, owner_by_child,
			latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.AssetID, r.SubmitterID, r.NaccID, r.Index, r.AssetTypeID,
			r.AssetTypeOther, r.AssetName, r.DateAcquiringTypeID,
			r.AcquiringDate, r.AcquiringMonth, r.AcquiringYear,
			r.DateEndingTypeID, r.EndingDate, r.EndingMonth, r.EndingYear,
			r.AssetAcquisitionTypeID, r.Valuation,
			boolInt(r.OwnerBySubmitter), boolInt(r.OwnerBySpouse), boolInt(r.OwnerByChild),
			r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert asset")
		}
	}
	for _, r := range t.LandInfos {
		if err := s.exec(ctx, tx, `INSERT INTO asset_land_info (
			asset_id, nacc_id, land_type, land_number,
			area_rai, area_ngan, area_sqwa, province, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?)`,
			r.AssetID, r.NaccID, r.LandType, r.LandNumber,
			r.AreaRai, r.AreaNgan, r.AreaSqwa, r.Province, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert asset_land_info")
		}
	}
	for _, r := range t.BuildingInfos {
		if err := s.exec(ctx, tx, `INSERT INTO asset_building_info (
			asset_id, nacc_id, building_type, building_name, room_number,
			province, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?)`,
			r.AssetID, r.NaccID, r.BuildingType, r.BuildingName, r.RoomNumber,
			r.Province, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert asset_building_info")
		}
	}
	for _, r := range t.VehicleInfos {
		if err := s.exec(ctx, tx, `INSERT INTO asset_vehicle_info (
			asset_id, nacc_id, vehicle_type, brand, model, registration,
			province, latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?)`,
			r.AssetID, r.NaccID, r.VehicleType, r.Brand, r.Model, r.Registration,
			r.Province, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert asset_vehicle_info")
		}
	}
	for _, r := range t.OtherInfos {
		if err := s.exec(ctx, tx, `INSERT INTO asset_other_asset_info (
			asset_id, nacc_id, description, latest_submitted_date
		) VALUES (?,?,?,?)`,
			r.AssetID, r.NaccID, r.Description, r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert asset_other_asset_info")
		}
	}
	for _, r := range t.Summaries {
		if err := s.exec(ctx, tx, `INSERT INTO summary (
			nacc_id, doc_id, nd_title, nd_first_name, nd_last_name,
			nd_position, nd_submitted_date, submitter_id,
			spouse_title, spouse_first_name, spouse_last_name, spouse_age,
			statement_valuation_submitter_total,
			statement_valuation_spouse_total,
			statement_valuation_child_total,
			asset_count, relative_count, extraction_status, confidence_score,
			latest_submitted_date
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.NaccID, r.DocID, r.NdTitle, r.NdFirstName, r.NdLastName,
			r.NdPosition, r.NdSubmittedDate, r.SubmitterID,
			r.SpouseTitle, r.SpouseFirstName, r.SpouseLastName, r.SpouseAge,
			r.StatementValuationSubmitterTotal,
			r.StatementValuationSpouseTotal,
			r.StatementValuationChildTotal,
			r.AssetCount, r.RelativeCount, r.ExtractionStatus, r.ConfidenceScore,
			r.LatestSubmittedDate,
		); err != nil {
			return common.WrapError(err, "insert summary")
		}
	}
	return nil
}

func (s *Store) exec(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	_, err := tx.ExecContext(ctx, s.rebind(query), args...)
	return err
}

func (s *Store) execPosition(ctx context.Context, tx *sql.Tx, table, ownerCol string, r entity.PositionRow) error {
	query := `INSERT INTO ` + table + ` (
		` + ownerCol + `, nacc_id, position_index, position_period_type_id,
		position, position_category_type_id, workplace, workplace_location,
		start_date, start_month, start_year, end_date, end_month, end_year,
		note, latest_submitted_date
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	if err := s.exec(ctx, tx, query,
		r.OwnerID, r.NaccID, r.Index, r.PositionPeriodTypeID,
		r.Position, r.PositionCategoryTypeID, r.Workplace, r.WorkplaceLocation,
		r.StartDate, r.StartMonth, r.StartYear, r.EndDate, r.EndMonth, r.EndYear,
		r.Note, r.LatestSubmittedDate,
	); err != nil {
		return common.WrapError(err, "insert "+table)
	}
	return nil
}

func (s *Store) execOldName(ctx context.Context, tx *sql.Tx, table, ownerCol string, r entity.OldNameRow) error {
	query := `INSERT INTO ` + table + ` (
		` + ownerCol + `, nacc_id, name_index, title, first_name, last_name,
		title_en, first_name_en, last_name_en, latest_submitted_date
	) VALUES (?,?,?,?,?,?,?,?,?,?)`
	if err := s.exec(ctx, tx, query,
		r.OwnerID, r.NaccID, r.Index, r.Title, r.FirstName, r.LastName,
		r.TitleEN, r.FirstNameEN, r.LastNameEN, r.LatestSubmittedDate,
	); err != nil {
		return common.WrapError(err, "insert "+table)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
