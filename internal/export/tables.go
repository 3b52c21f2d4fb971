package export

import (
	"strconv"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// Column orders mirror the relational schema field order exactly.

var submitterHeader = []string{
	"submitter_id", "nacc_id", "doc_id", "title", "first_name", "last_name",
	"age", "marital_status", "status_date", "status_month", "status_year",
	"sub_district", "district", "province", "post_code",
	"phone_number", "mobile_number", "email", "latest_submitted_date",
}

func submitterRows(rows []entity.SubmitterRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.SubmitterID), strconv.Itoa(r.NaccID), r.DocID,
			strPtrCell(r.Title), strPtrCell(r.FirstName), strPtrCell(r.LastName),
			intPtrCell(r.Age), strPtrCell(r.MaritalStatus),
			intPtrCell(r.StatusDate), intPtrCell(r.StatusMonth), intPtrCell(r.StatusYear),
			strPtrCell(r.SubDistrict), strPtrCell(r.District), strPtrCell(r.Province),
			strPtrCell(r.PostCode), strPtrCell(r.PhoneNumber), strPtrCell(r.MobileNumber),
			strPtrCell(r.Email), r.LatestSubmittedDate,
		})
	}
	return out
}

func positionHeader(ownerCol string) []string {
	return []string{
		ownerCol, "nacc_id", "index", "position_period_type_id", "position",
		"position_category_type_id", "workplace", "workplace_location",
		"start_date", "start_month", "start_year",
		"end_date", "end_month", "end_year", "note", "latest_submitted_date",
	}
}

func positionRows(rows []entity.PositionRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.OwnerID), strconv.Itoa(r.NaccID), intPtrCell(r.Index),
			intPtrCell(r.PositionPeriodTypeID), strPtrCell(r.Position),
			intPtrCell(r.PositionCategoryTypeID), strPtrCell(r.Workplace),
			strPtrCell(r.WorkplaceLocation),
			intPtrCell(r.StartDate), intPtrCell(r.StartMonth), intPtrCell(r.StartYear),
			intPtrCell(r.EndDate), intPtrCell(r.EndMonth), intPtrCell(r.EndYear),
			strPtrCell(r.Note), r.LatestSubmittedDate,
		})
	}
	return out
}

func oldNameHeader(ownerCol string) []string {
	return []string{
		ownerCol, "nacc_id", "index", "title", "first_name", "last_name",
		"title_en", "first_name_en", "last_name_en", "latest_submitted_date",
	}
}

func oldNameRows(rows []entity.OldNameRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.OwnerID), strconv.Itoa(r.NaccID), intPtrCell(r.Index),
			strPtrCell(r.Title), strPtrCell(r.FirstName), strPtrCell(r.LastName),
			strPtrCell(r.TitleEN), strPtrCell(r.FirstNameEN), strPtrCell(r.LastNameEN),
			r.LatestSubmittedDate,
		})
	}
	return out
}

var spouseHeader = []string{
	"spouse_id", "submitter_id", "nacc_id", "title", "first_name", "last_name",
	"title_en", "first_name_en", "last_name_en", "age", "status",
	"status_date", "status_month", "status_year",
	"sub_district", "district", "province", "post_code",
	"phone_number", "mobile_number", "email", "latest_submitted_date",
}

func spouseRows(rows []entity.SpouseRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.SpouseID), strconv.Itoa(r.SubmitterID), strconv.Itoa(r.NaccID),
			strPtrCell(r.Title), strPtrCell(r.FirstName), strPtrCell(r.LastName),
			strPtrCell(r.TitleEN), strPtrCell(r.FirstNameEN), strPtrCell(r.LastNameEN),
			intPtrCell(r.Age), strPtrCell(r.Status),
			intPtrCell(r.StatusDate), intPtrCell(r.StatusMonth), intPtrCell(r.StatusYear),
			strPtrCell(r.SubDistrict), strPtrCell(r.District), strPtrCell(r.Province),
			strPtrCell(r.PostCode), strPtrCell(r.PhoneNumber), strPtrCell(r.MobileNumber),
			strPtrCell(r.Email), r.LatestSubmittedDate,
		})
	}
	return out
}

var relativeHeader = []string{
	"relative_id", "submitter_id", "nacc_id", "index", "relationship_id",
	"title", "first_name", "last_name", "age", "address", "occupation",
	"school", "workplace", "workplace_location", "latest_submitted_date", "is_death",
}

func relativeRows(rows []entity.RelativeRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.RelativeID), strconv.Itoa(r.SubmitterID), strconv.Itoa(r.NaccID),
			intPtrCell(r.Index), intPtrCell(r.RelationshipID),
			strPtrCell(r.Title), strPtrCell(r.FirstName), strPtrCell(r.LastName),
			intPtrCell(r.Age), strPtrCell(r.Address), strPtrCell(r.Occupation),
			strPtrCell(r.School), strPtrCell(r.Workplace), strPtrCell(r.WorkplaceLocation),
			r.LatestSubmittedDate, boolCell(r.IsDeath),
		})
	}
	return out
}

var statementHeader = []string{
	"nacc_id", "statement_type_id", "valuation_submitter", "submitter_id",
	"valuation_spouse", "valuation_child", "latest_submitted_date",
}

func statementRows(rows []entity.StatementRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.NaccID), intPtrCell(r.StatementTypeID),
			floatPtrCell(r.ValuationSubmitter), strconv.Itoa(r.SubmitterID),
			floatPtrCell(r.ValuationSpouse), floatPtrCell(r.ValuationChild),
			r.LatestSubmittedDate,
		})
	}
	return out
}

var statementDetailHeader = []string{
	"nacc_id", "submitter_id", "statement_detail_type_id", "index", "detail",
	"valuation_submitter", "valuation_spouse", "valuation_child", "note",
	"latest_submitted_date",
}

func statementDetailRows(rows []entity.StatementDetailRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.NaccID), strconv.Itoa(r.SubmitterID),
			intPtrCell(r.StatementDetailTypeID), intPtrCell(r.Index),
			strPtrCell(r.Detail),
			floatPtrCell(r.ValuationSubmitter), floatPtrCell(r.ValuationSpouse),
			floatPtrCell(r.ValuationChild), strPtrCell(r.Note),
			r.LatestSubmittedDate,
		})
	}
	return out
}

var assetHeader = []string{
	"asset_id", "submitter_id", "nacc_id", "index", "asset_type_id",
	"asset_type_other", "asset_name", "date_acquiring_type_id",
	"acquiring_date", "acquiring_month", "acquiring_year",
	"date_ending_type_id", "ending_date", "ending_month", "ending_year",
	"asset_acquisition_type_id", "valuation",
	"owner_by_submitter", "owner_by_spouse", "owner_by_child",
	"latest_submitted_date",
}

func assetRows(rows []entity.AssetRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.AssetID), strconv.Itoa(r.SubmitterID), strconv.Itoa(r.NaccID),
			intPtrCell(r.Index), strconv.Itoa(r.AssetTypeID),
			strPtrCell(r.AssetTypeOther), strPtrCell(r.AssetName),
			intPtrCell(r.DateAcquiringTypeID),
			intPtrCell(r.AcquiringDate), intPtrCell(r.AcquiringMonth), intPtrCell(r.AcquiringYear),
			intPtrCell(r.DateEndingTypeID),
			intPtrCell(r.EndingDate), intPtrCell(r.EndingMonth), intPtrCell(r.EndingYear),
			intPtrCell(r.AssetAcquisitionTypeID), floatPtrCell(r.Valuation),
			boolCell(r.OwnerBySubmitter), boolCell(r.OwnerBySpouse), boolCell(r.OwnerByChild),
			r.LatestSubmittedDate,
		})
	}
	return out
}

var landHeader = []string{
	"asset_id", "nacc_id", "land_type", "land_number",
	"area_rai", "area_ngan", "area_sqwa", "province", "latest_submitted_date",
}

func landRows(rows []entity.LandInfoRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.AssetID), strconv.Itoa(r.NaccID),
			strCell(r.LandType), strCell(r.LandNumber),
			strCell(r.AreaRai), strCell(r.AreaNgan), strCell(r.AreaSqwa),
			strCell(r.Province), r.LatestSubmittedDate,
		})
	}
	return out
}

var buildingHeader = []string{
	"asset_id", "nacc_id", "building_type", "building_name", "room_number",
	"province", "latest_submitted_date",
}

func buildingRows(rows []entity.BuildingInfoRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.AssetID), strconv.Itoa(r.NaccID),
			strCell(r.BuildingType), strCell(r.BuildingName), strCell(r.RoomNumber),
			strCell(r.Province), r.LatestSubmittedDate,
		})
	}
	return out
}

var vehicleHeader = []string{
	"asset_id", "nacc_id", "vehicle_type", "brand", "model", "registration",
	"province", "latest_submitted_date",
}

func vehicleRows(rows []entity.VehicleInfoRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.AssetID), strconv.Itoa(r.NaccID),
			strCell(r.VehicleType), strCell(r.Brand), strCell(r.Model),
			strCell(r.Registration), strCell(r.Province), r.LatestSubmittedDate,
		})
	}
	return out
}

var otherHeader = []string{
	"asset_id", "nacc_id", "description", "latest_submitted_date",
}

func otherRows(rows []entity.OtherInfoRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.AssetID), strconv.Itoa(r.NaccID),
			strCell(r.Description), r.LatestSubmittedDate,
		})
	}
	return out
}

var aggregateHeader = []string{
	"nacc_id", "doc_id", "asset_count", "land_count", "building_count",
	"vehicle_count", "other_count", "relative_count",
	"land_valuation", "building_valuation", "vehicle_valuation",
	"other_valuation",
	"total_valuation_submitter", "total_valuation_spouse",
	"total_valuation_child",
	"owned_submitter_valuation", "owned_spouse_valuation",
	"owned_child_valuation", "has_deceased_relative",
}

func aggregateRow(a aggregate.DocumentAggregate) []string {
	return []string{
		strconv.Itoa(a.NaccID), a.DocID,
		strconv.Itoa(a.AssetCount), strconv.Itoa(a.LandCount),
		strconv.Itoa(a.BuildingCount), strconv.Itoa(a.VehicleCount),
		strconv.Itoa(a.OtherCount), strconv.Itoa(a.RelativeCount),
		formatFloat(a.LandValuation), formatFloat(a.BuildingValuation),
		formatFloat(a.VehicleValuation), formatFloat(a.OtherValuation),
		formatFloat(a.TotalValuationSubmitter),
		formatFloat(a.TotalValuationSpouse),
		formatFloat(a.TotalValuationChild),
		formatFloat(a.OwnedSubmitterValuation),
		formatFloat(a.OwnedSpouseValuation),
		formatFloat(a.OwnedChildValuation),
		boolCell(a.HasDeceasedRelative),
	}
}

var summaryHeader = []string{
	"nacc_id", "doc_id", "nd_title", "nd_first_name", "nd_last_name",
	"nd_position", "nd_submitted_date", "submitter_id",
	"spouse_title", "spouse_first_name", "spouse_last_name", "spouse_age",
	"statement_valuation_submitter_total", "statement_valuation_spouse_total",
	"statement_valuation_child_total", "asset_count", "relative_count",
	"extraction_status", "confidence_score", "latest_submitted_date",
}

func summaryRows(rows []entity.SummaryRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.NaccID), r.DocID,
			r.NdTitle, r.NdFirstName, r.NdLastName,
			r.NdPosition, r.NdSubmittedDate, strconv.Itoa(r.SubmitterID),
			strPtrCell(r.SpouseTitle), strPtrCell(r.SpouseFirstName),
			strPtrCell(r.SpouseLastName), intPtrCell(r.SpouseAge),
			formatFloat(r.StatementValuationSubmitterTotal),
			formatFloat(r.StatementValuationSpouseTotal),
			formatFloat(r.StatementValuationChildTotal),
			strconv.Itoa(r.AssetCount), strconv.Itoa(r.RelativeCount),
			r.ExtractionStatus, formatFloat(r.ConfidenceScore),
			r.LatestSubmittedDate,
		})
	}
	return out
}
