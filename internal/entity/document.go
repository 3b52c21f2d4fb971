package entity

import "github.com/nacc-tools/disclosure-etl/constants"

// Position is one held position of the submitter or spouse.
type Position struct {
	PositionPeriodTypeID   *int    `json:"position_period_type_id,omitempty"`
	Index                  *int    `json:"index,omitempty"`
	Position               *string `json:"position,omitempty"`
	PositionCategoryTypeID *int    `json:"position_category_type_id,omitempty"`
	Workplace              *string `json:"workplace,omitempty"`
	WorkplaceLocation      *string `json:"workplace_location,omitempty"`
	DateAcquiringTypeID    *int    `json:"date_acquiring_type_id,omitempty"`
	StartDate              *int    `json:"start_date,omitempty"`
	StartMonth             *int    `json:"start_month,omitempty"`
	StartYear              *int    `json:"start_year,omitempty"`
	DateEndingTypeID       *int    `json:"date_ending_type_id,omitempty"`
	EndDate                *int    `json:"end_date,omitempty"`
	EndMonth               *int    `json:"end_month,omitempty"`
	EndYear                *int    `json:"end_year,omitempty"`
	Note                   *string `json:"note,omitempty"`
}

// OldName is a former name record of the submitter or spouse.
type OldName struct {
	Index       *int    `json:"index,omitempty"`
	Title       *string `json:"title,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	TitleEN     *string `json:"title_en,omitempty"`
	FirstNameEN *string `json:"first_name_en,omitempty"`
	LastNameEN  *string `json:"last_name_en,omitempty"`
}

// SubmitterInfo is the filer's personal record.
type SubmitterInfo struct {
	Title         *string    `json:"title,omitempty"`
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Age           *int       `json:"age,omitempty"`
	MaritalStatus *string    `json:"marital_status,omitempty"`
	StatusDate    *int       `json:"status_date,omitempty"`
	StatusMonth   *int       `json:"status_month,omitempty"`
	StatusYear    *int       `json:"status_year,omitempty"`
	SubDistrict   *string    `json:"sub_district,omitempty"`
	District      *string    `json:"district,omitempty"`
	Province      *string    `json:"province,omitempty"`
	PostCode      *string    `json:"post_code,omitempty"`
	PhoneNumber   *string    `json:"phone_number,omitempty"`
	MobileNumber  *string    `json:"mobile_number,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Positions     []Position `json:"positions,omitempty"`
	OldNames      []OldName  `json:"old_names,omitempty"`
}

// SpouseInfo is the spouse's personal record; nil when the filer has no spouse.
type SpouseInfo struct {
	Title       *string    `json:"title,omitempty"`
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	TitleEN     *string    `json:"title_en,omitempty"`
	FirstNameEN *string    `json:"first_name_en,omitempty"`
	LastNameEN  *string    `json:"last_name_en,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Status      *string    `json:"status,omitempty"`
	StatusDate  *int       `json:"status_date,omitempty"`
	StatusMonth *int       `json:"status_month,omitempty"`
	StatusYear  *int       `json:"status_year,omitempty"`
	SubDistrict *string    `json:"sub_district,omitempty"`
	District    *string    `json:"district,omitempty"`
	Province    *string    `json:"province,omitempty"`
	PostCode    *string    `json:"post_code,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	MobileNumber *string   `json:"mobile_number,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Positions   []Position `json:"positions,omitempty"`
	OldNames    []OldName  `json:"old_names,omitempty"`
}

// Relative is one family member listed in the filing.
type Relative struct {
	Index             *int    `json:"index,omitempty"`
	RelationshipID    *int    `json:"relationship_id,omitempty"`
	Title             *string `json:"title,omitempty"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Age               *int    `json:"age,omitempty"`
	Address           *string `json:"address,omitempty"`
	Occupation        *string `json:"occupation,omitempty"`
	School            *string `json:"school,omitempty"`
	Workplace         *string `json:"workplace,omitempty"`
	WorkplaceLocation *string `json:"workplace_location,omitempty"`
	IsDeath           bool    `json:"is_death"`
}

// Statement is one top-level valuation line (cash, deposits, loans, ...).
type Statement struct {
	StatementTypeID    *int     `json:"statement_type_id,omitempty"`
	ValuationSubmitter *float64 `json:"valuation_submitter,omitempty"`
	ValuationSpouse    *float64 `json:"valuation_spouse,omitempty"`
	ValuationChild     *float64 `json:"valuation_child,omitempty"`
}

// StatementDetail is one itemized line under a statement.
type StatementDetail struct {
	StatementDetailTypeID *int     `json:"statement_detail_type_id,omitempty"`
	Index                 *int     `json:"index,omitempty"`
	Detail                *string  `json:"detail,omitempty"`
	ValuationSubmitter    *float64 `json:"valuation_submitter,omitempty"`
	ValuationSpouse       *float64 `json:"valuation_spouse,omitempty"`
	ValuationChild        *float64 `json:"valuation_child,omitempty"`
	Note                  *string  `json:"note,omitempty"`
}

// LandInfo carries the structured sub-attributes of a land asset.
type LandInfo struct {
	LandType   string `json:"land_type"`
	LandNumber string `json:"land_number"`
	AreaRai    string `json:"area_rai"`
	AreaNgan   string `json:"area_ngan"`
	AreaSqwa   string `json:"area_sqwa"`
	Province   string `json:"province"`
}

// BuildingInfo carries the structured sub-attributes of a building asset.
type BuildingInfo struct {
	BuildingType string `json:"building_type"`
	BuildingName string `json:"building_name"`
	RoomNumber   string `json:"room_number"`
	Province     string `json:"province"`
}

// VehicleInfo carries the structured sub-attributes of a vehicle asset.
type VehicleInfo struct {
	VehicleType  string `json:"vehicle_type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
	Province     string `json:"province"`
}

// Asset is one declared asset. Exactly one of the four sub-tables is emitted
// per asset during normalization, chosen by AssetTypeID.
type Asset struct {
	Index                  *int          `json:"index,omitempty"`
	AssetTypeID            *int          `json:"asset_type_id,omitempty"`
	AssetTypeOther         *string       `json:"asset_type_other,omitempty"`
	AssetName              *string       `json:"asset_name,omitempty"`
	DateAcquiringTypeID    *int          `json:"date_acquiring_type_id,omitempty"`
	AcquiringDate          *int          `json:"acquiring_date,omitempty"`
	AcquiringMonth         *int          `json:"acquiring_month,omitempty"`
	AcquiringYear          *int          `json:"acquiring_year,omitempty"`
	DateEndingTypeID       *int          `json:"date_ending_type_id,omitempty"`
	EndingDate             *int          `json:"ending_date,omitempty"`
	EndingMonth            *int          `json:"ending_month,omitempty"`
	EndingYear             *int          `json:"ending_year,omitempty"`
	AssetAcquisitionTypeID *int          `json:"asset_acquisition_type_id,omitempty"`
	Valuation              *float64      `json:"valuation,omitempty"`
	OwnerBySubmitter       bool          `json:"owner_by_submitter"`
	OwnerBySpouse          bool          `json:"owner_by_spouse"`
	OwnerByChild           bool          `json:"owner_by_child"`
	LandInfo               *LandInfo     `json:"land_info,omitempty"`
	BuildingInfo           *BuildingInfo `json:"building_info,omitempty"`
	VehicleInfo            *VehicleInfo  `json:"vehicle_info,omitempty"`
}

// Fragment is one page's partial extraction, prior to merge. A non-empty
// Error marks the page as failed; failed fragments count against confidence
// but contribute nothing to the merge.
type Fragment struct {
	PageNumber       int               `json:"page_number"`
	PageType         string            `json:"page_type,omitempty"`
	SubmitterInfo    *SubmitterInfo    `json:"submitter_info,omitempty"`
	SpouseInfo       *SpouseInfo       `json:"spouse_info,omitempty"`
	Relatives        []Relative        `json:"relatives,omitempty"`
	Statements       []Statement       `json:"statements,omitempty"`
	StatementDetails []StatementDetail `json:"statement_details,omitempty"`
	Assets           []Asset           `json:"assets,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// Failed reports whether this fragment carries an error marker.
func (f *Fragment) Failed() bool { return f.Error != "" }

// CanonicalDocument is the single merged record for one filing.
//
// Invariant: ConfidenceScore equals the fraction of fragments that extracted
// without error; ExtractionStatus is failed iff that fraction is 0 (including
// empty input), success iff it is 1, otherwise partial.
type CanonicalDocument struct {
	DocID            string                     `json:"doc_id"`
	NaccID           int                        `json:"nacc_id"`
	ExtractionStatus constants.ExtractionStatus `json:"extraction_status"`
	ConfidenceScore  float64                    `json:"confidence_score"`
	SubmitterInfo    *SubmitterInfo             `json:"submitter_info"`
	SpouseInfo       *SpouseInfo                `json:"spouse_info"`
	Relatives        []Relative                 `json:"relatives"`
	Statements       []Statement                `json:"statements"`
	StatementDetails []StatementDetail          `json:"statement_details"`
	Assets           []Asset                    `json:"assets"`
}
