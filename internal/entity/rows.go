package entity

// Relational row types produced by normalization. Optionals stay pointers
// until the export boundary; surrogate IDs are assigned from the run-wide
// sequence generator and are never reused.

// SubmitterRow is one row of the submitter_info table.
type SubmitterRow struct {
	SubmitterID         int
	NaccID              int
	DocID               string
	Title               *string
	FirstName           *string
	LastName            *string
	Age                 *int
	MaritalStatus       *string
	StatusDate          *int
	StatusMonth         *int
	StatusYear          *int
	SubDistrict         *string
	District            *string
	Province            *string
	PostCode            *string
	PhoneNumber         *string
	MobileNumber        *string
	Email               *string
	LatestSubmittedDate string
}

// PositionRow is one row of submitter_position or spouse_position.
// OwnerID is the submitter_id or spouse_id depending on the table.
type PositionRow struct {
	OwnerID                int
	NaccID                 int
	Index                  *int
	PositionPeriodTypeID   *int
	Position               *string
	PositionCategoryTypeID *int
	Workplace              *string
	WorkplaceLocation      *string
	StartDate              *int
	StartMonth             *int
	StartYear              *int
	EndDate                *int
	EndMonth               *int
	EndYear                *int
	Note                   *string
	LatestSubmittedDate    string
}

// OldNameRow is one row of submitter_old_name or spouse_old_name.
type OldNameRow struct {
	OwnerID             int
	NaccID              int
	Index               *int
	Title               *string
	FirstName           *string
	LastName            *string
	TitleEN             *string
	FirstNameEN         *string
	LastNameEN          *string
	LatestSubmittedDate string
}

// SpouseRow is one row of the spouse_info table.
type SpouseRow struct {
	SpouseID            int
	SubmitterID         int
	NaccID              int
	Title               *string
	FirstName           *string
	LastName            *string
	TitleEN             *string
	FirstNameEN         *string
	LastNameEN          *string
	Age                 *int
	Status              *string
	StatusDate          *int
	StatusMonth         *int
	StatusYear          *int
	SubDistrict         *string
	District            *string
	Province            *string
	PostCode            *string
	PhoneNumber         *string
	MobileNumber        *string
	Email               *string
	LatestSubmittedDate string
}

// RelativeRow is one row of the relative_info table.
type RelativeRow struct {
	RelativeID          int
	SubmitterID         int
	NaccID              int
	Index               *int
	RelationshipID      *int
	Title               *string
	FirstName           *string
	LastName            *string
	Age                 *int
	Address             *string
	Occupation          *string
	School              *string
	Workplace           *string
	WorkplaceLocation   *string
	LatestSubmittedDate string
	IsDeath             bool
}

// StatementRow is one row of the statement table.
type StatementRow struct {
	NaccID              int
	StatementTypeID     *int
	ValuationSubmitter  *float64
	SubmitterID         int
	ValuationSpouse     *float64
	ValuationChild      *float64
	LatestSubmittedDate string
}

// StatementDetailRow is one row of the statement_detail table.
type StatementDetailRow struct {
	NaccID                int
	SubmitterID           int
	StatementDetailTypeID *int
	Index                 *int
	Detail                *string
	ValuationSubmitter    *float64
	ValuationSpouse       *float64
	ValuationChild        *float64
	Note                  *string
	LatestSubmittedDate   string
}

// AssetRow is one row of the asset table.
type AssetRow struct {
	AssetID                int
	SubmitterID            int
	NaccID                 int
	Index                  *int
	AssetTypeID            int
	AssetTypeOther         *string
	AssetName              *string
	DateAcquiringTypeID    *int
	AcquiringDate          *int
	AcquiringMonth         *int
	AcquiringYear          *int
	DateEndingTypeID       *int
	EndingDate             *int
	EndingMonth            *int
	EndingYear             *int
	AssetAcquisitionTypeID *int
	Valuation              *float64
	OwnerBySubmitter       bool
	OwnerBySpouse          bool
	OwnerByChild           bool
	LatestSubmittedDate    string
}

// LandInfoRow is one row of asset_land_info.
type LandInfoRow struct {
	AssetID             int
	NaccID              int
	LandType            string
	LandNumber          string
	AreaRai             string
	AreaNgan            string
	AreaSqwa            string
	Province            string
	LatestSubmittedDate string
}

// BuildingInfoRow is one row of asset_building_info.
type BuildingInfoRow struct {
	AssetID             int
	NaccID              int
	BuildingType        string
	BuildingName        string
	RoomNumber          string
	Province            string
	LatestSubmittedDate string
}

// VehicleInfoRow is one row of asset_vehicle_info.
type VehicleInfoRow struct {
	AssetID             int
	NaccID              int
	VehicleType         string
	Brand               string
	Model               string
	Registration        string
	Province            string
	LatestSubmittedDate string
}

// OtherInfoRow is one row of asset_other_asset_info.
type OtherInfoRow struct {
	AssetID             int
	NaccID              int
	Description         string
	LatestSubmittedDate string
}

// SummaryRow is the one-per-document summary combining registry-sourced
// identity fields with extraction-derived aggregates. The nd_* fields are
// resolved exclusively through the registries (never from the LLM payload);
// spouse fields are the sole payload-sourced exception.
type SummaryRow struct {
	NaccID                          int
	DocID                           string
	NdTitle                         string
	NdFirstName                     string
	NdLastName                      string
	NdPosition                      string
	NdSubmittedDate                 string
	SubmitterID                     int
	SpouseTitle                     *string
	SpouseFirstName                 *string
	SpouseLastName                  *string
	SpouseAge                       *int
	StatementValuationSubmitterTotal float64
	StatementValuationSpouseTotal    float64
	StatementValuationChildTotal     float64
	AssetCount                      int
	RelativeCount                   int
	ExtractionStatus                string
	ConfidenceScore                 float64
	LatestSubmittedDate             string
}
