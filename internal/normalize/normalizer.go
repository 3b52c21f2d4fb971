// Package normalize decomposes canonical documents into the fixed
// relational schema: surrogate keys, type-conditional asset sub-tables,
// and registry overrides.
package normalize

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
	"github.com/nacc-tools/disclosure-etl/internal/textextract"
)

// Tables holds the in-memory accumulators, one slice per relational table.
type Tables struct {
	SubmitterInfos     []entity.SubmitterRow
	SubmitterPositions []entity.PositionRow
	SubmitterOldNames  []entity.OldNameRow
	SpouseInfos        []entity.SpouseRow
	SpousePositions    []entity.PositionRow
	SpouseOldNames     []entity.OldNameRow
	RelativeInfos      []entity.RelativeRow
	Statements         []entity.StatementRow
	StatementDetails   []entity.StatementDetailRow
	Assets             []entity.AssetRow
	LandInfos          []entity.LandInfoRow
	BuildingInfos      []entity.BuildingInfoRow
	VehicleInfos       []entity.VehicleInfoRow
	OtherInfos         []entity.OtherInfoRow
	Summaries          []entity.SummaryRow
}

func (t *Tables) absorb(other *Tables) {
	t.SubmitterInfos = append(t.SubmitterInfos, other.SubmitterInfos...)
	t.SubmitterPositions = append(t.SubmitterPositions, other.SubmitterPositions...)
	t.SubmitterOldNames = append(t.SubmitterOldNames, other.SubmitterOldNames...)
	t.SpouseInfos = append(t.SpouseInfos, other.SpouseInfos...)
	t.SpousePositions = append(t.SpousePositions, other.SpousePositions...)
	t.SpouseOldNames = append(t.SpouseOldNames, other.SpouseOldNames...)
	t.RelativeInfos = append(t.RelativeInfos, other.RelativeInfos...)
	t.Statements = append(t.Statements, other.Statements...)
	t.StatementDetails = append(t.StatementDetails, other.StatementDetails...)
	t.Assets = append(t.Assets, other.Assets...)
	t.LandInfos = append(t.LandInfos, other.LandInfos...)
	t.BuildingInfos = append(t.BuildingInfos, other.BuildingInfos...)
	t.VehicleInfos = append(t.VehicleInfos, other.VehicleInfos...)
	t.OtherInfos = append(t.OtherInfos, other.OtherInfos...)
	t.Summaries = append(t.Summaries, other.Summaries...)
}

// Normalizer decomposes canonical documents into relational rows. Its
// accumulators and sequence are shared, mutable, process-lifetime state:
// exactly one logical writer may call Process at a time.
type Normalizer struct {
	logger *slog.Logger
	reg    *registry.Registry
	seq    *Sequence
	now    func() time.Time

	Tables Tables
}

// NewNormalizer builds a Normalizer over the given registry and sequence.
func NewNormalizer(reg *registry.Registry, seq *Sequence, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = registry.New(logger)
	}
	if seq == nil {
		seq = NewSequence()
	}
	return &Normalizer{logger: logger, reg: reg, seq: seq, now: time.Now}
}

// Process decomposes one canonical document into rows across the
// accumulators and returns the submitter_id used. A nil submitterID takes
// the next value from the shared sequence.
//
// When docInfo is non-nil its doc_id/nacc_id replace the identifiers
// embedded in the document for every derived row. All rows are derived
// before any accumulator is touched, so a failed document never leaves a
// partial write behind.
func (n *Normalizer) Process(doc *entity.CanonicalDocument, docInfo *registry.DocInfo, submitterID *int) (int, error) {
	if doc == nil {
		return 0, fmt.Errorf("normalize: nil canonical document")
	}

	sid := 0
	if submitterID != nil {
		sid = *submitterID
	} else {
		sid = n.seq.NextSubmitter()
	}

	docID := doc.DocID
	naccID := doc.NaccID
	if docInfo != nil {
		docID = docInfo.DocID
		naccID = docInfo.NaccID
	}

	today := n.now().Format("2006-01-02")
	var batch Tables

	n.processSubmitter(&batch, doc.SubmitterInfo, sid, naccID, docID, today)
	n.processSpouse(&batch, doc.SpouseInfo, sid, naccID, today)
	n.processRelatives(&batch, doc.Relatives, sid, naccID, today)
	n.processStatements(&batch, doc.Statements, sid, naccID, today)
	n.processStatementDetails(&batch, doc.StatementDetails, sid, naccID, today)
	n.processAssets(&batch, doc.Assets, sid, naccID, today)
	n.generateSummary(&batch, doc, sid, naccID, docID, today)

	n.Tables.absorb(&batch)

	n.logger.Info("normalize.doc.ok",
		"doc_id", docID,
		"nacc_id", naccID,
		"submitter_id", sid,
		"assets", len(batch.Assets),
		"statements", len(batch.Statements),
		"relatives", len(batch.RelativeInfos),
	)
	return sid, nil
}

func (n *Normalizer) processSubmitter(batch *Tables, sub *entity.SubmitterInfo, sid, naccID int, docID, today string) {
	if sub == nil {
		return
	}
	batch.SubmitterInfos = append(batch.SubmitterInfos, entity.SubmitterRow{
		SubmitterID:         sid,
		NaccID:              naccID,
		DocID:               docID,
		Title:               sub.Title,
		FirstName:           sub.FirstName,
		LastName:            sub.LastName,
		Age:                 sub.Age,
		MaritalStatus:       sub.MaritalStatus,
		StatusDate:          sub.StatusDate,
		StatusMonth:         sub.StatusMonth,
		StatusYear:          sub.StatusYear,
		SubDistrict:         sub.SubDistrict,
		District:            sub.District,
		Province:            sub.Province,
		PostCode:            sub.PostCode,
		PhoneNumber:         sub.PhoneNumber,
		MobileNumber:        sub.MobileNumber,
		Email:               sub.Email,
		LatestSubmittedDate: today,
	})
	batch.SubmitterPositions = append(batch.SubmitterPositions, positionRows(sub.Positions, sid, naccID, today)...)
	batch.SubmitterOldNames = append(batch.SubmitterOldNames, oldNameRows(sub.OldNames, sid, naccID, today)...)
}

func (n *Normalizer) processSpouse(batch *Tables, spouse *entity.SpouseInfo, sid, naccID int, today string) {
	if spouse == nil {
		return
	}
	spouseID := n.seq.NextSpouse()
	batch.SpouseInfos = append(batch.SpouseInfos, entity.SpouseRow{
		SpouseID:            spouseID,
		SubmitterID:         sid,
		NaccID:              naccID,
		Title:               spouse.Title,
		FirstName:           spouse.FirstName,
		LastName:            spouse.LastName,
		TitleEN:             spouse.TitleEN,
		FirstNameEN:         spouse.FirstNameEN,
		LastNameEN:          spouse.LastNameEN,
		Age:                 spouse.Age,
		Status:              spouse.Status,
		StatusDate:          spouse.StatusDate,
		StatusMonth:         spouse.StatusMonth,
		StatusYear:          spouse.StatusYear,
		SubDistrict:         spouse.SubDistrict,
		District:            spouse.District,
		Province:            spouse.Province,
		PostCode:            spouse.PostCode,
		PhoneNumber:         spouse.PhoneNumber,
		MobileNumber:        spouse.MobileNumber,
		Email:               spouse.Email,
		LatestSubmittedDate: today,
	})
	batch.SpousePositions = append(batch.SpousePositions, positionRows(spouse.Positions, spouseID, naccID, today)...)
	batch.SpouseOldNames = append(batch.SpouseOldNames, oldNameRows(spouse.OldNames, spouseID, naccID, today)...)
}

func (n *Normalizer) processRelatives(batch *Tables, relatives []entity.Relative, sid, naccID int, today string) {
	for _, rel := range relatives {
		batch.RelativeInfos = append(batch.RelativeInfos, entity.RelativeRow{
			RelativeID:          n.seq.NextRelative(),
			SubmitterID:         sid,
			NaccID:              naccID,
			Index:               rel.Index,
			RelationshipID:      rel.RelationshipID,
			Title:               rel.Title,
			FirstName:           rel.FirstName,
			LastName:            rel.LastName,
			Age:                 rel.Age,
			Address:             rel.Address,
			Occupation:          rel.Occupation,
			School:              rel.School,
			Workplace:           rel.Workplace,
			WorkplaceLocation:   rel.WorkplaceLocation,
			LatestSubmittedDate: today,
			IsDeath:             rel.IsDeath,
		})
	}
}

func (n *Normalizer) processStatements(batch *Tables, statements []entity.Statement, sid, naccID int, today string) {
	for _, st := range statements {
		batch.Statements = append(batch.Statements, entity.StatementRow{
			NaccID:              naccID,
			StatementTypeID:     st.StatementTypeID,
			ValuationSubmitter:  st.ValuationSubmitter,
			SubmitterID:         sid,
			ValuationSpouse:     st.ValuationSpouse,
			ValuationChild:      st.ValuationChild,
			LatestSubmittedDate: today,
		})
	}
}

func (n *Normalizer) processStatementDetails(batch *Tables, details []entity.StatementDetail, sid, naccID int, today string) {
	for _, d := range details {
		batch.StatementDetails = append(batch.StatementDetails, entity.StatementDetailRow{
			NaccID:                naccID,
			SubmitterID:           sid,
			StatementDetailTypeID: d.StatementDetailTypeID,
			Index:                 d.Index,
			Detail:                d.Detail,
			ValuationSubmitter:    d.ValuationSubmitter,
			ValuationSpouse:       d.ValuationSpouse,
			ValuationChild:        d.ValuationChild,
			Note:                  d.Note,
			LatestSubmittedDate:   today,
		})
	}
}

// processAssets emits the asset row plus exactly one sub-table row per
// asset, chosen by the type-code partition. Land/building/vehicle
// sub-records missing their key identifying field are recovered from the
// asset's free-text name.
func (n *Normalizer) processAssets(batch *Tables, assets []entity.Asset, sid, naccID int, today string) {
	for _, asset := range assets {
		assetID := n.seq.NextAsset()
		typeID := constants.AssetOther
		if asset.AssetTypeID != nil {
			typeID = *asset.AssetTypeID
		}
		name := strDeref(asset.AssetName)

		batch.Assets = append(batch.Assets, entity.AssetRow{
			AssetID:                assetID,
			SubmitterID:            sid,
			NaccID:                 naccID,
			Index:                  asset.Index,
			AssetTypeID:            typeID,
			AssetTypeOther:         asset.AssetTypeOther,
			AssetName:              asset.AssetName,
			DateAcquiringTypeID:    asset.DateAcquiringTypeID,
			AcquiringDate:          asset.AcquiringDate,
			AcquiringMonth:         asset.AcquiringMonth,
			AcquiringYear:          asset.AcquiringYear,
			DateEndingTypeID:       asset.DateEndingTypeID,
			EndingDate:             asset.EndingDate,
			EndingMonth:            asset.EndingMonth,
			EndingYear:             asset.EndingYear,
			AssetAcquisitionTypeID: asset.AssetAcquisitionTypeID,
			Valuation:              asset.Valuation,
			OwnerBySubmitter:       asset.OwnerBySubmitter,
			OwnerBySpouse:          asset.OwnerBySpouse,
			OwnerByChild:           asset.OwnerByChild,
			LatestSubmittedDate:    today,
		})

		switch constants.GroupForAssetType(typeID) {
		case constants.GroupLand:
			info := entity.LandInfo{}
			if asset.LandInfo != nil {
				info = *asset.LandInfo
			}
			if info.LandNumber == "" {
				info = textextract.ExtractLand(typeID, name)
			}
			batch.LandInfos = append(batch.LandInfos, entity.LandInfoRow{
				AssetID: assetID, NaccID: naccID,
				LandType: info.LandType, LandNumber: info.LandNumber,
				AreaRai: info.AreaRai, AreaNgan: info.AreaNgan, AreaSqwa: info.AreaSqwa,
				Province: info.Province, LatestSubmittedDate: today,
			})
		case constants.GroupBuilding:
			info := entity.BuildingInfo{}
			if asset.BuildingInfo != nil {
				info = *asset.BuildingInfo
			}
			if info.BuildingName == "" {
				info = textextract.ExtractBuilding(typeID, name)
			}
			batch.BuildingInfos = append(batch.BuildingInfos, entity.BuildingInfoRow{
				AssetID: assetID, NaccID: naccID,
				BuildingType: info.BuildingType, BuildingName: info.BuildingName,
				RoomNumber: info.RoomNumber, Province: info.Province,
				LatestSubmittedDate: today,
			})
		case constants.GroupVehicle:
			info := entity.VehicleInfo{}
			if asset.VehicleInfo != nil {
				info = *asset.VehicleInfo
			}
			if info.Brand == "" {
				info = textextract.ExtractVehicle(typeID, name)
			}
			batch.VehicleInfos = append(batch.VehicleInfos, entity.VehicleInfoRow{
				AssetID: assetID, NaccID: naccID,
				VehicleType: info.VehicleType, Brand: info.Brand, Model: info.Model,
				Registration: info.Registration, Province: info.Province,
				LatestSubmittedDate: today,
			})
		default:
			batch.OtherInfos = append(batch.OtherInfos, entity.OtherInfoRow{
				AssetID: assetID, NaccID: naccID,
				Description:         name,
				LatestSubmittedDate: today,
			})
		}
	}
}

// generateSummary emits the one-per-document summary row. The nd_* identity
// fields resolve through the detail registry, then the submitter registry,
// then the sentinel, never the LLM payload. Spouse fields are the sole
// exception: no registry exists for spouses, so they come from the payload.
func (n *Normalizer) generateSummary(batch *Tables, doc *entity.CanonicalDocument, sid, naccID int, docID, today string) {
	detail := n.reg.DetailByNaccID(naccID)
	if detail == nil {
		detail = &registry.NaccDetail{}
		n.logger.Warn("normalize.summary.detail_miss", "doc_id", docID, "nacc_id", naccID)
	}

	// The submitter registry is linked by name; detail names take priority
	// over extracted ones for the lookup itself.
	first, last := detail.FirstName, detail.LastName
	if first == "" && doc.SubmitterInfo != nil {
		first, last = strDeref(doc.SubmitterInfo.FirstName), strDeref(doc.SubmitterInfo.LastName)
	}
	sub := n.reg.FindSubmitter(first, last)
	if sub == nil {
		sub = &registry.SubmitterRecord{}
	}

	var totalSubmitter, totalSpouse, totalChild float64
	for _, st := range doc.Statements {
		totalSubmitter += floatDeref(st.ValuationSubmitter)
		totalSpouse += floatDeref(st.ValuationSpouse)
		totalChild += floatDeref(st.ValuationChild)
	}

	row := entity.SummaryRow{
		NaccID:                           naccID,
		DocID:                            docID,
		NdTitle:                          Resolve(detail.Title, sub.Title),
		NdFirstName:                      Resolve(detail.FirstName, sub.FirstName),
		NdLastName:                       Resolve(detail.LastName, sub.LastName),
		NdPosition:                       Resolve(detail.Position, sub.Position),
		NdSubmittedDate:                  Resolve(detail.SubmittedDate, sub.SubmittedDate),
		SubmitterID:                      sid,
		StatementValuationSubmitterTotal: totalSubmitter,
		StatementValuationSpouseTotal:    totalSpouse,
		StatementValuationChildTotal:     totalChild,
		AssetCount:                       len(doc.Assets),
		RelativeCount:                    len(doc.Relatives),
		ExtractionStatus:                 string(doc.ExtractionStatus),
		ConfidenceScore:                  doc.ConfidenceScore,
		LatestSubmittedDate:              today,
	}
	if spouse := doc.SpouseInfo; spouse != nil {
		row.SpouseTitle = spouse.Title
		row.SpouseFirstName = spouse.FirstName
		row.SpouseLastName = spouse.LastName
		row.SpouseAge = spouse.Age
	}
	batch.Summaries = append(batch.Summaries, row)
}

func positionRows(positions []entity.Position, ownerID, naccID int, today string) []entity.PositionRow {
	rows := make([]entity.PositionRow, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, entity.PositionRow{
			OwnerID:                ownerID,
			NaccID:                 naccID,
			Index:                  p.Index,
			PositionPeriodTypeID:   p.PositionPeriodTypeID,
			Position:               p.Position,
			PositionCategoryTypeID: p.PositionCategoryTypeID,
			Workplace:              p.Workplace,
			WorkplaceLocation:      p.WorkplaceLocation,
			StartDate:              p.StartDate,
			StartMonth:             p.StartMonth,
			StartYear:              p.StartYear,
			EndDate:                p.EndDate,
			EndMonth:               p.EndMonth,
			EndYear:                p.EndYear,
			Note:                   p.Note,
			LatestSubmittedDate:    today,
		})
	}
	return rows
}

func oldNameRows(oldNames []entity.OldName, ownerID, naccID int, today string) []entity.OldNameRow {
	rows := make([]entity.OldNameRow, 0, len(oldNames))
	for _, o := range oldNames {
		rows = append(rows, entity.OldNameRow{
			OwnerID:             ownerID,
			NaccID:              naccID,
			Index:               o.Index,
			Title:               o.Title,
			FirstName:           o.FirstName,
			LastName:            o.LastName,
			TitleEN:             o.TitleEN,
			FirstNameEN:         o.FirstNameEN,
			LastNameEN:          o.LastNameEN,
			LatestSubmittedDate: today,
		})
	}
	return rows
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatDeref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
