package textextract

import (
	"regexp"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// Room/unit token patterns, case-insensitive, highest priority first.
var roomNumberRules = []rule{
	{regexp.MustCompile(`(?i)ห้องชุดเลขที่\s*([0-9/\-]+)`), group(1)},
	{regexp.MustCompile(`(?i)ห้องเลขที่\s*([0-9/\-]+)`), group(1)},
	{regexp.MustCompile(`(?i)เลขที่ห้อง\s*([0-9/\-]+)`), group(1)},
	{regexp.MustCompile(`(?i)room\s*(?:no\.?\s*)?([0-9/\-]+)`), group(1)},
}

// ExtractBuilding derives a building sub-record from an asset's free-text
// name. The whole input doubles as the building name.
func ExtractBuilding(assetTypeID int, text string) entity.BuildingInfo {
	return entity.BuildingInfo{
		BuildingType: constants.BuildingTypeName[assetTypeID],
		BuildingName: text,
		RoomNumber:   firstMatch(text, roomNumberRules),
		Province:     extractProvince(text),
	}
}
