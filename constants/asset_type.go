package constants

// Asset type IDs as used by the NACC relational schema.
const (
	AssetLandChanote        = 1  // โฉนด
	AssetLandNS3K           = 2  // น.ส.3 ก.
	AssetLandNS3            = 3  // น.ส.3
	AssetLandSPK            = 4  // ส.ป.ก.
	AssetHouseSingle        = 10 // บ้านเดี่ยว
	AssetCommercialBuilding = 11 // อาคารพาณิชย์
	AssetCondo              = 13 // ห้องชุด
	AssetCar                = 18 // รถยนต์
	AssetMotorcycle         = 19 // รถจักรยานยนต์
	AssetBoat               = 20 // เรือ
	AssetInsurancePolicy    = 22
	AssetMembership         = 24
	AssetFund               = 25
	AssetBag                = 28
	AssetGun                = 29
	AssetWatch              = 30
	AssetJewelry            = 31
	AssetAmulet             = 32
	AssetGold               = 33
	AssetTownhouse          = 37 // ทาวน์เฮ้าส์
	AssetOther              = 39
)

// AssetGroup partitions the asset type-code space for sub-table dispatch.
// The partition is total and exclusive: every type ID lands in exactly one
// group, and unknown IDs fall through to GroupOther.
type AssetGroup string

const (
	GroupLand     AssetGroup = "land"
	GroupBuilding AssetGroup = "building"
	GroupVehicle  AssetGroup = "vehicle"
	GroupOther    AssetGroup = "other"
)

var (
	landTypeIDs     = map[int]struct{}{AssetLandChanote: {}, AssetLandNS3K: {}, AssetLandNS3: {}, AssetLandSPK: {}}
	buildingTypeIDs = map[int]struct{}{AssetHouseSingle: {}, AssetCommercialBuilding: {}, AssetCondo: {}, AssetTownhouse: {}}
	vehicleTypeIDs  = map[int]struct{}{AssetCar: {}, AssetMotorcycle: {}, AssetBoat: {}}
)

// GroupForAssetType returns the group an asset type ID dispatches to.
func GroupForAssetType(typeID int) AssetGroup {
	if _, ok := landTypeIDs[typeID]; ok {
		return GroupLand
	}
	if _, ok := buildingTypeIDs[typeID]; ok {
		return GroupBuilding
	}
	if _, ok := vehicleTypeIDs[typeID]; ok {
		return GroupVehicle
	}
	return GroupOther
}

// LandTypeName maps land type codes to their document labels.
var LandTypeName = map[int]string{
	AssetLandChanote: "โฉนด",
	AssetLandNS3K:    "น.ส.3 ก.",
	AssetLandNS3:     "น.ส.3",
	AssetLandSPK:     "ส.ป.ก.",
}

// BuildingTypeName maps building type codes to their document labels.
var BuildingTypeName = map[int]string{
	AssetHouseSingle:        "บ้านเดี่ยว",
	AssetCommercialBuilding: "อาคารพาณิชย์",
	AssetCondo:              "ห้องชุด",
	AssetTownhouse:          "ทาวน์เฮ้าส์",
}

// VehicleTypeName maps vehicle type codes to their document labels.
var VehicleTypeName = map[int]string{
	AssetCar:        "รถยนต์",
	AssetMotorcycle: "รถจักรยานยนต์",
	AssetBoat:       "เรือ",
}
