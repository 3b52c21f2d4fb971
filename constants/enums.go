package constants

// Statement type IDs (the five top-level statement lists).
const (
	StatementCashSecurities = 1
	StatementDeposit        = 2
	StatementLoan           = 3
	StatementLandBuilding   = 4
	StatementLiability      = 5
)

// Relationship IDs for relatives of the submitter.
const (
	RelFather       = 1
	RelMother       = 2
	RelSibling      = 3
	RelChild        = 4
	RelSpouseFather = 5
	RelSpouseMother = 6
)

// Date acquiring type IDs.
const (
	DateExact   = 1
	DateBefore  = 2
	DateUnknown = 3
	DateNoEnd   = 4
)

// Asset acquisition type IDs.
const (
	AcqPurchase    = 1
	AcqInheritance = 2
	AcqGift        = 3
	AcqAssessed    = 4
	AcqMarketValue = 5
	AcqCostBasis   = 6
)

// Position period type IDs.
const (
	PositionFiled       = 1 // ตำแหน่งที่ยื่น
	PositionCurrent     = 2
	PositionPast        = 3
)

// RelationshipName is the lookup context handed to prompt builders.
var RelationshipName = map[int]string{
	RelFather:       "บิดา",
	RelMother:       "มารดา",
	RelSibling:      "พี่น้อง",
	RelChild:        "บุตร",
	RelSpouseFather: "บิดาคู่สมรส",
	RelSpouseMother: "มารดาคู่สมรส",
}

// StatementTypeName is the lookup context handed to prompt builders.
var StatementTypeName = map[int]string{
	StatementCashSecurities: "เงินสด หลักทรัพย์ และสิทธิ",
	StatementDeposit:        "เงินฝาก",
	StatementLoan:           "เงินให้กู้ยืม",
	StatementLandBuilding:   "ที่ดิน โรงเรือน และสิ่งปลูกสร้าง",
	StatementLiability:      "หนี้สิน",
}

// AssetKeywordType maps free-text keywords to asset type IDs. Used when the
// LLM labels an asset by name only.
var AssetKeywordType = map[string]int{
	"โฉนด":          AssetLandChanote,
	"ที่ดิน":        AssetLandChanote,
	"น.ส.3 ก.":      AssetLandNS3K,
	"น.ส.3":         AssetLandNS3,
	"ส.ป.ก.":        AssetLandSPK,
	"บ้านเดี่ยว":    AssetHouseSingle,
	"บ้านพัก":       AssetHouseSingle,
	"อาคารพาณิชย์":  AssetCommercialBuilding,
	"ห้องชุด":       AssetCondo,
	"คอนโด":         AssetCondo,
	"รถยนต์":        AssetCar,
	"รถจักรยานยนต์": AssetMotorcycle,
	"มอเตอร์ไซค์":   AssetMotorcycle,
	"เรือ":          AssetBoat,
	"กรมธรรม์":      AssetInsurancePolicy,
	"ประกันชีวิต":   AssetInsurancePolicy,
	"กองทุน":        AssetFund,
	"กระเป๋า":       AssetBag,
	"ปืน":           AssetGun,
	"นาฬิกา":        AssetWatch,
	"เครื่องประดับ": AssetJewelry,
	"อัญมณี":        AssetJewelry,
	"แหวน":          AssetJewelry,
	"สร้อย":         AssetJewelry,
	"พระเครื่อง":    AssetAmulet,
	"ทองคำ":         AssetGold,
	"ทาวน์เฮ้าส์":   AssetTownhouse,
}
