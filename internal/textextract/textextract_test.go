package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nacc-tools/disclosure-etl/constants"
)

func TestExtractLandDeedNumberAndProvince(t *testing.T) {
	text := "โฉนดที่ดิน เลขที่ 114172 แขวงบางกะปิ เขตห้วยขวาง กรุงเทพมหานคร"
	info := ExtractLand(constants.AssetLandChanote, text)

	assert.Equal(t, "โฉนด", info.LandType)
	assert.Equal(t, "114172", info.LandNumber)
	assert.Equal(t, "กรุงเทพมหานคร", info.Province)
}

func TestExtractLandAreaUnits(t *testing.T) {
	text := "น.ส.3 ก. เลขที่ 442 เนื้อที่ 5 ไร่ 2 งาน 36.5 ตารางวา จังหวัดขอนแก่น"
	info := ExtractLand(constants.AssetLandNS3K, text)

	assert.Equal(t, "น.ส.3 ก.", info.LandType)
	assert.Equal(t, "442", info.LandNumber)
	assert.Equal(t, "5", info.AreaRai)
	assert.Equal(t, "2", info.AreaNgan)
	assert.Equal(t, "36.5", info.AreaSqwa)
	assert.Equal(t, "ขอนแก่น", info.Province)
}

func TestExtractLandAbbreviatedBangkok(t *testing.T) {
	info := ExtractLand(constants.AssetLandChanote, "โฉนด เลขที่ 99 กรุงเทพฯ")
	assert.Equal(t, "กรุงเทพมหานคร", info.Province)
}

func TestExtractLandNothingFound(t *testing.T) {
	info := ExtractLand(constants.AssetLandSPK, "ที่ดินมรดก")
	assert.Equal(t, "ส.ป.ก.", info.LandType)
	assert.Empty(t, info.LandNumber)
	assert.Empty(t, info.Province)
}

func TestExtractBuildingRoomNumber(t *testing.T) {
	text := "ห้องชุดเลขที่ 120/45 อาคารลุมพินีเพลส จังหวัดนนทบุรี"
	info := ExtractBuilding(constants.AssetCondo, text)

	assert.Equal(t, "ห้องชุด", info.BuildingType)
	assert.Equal(t, text, info.BuildingName)
	assert.Equal(t, "120/45", info.RoomNumber)
	assert.Equal(t, "นนทบุรี", info.Province)
}

func TestExtractBuildingNoRoom(t *testing.T) {
	info := ExtractBuilding(constants.AssetHouseSingle, "บ้านเดี่ยว 2 ชั้น จ.เชียงใหม่")
	assert.Equal(t, "บ้านเดี่ยว", info.BuildingType)
	assert.Empty(t, info.RoomNumber)
	assert.Equal(t, "เชียงใหม่", info.Province)
}

func TestExtractVehicleBrandModel(t *testing.T) {
	info := ExtractVehicle(constants.AssetCar, "รถยนต์ Mercedes Benz S400 Hybrid")

	assert.Equal(t, "รถยนต์", info.VehicleType)
	assert.Equal(t, "Mercedes Benz", info.Brand)
	assert.Equal(t, "S400 Hybrid", info.Model)
	assert.Empty(t, info.Registration)
}

func TestExtractVehicleRegistration(t *testing.T) {
	info := ExtractVehicle(constants.AssetCar, "Toyota Camry ทะเบียน 1กข 2345 กรุงเทพมหานคร")

	assert.Equal(t, "Toyota", info.Brand)
	assert.Equal(t, "1กข 2345", info.Registration)
	assert.Equal(t, "กรุงเทพมหานคร", info.Province)
}

func TestExtractVehicleThaiBrand(t *testing.T) {
	info := ExtractVehicle(constants.AssetMotorcycle, "รถจักรยานยนต์ ยามาฮ่า")

	assert.Equal(t, "รถจักรยานยนต์", info.VehicleType)
	assert.Equal(t, "ยามาฮ่า", info.Brand)
}

func TestExtractVehicleGuessedBrandSkipsNumbers(t *testing.T) {
	info := ExtractVehicle(constants.AssetCar, "รถยนต์ 2500 ซีซี")
	assert.Empty(t, info.Brand)
}

func TestExtractVehicleUnknownTypeUsesTypeWord(t *testing.T) {
	info := ExtractVehicle(constants.AssetOther, "เรือยนต์ Yamaha")
	assert.Equal(t, "เรือ", info.VehicleType)
	assert.Equal(t, "Yamaha", info.Brand)
}
