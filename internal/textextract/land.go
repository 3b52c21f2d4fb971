package textextract

import (
	"regexp"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// Title/deed number patterns, highest priority first.
var landNumberRules = []rule{
	{regexp.MustCompile(`(?:โฉนด(?:ที่ดิน)?|น\.ส\.3\s*ก\.?|น\.ส\.3|ส\.ป\.ก\.(?:\s*4-01)?)\s*เลขที่\s*([0-9]+)`), group(1)},
	{regexp.MustCompile(`เลขที่\s*([0-9]+)`), group(1)},
	{regexp.MustCompile(`เลขโฉนด\s*([0-9]+)`), group(1)},
}

// Area quantities keyed by unit word: rai and ngan (the larger units) and
// square wa (the smaller one).
var (
	areaRaiRe  = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*ไร่`)
	areaNganRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*งาน`)
	areaSqwaRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:ตารางวา|ตร\.วา|ตร\.ว\.)`)
)

// ExtractLand derives a land sub-record from an asset's free-text name.
func ExtractLand(assetTypeID int, text string) entity.LandInfo {
	info := entity.LandInfo{
		LandType:   constants.LandTypeName[assetTypeID],
		LandNumber: firstMatch(text, landNumberRules),
		Province:   extractProvince(text),
	}
	if m := areaRaiRe.FindStringSubmatch(text); m != nil {
		info.AreaRai = m[1]
	}
	if m := areaNganRe.FindStringSubmatch(text); m != nil {
		info.AreaNgan = m[1]
	}
	if m := areaSqwaRe.FindStringSubmatch(text); m != nil {
		info.AreaSqwa = m[1]
	}
	return info
}
