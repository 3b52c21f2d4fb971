package textextract

import (
	"regexp"
	"strings"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// brandLexicon is the curated vehicle-brand list. Matching is
// case-insensitive; multi-word and hyphenated spellings come before their
// single-word substrings so the first hit is the most specific one.
var brandLexicon = []string{
	"Mercedes-Benz",
	"Mercedes Benz",
	"Mercedes",
	"Harley Davidson",
	"Harley-Davidson",
	"Land Rover",
	"Alfa Romeo",
	"Aston Martin",
	"Rolls-Royce",
	"Rolls Royce",
	"Toyota",
	"Honda",
	"Nissan",
	"Mazda",
	"Mitsubishi",
	"Isuzu",
	"Ford",
	"Chevrolet",
	"BMW",
	"Benz",
	"Audi",
	"Volkswagen",
	"Volvo",
	"Lexus",
	"Porsche",
	"Ferrari",
	"Lamborghini",
	"Bentley",
	"Suzuki",
	"Subaru",
	"Hyundai",
	"Kia",
	"Mini",
	"Yamaha",
	"Kawasaki",
	"Ducati",
	"Vespa",
	"โตโยต้า",
	"ฮอนด้า",
	"นิสสัน",
	"มาสด้า",
	"อีซูซุ",
	"เบนซ์",
	"บีเอ็มดับเบิลยู",
	"ยามาฮ่า",
	"เวสป้า",
}

var brandRes = buildBrandRes()

func buildBrandRes() []rule {
	rules := make([]rule, 0, len(brandLexicon))
	for _, b := range brandLexicon {
		brand := b
		rules = append(rules, rule{
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(b)),
			pick: func([]string) string { return brand },
		})
	}
	return rules
}

// brandGuessRe backs the no-lexicon-match fallback: a vehicle-type word
// followed by a token. Purely numeric candidates are rejected.
var (
	brandGuessRe = regexp.MustCompile(`(?:รถยนต์|รถจักรยานยนต์|มอเตอร์ไซค์|รถ|เรือ)\s+([A-Za-zก-๙0-9\-]+)`)
	numericRe    = regexp.MustCompile(`^[0-9]+$`)
	vehicleWordRe = regexp.MustCompile(`รถยนต์|รถจักรยานยนต์|มอเตอร์ไซค์|เรือ`)
	thaiTokenRe  = regexp.MustCompile(`^[ก-๙]`)
)

// Registration patterns, highest priority first. The second is the shape of
// a government-issued plate: digit run, Thai-letter run, digit run.
var registrationRules = []rule{
	{regexp.MustCompile(`ทะเบียน\s*([0-9]{0,2}\s?[ก-ฮ]{1,3}\s?[0-9]{1,4})`), group(1)},
	{regexp.MustCompile(`([0-9]{1,2})\s*([ก-ฮ]{1,3})\s*([0-9]{1,4})`), func(m []string) string {
		return m[1] + m[2] + " " + m[3]
	}},
	{regexp.MustCompile(`([ก-ฮ]{2}\s?[0-9]{1,4})`), group(1)},
}

// ExtractVehicle derives a vehicle sub-record from an asset's free-text name.
func ExtractVehicle(assetTypeID int, text string) entity.VehicleInfo {
	info := entity.VehicleInfo{
		VehicleType:  constants.VehicleTypeName[assetTypeID],
		Registration: firstMatch(text, registrationRules),
		Province:     extractProvince(text),
	}
	if info.VehicleType == "" {
		info.VehicleType = vehicleWordRe.FindString(text)
	}

	for _, r := range brandRes {
		if loc := r.re.FindStringIndex(text); loc != nil {
			info.Brand = r.pick(nil)
			info.Model = modelAfter(text[loc[1]:])
			return info
		}
	}

	// No lexicon hit: guess the token after the vehicle-type word.
	if m := brandGuessRe.FindStringSubmatch(text); m != nil && !numericRe.MatchString(m[1]) {
		info.Brand = m[1]
		if idx := strings.Index(text, m[1]); idx >= 0 {
			info.Model = modelAfter(text[idx+len(m[1]):])
		}
	}
	return info
}

// modelAfter takes the tokens immediately following a brand mention, stopping
// at Thai text (registration, province and similar trailing cues).
func modelAfter(rest string) string {
	fields := strings.Fields(rest)
	var kept []string
	for _, tok := range fields {
		if thaiTokenRe.MatchString(tok) || len(kept) == 3 {
			break
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
