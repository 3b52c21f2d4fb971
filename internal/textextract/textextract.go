// Package textextract recovers structured sub-attributes of land, building
// and vehicle assets from free-text asset descriptions.
//
// Every profile is total: it returns a fully populated record with
// empty-string defaults for anything it cannot find, and never fails.
// Pattern chains are ordered; the first pattern that matches wins and later
// patterns are not tried.
package textextract

import "regexp"

// rule is one (pattern, handler) pair in an ordered chain.
type rule struct {
	re   *regexp.Regexp
	pick func(m []string) string
}

// group returns a handler selecting capture group n.
func group(n int) func(m []string) string {
	return func(m []string) string {
		if n < len(m) {
			return m[n]
		}
		return ""
	}
}

// firstMatch evaluates rules in priority order against text.
func firstMatch(text string, rules []rule) string {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return r.pick(m)
		}
	}
	return ""
}

// bangkok is the capital-city literal: any mention normalizes to the full
// name regardless of how the document abbreviated it.
const bangkok = "กรุงเทพมหานคร"

var bangkokRe = regexp.MustCompile(`กรุงเทพ`)

// provinceRules are the shared province cues, evaluated in order.
var provinceRules = []rule{
	{bangkokRe, func([]string) string { return bangkok }},
	{regexp.MustCompile(`จังหวัด\s*([ก-๙]+)`), group(1)},
	{regexp.MustCompile(`จ\.\s*([ก-๙]+)`), group(1)},
}

// extractProvince applies the shared province cues to text.
func extractProvince(text string) string {
	return firstMatch(text, provinceRules)
}
