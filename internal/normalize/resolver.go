package normalize

import "github.com/nacc-tools/disclosure-etl/constants"

// Resolve returns the first non-empty candidate in source order, or the
// export sentinel when every source is empty. Pure; used by summary
// generation, where the resolved value goes straight to the export boundary.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return constants.Sentinel
}
