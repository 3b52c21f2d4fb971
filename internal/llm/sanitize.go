package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// Top-level keys a fragment may carry. Anything else the model invents is
// stripped before validation.
var allowedFragmentKeys = map[string]struct{}{
	"page_number":       {},
	"page_type":         {},
	"submitter_info":    {},
	"spouse_info":       {},
	"relatives":         {},
	"statements":        {},
	"statement_details": {},
	"assets":            {},
}

// SanitizeFragmentJSON cleans a recovered fragment object before schema
// validation:
//   - drops null and empty-string values recursively
//   - coerces string-typed numbers in valuation fields to numbers
//   - removes unknown top-level keys
func SanitizeFragmentJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string
	for k := range maps.Clone(m) {
		if _, ok := allowedFragmentKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	cleaned := cleanValue(m, &dropped, "")
	out, err := json.Marshal(cleaned)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.parse.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// valuationKey reports whether a key holds a money amount the schema types
// as number. Models sometimes return these as strings with thousand
// separators.
func valuationKey(k string) bool {
	return strings.HasPrefix(k, "valuation")
}

func cleanValue(v any, dropped *[]string, key string) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range maps.Clone(t) {
			cv := cleanValue(inner, dropped, k)
			if cv == nil {
				delete(t, k)
				*dropped = append(*dropped, k+"(empty)")
				continue
			}
			t[k] = cv
		}
		return t
	case []any:
		out := make([]any, 0, len(t))
		for _, inner := range t {
			if cv := cleanValue(inner, dropped, key); cv != nil {
				out = append(out, cv)
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") {
			return nil
		}
		if valuationKey(key) {
			s = strings.ReplaceAll(s, ",", "")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
			return nil
		}
		return s
	case nil:
		return nil
	default:
		return t
	}
}
