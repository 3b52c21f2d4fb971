package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

var fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// RecoverJSON pulls a JSON object out of a model response. Three layers,
// cheapest first: the raw text as-is, the contents of a fenced code block,
// then the span between the first '{' and the last '}'. When none of the
// layers yields valid JSON the response is malformed and the page fails.
func RecoverJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	if m := fencedRe.FindStringSubmatch(trimmed); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	return nil, common.NewAppError("LLM_MALFORMED", "no recoverable json in response", common.ErrMalformedResponse)
}
