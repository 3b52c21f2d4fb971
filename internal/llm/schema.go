package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// fragmentSchema constrains the shape of a parsed page fragment. Sections
// are all optional so a sparse page still validates; what the model must
// not do is return sections of the wrong type.
const fragmentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"page_number": {"type": "integer"},
		"page_type": {"type": "string"},
		"submitter_info": {"$ref": "#/$defs/person"},
		"spouse_info": {"$ref": "#/$defs/person"},
		"relatives": {"type": "array", "items": {"type": "object"}},
		"statements": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"statement_type_id": {"type": "integer"},
					"valuation_submitter": {"type": "number"},
					"valuation_spouse": {"type": "number"},
					"valuation_child": {"type": "number"}
				}
			}
		},
		"statement_details": {"type": "array", "items": {"type": "object"}},
		"assets": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"asset_type_id": {"type": "integer"},
					"asset_name": {"type": "string"},
					"valuation": {"type": "number"}
				}
			}
		}
	},
	"$defs": {
		"person": {
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"first_name": {"type": "string"},
				"last_name": {"type": "string"},
				"age": {"type": "integer"},
				"positions": {"type": "array", "items": {"type": "object"}},
				"old_names": {"type": "array", "items": {"type": "object"}}
			}
		}
	}
}`

var compiledFragmentSchema = mustCompileFragmentSchema()

func mustCompileFragmentSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("fragment.json", bytes.NewReader([]byte(fragmentSchema))); err != nil {
		panic(fmt.Sprintf("llm: add fragment schema: %v", err))
	}
	return c.MustCompile("fragment.json")
}

// ValidateFragmentJSON checks a sanitized fragment object against the
// schema. Violations are malformed responses.
func ValidateFragmentJSON(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return common.NewAppError("LLM_MALFORMED", "fragment not json", common.ErrMalformedResponse)
	}
	if err := compiledFragmentSchema.Validate(v); err != nil {
		return common.NewAppError("LLM_SCHEMA", err.Error(), common.ErrMalformedResponse)
	}
	return nil
}
