package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// correctionSchema constrains reviewer corrections at the wire level.
// Empty strings mean "keep the extracted value" and are always allowed.
var correctionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"total_value": map[string]any{
			"type":    "string",
			"pattern": `^$|^\d+(\.\d{1,2})?$`,
		},
		"due_date": map[string]any{
			"type":    "string",
			"pattern": `^$|^\d{4}-\d{2}-\d{2}$`,
		},
		"invoice_number": map[string]any{
			"type":    "string",
			"pattern": `^$|^\d{1,20}$`,
		},
		"carrier": map[string]any{
			"type":      "string",
			"maxLength": 32,
		},
	},
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
