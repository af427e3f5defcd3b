package refine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchema accepts either webhook shape: the current envelope with a
// refinedReport object, or the legacy bare aiGenerated object. Anything else
// is a remote rejection, not something to apply partially.
func responseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"anyOf": []any{
			map[string]any{
				"required": []string{"refinedReport"},
				"properties": map[string]any{
					"success":     map[string]any{"type": "boolean"},
					"captureMode": map[string]any{"type": "string", "enum": []string{"freeform", "guided"}},
					"refinedReport": map[string]any{
						"type": "object",
					},
					"originalInput": map[string]any{
						"type": "object",
					},
				},
			},
			map[string]any{
				"required": []string{"aiGenerated"},
				"properties": map[string]any{
					"aiGenerated": map[string]any{
						"type": "object",
					},
				},
			},
		},
	}
}

// validateResponse validates the raw webhook body against responseSchema.
func validateResponse(data []byte) error {
	b, err := json.Marshal(responseSchema())
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
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}
