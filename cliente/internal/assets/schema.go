package assets

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const blockTypesSchemaURL = "block_types.schema.json"

// blockTypesSchema descreve o arquivo block_types.yaml.
const blockTypesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["block_types"],
  "additionalProperties": false,
  "properties": {
    "block_types": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "height", "textures"],
        "additionalProperties": false,
        "properties": {
          "name":   {"type": "string", "pattern": "^[a-z0-9_]+$"},
          "height": {"type": "number", "exclusiveMinimum": 0, "maximum": 1},
          "tokens": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "textures": {
            "type": "object",
            "required": ["top", "bottom", "sides"],
            "additionalProperties": false,
            "properties": {
              "top":    {"type": "string", "minLength": 1},
              "bottom": {"type": "string", "minLength": 1},
              "sides":  {"type": "string", "minLength": 1}
            }
          }
        }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	s, err := jsonschema.CompileString(blockTypesSchemaURL, blockTypesSchema)
	if err != nil {
		panic(err)
	}
	compiledSchema = s
}

// validateDocument valida o YAML cru contra o schema.
// O YAML é convertido para a forma JSON (map[string]any / []any / float64) antes da validação.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml inválido: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("falha ao converter yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("falha ao converter yaml: %w", err)
	}

	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
