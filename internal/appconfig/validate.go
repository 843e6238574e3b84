// internal/appconfig/validate.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const configSchema = `{
  "type": "object",
  "required": ["csv", "html", "top", "variable", "defaultCategory", "columns"],
  "properties": {
    "csv": {"type": "string", "minLength": 1},
    "html": {"type": "string", "minLength": 1},
    "top": {"type": "integer", "minimum": 1},
    "variable": {"type": "string", "pattern": "^[A-Za-z_$][A-Za-z0-9_$]*$"},
    "defaultCategory": {"type": "string", "minLength": 1},
    "logFile": {"type": "string"},
    "columns": {
      "type": "object",
      "required": ["name", "count", "category"],
      "properties": {
        "name": {"$ref": "#/definitions/aliases"},
        "count": {"$ref": "#/definitions/aliases"},
        "category": {"$ref": "#/definitions/aliases"}
      }
    }
  },
  "definitions": {
    "aliases": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// Validate checks the merged configuration against the configuration schema.
func Validate(cfg Config) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewGoLoader(cfg)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errs, ", "))
}
