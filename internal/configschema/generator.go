// Package configschema provides JSON Schema generation for devtask
// configuration files.
package configschema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
)

// Generate creates a JSON Schema from the Config type for editor autocomplete and validation.
func Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Use yaml struct tags for property names instead of Go field names.
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&config.Config{})

	s.ID = "https://raw.githubusercontent.com/Koran1/25ICN-NewsReport/main/devtask.schema.json"
	s.Title = "devtask"
	s.Description = "Schema for devtask YAML configuration files (devtask.yml)"

	return json.MarshalIndent(s, "", "  ")
}
