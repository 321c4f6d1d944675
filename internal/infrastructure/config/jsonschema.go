package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/fontpicker/config.schema.json"
	schema.Title = "fontpicker configuration"
	schema.Description = "Configuration schema for fontpicker, a Bunny Fonts catalog resolver"
	return schema
}

// MarshalSchema returns the schema as indented JSON.
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// GenerateSchemaFile writes the JSON schema to path, or next to the config
// file when path is empty.
func GenerateSchemaFile(path string) error {
	if path == "" {
		var err error
		if path, err = GetSchemaFile(); err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
	}

	data, err := MarshalSchema()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// JSONSchema restricts the driver to the known values.
func (CacheDriver) JSONSchema() *jsonschema.Schema {
	enum := make([]any, 0, len(CacheDrivers))
	for _, d := range CacheDrivers {
		enum = append(enum, string(d))
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}
