package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_CoversEveryViperKey(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	keys := NewSchemaProvider().GetSchema()

	documented := make(map[string]bool, len(keys))
	for _, k := range keys {
		documented[k.Key] = true
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}
	for _, key := range mgr.viper.AllKeys() {
		assert.True(t, documented[key], "undocumented key %s", key)
	}
}

func TestSchemaProvider_EnvNames(t *testing.T) {
	env := make(map[string]string)
	for _, k := range NewSchemaProvider().GetSchema() {
		env[k.Key] = k.Env
	}

	assert.Equal(t, "FONTPICKER_CACHE_TTL", env["cache_ttl"])
	assert.Equal(t, "FONTPICKER_CATALOG_REMOTE_URL", env["catalog.remote_url"])
	assert.Equal(t, "FONTPICKER_LOG_LEVEL", env["logging.level"])
}

func TestMarshalSchema(t *testing.T) {
	data, err := MarshalSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "expanded root schema has properties")
	for _, key := range []string{"weights", "include_italic", "disable_remote_catalog", "cache_ttl", "catalog", "cache", "resolver", "logging", "serve"} {
		assert.Contains(t, props, key)
	}
	assert.Contains(t, string(data), `"postgres"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), schemaFileName)

	require.NoError(t, GenerateSchemaFile(path))
	assert.FileExists(t, path)
}
