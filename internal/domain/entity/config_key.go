package entity

// ConfigKeyInfo describes a single configuration key for the `config keys` listing.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "cache.driver")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool", "[]int")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values, empty if not an enum
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., ">=0", ">0")
	Range string `json:"range,omitempty"`

	// Env is the environment variable that overrides the key.
	Env string `json:"env"`

	// Section groups related keys (e.g., "Catalog", "Cache")
	Section string `json:"section"`
}
