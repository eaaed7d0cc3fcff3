package entity

import "strings"

// ConfigEnvPrefix prefixes environment overrides of configuration keys.
const ConfigEnvPrefix = "HOVERPANE"

// ConfigKeyInfo documents one configuration key for `hoverpane config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "popover.snap.edge_distance".
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	Range       string   `json:"range,omitempty"`
	Section     string   `json:"section"`

	// Env is the environment variable that overrides the key.
	Env string `json:"env"`
	// Live keys are re-read while the terminal host runs and apply to panels
	// opened afterwards. Other keys take effect on the next start.
	Live bool `json:"live"`
}

// ConfigEnvVar returns the default environment override for a dotted key.
func ConfigEnvVar(key string) string {
	return ConfigEnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
