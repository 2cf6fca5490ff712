package ui

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrides reads a literal override table from YAML: component name to
// attribute name to value. Computed (function-valued) overrides cannot be
// expressed in configuration; register those in code via WithOverride.
//
//	button:
//	  class: "rounded-full px-6"
//	flash:
//	  ttl: 8000
//	  close: false
//	flash_group:
//	  include_kinds: [info, error]
func LoadOverrides(r io.Reader) (Overrides, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ui: reading overrides: %w", err)
	}

	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ui: parsing overrides: %w", err)
	}

	out := make(Overrides, len(raw))
	for component, attrs := range raw {
		entry := make(map[string]Value, len(attrs))
		for attr, v := range attrs {
			entry[attr] = Lit(v)
		}
		out[component] = entry
	}
	return out, nil
}

// LoadOverridesFile reads a literal override table from a YAML file.
func LoadOverridesFile(path string) (Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ui: opening overrides file: %w", err)
	}
	defer f.Close()
	return LoadOverrides(f)
}
