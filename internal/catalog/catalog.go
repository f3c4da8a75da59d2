// Package catalog supplies the aircraft variant catalog: a built-in set of
// reference variants plus an optional YAML file loaded at startup.
package catalog

import (
	"fmt"
	"os"

	"github.com/conceptair/sizing-service/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// File is the YAML document shape of an on-disk variant catalog.
type File struct {
	Variants []model.AircraftVariant `yaml:"variants"`
}

// LoadFile reads and validates a YAML variant catalog. Every variant must
// validate; a single bad entry fails the whole load so a typo cannot
// silently drop a variant.
func LoadFile(path string) ([]model.AircraftVariant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variant catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML variant catalog document.
func Parse(data []byte) ([]model.AircraftVariant, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse variant catalog: %w", err)
	}
	if len(file.Variants) == 0 {
		return nil, fmt.Errorf("variant catalog has no variants")
	}
	seen := make(map[string]bool, len(file.Variants))
	for i, v := range file.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("variant %d: missing name", i)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("variant %q: duplicate name", v.Name)
		}
		seen[v.Name] = true
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Variants, nil
}

// Merge overlays overrides onto base by variant name, appending names not
// present in base. Order of base is preserved.
func Merge(base, overrides []model.AircraftVariant) []model.AircraftVariant {
	byName := make(map[string]model.AircraftVariant, len(overrides))
	for _, v := range overrides {
		byName[v.Name] = v
	}

	merged := make([]model.AircraftVariant, 0, len(base)+len(overrides))
	taken := make(map[string]bool, len(base))
	for _, v := range base {
		if o, ok := byName[v.Name]; ok {
			merged = append(merged, o)
		} else {
			merged = append(merged, v)
		}
		taken[v.Name] = true
	}
	for _, v := range overrides {
		if !taken[v.Name] {
			merged = append(merged, v)
		}
	}
	return merged
}
