package parsekit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PatternOverrideFile is the shape of an optional on-disk pattern-override
// document: a flat map from pattern name (PatternWS, PatternComment, ...)
// to a regular expression source, meant to be loaded once and assigned to
// Grammar.Patterns.
type PatternOverrideFile struct {
	Patterns map[string]string `yaml:"patterns"`
}

// LoadPatternOverrides reads a YAML file of the form:
//
//	patterns:
//	  ws: '[ \t]+'
//	  comment: '#.*'
//
// into a map suitable for Grammar.Patterns. This lets a grammar's pattern
// set be tuned without a recompile.
func LoadPatternOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsekit: reading %s: %w", path, err)
	}

	var doc PatternOverrideFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsekit: parsing %s: %w", path, err)
	}
	return doc.Patterns, nil
}
