package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one directive in a trade script: an op name plus its attributes.
type Step struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:",inline"`
}

// Script is the structure of a trade script file.
type Script struct {
	// OpeningCash funds the portfolio before the first step.
	OpeningCash float64 `yaml:"opening_cash"`
	Steps       []Step  `yaml:"steps"`
}

// LoadScript reads and parses a YAML trade script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	for i, step := range script.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("script %s: step %d has no op", path, i+1)
		}
	}
	return &script, nil
}
