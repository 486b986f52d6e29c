package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// strategyFile is the on-disk shape of a strategy definitions file:
//
//	strategies:
//	  - name: my_strategy
//	    components:
//	      - name: short
//	        indicators: [1d_ROI, 2d_ROI]
//	        weights: [0.6, 0.4]
//	        normalize: true
//	    final_combination:
//	      scores: [short]
//	      weights: [1.0]
type strategyFile struct {
	Strategies []StrategyConfig `yaml:"strategies"`
}

// ParseStrategies decodes and validates strategy definitions from YAML.
func ParseStrategies(data []byte) ([]StrategyConfig, error) {
	f := strategyFile{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse strategy file: %w", err)
	}
	if len(f.Strategies) == 0 {
		return nil, fmt.Errorf("strategy file defines no strategies")
	}

	for _, s := range f.Strategies {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	return f.Strategies, nil
}

// LoadStrategies reads a YAML strategy definitions file and registers its
// strategies, overriding builtins on name collision.
func LoadStrategies(path string, registry *StrategyRegistry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read strategy file %s: %w", path, err)
	}

	strategies, err := ParseStrategies(data)
	if err != nil {
		return err
	}
	for _, s := range strategies {
		if err := registry.Register(s); err != nil {
			return err
		}
	}

	return nil
}
