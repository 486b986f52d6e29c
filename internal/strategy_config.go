package internal

import (
	"fmt"
	"fundingrank/internal/domain"
)

// Component is one weighted indicator bundle inside a strategy. Weights
// are positional against Indicators and get normalized to sum to 1 before
// use, so [1, 1, 1] and [0.33, 0.33, 0.33] behave the same.
type Component struct {
	Name              string    `yaml:"name"`
	Indicators        []string  `yaml:"indicators"`
	Weights           []float64 `yaml:"weights"`
	Normalize         bool      `yaml:"normalize"`
	VolatilityPenalty bool      `yaml:"volatility_penalty"`
}

// FinalCombination blends named component scores into the final score.
type FinalCombination struct {
	Scores  []string  `yaml:"scores"`
	Weights []float64 `yaml:"weights"`
}

type StrategyConfig struct {
	Name             string           `yaml:"name"`
	Description      string           `yaml:"description"`
	Components       []Component      `yaml:"components"`
	FinalCombination FinalCombination `yaml:"final_combination"`
}

// ConfigurationError reports a malformed strategy definition. It always
// surfaces before any date's data is touched.
type ConfigurationError struct {
	Strategy string
	Detail   string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid strategy %q: %s", e.Strategy, e.Detail)
}

// Validate checks the strategy against the indicator vocabulary. Weight
// lists must match their indicator/score lists positionally and every
// weight must be positive, since weights are normalized by their sum.
func (s StrategyConfig) Validate() error {
	if s.Name == "" {
		return ConfigurationError{Strategy: s.Name, Detail: "strategy name is empty"}
	}
	if len(s.Components) == 0 {
		return ConfigurationError{Strategy: s.Name, Detail: "strategy has no components"}
	}

	componentNames := map[string]bool{}
	for _, c := range s.Components {
		if c.Name == "" {
			return ConfigurationError{Strategy: s.Name, Detail: "component has no name"}
		}
		if componentNames[c.Name] {
			return ConfigurationError{Strategy: s.Name, Detail: fmt.Sprintf("duplicate component %q", c.Name)}
		}
		componentNames[c.Name] = true

		if len(c.Indicators) == 0 {
			return ConfigurationError{Strategy: s.Name, Detail: fmt.Sprintf("component %q has no indicators", c.Name)}
		}
		if len(c.Weights) != len(c.Indicators) {
			return ConfigurationError{
				Strategy: s.Name,
				Detail:   fmt.Sprintf("component %q has %d weights for %d indicators", c.Name, len(c.Weights), len(c.Indicators)),
			}
		}
		for _, ind := range c.Indicators {
			if !domain.IsKnownIndicator(ind) {
				return ConfigurationError{
					Strategy: s.Name,
					Detail:   fmt.Sprintf("component %q references unknown indicator %q", c.Name, ind),
				}
			}
		}
		for i, w := range c.Weights {
			if w <= 0 {
				return ConfigurationError{
					Strategy: s.Name,
					Detail:   fmt.Sprintf("component %q weight %d is non-positive (%v)", c.Name, i, w),
				}
			}
		}
	}

	fc := s.FinalCombination
	if len(fc.Scores) == 0 {
		return ConfigurationError{Strategy: s.Name, Detail: "final combination has no scores"}
	}
	if len(fc.Weights) != len(fc.Scores) {
		return ConfigurationError{
			Strategy: s.Name,
			Detail:   fmt.Sprintf("final combination has %d weights for %d scores", len(fc.Weights), len(fc.Scores)),
		}
	}
	for _, name := range fc.Scores {
		if !componentNames[name] {
			return ConfigurationError{
				Strategy: s.Name,
				Detail:   fmt.Sprintf("final combination references unknown component %q", name),
			}
		}
	}
	for i, w := range fc.Weights {
		if w <= 0 {
			return ConfigurationError{
				Strategy: s.Name,
				Detail:   fmt.Sprintf("final combination weight %d is non-positive (%v)", i, w),
			}
		}
	}

	return nil
}

// normalizeWeights scales weights so they sum to 1. Validation guarantees
// a positive sum.
func normalizeWeights(weights []float64) []float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / sum
	}
	return out
}
