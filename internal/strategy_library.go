package internal

import (
	"fmt"
	"sort"
)

const DefaultStrategy = "original"

// builtinStrategies are the curated ranking strategies the system ships
// with. File-defined strategies may extend or override these.
var builtinStrategies = map[string]StrategyConfig{
	"original": {
		Name:        "original",
		Description: "equal-weight blend of long and short horizon annualized ROI",
		Components: []Component{
			{
				Name:       "long_term_score",
				Indicators: []string{"1d_ROI", "2d_ROI", "7d_ROI", "14d_ROI", "30d_ROI", "all_ROI"},
				Weights:    []float64{1, 1, 1, 1, 1, 1},
				Normalize:  true,
			},
			{
				Name:       "short_term_score",
				Indicators: []string{"1d_ROI", "2d_ROI", "7d_ROI", "14d_ROI"},
				Weights:    []float64{1, 1, 1, 1},
				Normalize:  true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"long_term_score", "short_term_score"},
			Weights: []float64{0.5, 0.5},
		},
	},
	"momentum_focused": {
		Name:        "momentum_focused",
		Description: "recent momentum weighted over medium-term momentum",
		Components: []Component{
			{
				Name:       "short_momentum",
				Indicators: []string{"1d_ROI", "2d_ROI"},
				Weights:    []float64{0.6, 0.4},
				Normalize:  true,
			},
			{
				Name:       "medium_momentum",
				Indicators: []string{"7d_ROI", "14d_ROI"},
				Weights:    []float64{0.6, 0.4},
				Normalize:  true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"short_momentum", "medium_momentum"},
			Weights: []float64{0.7, 0.3},
		},
	},
	"stability_focused": {
		Name:        "stability_focused",
		Description: "medium/long horizon consistency over recent performance",
		Components: []Component{
			{
				Name:       "consistency_score",
				Indicators: []string{"14d_ROI", "30d_ROI", "all_ROI"},
				Weights:    []float64{0.4, 0.4, 0.2},
				Normalize:  true,
			},
			{
				Name:       "recent_performance",
				Indicators: []string{"1d_ROI", "2d_ROI", "7d_ROI"},
				Weights:    []float64{0.2, 0.3, 0.5},
				Normalize:  true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"consistency_score", "recent_performance"},
			Weights: []float64{0.6, 0.4},
		},
	},
	"adaptive": {
		Name:        "adaptive",
		Description: "multi-horizon blend damped by cross-indicator dispersion",
		Components: []Component{
			{
				Name:              "volatility_adjusted",
				Indicators:        []string{"1d_ROI", "7d_ROI", "30d_ROI"},
				Weights:           []float64{0.3, 0.4, 0.3},
				Normalize:         true,
				VolatilityPenalty: true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"volatility_adjusted"},
			Weights: []float64{1},
		},
	},
	"pure_short_term": {
		Name:        "pure_short_term",
		Description: "heavily weighted one-day performance",
		Components: []Component{
			{
				Name:       "daily_focus",
				Indicators: []string{"1d_ROI", "2d_ROI"},
				Weights:    []float64{0.8, 0.2},
				Normalize:  true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"daily_focus"},
			Weights: []float64{1},
		},
	},
	"balanced": {
		Name:        "balanced",
		Description: "short, medium and long horizons blended 50/30/20",
		Components: []Component{
			{
				Name:       "short_term",
				Indicators: []string{"1d_ROI", "2d_ROI", "7d_ROI"},
				Weights:    []float64{0.5, 0.3, 0.2},
				Normalize:  true,
			},
			{
				Name:       "medium_term",
				Indicators: []string{"14d_ROI", "30d_ROI"},
				Weights:    []float64{0.6, 0.4},
				Normalize:  true,
			},
			{
				Name:       "long_term",
				Indicators: []string{"all_ROI"},
				Weights:    []float64{1},
				Normalize:  true,
			},
		},
		FinalCombination: FinalCombination{
			Scores:  []string{"short_term", "medium_term", "long_term"},
			Weights: []float64{0.5, 0.3, 0.2},
		},
	},
}

// StrategyRegistry resolves strategy names to validated configurations.
type StrategyRegistry struct {
	strategies map[string]StrategyConfig
}

func NewStrategyRegistry() *StrategyRegistry {
	r := &StrategyRegistry{strategies: map[string]StrategyConfig{}}
	for name, s := range builtinStrategies {
		r.strategies[name] = s
	}
	return r
}

// Register adds or overrides a strategy after validating it.
func (r *StrategyRegistry) Register(s StrategyConfig) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.strategies[s.Name] = s
	return nil
}

func (r *StrategyRegistry) Get(name string) (StrategyConfig, error) {
	s, ok := r.strategies[name]
	if !ok {
		return StrategyConfig{}, ConfigurationError{
			Strategy: name,
			Detail:   fmt.Sprintf("unknown strategy, known: %v", r.Names()),
		}
	}
	return s, nil
}

func (r *StrategyRegistry) Names() []string {
	names := []string{}
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
