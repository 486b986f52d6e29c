package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_StrategyConfig_Validate(t *testing.T) {
	valid := func() StrategyConfig {
		return StrategyConfig{
			Name: "valid",
			Components: []Component{
				{
					Name:       "short",
					Indicators: []string{"1d_ROI", "2d_ROI"},
					Weights:    []float64{0.6, 0.4},
					Normalize:  true,
				},
			},
			FinalCombination: FinalCombination{
				Scores:  []string{"short"},
				Weights: []float64{1},
			},
		}
	}

	t.Run("accepts a well-formed strategy", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		s := valid()
		s.Name = ""
		require.ErrorContains(t, s.Validate(), "name is empty")
	})

	t.Run("rejects strategy without components", func(t *testing.T) {
		s := valid()
		s.Components = nil
		require.ErrorContains(t, s.Validate(), "no components")
	})

	t.Run("rejects duplicate component names", func(t *testing.T) {
		s := valid()
		s.Components = append(s.Components, s.Components[0])
		require.ErrorContains(t, s.Validate(), "duplicate component")
	})

	t.Run("rejects non-positive weights", func(t *testing.T) {
		s := valid()
		s.Components[0].Weights = []float64{0.6, -0.4}
		require.ErrorContains(t, s.Validate(), "non-positive")
	})

	t.Run("rejects final combination weight mismatch", func(t *testing.T) {
		s := valid()
		s.FinalCombination.Weights = []float64{0.5, 0.5}
		require.ErrorContains(t, s.Validate(), "final combination")
	})

	t.Run("error identifies the strategy", func(t *testing.T) {
		s := valid()
		s.Components[0].Indicators = []string{"bogus", "2d_ROI"}
		err := s.Validate()
		require.Error(t, err)

		confErr, ok := err.(ConfigurationError)
		require.True(t, ok)
		require.Equal(t, "valid", confErr.Strategy)
	})
}

func Test_normalizeWeights(t *testing.T) {
	t.Run("scales to unit sum", func(t *testing.T) {
		out := normalizeWeights([]float64{1, 1, 2})
		require.InDelta(t, 0.25, out[0], 1e-9)
		require.InDelta(t, 0.25, out[1], 1e-9)
		require.InDelta(t, 0.5, out[2], 1e-9)
	})

	t.Run("already normalized weights are unchanged", func(t *testing.T) {
		out := normalizeWeights([]float64{0.7, 0.3})
		require.InDelta(t, 0.7, out[0], 1e-9)
		require.InDelta(t, 0.3, out[1], 1e-9)
	})
}

func Test_StrategyRegistry(t *testing.T) {
	t.Run("ships with builtins", func(t *testing.T) {
		registry := NewStrategyRegistry()
		require.Equal(t, []string{
			"adaptive",
			"balanced",
			"momentum_focused",
			"original",
			"pure_short_term",
			"stability_focused",
		}, registry.Names())

		s, err := registry.Get(DefaultStrategy)
		require.NoError(t, err)
		require.NoError(t, s.Validate())
	})

	t.Run("every builtin validates", func(t *testing.T) {
		registry := NewStrategyRegistry()
		for _, name := range registry.Names() {
			s, err := registry.Get(name)
			require.NoError(t, err)
			require.NoError(t, s.Validate(), "builtin %s", name)
		}
	})

	t.Run("unknown strategy lists known names", func(t *testing.T) {
		_, err := NewStrategyRegistry().Get("nope")
		require.Error(t, err)
		require.ErrorContains(t, err, "unknown strategy")
		require.ErrorContains(t, err, "original")
	})

	t.Run("register overrides builtins", func(t *testing.T) {
		registry := NewStrategyRegistry()
		custom := StrategyConfig{
			Name: "original",
			Components: []Component{
				{
					Name:       "only",
					Indicators: []string{"1d_ROI"},
					Weights:    []float64{1},
				},
			},
			FinalCombination: FinalCombination{
				Scores:  []string{"only"},
				Weights: []float64{1},
			},
		}
		require.NoError(t, registry.Register(custom))

		s, err := registry.Get("original")
		require.NoError(t, err)
		require.Len(t, s.Components, 1)
		require.Equal(t, "only", s.Components[0].Name)
	})

	t.Run("register rejects invalid strategies", func(t *testing.T) {
		registry := NewStrategyRegistry()
		err := registry.Register(StrategyConfig{Name: "broken"})
		require.Error(t, err)
	})
}

func Test_ParseStrategies(t *testing.T) {
	t.Run("parses a strategy file", func(t *testing.T) {
		data := []byte(`
strategies:
  - name: my_strategy
    description: short horizon only
    components:
      - name: short
        indicators: [1d_ROI, 2d_ROI]
        weights: [0.6, 0.4]
        normalize: true
      - name: damped
        indicators: [7d_ROI, 30d_ROI]
        weights: [0.5, 0.5]
        normalize: true
        volatility_penalty: true
    final_combination:
      scores: [short, damped]
      weights: [0.7, 0.3]
`)
		strategies, err := ParseStrategies(data)
		require.NoError(t, err)
		require.Len(t, strategies, 1)

		s := strategies[0]
		require.Equal(t, "my_strategy", s.Name)
		require.Len(t, s.Components, 2)
		require.True(t, s.Components[1].VolatilityPenalty)
		require.Equal(t, []float64{0.7, 0.3}, s.FinalCombination.Weights)
	})

	t.Run("rejects empty files", func(t *testing.T) {
		_, err := ParseStrategies([]byte("strategies: []"))
		require.ErrorContains(t, err, "no strategies")
	})

	t.Run("rejects invalid strategies", func(t *testing.T) {
		data := []byte(`
strategies:
  - name: broken
    components:
      - name: c
        indicators: [unknown_indicator]
        weights: [1]
    final_combination:
      scores: [c]
      weights: [1]
`)
		_, err := ParseStrategies(data)
		require.ErrorContains(t, err, "unknown indicator")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ParseStrategies([]byte("strategies: [whoops"))
		require.Error(t, err)
	})
}
