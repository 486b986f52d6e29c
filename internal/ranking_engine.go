package internal

import (
	"math"
	"sort"
	"time"

	"fundingrank/internal/domain"

	"github.com/montanaflynn/stats"
)

// RankingEngine scores one date's cross-section of return metrics under a
// single strategy and produces a total order over trading pairs.
//
// All numeric edge cases resolve to zero rather than erroring: absent or
// non-finite indicator values contribute 0, a zero-variance vector
// normalizes to all zeros, and the volatility penalty never divides by
// zero. Ties on the final score break by ascending trading-pair name so
// rank positions always form a contiguous 1..N sequence.
type RankingEngine struct {
	strategy StrategyConfig
}

// NewRankingEngine validates the strategy before any data is touched and
// returns a ConfigurationError for malformed definitions.
func NewRankingEngine(strategy StrategyConfig) (*RankingEngine, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	return &RankingEngine{strategy: strategy}, nil
}

func (e *RankingEngine) Strategy() StrategyConfig {
	return e.strategy
}

// Rank computes the strategy's ranking for one date. Records whose date
// differs from the requested date are ignored. An empty cross-section
// yields an empty result list, not an error.
func (e *RankingEngine) Rank(date time.Time, crossSection []domain.ReturnMetricRecord) ([]domain.RankingResult, error) {
	records := []domain.ReturnMetricRecord{}
	for _, r := range crossSection {
		if sameDay(r.Date, date) {
			records = append(records, r)
		}
	}
	if len(records) == 0 {
		return []domain.RankingResult{}, nil
	}

	componentScores := map[string][]float64{}
	for _, c := range e.strategy.Components {
		componentScores[c.Name] = computeComponentScore(c, records)
	}

	finalWeights := normalizeWeights(e.strategy.FinalCombination.Weights)
	finalScores := make([]float64, len(records))
	for i, name := range e.strategy.FinalCombination.Scores {
		for j := range records {
			finalScores[j] += componentScores[name][j] * finalWeights[i]
		}
	}

	results := make([]domain.RankingResult, len(records))
	for i, r := range records {
		perComponent := map[string]float64{}
		for name, scores := range componentScores {
			perComponent[name] = scores[i]
		}
		results[i] = domain.RankingResult{
			StrategyName:    e.strategy.Name,
			Date:            date,
			TradingPair:     r.TradingPair,
			ComponentScores: perComponent,
			FinalScore:      finalScores[i],
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].TradingPair < results[j].TradingPair
	})
	for i := range results {
		results[i].RankPosition = i + 1
	}

	return results, nil
}

// computeComponentScore evaluates one component across the cross-section.
// Validation has already guaranteed that every indicator exists and that
// weights line up positionally.
func computeComponentScore(c Component, records []domain.ReturnMetricRecord) []float64 {
	weights := normalizeWeights(c.Weights)

	vectors := make([][]float64, len(c.Indicators))
	for j, name := range c.Indicators {
		vec := make([]float64, len(records))
		for i, r := range records {
			v, _ := r.Indicator(name)
			if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
				vec[i] = *v
			}
		}
		if c.Normalize {
			vec = zScore(vec)
		}
		vectors[j] = vec
	}

	scores := make([]float64, len(records))
	for j := range vectors {
		for i := range scores {
			scores[i] += vectors[j][i] * weights[j]
		}
	}

	if c.VolatilityPenalty {
		for i := range scores {
			row := make([]float64, len(vectors))
			for j := range vectors {
				row[j] = vectors[j][i]
			}
			scores[i] *= dampingFactor(row)
		}
	}

	return scores
}

// zScore converts a vector to cross-sectional z-scores. A vector with
// fewer than two members or zero variance maps to all zeros.
func zScore(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) < 2 {
		return out
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return out
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil || stdev == 0 || math.IsNaN(stdev) {
		return out
	}

	for i, v := range values {
		out[i] = (v - mean) / stdev
	}
	return out
}

// dampingFactor discounts a pair's component score by the dispersion of
// its indicator values on that date: 1/(1+stdev). Larger dispersion
// always means a smaller factor, and the factor stays in (0, 1].
func dampingFactor(row []float64) float64 {
	if len(row) < 2 {
		return 1
	}
	dispersion, err := stats.StandardDeviationPopulation(row)
	if err != nil || math.IsNaN(dispersion) {
		return 1
	}
	return 1 / (1 + dispersion)
}

func sameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
