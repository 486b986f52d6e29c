package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fundingrank/internal"
	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/domain"
	"fundingrank/internal/logger"
	"fundingrank/internal/repository"
	"fundingrank/internal/util"
)

type RankingService interface {
	CalculateRankings(ctx context.Context, in CalculateRankingsInput) (*CalculateRankingsResult, error)
}

type CalculateRankingsInput struct {
	Strategy internal.StrategyConfig
	Start    time.Time
	End      time.Time
	Mode     domain.RecomputeMode
}

type CalculateRankingsResult struct {
	DatesComputed int
	DatesSkipped  int
	RowsWritten   int
}

type rankingServiceHandler struct {
	ReturnMetricsRepository   repository.ReturnMetricsRepository
	StrategyRankingRepository repository.StrategyRankingRepository
}

func NewRankingService(
	returnMetricsRepository repository.ReturnMetricsRepository,
	strategyRankingRepository repository.StrategyRankingRepository,
) RankingService {
	return rankingServiceHandler{
		ReturnMetricsRepository:   returnMetricsRepository,
		StrategyRankingRepository: strategyRankingRepository,
	}
}

type rankWorkInput struct {
	Date         time.Time
	CrossSection []domain.ReturnMetricRecord
}

type rankWorkResult struct {
	Date    time.Time
	Results []domain.RankingResult
	Err     error
}

// CalculateRankings computes and persists the strategy's ranking for every
// date in [Start, End] that has metric data. Each (strategy, date) ranking
// is pure, so dates fan out over a small worker pool; persistence happens
// afterwards in bulk. In incremental mode, dates that already have
// persisted results are skipped; in forced mode their rows are replaced
// in full.
func (h rankingServiceHandler) CalculateRankings(ctx context.Context, in CalculateRankingsInput) (*CalculateRankingsResult, error) {
	log := logger.FromContext(ctx)

	engine, err := internal.NewRankingEngine(in.Strategy)
	if err != nil {
		return nil, err
	}

	records, err := h.ReturnMetricsRepository.List(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load return metrics: %w", err)
	}

	crossSections := map[time.Time][]domain.ReturnMetricRecord{}
	for _, r := range records {
		key := util.DateKey(r.Date)
		crossSections[key] = append(crossSections[key], r)
	}

	alreadyRanked := map[time.Time]bool{}
	if in.Mode == domain.RecomputeModeIncremental {
		alreadyRanked, err = h.StrategyRankingRepository.ListDatesWithResults(in.Strategy.Name, in.Start, in.End)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing rankings: %w", err)
		}
	}

	out := &CalculateRankingsResult{}
	inputs := []rankWorkInput{}
	for date, crossSection := range crossSections {
		if alreadyRanked[date] {
			out.DatesSkipped++
			continue
		}
		inputs = append(inputs, rankWorkInput{Date: date, CrossSection: crossSection})
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Date.Before(inputs[j].Date) })

	if len(inputs) == 0 {
		log.Infow("no dates to rank",
			"strategy", in.Strategy.Name,
			"skipped", out.DatesSkipped,
		)
		return out, nil
	}

	results, err := h.rankDates(ctx, engine, inputs)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		rows := make([]*model.StrategyRanking, len(res.Results))
		for i, r := range res.Results {
			row, err := repository.RankingToModel(r)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}

		if in.Mode == domain.RecomputeModeForced {
			err = h.StrategyRankingRepository.ReplaceForDate(in.Strategy.Name, res.Date, rows)
		} else {
			err = h.StrategyRankingRepository.AddMany(rows)
		}
		if err != nil {
			return nil, err
		}

		out.DatesComputed++
		out.RowsWritten += len(rows)
	}

	log.Infow("rankings calculated",
		"strategy", in.Strategy.Name,
		"mode", in.Mode.String(),
		"computed", out.DatesComputed,
		"skipped", out.DatesSkipped,
		"rows", out.RowsWritten,
	)

	return out, nil
}

func (h rankingServiceHandler) rankDates(ctx context.Context, engine *internal.RankingEngine, inputs []rankWorkInput) ([]rankWorkResult, error) {
	inputCh := make(chan rankWorkInput, len(inputs))
	resultCh := make(chan rankWorkResult, len(inputs))
	numGoroutines := 4
	var wg sync.WaitGroup
	for _, in := range inputs {
		wg.Add(1)
		inputCh <- in
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case input, ok := <-inputCh:
					if !ok {
						return
					}
					results, err := engine.Rank(input.Date, input.CrossSection)
					if err != nil {
						err = fmt.Errorf("failed to rank %s: %w", util.FormatDate(input.Date), err)
					}
					resultCh <- rankWorkResult{
						Date:    input.Date,
						Results: results,
						Err:     err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := []rankWorkResult{}
	for res := range resultCh {
		if res.Err != nil {
			return nil, res.Err
		}
		results = append(results, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Date.Before(results[j].Date) })

	return results, nil
}
