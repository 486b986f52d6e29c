package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fundingrank/internal/calculator"
	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/domain"
	"fundingrank/internal/logger"
	"fundingrank/internal/repository"
	"fundingrank/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BacktestInput struct {
	StrategyName   string
	Start          time.Time
	End            time.Time
	InitialCapital decimal.Decimal
	// PositionSize is the fraction of initial capital allocated to each
	// entry. It stays fixed for the whole run; entries never scale with
	// accumulated profit.
	PositionSize float64
	FeeRate      float64
	MaxPositions int
	// EntryTopN caps which rank positions are eligible for entry.
	EntryTopN int
	// ExitThreshold is the worst rank a held pair may fall to before it
	// is rotated out on the next date.
	ExitThreshold int
}

func (in BacktestInput) validate() error {
	if in.StrategyName == "" {
		return fmt.Errorf("backtest requires a strategy name")
	}
	if in.End.Before(in.Start) {
		return fmt.Errorf("backtest end date %s precedes start date %s", util.FormatDate(in.End), util.FormatDate(in.Start))
	}
	if !in.InitialCapital.IsPositive() {
		return fmt.Errorf("initial capital must be positive, got %s", in.InitialCapital)
	}
	if in.PositionSize <= 0 || in.PositionSize > 1 {
		return fmt.Errorf("position size must be in (0, 1], got %f", in.PositionSize)
	}
	if in.FeeRate < 0 {
		return fmt.Errorf("fee rate must be non-negative, got %f", in.FeeRate)
	}
	if in.MaxPositions < 1 {
		return fmt.Errorf("max positions must be at least 1, got %d", in.MaxPositions)
	}
	if in.EntryTopN < 1 {
		return fmt.Errorf("entry top n must be at least 1, got %d", in.EntryTopN)
	}
	if in.ExitThreshold < in.EntryTopN {
		return fmt.Errorf("exit threshold %d must not be tighter than entry top n %d", in.ExitThreshold, in.EntryTopN)
	}
	return nil
}

type BacktestResult struct {
	BacktestID uuid.UUID
	Events     []domain.TradeEvent
	FinalState *domain.BacktestState
	Summary    *calculator.BacktestSummary
}

type BacktestHandler struct {
	StrategyRankingRepository repository.StrategyRankingRepository
	ReturnMetricsRepository   repository.ReturnMetricsRepository
	BacktestRepository        repository.BacktestRepository
}

// dailyRanking is one date's persisted ranking, indexed both ways: by
// pair for exit checks and in rank order for entry candidates.
type dailyRanking struct {
	rankByPair map[string]int
	rankOrder  []string
}

// Run replays the strategy's persisted rankings over [Start, End] with a
// rotating portfolio. Dates run strictly in order; within a date the order
// is exits, then entries, then funding accrual on everything still held.
// Dates with no persisted ranking are skipped wholesale. The completed
// run and its full event log are persisted before returning.
func (h BacktestHandler) Run(ctx context.Context, in BacktestInput) (*BacktestResult, error) {
	log := logger.FromContext(ctx)

	if err := in.validate(); err != nil {
		return nil, err
	}

	rankings, err := h.loadRankings(in)
	if err != nil {
		return nil, err
	}
	if len(rankings) == 0 {
		return nil, fmt.Errorf("no rankings found for strategy %s between %s and %s", in.StrategyName, util.FormatDate(in.Start), util.FormatDate(in.End))
	}

	returns, err := h.loadDailyReturns(in)
	if err != nil {
		return nil, err
	}

	state := domain.NewBacktestState(in.InitialCapital)
	entryAmount := in.InitialCapital.Mul(decimal.NewFromFloat(in.PositionSize))
	feeRate := decimal.NewFromFloat(in.FeeRate)

	for _, date := range util.EachDate(in.Start, in.End) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ranking, ok := rankings[date]
		if !ok {
			continue
		}
		state.CurrentDate = date

		h.processExits(state, ranking, feeRate, in.ExitThreshold)
		h.processEntries(state, ranking, entryAmount, feeRate, in)
		h.accrueFunding(state, returns[date])
	}

	summary, err := calculator.Summarize(calculator.SummarizeInput{
		InitialCapital: in.InitialCapital,
		StartDate:      in.Start,
		EndDate:        in.End,
		Events:         state.Events,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize backtest: %w", err)
	}

	backtestID := uuid.New()
	if err := h.persistRun(backtestID, in, summary, state.Events); err != nil {
		return nil, err
	}

	log.Infow("backtest complete",
		"backtestId", backtestID,
		"strategy", in.StrategyName,
		"start", util.FormatDate(in.Start),
		"end", util.FormatDate(in.End),
		"finalCapital", summary.FinalCapital,
		"totalRoi", summary.TotalRoi,
		"trades", summary.TotalTrades,
	)

	return &BacktestResult{
		BacktestID: backtestID,
		Events:     state.Events,
		FinalState: state,
		Summary:    summary,
	}, nil
}

func (h BacktestHandler) loadRankings(in BacktestInput) (map[time.Time]dailyRanking, error) {
	results, err := h.StrategyRankingRepository.List(in.StrategyName, in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load rankings for backtest: %w", err)
	}

	rankings := map[time.Time]dailyRanking{}
	for _, r := range results {
		key := util.DateKey(r.Date)
		day, ok := rankings[key]
		if !ok {
			day = dailyRanking{rankByPair: map[string]int{}}
		}
		day.rankByPair[r.TradingPair] = r.RankPosition
		day.rankOrder = append(day.rankOrder, r.TradingPair)
		rankings[key] = day
	}

	// List returns rows ordered by rank within each date, but re-sort
	// so correctness does not hinge on the query's ORDER BY.
	for _, day := range rankings {
		sort.Slice(day.rankOrder, func(i, j int) bool {
			return day.rankByPair[day.rankOrder[i]] < day.rankByPair[day.rankOrder[j]]
		})
	}

	return rankings, nil
}

func (h BacktestHandler) loadDailyReturns(in BacktestInput) (map[time.Time]map[string]*float64, error) {
	records, err := h.ReturnMetricsRepository.List(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load return metrics for backtest: %w", err)
	}

	returns := map[time.Time]map[string]*float64{}
	for _, r := range records {
		key := util.DateKey(r.Date)
		if returns[key] == nil {
			returns[key] = map[string]*float64{}
		}
		returns[key][r.TradingPair] = r.Return1d
	}

	return returns, nil
}

// processExits closes every held position whose pair either dropped out
// of the date's ranking or fell below the exit threshold. Pairs are
// visited in lexical order so runs are deterministic.
func (h BacktestHandler) processExits(state *domain.BacktestState, ranking dailyRanking, feeRate decimal.Decimal, exitThreshold int) {
	held := state.HeldPairs()
	sort.Strings(held)

	for _, pair := range held {
		rank, ranked := ranking.rankByPair[pair]
		if ranked && rank <= exitThreshold {
			continue
		}

		position := state.Positions[pair]
		state.Cash = state.Cash.Add(position.AllocatedCapital)
		delete(state.Positions, pair)
		h.appendEvent(state, domain.TradeEventType_Exit, pair, position.AllocatedCapital, nil)

		if feeRate.IsPositive() {
			fee := position.AllocatedCapital.Mul(feeRate)
			state.Cash = state.Cash.Sub(fee)
			h.appendEvent(state, domain.TradeEventType_ExitFee, pair, fee.Neg(), nil)
		}
	}
}

// processEntries opens positions for top-ranked pairs not already held,
// walking the ranking in order until the portfolio is full or candidates
// run out. Entries that cash cannot cover are skipped without error.
func (h BacktestHandler) processEntries(state *domain.BacktestState, ranking dailyRanking, entryAmount, feeRate decimal.Decimal, in BacktestInput) {
	for _, pair := range ranking.rankOrder {
		if ranking.rankByPair[pair] > in.EntryTopN {
			break
		}
		if len(state.Positions) >= in.MaxPositions {
			break
		}
		if _, held := state.Positions[pair]; held {
			continue
		}

		fee := decimal.Zero
		if feeRate.IsPositive() {
			fee = entryAmount.Mul(feeRate)
		}
		if state.Cash.LessThan(entryAmount.Add(fee)) {
			continue
		}

		state.Cash = state.Cash.Sub(entryAmount)
		state.Positions[pair] = &domain.Position{
			TradingPair:      pair,
			EntryDate:        state.CurrentDate,
			AllocatedCapital: entryAmount,
		}
		h.appendEvent(state, domain.TradeEventType_Entry, pair, entryAmount.Neg(), nil)

		if fee.IsPositive() {
			state.Cash = state.Cash.Sub(fee)
			h.appendEvent(state, domain.TradeEventType_EntryFee, pair, fee.Neg(), nil)
		}
	}
}

// accrueFunding applies the date's 1d return to every held position,
// including ones entered the same date. The PnL is booked into the
// position's recorded value, not into cash; cash only moves on exit.
// Each leg carries half the allocation, hence the divisor.
func (h BacktestHandler) accrueFunding(state *domain.BacktestState, dailyReturns map[string]*float64) {
	held := state.HeldPairs()
	sort.Strings(held)

	for _, pair := range held {
		position := state.Positions[pair]

		rate := dailyReturns[pair]
		if rate == nil {
			h.appendEvent(state, domain.TradeEventType_FundingAccrual, pair, decimal.Zero, nil)
			continue
		}

		pnl := position.AllocatedCapital.
			Div(decimal.NewFromInt(2)).
			Mul(decimal.NewFromFloat(*rate))
		position.AllocatedCapital = position.AllocatedCapital.Add(pnl)
		h.appendEvent(state, domain.TradeEventType_FundingAccrual, pair, pnl, rate)
	}
}

func (h BacktestHandler) appendEvent(state *domain.BacktestState, eventType domain.TradeEventType, pair string, amount decimal.Decimal, fundingRateDiff *float64) {
	state.Events = append(state.Events, domain.TradeEvent{
		Date:            state.CurrentDate,
		EventType:       eventType,
		TradingPair:     pair,
		Amount:          amount,
		FundingRateDiff: fundingRateDiff,
		CashAfter:       state.Cash,
		PositionAfter:   state.PositionBalance(),
	})
}

func (h BacktestHandler) persistRun(backtestID uuid.UUID, in BacktestInput, summary *calculator.BacktestSummary, events []domain.TradeEvent) error {
	run := &model.BacktestRun{
		BacktestID:     backtestID,
		StrategyName:   in.StrategyName,
		StartDate:      in.Start,
		EndDate:        in.End,
		InitialCapital: in.InitialCapital.InexactFloat64(),
		PositionSize:   in.PositionSize,
		FeeRate:        in.FeeRate,
		MaxPositions:   int32(in.MaxPositions),
		EntryTopN:      int32(in.EntryTopN),
		ExitThreshold:  int32(in.ExitThreshold),
		FinalCapital:   summary.FinalCapital.InexactFloat64(),
		TotalReturn:    summary.TotalReturn.InexactFloat64(),
		TotalRoi:       summary.TotalRoi,
		AnnualizedRoi:  summary.AnnualizedRoi,
		TotalDays:      int32(summary.TotalDays),
		ProfitDays:     int32(summary.ProfitDays),
		LossDays:       int32(summary.LossDays),
		BreakEvenDays:  int32(summary.BreakEvenDays),
		WinRate:        summary.WinRate,
		MaxDrawdown:    summary.MaxDrawdown,
		TotalTrades:    int32(summary.TotalTrades),
		AvgHoldingDays: summary.AvgHoldingDays,
		SharpeRatio:    summary.SharpeRatio,
	}
	if err := h.BacktestRepository.AddRun(run); err != nil {
		return err
	}

	trades := make([]*model.BacktestTrade, len(events))
	for i, e := range events {
		trades[i] = &model.BacktestTrade{
			BacktestID:      backtestID,
			Date:            e.Date,
			EventType:       string(e.EventType),
			TradingPair:     e.TradingPair,
			Amount:          e.Amount.InexactFloat64(),
			FundingRateDiff: e.FundingRateDiff,
			CashAfter:       e.CashAfter.InexactFloat64(),
			PositionAfter:   e.PositionAfter.InexactFloat64(),
		}
	}

	return h.BacktestRepository.AddTrades(trades)
}
