package calculator

import (
	"fmt"
	"math"
	"time"

	"fundingrank/internal/domain"
	"fundingrank/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// BacktestSummary is derived entirely from a completed run's event log;
// it is recomputed, never stored as the source of truth.
type BacktestSummary struct {
	InitialCapital decimal.Decimal
	FinalCapital   decimal.Decimal
	TotalReturn    decimal.Decimal
	TotalRoi       float64
	AnnualizedRoi  float64
	TotalDays      int
	ProfitDays     int
	LossDays       int
	BreakEvenDays  int
	WinRate        float64
	MaxDrawdown    float64
	TotalTrades    int
	AvgHoldingDays float64
	SharpeRatio    *float64
}

type SummarizeInput struct {
	InitialCapital decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	Events         []domain.TradeEvent
}

// Summarize replays the event log over the run's date range: it classifies
// each date by its net funding PnL, rebuilds the daily total-balance curve
// for drawdown and Sharpe, and pairs entry/exit events for holding-period
// stats. Deterministic given the same inputs.
func Summarize(in SummarizeInput) (*BacktestSummary, error) {
	if !in.InitialCapital.IsPositive() {
		return nil, fmt.Errorf("cannot summarize backtest with non-positive initial capital %s", in.InitialCapital)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("backtest end date %v precedes start date %v", in.EndDate, in.StartDate)
	}

	eventsByDate := map[time.Time][]domain.TradeEvent{}
	for _, e := range in.Events {
		key := util.DateKey(e.Date)
		eventsByDate[key] = append(eventsByDate[key], e)
	}

	summary := &BacktestSummary{
		InitialCapital: in.InitialCapital,
	}

	equity := in.InitialCapital
	peak := in.InitialCapital
	dailyReturns := []float64{}
	entryDates := map[string]time.Time{}
	totalHoldingDays := 0

	for _, date := range util.EachDate(in.StartDate, in.EndDate) {
		summary.TotalDays++

		dailyPnl := decimal.Zero
		for _, e := range eventsByDate[date] {
			switch e.EventType {
			case domain.TradeEventType_FundingAccrual:
				dailyPnl = dailyPnl.Add(e.Amount)
			case domain.TradeEventType_Entry:
				entryDates[e.TradingPair] = date
			case domain.TradeEventType_Exit:
				summary.TotalTrades++
				if entered, ok := entryDates[e.TradingPair]; ok {
					totalHoldingDays += util.DaysBetween(entered, date) - 1
					delete(entryDates, e.TradingPair)
				}
			}
		}

		switch {
		case dailyPnl.IsPositive():
			summary.ProfitDays++
		case dailyPnl.IsNegative():
			summary.LossDays++
		default:
			summary.BreakEvenDays++
		}

		prevEquity := equity
		if events := eventsByDate[date]; len(events) > 0 {
			last := events[len(events)-1]
			equity = last.CashAfter.Add(last.PositionAfter)
		}

		if !prevEquity.IsZero() {
			ret, _ := equity.Sub(prevEquity).Div(prevEquity).Float64()
			dailyReturns = append(dailyReturns, ret)
		}

		if equity.GreaterThan(peak) {
			peak = equity
		}
		if peak.IsPositive() {
			drawdown, _ := peak.Sub(equity).Div(peak).Float64()
			if drawdown > summary.MaxDrawdown {
				summary.MaxDrawdown = drawdown
			}
		}
	}

	summary.FinalCapital = equity
	summary.TotalReturn = equity.Sub(in.InitialCapital)
	summary.TotalRoi, _ = summary.TotalReturn.Div(in.InitialCapital).Float64()
	summary.AnnualizedRoi = summary.TotalRoi * 365 / float64(summary.TotalDays)
	summary.WinRate = float64(summary.ProfitDays) / float64(summary.TotalDays)
	if summary.TotalTrades > 0 {
		summary.AvgHoldingDays = float64(totalHoldingDays) / float64(summary.TotalTrades)
	}
	summary.SharpeRatio = sharpeRatio(dailyReturns)

	return summary, nil
}

// sharpeRatio annualizes the mean/stdev of the daily return series.
// Nil when the series is too short or flat to produce a finite ratio.
func sharpeRatio(dailyReturns []float64) *float64 {
	if len(dailyReturns) < 2 {
		return nil
	}

	mean, err := stats.Mean(dailyReturns)
	if err != nil {
		return nil
	}
	stdev, err := stats.StandardDeviationSample(dailyReturns)
	if err != nil || stdev == 0 || math.IsNaN(stdev) {
		return nil
	}

	sharpe := mean / stdev * math.Sqrt(365)
	return &sharpe
}
