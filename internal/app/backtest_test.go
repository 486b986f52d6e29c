package app

import (
	"context"
	"testing"
	"time"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/domain"
	mock_repository "fundingrank/internal/repository/mocks"
	"fundingrank/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rankingRow(strategy string, date time.Time, pair string, rank int) domain.RankingResult {
	return domain.RankingResult{
		StrategyName: strategy,
		Date:         date,
		TradingPair:  pair,
		FinalScore:   float64(100 - rank),
		RankPosition: rank,
	}
}

func dailyReturn(pair string, date time.Time, ret float64) domain.ReturnMetricRecord {
	return domain.ReturnMetricRecord{
		TradingPair: pair,
		Date:        date,
		Return1d:    util.FloatPointer(ret),
	}
}

func newBacktestMocks(t *testing.T) (BacktestHandler, *mock_repository.MockStrategyRankingRepository, *mock_repository.MockReturnMetricsRepository, *mock_repository.MockBacktestRepository) {
	ctrl := gomock.NewController(t)
	rankingRepository := mock_repository.NewMockStrategyRankingRepository(ctrl)
	metricsRepository := mock_repository.NewMockReturnMetricsRepository(ctrl)
	backtestRepository := mock_repository.NewMockBacktestRepository(ctrl)

	handler := BacktestHandler{
		StrategyRankingRepository: rankingRepository,
		ReturnMetricsRepository:   metricsRepository,
		BacktestRepository:        backtestRepository,
	}

	return handler, rankingRepository, metricsRepository, backtestRepository
}

func defaultInput(start, end time.Time) BacktestInput {
	return BacktestInput{
		StrategyName:   "original",
		Start:          start,
		End:            end,
		InitialCapital: decimal.NewFromInt(10000),
		PositionSize:   0.1,
		FeeRate:        0,
		MaxPositions:   2,
		EntryTopN:      3,
		ExitThreshold:  10,
	}
}

func Test_BacktestHandler_Run(t *testing.T) {
	ctx := context.Background()
	d1 := util.NewDate(2025, 6, 1)
	d2 := util.NewDate(2025, 6, 2)
	d3 := util.NewDate(2025, 6, 3)

	t.Run("fills the portfolio and accrues funding", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d1)

		rankingRepository.EXPECT().
			List("original", d1, d1).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d1, "BBB-USDT", 2),
				rankingRow("original", d1, "CCC-USDT", 3),
			}, nil)
		metricsRepository.EXPECT().
			List(d1, d1).
			Return([]domain.ReturnMetricRecord{
				dailyReturn("AAA-USDT", d1, 0.02),
			}, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		// two entries (portfolio caps at 2), then accruals for both
		require.Len(t, result.Events, 4)
		require.Equal(t, domain.TradeEventType_Entry, result.Events[0].EventType)
		require.Equal(t, "AAA-USDT", result.Events[0].TradingPair)
		require.Equal(t, domain.TradeEventType_Entry, result.Events[1].EventType)
		require.Equal(t, "BBB-USDT", result.Events[1].TradingPair)

		accrualA := result.Events[2]
		require.Equal(t, domain.TradeEventType_FundingAccrual, accrualA.EventType)
		require.Equal(t, "AAA-USDT", accrualA.TradingPair)
		// 1000 allocated, half per leg, 2% daily return
		require.True(t, accrualA.Amount.Equal(decimal.NewFromInt(10)), "got %s", accrualA.Amount)
		require.NotNil(t, accrualA.FundingRateDiff)
		require.InDelta(t, 0.02, *accrualA.FundingRateDiff, 1e-9)

		accrualB := result.Events[3]
		require.Equal(t, domain.TradeEventType_FundingAccrual, accrualB.EventType)
		require.Equal(t, "BBB-USDT", accrualB.TradingPair)
		require.True(t, accrualB.Amount.IsZero())
		require.Nil(t, accrualB.FundingRateDiff)

		state := result.FinalState
		require.True(t, state.Cash.Equal(decimal.NewFromInt(8000)), "got %s", state.Cash)
		require.True(t, state.Positions["AAA-USDT"].AllocatedCapital.Equal(decimal.NewFromInt(1010)))
		require.True(t, state.Positions["BBB-USDT"].AllocatedCapital.Equal(decimal.NewFromInt(1000)))
		require.True(t, state.TotalBalance().Equal(decimal.NewFromInt(10010)))
	})

	t.Run("rotates out pairs past the exit threshold", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d2)

		rankingRepository.EXPECT().
			List("original", d1, d2).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d1, "BBB-USDT", 2),
				rankingRow("original", d2, "CCC-USDT", 1),
				rankingRow("original", d2, "BBB-USDT", 2),
				rankingRow("original", d2, "AAA-USDT", 11),
			}, nil)
		metricsRepository.EXPECT().List(d1, d2).Return(nil, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		state := result.FinalState
		require.Len(t, state.Positions, 2)
		require.Contains(t, state.Positions, "BBB-USDT")
		require.Contains(t, state.Positions, "CCC-USDT")
		require.NotContains(t, state.Positions, "AAA-USDT")

		d2Events := []domain.TradeEvent{}
		for _, e := range result.Events {
			if e.Date.Equal(d2) {
				d2Events = append(d2Events, e)
			}
		}
		// exit before entry, accruals last
		require.Equal(t, domain.TradeEventType_Exit, d2Events[0].EventType)
		require.Equal(t, "AAA-USDT", d2Events[0].TradingPair)
		require.Equal(t, domain.TradeEventType_Entry, d2Events[1].EventType)
		require.Equal(t, "CCC-USDT", d2Events[1].TradingPair)
	})

	t.Run("exits pairs missing from the ranking", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d2)

		rankingRepository.EXPECT().
			List("original", d1, d2).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d2, "BBB-USDT", 1),
			}, nil)
		metricsRepository.EXPECT().List(d1, d2).Return(nil, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		state := result.FinalState
		require.NotContains(t, state.Positions, "AAA-USDT")
		require.Contains(t, state.Positions, "BBB-USDT")
		require.True(t, state.TotalBalance().Equal(decimal.NewFromInt(10000)))
	})

	t.Run("skips dates without rankings", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d3)

		rankingRepository.EXPECT().
			List("original", d1, d3).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d3, "AAA-USDT", 1),
			}, nil)
		metricsRepository.EXPECT().
			List(d1, d3).
			Return([]domain.ReturnMetricRecord{
				dailyReturn("AAA-USDT", d1, 0.01),
				dailyReturn("AAA-USDT", d2, 0.5),
				dailyReturn("AAA-USDT", d3, 0.01),
			}, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		// d2 has metric data but no ranking, so nothing happens there
		for _, e := range result.Events {
			require.False(t, e.Date.Equal(d2), "unexpected event on skipped date: %+v", e)
		}
	})

	t.Run("charges fees on entry and exit", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d2)
		in.FeeRate = 0.001
		in.MaxPositions = 1
		in.EntryTopN = 1

		rankingRepository.EXPECT().
			List("original", d1, d2).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d2, "BBB-USDT", 1),
			}, nil)
		metricsRepository.EXPECT().List(d1, d2).Return(nil, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		types := []domain.TradeEventType{}
		for _, e := range result.Events {
			types = append(types, e.EventType)
		}
		require.Equal(t, []domain.TradeEventType{
			domain.TradeEventType_Entry,
			domain.TradeEventType_EntryFee,
			domain.TradeEventType_FundingAccrual,
			domain.TradeEventType_Exit,
			domain.TradeEventType_ExitFee,
			domain.TradeEventType_Entry,
			domain.TradeEventType_EntryFee,
			domain.TradeEventType_FundingAccrual,
		}, types)

		entryFee := result.Events[1]
		require.True(t, entryFee.Amount.Equal(decimal.NewFromInt(-1)), "got %s", entryFee.Amount)

		// two entry fees and one exit fee at 0.1% of 1000 each
		expectedCash := decimal.NewFromInt(10000).
			Sub(decimal.NewFromInt(1000)).
			Sub(decimal.NewFromInt(3))
		require.True(t, result.FinalState.Cash.Equal(expectedCash), "got %s", result.FinalState.Cash)
	})

	t.Run("skips entries cash cannot cover", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d1)
		in.PositionSize = 0.6

		rankingRepository.EXPECT().
			List("original", d1, d1).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
				rankingRow("original", d1, "BBB-USDT", 2),
			}, nil)
		metricsRepository.EXPECT().List(d1, d1).Return(nil, nil)
		backtestRepository.EXPECT().AddRun(gomock.Any()).Return(nil)
		backtestRepository.EXPECT().AddTrades(gomock.Any()).Return(nil)

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		require.Len(t, result.FinalState.Positions, 1)
		require.Contains(t, result.FinalState.Positions, "AAA-USDT")
	})

	t.Run("persists the run and every event", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, backtestRepository := newBacktestMocks(t)
		in := defaultInput(d1, d1)

		rankingRepository.EXPECT().
			List("original", d1, d1).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
			}, nil)
		metricsRepository.EXPECT().
			List(d1, d1).
			Return([]domain.ReturnMetricRecord{
				dailyReturn("AAA-USDT", d1, 0.01),
			}, nil)

		var savedRun *model.BacktestRun
		var savedTrades []*model.BacktestTrade
		backtestRepository.EXPECT().
			AddRun(gomock.Any()).
			DoAndReturn(func(run *model.BacktestRun) error {
				savedRun = run
				return nil
			})
		backtestRepository.EXPECT().
			AddTrades(gomock.Any()).
			DoAndReturn(func(trades []*model.BacktestTrade) error {
				savedTrades = trades
				return nil
			})

		result, err := handler.Run(ctx, in)
		require.NoError(t, err)

		require.NotNil(t, savedRun)
		require.Equal(t, result.BacktestID, savedRun.BacktestID)
		require.Equal(t, "original", savedRun.StrategyName)
		require.Equal(t, int32(1), savedRun.TotalDays)
		require.Len(t, savedTrades, len(result.Events))
		for _, trade := range savedTrades {
			require.Equal(t, result.BacktestID, trade.BacktestID)
		}
	})

	t.Run("errors when no rankings exist in the range", func(t *testing.T) {
		handler, rankingRepository, _, _ := newBacktestMocks(t)
		in := defaultInput(d1, d2)

		rankingRepository.EXPECT().
			List("original", d1, d2).
			Return([]domain.RankingResult{}, nil)

		_, err := handler.Run(ctx, in)
		require.ErrorContains(t, err, "no rankings found")
	})

	t.Run("aborts when the context is cancelled", func(t *testing.T) {
		handler, rankingRepository, metricsRepository, _ := newBacktestMocks(t)
		in := defaultInput(d1, d1)

		rankingRepository.EXPECT().
			List("original", d1, d1).
			Return([]domain.RankingResult{
				rankingRow("original", d1, "AAA-USDT", 1),
			}, nil)
		metricsRepository.EXPECT().List(d1, d1).Return(nil, nil)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := handler.Run(cancelled, in)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func Test_BacktestInput_validate(t *testing.T) {
	d1 := util.NewDate(2025, 6, 1)

	tests := []struct {
		name    string
		mutate  func(*BacktestInput)
		wantErr string
	}{
		{
			name:    "missing strategy",
			mutate:  func(in *BacktestInput) { in.StrategyName = "" },
			wantErr: "strategy name",
		},
		{
			name:    "end before start",
			mutate:  func(in *BacktestInput) { in.End = in.Start.AddDate(0, 0, -1) },
			wantErr: "precedes",
		},
		{
			name:    "zero capital",
			mutate:  func(in *BacktestInput) { in.InitialCapital = decimal.Zero },
			wantErr: "initial capital",
		},
		{
			name:    "position size above one",
			mutate:  func(in *BacktestInput) { in.PositionSize = 1.5 },
			wantErr: "position size",
		},
		{
			name:    "negative fee rate",
			mutate:  func(in *BacktestInput) { in.FeeRate = -0.01 },
			wantErr: "fee rate",
		},
		{
			name:    "zero max positions",
			mutate:  func(in *BacktestInput) { in.MaxPositions = 0 },
			wantErr: "max positions",
		},
		{
			name:    "exit threshold tighter than entry",
			mutate:  func(in *BacktestInput) { in.ExitThreshold = 1; in.EntryTopN = 5 },
			wantErr: "exit threshold",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := defaultInput(d1, d1)
			tc.mutate(&in)
			require.ErrorContains(t, in.validate(), tc.wantErr)
		})
	}
}
