package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/domain"
	mock_repository "fundingrank/internal/repository/mocks"
	"fundingrank/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ImportCsv(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows with sparse indicators", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsRepository := mock_repository.NewMockReturnMetricsRepository(ctrl)
		service := NewMetricsImportService(metricsRepository)

		csv := strings.Join([]string{
			"trading_pair,date,1d_return,1d_ROI,2d_return,2d_ROI,7d_return,7d_ROI,14d_return,14d_ROI,30d_return,30d_ROI,all_return,all_ROI",
			"AAA-USDT,2025-06-01,0.001,0.365,0.002,0.365,,,,,,,0.01,0.2",
			"BBB-USDT,2025-06-01,-0.002,-0.73,,,,,,,,,,",
		}, "\n")

		var saved []*model.ReturnMetric
		metricsRepository.EXPECT().
			AddMany(gomock.Any()).
			DoAndReturn(func(in []*model.ReturnMetric) error {
				saved = in
				return nil
			})

		count, err := service.ImportCsv(ctx, strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Len(t, saved, 2)

		first := saved[0]
		require.Equal(t, "AAA-USDT", first.TradingPair)
		require.True(t, first.Date.Equal(util.NewDate(2025, 6, 1)))
		require.NotNil(t, first.Return1d)
		require.InDelta(t, 0.001, *first.Return1d, 1e-9)
		require.Nil(t, first.Return7d)
		require.NotNil(t, first.RoiAll)

		second := saved[1]
		require.Equal(t, "BBB-USDT", second.TradingPair)
		require.NotNil(t, second.Roi1d)
		require.InDelta(t, -0.73, *second.Roi1d, 1e-9)
		require.Nil(t, second.Return2d)
	})

	t.Run("rejects rows with bad dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsRepository := mock_repository.NewMockReturnMetricsRepository(ctrl)
		service := NewMetricsImportService(metricsRepository)

		csv := "trading_pair,date,1d_return\nAAA-USDT,06/01/2025,0.001\n"

		_, err := service.ImportCsv(ctx, strings.NewReader(csv))
		require.ErrorContains(t, err, "invalid csv row 1")
	})

	t.Run("rejects rows without a trading pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsRepository := mock_repository.NewMockReturnMetricsRepository(ctrl)
		service := NewMetricsImportService(metricsRepository)

		csv := "trading_pair,date,1d_return\n,2025-06-01,0.001\n"

		_, err := service.ImportCsv(ctx, strings.NewReader(csv))
		require.ErrorContains(t, err, "missing trading pair")
	})
}

func Test_ExportEventsCsv(t *testing.T) {
	events := []domain.TradeEvent{
		{
			Date:          util.NewDate(2025, 6, 1),
			EventType:     domain.TradeEventType_Entry,
			TradingPair:   "AAA-USDT",
			Amount:        decimal.NewFromInt(-1000),
			CashAfter:     decimal.NewFromInt(9000),
			PositionAfter: decimal.NewFromInt(1000),
		},
		{
			Date:            util.NewDate(2025, 6, 1),
			EventType:       domain.TradeEventType_FundingAccrual,
			TradingPair:     "AAA-USDT",
			Amount:          decimal.NewFromInt(10),
			FundingRateDiff: util.FloatPointer(0.02),
			CashAfter:       decimal.NewFromInt(9000),
			PositionAfter:   decimal.NewFromInt(1010),
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, ExportEventsCsv(buf, events))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "date,event_type,trading_pair,amount,funding_rate_diff,cash_after,position_after", lines[0])
	require.Contains(t, lines[1], "2025-06-01,entry,AAA-USDT,-1000")
	require.Contains(t, lines[2], "funding_accrual")
	require.Contains(t, lines[2], "0.02")
}
