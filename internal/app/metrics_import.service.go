package app

import (
	"context"
	"fmt"
	"io"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/domain"
	"fundingrank/internal/logger"
	"fundingrank/internal/repository"
	"fundingrank/internal/util"

	"github.com/gocarina/gocsv"
)

// returnMetricCsvRow mirrors the export format of the upstream collector.
// Indicator columns are optional; an empty cell means the pair's history
// is too short for that window.
type returnMetricCsvRow struct {
	TradingPair string   `csv:"trading_pair"`
	Date        string   `csv:"date"`
	Return1d    *float64 `csv:"1d_return"`
	Roi1d       *float64 `csv:"1d_ROI"`
	Return2d    *float64 `csv:"2d_return"`
	Roi2d       *float64 `csv:"2d_ROI"`
	Return7d    *float64 `csv:"7d_return"`
	Roi7d       *float64 `csv:"7d_ROI"`
	Return14d   *float64 `csv:"14d_return"`
	Roi14d      *float64 `csv:"14d_ROI"`
	Return30d   *float64 `csv:"30d_return"`
	Roi30d      *float64 `csv:"30d_ROI"`
	ReturnAll   *float64 `csv:"all_return"`
	RoiAll      *float64 `csv:"all_ROI"`
}

type MetricsImportService interface {
	ImportCsv(ctx context.Context, r io.Reader) (int, error)
}

type metricsImportServiceHandler struct {
	ReturnMetricsRepository repository.ReturnMetricsRepository
}

func NewMetricsImportService(returnMetricsRepository repository.ReturnMetricsRepository) MetricsImportService {
	return metricsImportServiceHandler{returnMetricsRepository}
}

// ImportCsv upserts every row of the reader's CSV into the metric store
// and returns the row count. Re-importing the same file is a no-op apart
// from refreshed timestamps.
func (h metricsImportServiceHandler) ImportCsv(ctx context.Context, r io.Reader) (int, error) {
	log := logger.FromContext(ctx)

	rows := []*returnMetricCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse return metrics csv: %w", err)
	}

	models := make([]*model.ReturnMetric, len(rows))
	for i, row := range rows {
		m, err := csvRowToModel(row)
		if err != nil {
			return 0, fmt.Errorf("invalid csv row %d: %w", i+1, err)
		}
		models[i] = m
	}

	if err := h.ReturnMetricsRepository.AddMany(models); err != nil {
		return 0, err
	}

	log.Infow("return metrics imported", "rows", len(models))

	return len(models), nil
}

func csvRowToModel(row *returnMetricCsvRow) (*model.ReturnMetric, error) {
	if row.TradingPair == "" {
		return nil, fmt.Errorf("missing trading pair")
	}
	date, err := util.ParseDate(row.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date %q: %w", row.Date, err)
	}

	return &model.ReturnMetric{
		TradingPair: row.TradingPair,
		Date:        date,
		Return1d:    row.Return1d,
		Roi1d:       row.Roi1d,
		Return2d:    row.Return2d,
		Roi2d:       row.Roi2d,
		Return7d:    row.Return7d,
		Roi7d:       row.Roi7d,
		Return14d:   row.Return14d,
		Roi14d:      row.Roi14d,
		Return30d:   row.Return30d,
		Roi30d:      row.Roi30d,
		ReturnAll:   row.ReturnAll,
		RoiAll:      row.RoiAll,
	}, nil
}

// tradeEventCsvRow is the export shape for a backtest's event log.
type tradeEventCsvRow struct {
	Date            string   `csv:"date"`
	EventType       string   `csv:"event_type"`
	TradingPair     string   `csv:"trading_pair"`
	Amount          string   `csv:"amount"`
	FundingRateDiff *float64 `csv:"funding_rate_diff"`
	CashAfter       string   `csv:"cash_after"`
	PositionAfter   string   `csv:"position_after"`
}

// ExportEventsCsv writes a backtest's event log as CSV, one row per event
// in simulation order.
func ExportEventsCsv(w io.Writer, events []domain.TradeEvent) error {
	rows := make([]*tradeEventCsvRow, len(events))
	for i, e := range events {
		rows[i] = &tradeEventCsvRow{
			Date:            util.FormatDate(e.Date),
			EventType:       string(e.EventType),
			TradingPair:     e.TradingPair,
			Amount:          e.Amount.String(),
			FundingRateDiff: e.FundingRateDiff,
			CashAfter:       e.CashAfter.String(),
			PositionAfter:   e.PositionAfter.String(),
		}
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write backtest events csv: %w", err)
	}

	return nil
}
