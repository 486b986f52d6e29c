package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/db/models/postgres/public/table"
	"fundingrank/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type ReturnMetricsRepository interface {
	AddMany([]*model.ReturnMetric) error
	List(start, end time.Time) ([]domain.ReturnMetricRecord, error)
	ListDates(start, end time.Time) ([]time.Time, error)
}

type returnMetricsRepositoryHandler struct {
	Db *sql.DB
}

func NewReturnMetricsRepository(db *sql.DB) ReturnMetricsRepository {
	return returnMetricsRepositoryHandler{db}
}

func (h returnMetricsRepositoryHandler) AddMany(in []*model.ReturnMetric) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
		x.UpdatedAt = time.Now().UTC()
	}
	query := table.ReturnMetric.INSERT(table.ReturnMetric.MutableColumns).
		MODELS(in).
		ON_CONFLICT(
			table.ReturnMetric.TradingPair,
			table.ReturnMetric.Date,
		).
		DO_UPDATE(
			postgres.SET(
				table.ReturnMetric.Return1d.SET(table.ReturnMetric.EXCLUDED.Return1d),
				table.ReturnMetric.Roi1d.SET(table.ReturnMetric.EXCLUDED.Roi1d),
				table.ReturnMetric.Return2d.SET(table.ReturnMetric.EXCLUDED.Return2d),
				table.ReturnMetric.Roi2d.SET(table.ReturnMetric.EXCLUDED.Roi2d),
				table.ReturnMetric.Return7d.SET(table.ReturnMetric.EXCLUDED.Return7d),
				table.ReturnMetric.Roi7d.SET(table.ReturnMetric.EXCLUDED.Roi7d),
				table.ReturnMetric.Return14d.SET(table.ReturnMetric.EXCLUDED.Return14d),
				table.ReturnMetric.Roi14d.SET(table.ReturnMetric.EXCLUDED.Roi14d),
				table.ReturnMetric.Return30d.SET(table.ReturnMetric.EXCLUDED.Return30d),
				table.ReturnMetric.Roi30d.SET(table.ReturnMetric.EXCLUDED.Roi30d),
				table.ReturnMetric.ReturnAll.SET(table.ReturnMetric.EXCLUDED.ReturnAll),
				table.ReturnMetric.RoiAll.SET(table.ReturnMetric.EXCLUDED.RoiAll),
				table.ReturnMetric.UpdatedAt.SET(table.ReturnMetric.EXCLUDED.UpdatedAt),
			),
		)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add return metrics to db: %w", err)
	}

	return nil
}

func (h returnMetricsRepositoryHandler) List(start, end time.Time) ([]domain.ReturnMetricRecord, error) {
	query := table.ReturnMetric.SELECT(table.ReturnMetric.AllColumns).
		WHERE(table.ReturnMetric.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end))).
		ORDER_BY(table.ReturnMetric.Date.ASC(), table.ReturnMetric.TradingPair.ASC())

	out := []model.ReturnMetric{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list return metrics: %w", err)
	}

	records := make([]domain.ReturnMetricRecord, len(out))
	for i, m := range out {
		records[i] = returnMetricToDomain(m)
	}

	return records, nil
}

func (h returnMetricsRepositoryHandler) ListDates(start, end time.Time) ([]time.Time, error) {
	query := table.ReturnMetric.SELECT(table.ReturnMetric.Date).
		WHERE(table.ReturnMetric.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end))).
		GROUP_BY(table.ReturnMetric.Date).
		ORDER_BY(table.ReturnMetric.Date.ASC())

	out := []model.ReturnMetric{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list return metric dates: %w", err)
	}

	dates := make([]time.Time, len(out))
	for i, m := range out {
		dates[i] = m.Date
	}

	return dates, nil
}

func returnMetricToDomain(m model.ReturnMetric) domain.ReturnMetricRecord {
	return domain.ReturnMetricRecord{
		TradingPair: m.TradingPair,
		Date:        m.Date,
		Return1d:    m.Return1d,
		Roi1d:       m.Roi1d,
		Return2d:    m.Return2d,
		Roi2d:       m.Roi2d,
		Return7d:    m.Return7d,
		Roi7d:       m.Roi7d,
		Return14d:   m.Return14d,
		Roi14d:      m.Roi14d,
		Return30d:   m.Return30d,
		Roi30d:      m.Roi30d,
		ReturnAll:   m.ReturnAll,
		RoiAll:      m.RoiAll,
	}
}
