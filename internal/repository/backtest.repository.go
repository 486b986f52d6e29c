package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/db/models/postgres/public/table"
)

// BacktestRepository persists completed runs. Rows are append-only: a run
// is written once, after its simulation finishes.
type BacktestRepository interface {
	AddRun(*model.BacktestRun) error
	AddTrades([]*model.BacktestTrade) error
}

type backtestRepositoryHandler struct {
	Db *sql.DB
}

func NewBacktestRepository(db *sql.DB) BacktestRepository {
	return backtestRepositoryHandler{db}
}

func (h backtestRepositoryHandler) AddRun(in *model.BacktestRun) error {
	in.CreatedAt = time.Now().UTC()
	query := table.BacktestRun.INSERT(table.BacktestRun.MutableColumns).
		MODEL(in)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add backtest run %s to db: %w", in.BacktestID, err)
	}

	return nil
}

func (h backtestRepositoryHandler) AddTrades(in []*model.BacktestTrade) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
	}
	query := table.BacktestTrade.INSERT(table.BacktestTrade.MutableColumns).
		MODELS(in)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add backtest trades to db: %w", err)
	}

	return nil
}
