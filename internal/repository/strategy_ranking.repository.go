package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fundingrank/internal/db/models/postgres/public/model"
	"fundingrank/internal/db/models/postgres/public/table"
	"fundingrank/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type StrategyRankingRepository interface {
	AddMany([]*model.StrategyRanking) error
	// ReplaceForDate removes every prior row for the (strategy, date) key
	// and inserts the given rows in one transaction, so forced
	// recomputation never leaves a partial overwrite behind.
	ReplaceForDate(strategyName string, date time.Time, in []*model.StrategyRanking) error
	// ListDatesWithResults reports which dates in [start, end] already
	// have persisted rankings for the strategy.
	ListDatesWithResults(strategyName string, start, end time.Time) (map[time.Time]bool, error)
	List(strategyName string, start, end time.Time) ([]domain.RankingResult, error)
}

type strategyRankingRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyRankingRepository(db *sql.DB) StrategyRankingRepository {
	return strategyRankingRepositoryHandler{db}
}

func (h strategyRankingRepositoryHandler) AddMany(in []*model.StrategyRanking) error {
	if len(in) == 0 {
		return nil
	}
	return addRankings(h.Db, in)
}

func (h strategyRankingRepositoryHandler) ReplaceForDate(strategyName string, date time.Time, in []*model.StrategyRanking) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin ranking replace tx: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := table.StrategyRanking.DELETE().
		WHERE(
			postgres.AND(
				table.StrategyRanking.StrategyName.EQ(postgres.String(strategyName)),
				table.StrategyRanking.Date.EQ(postgres.DateT(date)),
			),
		)
	_, err = deleteQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete rankings for %s on %v: %w", strategyName, date, err)
	}

	if len(in) > 0 {
		if err := addRankings(tx, in); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func addRankings(db qrm.DB, in []*model.StrategyRanking) error {
	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
		x.UpdatedAt = time.Now().UTC()
	}
	query := table.StrategyRanking.INSERT(table.StrategyRanking.MutableColumns).
		MODELS(in).
		ON_CONFLICT(
			table.StrategyRanking.StrategyName,
			table.StrategyRanking.TradingPair,
			table.StrategyRanking.Date,
		).
		DO_UPDATE(
			postgres.SET(
				table.StrategyRanking.FinalScore.SET(table.StrategyRanking.EXCLUDED.FinalScore),
				table.StrategyRanking.RankPosition.SET(table.StrategyRanking.EXCLUDED.RankPosition),
				table.StrategyRanking.ComponentScores.SET(table.StrategyRanking.EXCLUDED.ComponentScores),
				table.StrategyRanking.UpdatedAt.SET(table.StrategyRanking.EXCLUDED.UpdatedAt),
			),
		)
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add strategy rankings to db: %w", err)
	}

	return nil
}

func (h strategyRankingRepositoryHandler) ListDatesWithResults(strategyName string, start, end time.Time) (map[time.Time]bool, error) {
	query := table.StrategyRanking.SELECT(table.StrategyRanking.Date).
		WHERE(
			postgres.AND(
				table.StrategyRanking.StrategyName.EQ(postgres.String(strategyName)),
				table.StrategyRanking.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		GROUP_BY(table.StrategyRanking.Date)

	out := []model.StrategyRanking{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranked dates for %s: %w", strategyName, err)
	}

	dates := map[time.Time]bool{}
	for _, m := range out {
		dates[m.Date] = true
	}

	return dates, nil
}

func (h strategyRankingRepositoryHandler) List(strategyName string, start, end time.Time) ([]domain.RankingResult, error) {
	query := table.StrategyRanking.SELECT(table.StrategyRanking.AllColumns).
		WHERE(
			postgres.AND(
				table.StrategyRanking.StrategyName.EQ(postgres.String(strategyName)),
				table.StrategyRanking.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StrategyRanking.Date.ASC(), table.StrategyRanking.RankPosition.ASC())

	out := []model.StrategyRanking{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list rankings for %s: %w", strategyName, err)
	}

	results := make([]domain.RankingResult, len(out))
	for i, m := range out {
		r, err := rankingToDomain(m)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	return results, nil
}

func rankingToDomain(m model.StrategyRanking) (domain.RankingResult, error) {
	componentScores := map[string]float64{}
	if m.ComponentScores != nil && *m.ComponentScores != "" {
		if err := json.Unmarshal([]byte(*m.ComponentScores), &componentScores); err != nil {
			return domain.RankingResult{}, fmt.Errorf("failed to decode component scores for %s/%s: %w", m.StrategyName, m.TradingPair, err)
		}
	}

	return domain.RankingResult{
		StrategyName:    m.StrategyName,
		Date:            m.Date,
		TradingPair:     m.TradingPair,
		ComponentScores: componentScores,
		FinalScore:      m.FinalScore,
		RankPosition:    int(m.RankPosition),
	}, nil
}

// RankingToModel converts an engine result to its persistence row.
func RankingToModel(r domain.RankingResult) (*model.StrategyRanking, error) {
	scores, err := json.Marshal(r.ComponentScores)
	if err != nil {
		return nil, fmt.Errorf("failed to encode component scores for %s: %w", r.TradingPair, err)
	}
	scoresStr := string(scores)

	return &model.StrategyRanking{
		StrategyName:    r.StrategyName,
		TradingPair:     r.TradingPair,
		Date:            r.Date,
		FinalScore:      r.FinalScore,
		RankPosition:    int32(r.RankPosition),
		ComponentScores: &scoresStr,
	}, nil
}
