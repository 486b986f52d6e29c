package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeEventType string

const (
	TradeEventType_Entry          TradeEventType = "entry"
	TradeEventType_EntryFee       TradeEventType = "entry_fee"
	TradeEventType_Exit           TradeEventType = "exit"
	TradeEventType_ExitFee        TradeEventType = "exit_fee"
	TradeEventType_FundingAccrual TradeEventType = "funding_accrual"
)

// Position is one held trading pair within a backtest run. At most one
// open position exists per pair at a time.
type Position struct {
	TradingPair      string
	EntryDate        time.Time
	AllocatedCapital decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		TradingPair:      p.TradingPair,
		EntryDate:        p.EntryDate,
		AllocatedCapital: p.AllocatedCapital,
	}
}

// TradeEvent is one append-only entry in a backtest run's audit trail.
// Amount is signed: capital leaving cash is negative, capital returning
// to cash is positive, accruals carry the sign of the day's return.
type TradeEvent struct {
	Date        time.Time
	EventType   TradeEventType
	TradingPair string
	Amount      decimal.Decimal
	// FundingRateDiff is the raw return metric behind a funding accrual.
	// Nil for every other event type.
	FundingRateDiff *float64
	CashAfter       decimal.Decimal
	PositionAfter   decimal.Decimal
}

// BacktestState is the mutable per-run state, owned by exactly one run.
type BacktestState struct {
	CurrentDate time.Time
	Cash        decimal.Decimal
	Positions   map[string]*Position
	Events      []TradeEvent
}

func NewBacktestState(initialCapital decimal.Decimal) *BacktestState {
	return &BacktestState{
		Cash:      initialCapital,
		Positions: map[string]*Position{},
	}
}

// PositionBalance is the total capital currently allocated to open positions.
func (s BacktestState) PositionBalance() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Positions {
		total = total.Add(p.AllocatedCapital)
	}
	return total
}

// TotalBalance is cash plus allocated position capital.
func (s BacktestState) TotalBalance() decimal.Decimal {
	return s.Cash.Add(s.PositionBalance())
}

func (s BacktestState) HeldPairs() []string {
	pairs := []string{}
	for pair := range s.Positions {
		pairs = append(pairs, pair)
	}
	return pairs
}
