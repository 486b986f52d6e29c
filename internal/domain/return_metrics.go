package domain

import (
	"time"
)

// ReturnMetricRecord is one trading pair's return figures for one date.
// Any field may be nil - upstream ingestion leaves gaps where an exchange
// had no funding history for the lookback window.
type ReturnMetricRecord struct {
	TradingPair string
	Date        time.Time

	Return1d  *float64
	Roi1d     *float64
	Return2d  *float64
	Roi2d     *float64
	Return7d  *float64
	Roi7d     *float64
	Return14d *float64
	Roi14d    *float64
	Return30d *float64
	Roi30d    *float64
	ReturnAll *float64
	RoiAll    *float64
}

// IndicatorNames is the full vocabulary a strategy component may reference.
// The names match the original column naming of the metrics feed.
var IndicatorNames = []string{
	"1d_return", "1d_ROI",
	"2d_return", "2d_ROI",
	"7d_return", "7d_ROI",
	"14d_return", "14d_ROI",
	"30d_return", "30d_ROI",
	"all_return", "all_ROI",
}

// Indicator returns the named field, or false if the name is not part of
// the indicator vocabulary. A nil value with ok=true means the field is
// known but absent for this record.
func (r ReturnMetricRecord) Indicator(name string) (*float64, bool) {
	switch name {
	case "1d_return":
		return r.Return1d, true
	case "1d_ROI":
		return r.Roi1d, true
	case "2d_return":
		return r.Return2d, true
	case "2d_ROI":
		return r.Roi2d, true
	case "7d_return":
		return r.Return7d, true
	case "7d_ROI":
		return r.Roi7d, true
	case "14d_return":
		return r.Return14d, true
	case "14d_ROI":
		return r.Roi14d, true
	case "30d_return":
		return r.Return30d, true
	case "30d_ROI":
		return r.Roi30d, true
	case "all_return":
		return r.ReturnAll, true
	case "all_ROI":
		return r.RoiAll, true
	}
	return nil, false
}

// IsKnownIndicator reports whether name is part of the indicator vocabulary.
func IsKnownIndicator(name string) bool {
	for _, n := range IndicatorNames {
		if n == name {
			return true
		}
	}
	return false
}
