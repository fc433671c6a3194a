package leaderboard

import (
	"fmt"
	"math"
	"strconv"
)

// userTotals holds the counters accumulated for one user across the
// whole replayed corpus.
type userTotals struct {
	DisplayName string
	Wins        int
	Appearances int
	Nukes       int
	Swims       int
	Unbreakable int
	Untouchable int
}

// metricDef couples a metric's value extraction with its display
// formatting. One table instead of one accumulator type per metric.
type metricDef struct {
	value  func(t *userTotals) float64
	format func(v float64) string
}

var metricTable = map[Metric]metricDef{
	MetricWins: {
		value:  func(t *userTotals) float64 { return float64(t.Wins) },
		format: formatCount,
	},
	MetricWinRate: {
		value:  func(t *userTotals) float64 { return ratio(t.Wins, t.Appearances) },
		format: formatPercent,
	},
	MetricAppearances: {
		value:  func(t *userTotals) float64 { return float64(t.Appearances) },
		format: formatCount,
	},
	MetricNukes: {
		value:  func(t *userTotals) float64 { return float64(t.Nukes) },
		format: formatCount,
	},
	MetricSwims: {
		value:  func(t *userTotals) float64 { return float64(t.Swims) },
		format: formatCount,
	},
	MetricSwimRate: {
		value:  func(t *userTotals) float64 { return ratio(t.Swims, t.Appearances) },
		format: formatPercent,
	},
	MetricUnbreakable: {
		value:  func(t *userTotals) float64 { return float64(t.Unbreakable) },
		format: formatCount,
	},
	MetricUntouchable: {
		value:  func(t *userTotals) float64 { return float64(t.Untouchable) },
		format: formatCount,
	},
}

// ratio rounds to four decimals before any display formatting
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 10000
}

func formatCount(v float64) string {
	return strconv.Itoa(int(v))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
