package dashboard

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

const degPerRad = 180.0 / math.Pi

func rad2deg(rad float64) float64 { return rad * degPerRad }

// timeTicks builds evenly spaced x-axis ticks over [now-window, now], labeled
// as offsets from now so the right edge always reads 0.0s.
func timeTicks(now, window float64, n int) []chart.Tick {
	if n < 2 {
		n = 2
	}
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		offset := -window * float64(n-1-i) / float64(n-1)
		if i == n-1 {
			offset = 0
		}
		ticks = append(ticks, chart.Tick{Value: now + offset, Label: fmt.Sprintf("%.2fs", offset)})
	}
	return ticks
}

// valueTicks builds n evenly spaced ticks across [min, max].
func valueTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || max <= min {
		return nil
	}
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		v := min + (max-min)*float64(i)/float64(n-1)
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// jointAxisRange widens a degenerate min/max pair so the chart keeps a usable
// y-span even when every retained value is identical.
func jointAxisRange(min, max float64) (float64, float64) {
	if max-min < 1e-9 {
		return min - 0.1, max + 0.1
	}
	return min, max
}
