package analytics

import (
	"math"

	"github.com/verte-zerg/codedash/internal/model"
)

const sparkLevels = " .:-=+*#%@"

// AccuracyCurve returns the rolling percentage of correct submissions, in submission order.
func AccuracyCurve(subs []model.Submission, window int) []float64 {
	values := make([]float64, len(subs))
	for i, s := range subs {
		if s.Correct {
			values[i] = 100
		}
	}
	return rollingMean(values, window)
}

// rollingMean averages each value with up to window-1 of its predecessors.
func rollingMean(values []float64, window int) []float64 {
	window = max(window, 1)
	prefix := make([]float64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}
	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i+1-window)
		out[i] = (prefix[i+1] - prefix[start]) / float64(i+1-start)
	}
	return out
}

// Sparkline maps each value onto sparkLevels, with lo as the lowest level and hi
// as the highest. A degenerate range renders every value at the middle level.
func Sparkline(values []float64, lo, hi float64) string {
	top := len(sparkLevels) - 1
	out := make([]byte, len(values))
	for i, v := range values {
		level := top / 2
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(top)))
			level = min(max(level, 0), top)
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}

// Tail keeps at most n trailing values. n <= 0 keeps everything.
func Tail(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
