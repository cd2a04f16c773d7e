package analytics

import (
	"testing"

	"github.com/verte-zerg/codedash/internal/model"
)

func TestAccuracyCurve(t *testing.T) {
	subs := []model.Submission{
		{Correct: true},
		{Correct: false},
		{Correct: false},
		{Correct: true},
	}
	got := AccuracyCurve(subs, 2)
	want := []float64{100, 50, 0, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRollingMeanWindowOne(t *testing.T) {
	got := rollingMean([]float64{3, 9}, 0)
	if len(got) != 2 || got[0] != 3 || got[1] != 9 {
		t.Fatalf("expected values unchanged, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 50, 100}, 0, 100); got != " +@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline(nil, 0, 100); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{-20, 140}, 0, 100); got != " @" {
		t.Fatalf("expected clamped sparkline, got %q", got)
	}
	if got := Sparkline([]float64{7, 7}, 5, 5); got != "==" {
		t.Fatalf("expected middle level for flat range, got %q", got)
	}
}

func TestTail(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := Tail(values, 2); len(got) != 2 || got[0] != 3 {
		t.Fatalf("unexpected tail %v", got)
	}
	if got := Tail(values, 0); len(got) != 4 {
		t.Fatalf("expected all values, got %v", got)
	}
}
