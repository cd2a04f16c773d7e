package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/verte-zerg/codedash/internal/model"
)

// TopicSummary is the display form of a topic's stats.
type TopicSummary struct {
	Topic         string
	Accuracy      int
	AvgTime       int
	WrongAttempts int
	Total         int
}

// Analysis bundles everything the analysis pane shows.
type Analysis struct {
	Empty           bool
	Summaries       []TopicSummary
	Scores          []TopicScore
	Weakest         string
	Advice          string
	Recommendations []model.Problem
}

// Summaries rounds per-topic stats for display, sorted by topic.
func Summaries(stats map[string]model.TopicStats) []TopicSummary {
	out := make([]TopicSummary, 0, len(stats))
	for topic, st := range stats {
		out = append(out, TopicSummary{
			Topic:         topic,
			Accuracy:      roundHalfUp(Accuracy(st)),
			AvgTime:       roundHalfUp(AvgTime(st)),
			WrongAttempts: st.WrongAttempts,
			Total:         st.Total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}

// Analyze aggregates subs and derives the weakest topic and matching problems.
func Analyze(problems []model.Problem, subs []model.Submission) Analysis {
	stats := AggregateByTopic(subs)
	if len(stats) == 0 {
		return Analysis{Empty: true}
	}
	scores := WeaknessScores(stats)
	weakest := WeakestTopic(stats)
	return Analysis{
		Summaries:       Summaries(stats),
		Scores:          scores,
		Weakest:         weakest,
		Advice:          Advice(weakest),
		Recommendations: RecommendProblems(problems, weakest),
	}
}

// Advice phrases the practice suggestion for a topic.
func Advice(topic string) string {
	return fmt.Sprintf("You need more practice in %s. Focus on timed sets and attempt pattern-based problems.", topic)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
