// Package analytics computes per-topic submission statistics and weakness ranking.
package analytics

import (
	"sort"

	"github.com/verte-zerg/codedash/internal/model"
)

// NoTopic is returned by WeakestTopic when there is nothing to rank.
const NoTopic = "none"

// TopicScore pairs a topic with its weakness score.
type TopicScore struct {
	Topic string
	Score float64
}

// AggregateByTopic buckets submissions by topic.
func AggregateByTopic(subs []model.Submission) map[string]model.TopicStats {
	out := make(map[string]model.TopicStats)
	for _, s := range subs {
		st := out[s.Topic]
		st.Total++
		st.TotalTime += s.TimeTaken
		st.WrongAttempts += s.WrongAttempts
		if s.Correct {
			st.Correct++
		}
		out[s.Topic] = st
	}
	return out
}

// Accuracy returns the correct percentage (0-100). Zero totals report 0.
func Accuracy(st model.TopicStats) float64 {
	if st.Total == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Total) * 100
}

// AvgTime returns the mean minutes per submission.
func AvgTime(st model.TopicStats) float64 {
	if st.Total == 0 {
		return 0
	}
	return st.TotalTime / float64(st.Total)
}

// WeaknessScore combines accuracy deficit, a wrong-attempt penalty and average time.
func WeaknessScore(st model.TopicStats) float64 {
	return (100 - Accuracy(st)) + 10*float64(st.WrongAttempts) + AvgTime(st)
}

// WeaknessScores ranks topics from weakest to strongest. Equal scores order by topic name.
func WeaknessScores(stats map[string]model.TopicStats) []TopicScore {
	scores := make([]TopicScore, 0, len(stats))
	for topic, st := range stats {
		if st.Total == 0 {
			continue
		}
		scores = append(scores, TopicScore{Topic: topic, Score: WeaknessScore(st)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score == scores[j].Score {
			return scores[i].Topic < scores[j].Topic
		}
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// WeakestTopic returns the highest-scoring topic, or NoTopic for empty input.
func WeakestTopic(stats map[string]model.TopicStats) string {
	scores := WeaknessScores(stats)
	if len(scores) == 0 {
		return NoTopic
	}
	return scores[0].Topic
}

// RecommendProblems keeps the problems tagged with topic, in input order.
func RecommendProblems(problems []model.Problem, topic string) []model.Problem {
	out := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		if p.Topic == topic {
			out = append(out, p)
		}
	}
	return out
}
