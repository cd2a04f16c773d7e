package catalog

import (
	"strings"

	"github.com/verte-zerg/codedash/internal/model"
)

// FilterFunc returns true when a problem should be kept.
type FilterFunc func(model.Problem) bool

// DifficultyIs matches problems of the given difficulty, case-insensitively.
func DifficultyIs(difficulty string) FilterFunc {
	if isWildcard(difficulty) {
		return func(model.Problem) bool { return true }
	}
	return func(p model.Problem) bool {
		return strings.EqualFold(string(p.Difficulty), strings.TrimSpace(difficulty))
	}
}

// TopicIs matches problems with exactly the given topic.
func TopicIs(topic string) FilterFunc {
	if isWildcard(topic) {
		return func(model.Problem) bool { return true }
	}
	return func(p model.Problem) bool {
		return p.Topic == topic
	}
}

// And combines filters; all must match.
func And(filters ...FilterFunc) FilterFunc {
	return func(p model.Problem) bool {
		for _, f := range filters {
			if !f(p) {
				return false
			}
		}
		return true
	}
}

func isWildcard(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}
