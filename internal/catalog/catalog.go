// Package catalog holds the practice problem list.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/codedash/internal/model"
)

// All matches every difficulty or topic in Filter.
const All = "all"

// Catalog is an ordered, append-only problem list.
type Catalog struct {
	problems []model.Problem
}

// Seed returns the built-in demo problems.
func Seed() []model.Problem {
	return []model.Problem{
		{ID: 1, Title: "Two Sum", Difficulty: model.Easy, Topic: "Arrays"},
		{ID: 2, Title: "Reverse String", Difficulty: model.Easy, Topic: "Strings"},
		{ID: 3, Title: "N-Queens Count", Difficulty: model.Hard, Topic: "Recursion"},
		{ID: 4, Title: "Implement Stack", Difficulty: model.Medium, Topic: "Data Structures"},
		{ID: 5, Title: "Top Customers", Difficulty: model.Medium, Topic: "SQL Basics"},
	}
}

// New returns a catalog with the seed problems.
func New() *Catalog {
	return &Catalog{problems: Seed()}
}

// Problems returns a copy of the problem list.
func (c *Catalog) Problems() []model.Problem {
	out := make([]model.Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

// Get looks a problem up by ID.
func (c *Catalog) Get(id int) (model.Problem, bool) {
	for _, p := range c.problems {
		if p.ID == id {
			return p, true
		}
	}
	return model.Problem{}, false
}

// Add appends a problem and assigns it the next ID.
func (c *Catalog) Add(title, difficulty, topic string) (model.Problem, error) {
	title = strings.TrimSpace(title)
	topic = strings.TrimSpace(topic)
	if title == "" {
		return model.Problem{}, fmt.Errorf("title must not be empty")
	}
	if topic == "" {
		return model.Problem{}, fmt.Errorf("topic must not be empty")
	}
	d, err := model.ParseDifficulty(difficulty)
	if err != nil {
		return model.Problem{}, err
	}
	p := model.Problem{
		ID:         len(c.problems) + 1,
		Title:      title,
		Difficulty: d,
		Topic:      topic,
	}
	c.problems = append(c.problems, p)
	return p, nil
}

// Filter returns problems matching difficulty and topic, keeping catalog order.
// Either argument may be All or empty to match everything.
func (c *Catalog) Filter(difficulty, topic string) []model.Problem {
	keep := And(DifficultyIs(difficulty), TopicIs(topic))
	out := make([]model.Problem, 0, len(c.problems))
	for _, p := range c.problems {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Topics returns the distinct topics, sorted.
func (c *Catalog) Topics() []string {
	seen := map[string]struct{}{}
	var topics []string
	for _, p := range c.problems {
		if _, ok := seen[p.Topic]; ok {
			continue
		}
		seen[p.Topic] = struct{}{}
		topics = append(topics, p.Topic)
	}
	sort.Strings(topics)
	return topics
}
