// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Difficulty labels how hard a problem is.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the known difficulties in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want Easy, Medium or Hard)", s)
}

// Problem is a practice problem in the catalog.
type Problem struct {
	ID         int
	Title      string
	Difficulty Difficulty
	Topic      string
}

// Submission records one graded attempt. TimeTaken is in minutes.
type Submission struct {
	Topic         string
	Correct       bool
	WrongAttempts int
	TimeTaken     float64
}

// TopicStats aggregates submissions for a single topic.
type TopicStats struct {
	Correct       int
	Total         int
	TotalTime     float64
	WrongAttempts int
}

// Profile is the locally stored user identity.
type Profile struct {
	Name    string `json:"name"`
	College string `json:"college"`
}

// SessionSummary is the record kept for the most recent practice session.
type SessionSummary struct {
	ID           string `json:"id"`
	Submissions  int    `json:"submissions"`
	Score        int    `json:"score"`
	WeakestTopic string `json:"weakest_topic"`
}

// LeaderboardRow is one ranked leaderboard entry.
type LeaderboardRow struct {
	Rank    int
	Name    string
	College string
	Score   int
}

// Config defines practice settings.
type Config struct {
	DefaultTime    float64
	Reference      string
	ContestMinutes int
	Seed           int64
	ProblemsFile   string
}
