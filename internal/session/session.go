// Package session holds the state of one practice session.
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/catalog"
	"github.com/verte-zerg/codedash/internal/grader"
	"github.com/verte-zerg/codedash/internal/leaderboard"
	"github.com/verte-zerg/codedash/internal/model"
	"github.com/verte-zerg/codedash/internal/similarity"
)

// DefaultTimeTaken is used when the entered time is missing or invalid.
const DefaultTimeTaken = 10.0

// RunMessage is the canned response to a run request.
const RunMessage = "Code executed successfully on sample test cases."

// Result describes a graded submission.
type Result struct {
	Submission model.Submission
	Problem    model.Problem
	Similarity int
	Message    string
}

// Session owns the problem catalog, the submission history and the profile.
// It is not safe for concurrent use.
type Session struct {
	id          uuid.UUID
	catalog     *catalog.Catalog
	grader      grader.Grader
	current     model.Problem
	submissions []model.Submission
	profile     *model.Profile
	defaultTime float64
	reference   string
}

// Option configures a Session.
type Option func(*Session)

// WithDefaultTime overrides the fallback time for invalid input.
func WithDefaultTime(minutes float64) Option {
	return func(s *Session) {
		if minutes > 0 {
			s.defaultTime = minutes
		}
	}
}

// WithReference overrides the snippet submissions are compared against.
func WithReference(snippet string) Option {
	return func(s *Session) {
		if snippet != "" {
			s.reference = snippet
		}
	}
}

// WithProfile sets the profile shown on the leaderboard.
func WithProfile(p *model.Profile) Option {
	return func(s *Session) {
		s.profile = p
	}
}

// New starts a session over cat, with the first problem selected.
func New(cat *catalog.Catalog, g grader.Grader, opts ...Option) *Session {
	s := &Session{
		id:          uuid.New(),
		catalog:     cat,
		grader:      g,
		defaultTime: DefaultTimeTaken,
		reference:   similarity.ReferenceSnippet,
	}
	if p, ok := cat.Get(1); ok {
		s.current = p
	} else if ps := cat.Problems(); len(ps) > 0 {
		s.current = ps[0]
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Catalog returns the session's problem catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Current returns the selected problem.
func (s *Session) Current() model.Problem {
	return s.current
}

// Select makes the problem with id current.
func (s *Session) Select(id int) (model.Problem, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return model.Problem{}, fmt.Errorf("no problem with id %d", id)
	}
	s.current = p
	return p, nil
}

// AddProblem adds a problem to the catalog.
func (s *Session) AddProblem(title, difficulty, topic string) (model.Problem, error) {
	return s.catalog.Add(title, difficulty, topic)
}

// Run returns the canned run response.
func (s *Session) Run() string {
	return RunMessage
}

// Submit grades code against the current problem and records the submission.
// timeInput is minutes; anything unparsable, non-finite or non-positive falls back to the default time.
func (s *Session) Submit(code, timeInput string) (Result, error) {
	if s.current.ID == 0 {
		return Result{}, fmt.Errorf("no problem selected")
	}
	verdict := s.grader.Grade(code)
	sub := model.Submission{
		Topic:         s.current.Topic,
		Correct:       verdict.Correct,
		WrongAttempts: verdict.WrongAttempts,
		TimeTaken:     s.parseTime(timeInput),
	}
	s.submissions = append(s.submissions, sub)

	msg := fmt.Sprintf("Wrong Answer for %s. Try again.", s.current.Title)
	if sub.Correct {
		msg = fmt.Sprintf("Accepted: %s", s.current.Title)
	}
	return Result{
		Submission: sub,
		Problem:    s.current,
		Similarity: similarity.Percent(code, s.reference),
		Message:    msg,
	}, nil
}

func (s *Session) parseTime(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return s.defaultTime
	}
	return v
}

// Submissions returns a copy of the submission history.
func (s *Session) Submissions() []model.Submission {
	out := make([]model.Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// Analysis recomputes per-topic analytics from the current history.
func (s *Session) Analysis() analytics.Analysis {
	return analytics.Analyze(s.catalog.Problems(), s.submissions)
}

// Profile returns the current profile, or nil.
func (s *Session) Profile() *model.Profile {
	return s.profile
}

// SetProfile replaces the profile.
func (s *Session) SetProfile(p model.Profile) {
	s.profile = &p
}

// Summary condenses the session into the record kept after it ends.
func (s *Session) Summary() model.SessionSummary {
	return model.SessionSummary{
		ID:           s.id.String(),
		Submissions:  len(s.submissions),
		Score:        leaderboard.Score(s.submissions),
		WeakestTopic: analytics.WeakestTopic(analytics.AggregateByTopic(s.submissions)),
	}
}

// Leaderboard ranks the seed rows plus this session's score.
func (s *Session) Leaderboard() []model.LeaderboardRow {
	return leaderboard.Build(s.profile, s.submissions)
}
