package session

import (
	"strings"
	"testing"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/catalog"
	"github.com/verte-zerg/codedash/internal/grader"
	"github.com/verte-zerg/codedash/internal/model"
	"github.com/verte-zerg/codedash/internal/similarity"
)

type scripted struct {
	verdicts []grader.Verdict
	next     int
}

func (s *scripted) Grade(string) grader.Verdict {
	v := s.verdicts[s.next%len(s.verdicts)]
	s.next++
	return v
}

func TestNewSelectsFirstProblem(t *testing.T) {
	s := New(catalog.New(), grader.NewSeeded(1))
	if s.Current().ID != 1 || s.Current().Title != "Two Sum" {
		t.Fatalf("unexpected current problem: %+v", s.Current())
	}
	if s.ID().String() == "" {
		t.Fatalf("expected session id")
	}
}

func TestSubmitRecordsVerdict(t *testing.T) {
	g := &scripted{verdicts: []grader.Verdict{
		{Correct: true},
		{WrongAttempts: 2},
	}}
	s := New(catalog.New(), g)

	res, err := s.Submit("for i in range(n): total += nums[i]", "5")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Message != "Accepted: Two Sum" || res.Similarity != 100 {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := s.Select(3); err != nil {
		t.Fatalf("select: %v", err)
	}
	res, err = s.Submit("x", "15")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Message != "Wrong Answer for N-Queens Count. Try again." {
		t.Fatalf("unexpected message %q", res.Message)
	}

	subs := s.Submissions()
	want := []model.Submission{
		{Topic: "Arrays", Correct: true, TimeTaken: 5},
		{Topic: "Recursion", WrongAttempts: 2, TimeTaken: 15},
	}
	if len(subs) != len(want) {
		t.Fatalf("expected %d submissions, got %d", len(want), len(subs))
	}
	for i := range want {
		if subs[i] != want[i] {
			t.Fatalf("submission %d: expected %+v, got %+v", i, want[i], subs[i])
		}
	}
}

func TestSubmitFallsBackToDefaultTime(t *testing.T) {
	g := grader.Func(func(string) grader.Verdict { return grader.Verdict{Correct: true} })
	s := New(catalog.New(), g)
	for _, input := range []string{"", "abc", "0", "-4"} {
		res, err := s.Submit("code", input)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if res.Submission.TimeTaken != DefaultTimeTaken {
			t.Fatalf("input %q: expected default time, got %v", input, res.Submission.TimeTaken)
		}
	}

	s = New(catalog.New(), g, WithDefaultTime(25))
	res, _ := s.Submit("code", "")
	if res.Submission.TimeTaken != 25 {
		t.Fatalf("expected configured default time, got %v", res.Submission.TimeTaken)
	}
}

func TestSubmitRejectsNonFiniteTime(t *testing.T) {
	g := grader.Func(func(string) grader.Verdict { return grader.Verdict{Correct: true} })
	s := New(catalog.New(), g)
	for _, input := range []string{"NaN", "nan", "inf", "+Inf", "-inf", "Infinity"} {
		res, err := s.Submit("code", input)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if res.Submission.TimeTaken != DefaultTimeTaken {
			t.Fatalf("input %q: expected default time, got %v", input, res.Submission.TimeTaken)
		}
	}
}

func TestWeakestTopicStableWithNonNumericTime(t *testing.T) {
	g := grader.Func(func(string) grader.Verdict { return grader.Verdict{WrongAttempts: 1} })
	for i := 0; i < 50; i++ {
		s := New(catalog.New(), g)
		mustSubmit(t, s, 1, "NaN")
		mustSubmit(t, s, 2, "5")
		mustSubmit(t, s, 3, "5")
		if got := s.Analysis().Weakest; got != "Arrays" {
			t.Fatalf("run %d: expected Arrays, got %q", i, got)
		}
	}
}

func mustSubmit(t *testing.T, s *Session, id int, minutes string) {
	t.Helper()
	if _, err := s.Select(id); err != nil {
		t.Fatalf("select %d: %v", id, err)
	}
	if _, err := s.Submit("code", minutes); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestSummary(t *testing.T) {
	g := &scripted{verdicts: []grader.Verdict{{Correct: true}, {WrongAttempts: 2}}}
	s := New(catalog.New(), g)
	sum := s.Summary()
	if sum.ID != s.ID().String() || sum.Submissions != 0 || sum.WeakestTopic != analytics.NoTopic {
		t.Fatalf("unexpected empty summary: %+v", sum)
	}
	mustSubmit(t, s, 1, "5")
	mustSubmit(t, s, 4, "5")
	sum = s.Summary()
	if sum.Submissions != 2 || sum.Score != 120 || sum.WeakestTopic != "Data Structures" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestSelectUnknownProblem(t *testing.T) {
	s := New(catalog.New(), grader.NewSeeded(1))
	if _, err := s.Select(99); err == nil {
		t.Fatalf("expected error for unknown problem")
	}
	if s.Current().ID != 1 {
		t.Fatalf("selection changed on error")
	}
}

func TestAnalysisAndLeaderboard(t *testing.T) {
	g := &scripted{verdicts: []grader.Verdict{{Correct: true}, {WrongAttempts: 1}}}
	s := New(catalog.New(), g)
	if a := s.Analysis(); !a.Empty {
		t.Fatalf("expected empty analysis before submissions")
	}
	if rows := s.Leaderboard(); len(rows) != 3 {
		t.Fatalf("expected seed rows only without profile, got %d", len(rows))
	}

	if _, err := s.Submit("a", "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.Submit("b", "8"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	a := s.Analysis()
	if a.Weakest != "Strings" {
		t.Fatalf("expected Strings to be weakest, got %q", a.Weakest)
	}
	if len(a.Recommendations) != 1 || a.Recommendations[0].Title != "Reverse String" {
		t.Fatalf("unexpected recommendations: %+v", a.Recommendations)
	}

	s.SetProfile(model.Profile{Name: "Maya", College: "IIT"})
	rows := s.Leaderboard()
	if len(rows) != 4 || rows[3].Name != "Maya" || rows[3].Score != 120 {
		t.Fatalf("unexpected leaderboard: %+v", rows)
	}
}

func TestAddedProblemIsRecommended(t *testing.T) {
	g := grader.Func(func(string) grader.Verdict { return grader.Verdict{WrongAttempts: 1} })
	s := New(catalog.New(), g)
	p, err := s.AddProblem("Rotate Array", "Medium", "Arrays")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Submit("x", "3"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	a := s.Analysis()
	if a.Weakest != "Arrays" {
		t.Fatalf("expected Arrays, got %q", a.Weakest)
	}
	last := a.Recommendations[len(a.Recommendations)-1]
	if last.ID != p.ID {
		t.Fatalf("expected added problem in recommendations, got %+v", a.Recommendations)
	}
	if !strings.Contains(a.Advice, "Arrays") || a.Weakest == analytics.NoTopic {
		t.Fatalf("unexpected advice %q", a.Advice)
	}
}

func TestWithReference(t *testing.T) {
	g := grader.Func(func(string) grader.Verdict { return grader.Verdict{} })
	s := New(catalog.New(), g, WithReference("return a + b"))
	res, _ := s.Submit("return a + b", "")
	if res.Similarity != 100 {
		t.Fatalf("expected custom reference to match, got %d", res.Similarity)
	}
	if similarity.Percent("return a + b", similarity.ReferenceSnippet) == 100 {
		t.Fatalf("default reference must differ")
	}
}
