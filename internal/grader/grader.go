// Package grader decides whether a submission is accepted.
package grader

import (
	"math/rand"
	"time"
	"unicode/utf16"
)

const (
	minCodeLen    = 30
	acceptCutoff  = 0.35
	maxExtraWrong = 2
)

// Verdict is the outcome of grading one submission.
type Verdict struct {
	Correct       bool
	WrongAttempts int
}

// Grader decides the verdict for submitted code.
type Grader interface {
	Grade(code string) Verdict
}

// Func adapts a plain function to Grader.
type Func func(code string) Verdict

// Grade implements Grader.
func (f Func) Grade(code string) Verdict {
	return f(code)
}

// Random simulates grading with a coin flip. Code of 30 characters or fewer is always rejected.
type Random struct {
	rnd *rand.Rand
}

// New returns a Random grader seeded with the current time.
func New() *Random {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Random grader with a fixed seed.
func NewSeeded(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

// Grade implements Grader.
func (g *Random) Grade(code string) Verdict {
	correct := codeLength(code) > minCodeLen && g.rnd.Float64() > acceptCutoff
	if correct {
		return Verdict{Correct: true}
	}
	return Verdict{WrongAttempts: 1 + g.rnd.Intn(maxExtraWrong)}
}

// codeLength counts UTF-16 code units, so characters outside the BMP count twice.
func codeLength(code string) int {
	n := 0
	for _, r := range code {
		n += utf16.RuneLen(r)
	}
	return n
}
