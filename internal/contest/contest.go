// Package contest runs the contest countdown.
package contest

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLength is the length of a contest.
const DefaultLength = 60 * time.Minute

// EndedMessage is shown when the countdown reaches zero.
const EndedMessage = "Contest ended. Rankings updated!"

// EndedMsg is sent once when a running countdown reaches zero.
type EndedMsg struct{}

// Countdown is a restartable one-second countdown. Starting it again discards the
// running timer; ticks addressed to the old timer are dropped.
type Countdown struct {
	length time.Duration
	timer  timer.Model
	active bool
	ended  bool
}

// New returns an idle countdown of the given length.
func New(length time.Duration) Countdown {
	if length <= 0 {
		length = DefaultLength
	}
	return Countdown{length: length}
}

// Start (re)starts the countdown from its full length.
func (c Countdown) Start() (Countdown, tea.Cmd) {
	c.timer = timer.NewWithInterval(c.length, time.Second)
	c.active = true
	c.ended = false
	return c, c.timer.Init()
}

// Update advances the countdown on ticks belonging to the current timer.
func (c Countdown) Update(msg tea.Msg) (Countdown, tea.Cmd) {
	if !c.active {
		return c, nil
	}
	if msg, ok := msg.(timer.TimeoutMsg); ok {
		if msg.ID != c.timer.ID() {
			return c, nil
		}
		c.active = false
		c.ended = true
		return c, func() tea.Msg { return EndedMsg{} }
	}
	var cmd tea.Cmd
	c.timer, cmd = c.timer.Update(msg)
	return c, cmd
}

// Active reports whether a countdown is running.
func (c Countdown) Active() bool {
	return c.active
}

// Remaining returns the time left. An idle countdown reports its full length.
func (c Countdown) Remaining() time.Duration {
	switch {
	case c.ended:
		return 0
	case c.active:
		return c.timer.Timeout
	default:
		return c.length
	}
}

// View renders the remaining time as MM:SS.
func (c Countdown) View() string {
	return Format(c.Remaining())
}

// Format renders d as zero-padded MM:SS, clamping negatives to 00:00.
func Format(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
