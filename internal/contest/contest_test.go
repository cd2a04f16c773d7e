package contest

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
)

func TestFormat(t *testing.T) {
	cases := map[time.Duration]string{
		60 * time.Minute:               "60:00",
		59*time.Minute + 5*time.Second: "59:05",
		9 * time.Second:                "00:09",
		0:                              "00:00",
		-3 * time.Second:               "00:00",
		1500 * time.Millisecond:        "00:01",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Fatalf("Format(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestIdleCountdownShowsFullLength(t *testing.T) {
	c := New(0)
	if c.Active() {
		t.Fatalf("new countdown must be idle")
	}
	if c.View() != "60:00" {
		t.Fatalf("unexpected idle view %q", c.View())
	}
	c, cmd := c.Update(timer.TickMsg{})
	if cmd != nil || c.Remaining() != DefaultLength {
		t.Fatalf("idle countdown must ignore ticks")
	}
}

func TestTickAdvancesCurrentTimer(t *testing.T) {
	c, _ := New(2 * time.Minute).Start()
	c, _ = c.Update(timer.TickMsg{ID: c.timer.ID()})
	if c.Remaining() != 2*time.Minute-time.Second {
		t.Fatalf("expected one second elapsed, got %v", c.Remaining())
	}
}

func TestRestartDropsStaleTicks(t *testing.T) {
	c, _ := New(time.Minute).Start()
	oldID := c.timer.ID()
	c, _ = c.Start()
	if c.timer.ID() == oldID {
		t.Fatalf("restart must create a new timer")
	}
	c, _ = c.Update(timer.TickMsg{ID: oldID})
	if c.Remaining() != time.Minute {
		t.Fatalf("stale tick changed remaining time to %v", c.Remaining())
	}
	c, cmd := c.Update(timer.TimeoutMsg{ID: oldID})
	if cmd != nil || !c.Active() {
		t.Fatalf("stale timeout must not end the contest")
	}
}

func TestTimeoutEndsContest(t *testing.T) {
	c, _ := New(time.Minute).Start()
	c, cmd := c.Update(timer.TimeoutMsg{ID: c.timer.ID()})
	if cmd == nil {
		t.Fatalf("expected ended command")
	}
	if _, ok := cmd().(EndedMsg); !ok {
		t.Fatalf("expected EndedMsg")
	}
	if c.Active() || c.View() != "00:00" {
		t.Fatalf("expected ended countdown at 00:00, got %q", c.View())
	}
}
