package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextShortLineUnchanged(t *testing.T) {
	if got := wrapText("Accepted: Two Sum", 40); got != "Accepted: Two Sum" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	got := wrapText("Wrong Answer for N-Queens Count. Try again.", 16)
	want := "Wrong Answer for\nN-Queens Count.\nTry again."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	got := wrapText("ab abcdefghij", 4)
	for _, line := range strings.Split(got, "\n") {
		if runewidth.StringWidth(line) > 4 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if strings.ReplaceAll(got, "\n", "") != "ababcdefghij" {
		t.Fatalf("wrap lost characters: %q", got)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	got := wrapText("李雷 韩梅梅", 6)
	if got != "李雷\n韩梅梅" {
		t.Fatalf("unexpected wide wrap %q", got)
	}
}
