package leaderboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/codedash/internal/model"
)

func TestScore(t *testing.T) {
	subs := []model.Submission{
		{Correct: true},
		{Correct: false},
		{Correct: true},
	}
	if got := Score(subs); got != 220 {
		t.Fatalf("expected 220, got %d", got)
	}
	if got := Score(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestBuildWithoutProfile(t *testing.T) {
	rows := Build(nil, []model.Submission{{Correct: true}})
	if len(rows) != 3 {
		t.Fatalf("expected seed rows only, got %d", len(rows))
	}
	if rows[0].Name != "Anitha" || rows[0].Rank != 1 || rows[2].Rank != 3 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestBuildRanksProfileRow(t *testing.T) {
	subs := make([]model.Submission, 0, 6)
	for i := 0; i < 5; i++ {
		subs = append(subs, model.Submission{Correct: true})
	}
	subs = append(subs, model.Submission{Correct: false})
	profile := &model.Profile{Name: "Maya", College: "IIT"}

	rows := Build(profile, subs)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	// 520 = 5*100 + 20, ties with Anitha; the seed row keeps its place.
	if rows[0].Name != "Anitha" || rows[1].Name != "Maya" || rows[1].Score != 520 {
		t.Fatalf("unexpected ranking: %+v", rows)
	}
	for i, r := range rows {
		if r.Rank != i+1 {
			t.Fatalf("row %d has rank %d", i, r.Rank)
		}
	}
}

func TestCSV(t *testing.T) {
	rows := Build(&model.Profile{Name: "Maya", College: "IIT"}, nil)
	got := CSV(rows)
	want := strings.Join([]string{
		"Rank,Name,College,Weekly Score",
		"1,Anitha,ABC Engg,520",
		"2,Rahul,XYZ Tech,498",
		"3,Siva,NIT,476",
		"4,Maya,IIT,0",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected csv:\n%s", got)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if buf.String() != want {
		t.Fatalf("WriteCSV differs from CSV")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Build(nil, nil)); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Rank Name") {
		t.Fatalf("unexpected header %q", lines[0])
	}
}
