// Package leaderboard builds the weekly leaderboard and its CSV export.
package leaderboard

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/model"
)

const (
	// CSVHeader is the first line of every export.
	CSVHeader = "Rank,Name,College,Weekly Score"
	// DefaultExportName is the file name offered for exports.
	DefaultExportName = "leaderboard.csv"

	correctPoints   = 100
	incorrectPoints = 20
)

// Seed returns the static rows every leaderboard starts with.
func Seed() []model.LeaderboardRow {
	return []model.LeaderboardRow{
		{Name: "Anitha", College: "ABC Engg", Score: 520},
		{Name: "Rahul", College: "XYZ Tech", Score: 498},
		{Name: "Siva", College: "NIT", Score: 476},
	}
}

// Score awards 100 points per correct submission and 20 per incorrect one.
func Score(subs []model.Submission) int {
	total := 0
	for _, s := range subs {
		if s.Correct {
			total += correctPoints
		} else {
			total += incorrectPoints
		}
	}
	return total
}

// Build ranks the seed rows plus the profile's own row, if a profile is set.
func Build(profile *model.Profile, subs []model.Submission) []model.LeaderboardRow {
	rows := Seed()
	if profile != nil {
		rows = append(rows, model.LeaderboardRow{
			Name:    profile.Name,
			College: profile.College,
			Score:   Score(subs),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// CSV serializes rows with the export header. Lines are joined by "\n" without a trailing newline.
func CSV(rows []model.LeaderboardRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, CSVHeader)
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{
			fmt.Sprintf("%d", r.Rank),
			r.Name,
			r.College,
			fmt.Sprintf("%d", r.Score),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes the CSV export to w.
func WriteCSV(w io.Writer, rows []model.LeaderboardRow) error {
	_, err := io.WriteString(w, CSV(rows))
	return err
}

// Render prints rows as an aligned table.
func Render(w io.Writer, rows []model.LeaderboardRow) error {
	cols := []analytics.Column{
		analytics.Right("Rank"),
		analytics.Left("Name"),
		analytics.Left("College"),
		analytics.Right("Weekly Score"),
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			fmt.Sprintf("%d", r.Rank),
			r.Name,
			r.College,
			fmt.Sprintf("%d", r.Score),
		})
	}
	for _, line := range analytics.FormatTable(cols, cells) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
