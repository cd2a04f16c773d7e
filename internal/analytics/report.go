package analytics

import (
	"fmt"
	"io"
)

// Placeholder is shown when there are no submissions yet.
const Placeholder = "No submissions yet. Submit a solution to unlock analytics."

// RenderReport prints the per-topic table, the advice line and recommended problems.
func RenderReport(w io.Writer, a Analysis) error {
	if a.Empty {
		_, err := fmt.Fprintln(w, Placeholder)
		return err
	}
	if _, err := fmt.Fprintln(w, "Topics"); err != nil {
		return err
	}
	cols := []Column{Left("Topic"), Right("Accuracy"), Right("Avg Time"), Right("Wrong Attempts"), Right("Submissions")}
	rows := make([][]string, 0, len(a.Summaries))
	for _, s := range a.Summaries {
		rows = append(rows, []string{
			s.Topic,
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d min", s.AvgTime),
			fmt.Sprintf("%d", s.WrongAttempts),
			fmt.Sprintf("%d", s.Total),
		})
	}
	for _, line := range FormatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", a.Advice); err != nil {
		return err
	}
	if len(a.Recommendations) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recommended:"); err != nil {
		return err
	}
	for _, p := range a.Recommendations {
		if _, err := fmt.Fprintf(w, "  %s (%s)\n", p.Title, p.Difficulty); err != nil {
			return err
		}
	}
	return nil
}
