package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/leaderboard"
	"github.com/verte-zerg/codedash/internal/session"
)

const (
	defaultSimulateCount = 12
	terminalWidthBackup  = 80
	curveWindow          = 5
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Submit random solutions and print the resulting analytics",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().IntVar(&simulateCount, "count", defaultSimulateCount, "number of submissions")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if simulateCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	sess := newSession(cfg, cat, nil)
	return simulate(cmd.OutOrStdout(), sess, rand.New(rand.NewSource(cfg.Seed)), simulateCount, outputWidth())
}

// simulate submits count solutions to randomly picked problems. Problem choice and
// time taken come from rnd; grading is left to the session's grader.
func simulate(w io.Writer, sess *session.Session, rnd *rand.Rand, count, width int) error {
	if _, err := fmt.Fprintf(w, "Session %s\n", sess.ID()); err != nil {
		return err
	}
	problems := sess.Catalog().Problems()
	for i := 0; i < count; i++ {
		p := problems[rnd.Intn(len(problems))]
		if _, err := sess.Select(p.ID); err != nil {
			return err
		}
		minutes := strconv.Itoa(5 + rnd.Intn(26))
		res, err := sess.Submit(simulatedCode(p.Title), minutes)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%2d. %s (%s min, %d%% similar)\n", i+1, res.Message, minutes, res.Similarity); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := analytics.RenderReport(w, sess.Analysis()); err != nil {
		return err
	}

	curve := analytics.AccuracyCurve(sess.Submissions(), curveWindow)
	label := "Accuracy trend: "
	spark := analytics.Sparkline(analytics.Tail(curve, width-len(label)), 0, 100)
	if _, err := fmt.Fprintf(w, "\n%s%s\n\n", label, spark); err != nil {
		return err
	}
	return leaderboard.Render(w, sess.Leaderboard())
}

func simulatedCode(title string) string {
	return fmt.Sprintf("// %s\nfor i in range(n): total += nums[i]\nreturn total", title)
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
