// Package main provides the CLI entrypoint for codedash.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/catalog"
	"github.com/verte-zerg/codedash/internal/config"
	"github.com/verte-zerg/codedash/internal/contest"
	"github.com/verte-zerg/codedash/internal/grader"
	"github.com/verte-zerg/codedash/internal/leaderboard"
	"github.com/verte-zerg/codedash/internal/model"
	"github.com/verte-zerg/codedash/internal/session"
	"github.com/verte-zerg/codedash/internal/similarity"
	"github.com/verte-zerg/codedash/internal/store"
	"github.com/verte-zerg/codedash/internal/tui"
)

const (
	defaultTime           = session.DefaultTimeTaken
	defaultContestMinutes = 60
)

var (
	practiceTime     float64
	practiceRef      string
	practiceContest  int
	practiceSeed     int64
	practiceProblems string

	problemsDifficulty string
	problemsTopic      string

	profileName    string
	profileCollege string
	profileClear   bool

	leaderboardExport string

	simulateCount int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "codedash",
		Short:         "Coding practice dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&practiceTime, "default-time", defaultTime, "minutes recorded when time taken is missing or invalid")
	flags.StringVar(&practiceRef, "reference", similarity.ReferenceSnippet, "reference snippet for the similarity check")
	flags.IntVar(&practiceContest, "contest-minutes", defaultContestMinutes, "contest length in minutes")
	flags.Int64Var(&practiceSeed, "seed", 0, "grader seed (0: random)")
	flags.StringVar(&practiceProblems, "problems", "", "YAML file with extra problems")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newProblemsCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newSimilarityCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "default-time", &practiceTime, fileCfg.Practice.DefaultTime)
	applyStringConfig(cmd, "reference", &practiceRef, fileCfg.Practice.Reference)
	applyIntConfig(cmd, "contest-minutes", &practiceContest, fileCfg.Practice.ContestMinutes)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyStringConfig(cmd, "problems", &practiceProblems, fileCfg.Practice.ProblemsFile)

	cfg := model.Config{
		DefaultTime:    practiceTime,
		Reference:      practiceRef,
		ContestMinutes: practiceContest,
		Seed:           practiceSeed,
		ProblemsFile:   practiceProblems,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	profile, err := st.LoadProfile(context.Background())
	if err != nil {
		logErrf("failed to load profile: %v\n", err)
	}

	sess := newSession(cfg, cat, profile)
	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}
	countdown := contest.New(time.Duration(cfg.ContestMinutes) * time.Minute)
	m := tui.NewModel(sess, st, countdown, exportDir)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if sum := sess.Summary(); sum.Submissions > 0 {
		if err := st.SaveLastSession(context.Background(), sum); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	return nil
}

func newSession(cfg model.Config, cat *catalog.Catalog, profile *model.Profile) *session.Session {
	var g grader.Grader = grader.New()
	if cfg.Seed != 0 {
		g = grader.NewSeeded(cfg.Seed)
	}
	return session.New(cat, g,
		session.WithDefaultTime(cfg.DefaultTime),
		session.WithReference(cfg.Reference),
		session.WithProfile(profile),
	)
}

// loadCatalog returns the seed catalog plus any configured extra problems. The default
// problems file is optional; an explicitly configured one must load.
func loadCatalog(cfg model.Config) (*catalog.Catalog, error) {
	cat := catalog.New()
	path := cfg.ProblemsFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultProblemsPath()
	}
	n, err := cat.LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("failed to load problems from %s: %w", path, err)
	}
	logErrf("Loaded %d extra problems from %s\n", n, path)
	return cat, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newProblemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "List problems",
		Args:  cobra.NoArgs,
		RunE:  runProblemsCmd,
	}
	cmd.Flags().StringVar(&problemsDifficulty, "difficulty", catalog.All, "difficulty filter (Easy, Medium, Hard or all)")
	cmd.Flags().StringVar(&problemsTopic, "topic", catalog.All, "topic filter")
	return cmd
}

func runProblemsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !strings.EqualFold(problemsDifficulty, catalog.All) {
		if _, err := model.ParseDifficulty(problemsDifficulty); err != nil {
			return fmt.Errorf("invalid --difficulty value: %w", err)
		}
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return writeProblems(cmd.OutOrStdout(), cat.Filter(problemsDifficulty, problemsTopic))
}

var problemColumns = []analytics.Column{
	analytics.Right("ID"),
	analytics.Left("Title"),
	analytics.Left("Difficulty"),
	analytics.Left("Topic"),
}

func writeProblems(w io.Writer, problems []model.Problem) error {
	if len(problems) == 0 {
		_, err := fmt.Fprintln(w, "No problems found.")
		return err
	}
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, []string{fmt.Sprintf("%d", p.ID), p.Title, string(p.Difficulty), p.Topic})
	}
	for _, line := range analytics.FormatTable(problemColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set the local profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
	cmd.Flags().StringVar(&profileName, "name", "", "display name")
	cmd.Flags().StringVar(&profileCollege, "college", "", "college")
	cmd.Flags().BoolVar(&profileClear, "clear", false, "remove the saved profile")
	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	ctx := context.Background()

	if profileClear {
		if cmd.Flags().Changed("name") || cmd.Flags().Changed("college") {
			return fmt.Errorf("--clear cannot be combined with --name or --college")
		}
		if err := st.ClearProfile(ctx); err != nil {
			return fmt.Errorf("failed to clear profile: %w", err)
		}
		logErrln("Profile cleared.")
		return nil
	}

	if cmd.Flags().Changed("name") || cmd.Flags().Changed("college") {
		if strings.TrimSpace(profileName) == "" {
			return fmt.Errorf("--name must not be empty")
		}
		p := model.Profile{Name: strings.TrimSpace(profileName), College: strings.TrimSpace(profileCollege)}
		if err := st.SaveProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	p, err := st.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	last, err := st.LoadLastSession(ctx)
	if err != nil {
		logErrf("failed to load last session: %v\n", err)
	}
	return writeProfile(cmd.OutOrStdout(), p, last)
}

func writeProfile(w io.Writer, p *model.Profile, last *model.SessionSummary) error {
	if p == nil {
		logErrln("No profile set. Create one with: codedash profile --name <name> --college <college>")
	} else if _, err := fmt.Fprintf(w, "%s • %s\n", p.Name, p.College); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if last == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Last session %s: %d submissions, score %d, weakest topic %s\n",
		shortID(last.ID), last.Submissions, last.Score, last.WeakestTopic); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// shortID trims a session UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the weekly leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().StringVar(&leaderboardExport, "export", "", "write the leaderboard as CSV to this path")
	cmd.Flags().Lookup("export").NoOptDefVal = leaderboard.DefaultExportName
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	profile, err := st.LoadProfile(context.Background())
	if err != nil {
		logErrf("failed to load profile: %v\n", err)
	}

	rows := leaderboard.Build(profile, nil)
	if leaderboardExport != "" {
		if err := writeFileAtomic(leaderboardExport, []byte(leaderboard.CSV(rows))); err != nil {
			return fmt.Errorf("failed to export leaderboard: %w", err)
		}
		logErrf("Wrote %s\n", leaderboardExport)
		return nil
	}
	return leaderboard.Render(cmd.OutOrStdout(), rows)
}

func newSimilarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity [code]",
		Short: "Compare code with the reference snippet (reads stdin without args)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimilarityCmd,
	}
}

func runSimilarityCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	var code string
	if len(args) == 1 {
		code = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		code = string(data)
	}
	pct := similarity.Percent(code, cfg.Reference)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Code similarity check (demo): %d%% overlap with reference snippet.\n", pct); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "codedash-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.Write(data); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# codedash configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# default-time = %.0f        # Minutes recorded when time taken is missing or invalid
# reference = %q   # Snippet used by the similarity check
# contest-minutes = %d     # Contest length
# seed = 0                 # Grader seed (0: random)
# problems-file = %q
`,
		defaultTime,
		similarity.ReferenceSnippet,
		defaultContestMinutes,
		config.DefaultProblemsPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DefaultTime <= 0 {
		return fmt.Errorf("--default-time must be > 0")
	}
	if cfg.ContestMinutes <= 0 {
		return fmt.Errorf("--contest-minutes must be > 0")
	}
	if strings.TrimSpace(cfg.Reference) == "" {
		return fmt.Errorf("--reference must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
