// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/codedash/internal/analytics"
	"github.com/verte-zerg/codedash/internal/catalog"
	"github.com/verte-zerg/codedash/internal/contest"
	"github.com/verte-zerg/codedash/internal/leaderboard"
	"github.com/verte-zerg/codedash/internal/model"
	"github.com/verte-zerg/codedash/internal/session"
	"github.com/verte-zerg/codedash/internal/store"
)

type focus int

const (
	focusProblems focus = iota
	focusEditor
	focusTime
)

type mode int

const (
	modeMain mode = iota
	modeProfile
	modeAddProblem
)

const waitingMessage = "AI Predictor waiting for first attempt..."

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	paneStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	focusedStyle = paneStyle.Copy().BorderForeground(lipgloss.Color("#C89A3A"))
	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A")).Padding(1, 2)
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	sess      *session.Session
	store     *store.Store
	exportDir string

	width  int
	height int

	focus    focus
	mode     mode
	problems table.Model
	editor   textarea.Model
	timeIn   textinput.Model

	difficultyFilter int
	topicFilter      string

	formInputs []textinput.Model
	formIndex  int
	formError  string

	countdown contest.Countdown

	output     string
	outputErr  bool
	similarity string
}

// NewModel constructs a practice TUI model. st may be nil, in which case the profile is not persisted.
func NewModel(sess *session.Session, st *store.Store, countdown contest.Countdown, exportDir string) *Model {
	m := &Model{
		sess:        sess,
		store:       st,
		exportDir:   exportDir,
		countdown:   countdown,
		topicFilter: catalog.All,
	}
	m.problems = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Title", Width: 22},
			{Title: "Difficulty", Width: 10},
			{Title: "Topic", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	m.editor = textarea.New()
	m.editor.Placeholder = "Write your solution here..."
	m.editor.ShowLineNumbers = true
	m.editor.SetHeight(8)
	m.timeIn = textinput.New()
	m.timeIn.Prompt = "Time taken (min): "
	m.timeIn.Placeholder = strconv.Itoa(int(session.DefaultTimeTaken))
	m.timeIn.CharLimit = 6
	m.refreshProblems()
	m.output = fmt.Sprintf("Selected: %s", sess.Current().Title)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var timerCmd tea.Cmd
	m.countdown, timerCmd = m.countdown.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, timerCmd
	case contest.EndedMsg:
		m.setOutput(contest.EndedMessage, false)
		return m, timerCmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.mode != modeMain {
			cmd = m.updateForm(msg)
		} else {
			cmd = m.updateMain(msg)
		}
		return m, tea.Batch(timerCmd, cmd)
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case focusTime:
		m.timeIn, cmd = m.timeIn.Update(msg)
	}
	return m, tea.Batch(timerCmd, cmd)
}

func (m *Model) updateMain(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % 3)
	case "shift+tab":
		return m.setFocus((m.focus + 2) % 3)
	case "ctrl+s":
		m.submit()
		return nil
	case "ctrl+r":
		m.setOutput(m.sess.Run(), false)
		return nil
	case "ctrl+t":
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Start()
		return cmd
	case "ctrl+e":
		m.export()
		return nil
	case "ctrl+p":
		return m.openProfileForm()
	case "ctrl+n":
		return m.openAddProblemForm()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusProblems:
		switch msg.String() {
		case "enter":
			m.selectHighlighted()
			return nil
		case "d":
			m.difficultyFilter = (m.difficultyFilter + 1) % (len(model.Difficulties) + 1)
			m.refreshProblems()
			return nil
		case "t":
			m.topicFilter = nextTopic(m.sess.Catalog().Topics(), m.topicFilter)
			m.refreshProblems()
			return nil
		}
		m.problems, cmd = m.problems.Update(msg)
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case focusTime:
		if msg.String() == "enter" {
			m.submit()
			return nil
		}
		m.timeIn, cmd = m.timeIn.Update(msg)
	}
	return cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.problems.Blur()
	m.editor.Blur()
	m.timeIn.Blur()
	switch f {
	case focusProblems:
		m.problems.Focus()
	case focusEditor:
		return m.editor.Focus()
	case focusTime:
		return m.timeIn.Focus()
	}
	return nil
}

func (m *Model) difficultyLabel() string {
	if m.difficultyFilter == 0 {
		return catalog.All
	}
	return string(model.Difficulties[m.difficultyFilter-1])
}

func (m *Model) topicLabel() string {
	return m.topicFilter
}

// nextTopic steps the topic filter through all, then each topic in order, then back to all.
func nextTopic(topics []string, current string) string {
	if current == catalog.All {
		if len(topics) == 0 {
			return catalog.All
		}
		return topics[0]
	}
	for i, topic := range topics {
		if topic == current && i+1 < len(topics) {
			return topics[i+1]
		}
	}
	return catalog.All
}

func (m *Model) refreshProblems() {
	filtered := m.sess.Catalog().Filter(m.difficultyLabel(), m.topicLabel())
	rows := make([]table.Row, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, table.Row{strconv.Itoa(p.ID), p.Title, string(p.Difficulty), p.Topic})
	}
	m.problems.SetRows(rows)
	if m.problems.Cursor() >= len(rows) {
		m.problems.SetCursor(0)
	}
}

func (m *Model) selectHighlighted() {
	row := m.problems.SelectedRow()
	if row == nil {
		return
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return
	}
	p, err := m.sess.Select(id)
	if err != nil {
		m.setOutput(err.Error(), true)
		return
	}
	m.setOutput(fmt.Sprintf("Selected: %s", p.Title), false)
}

func (m *Model) submit() {
	code := m.editor.Value()
	res, err := m.sess.Submit(code, m.timeIn.Value())
	if err != nil {
		m.setOutput(err.Error(), true)
		return
	}
	m.setOutput(res.Message, !res.Submission.Correct)
	m.similarity = fmt.Sprintf("Code similarity check (demo): %d%% overlap with reference snippet.", res.Similarity)
}

func (m *Model) export() {
	path := filepath.Join(m.exportDir, leaderboard.DefaultExportName)
	csv := leaderboard.CSV(m.sess.Leaderboard())
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		m.setOutput(fmt.Sprintf("Export failed: %v", err), true)
		return
	}
	m.setOutput(fmt.Sprintf("Leaderboard exported to %s", path), false)
}

func (m *Model) setOutput(text string, isErr bool) {
	m.output = text
	m.outputErr = isErr
}

func (m *Model) openProfileForm() tea.Cmd {
	name := newFormInput("Name: ")
	college := newFormInput("College: ")
	if p := m.sess.Profile(); p != nil {
		name.SetValue(p.Name)
		college.SetValue(p.College)
	}
	m.formInputs = []textinput.Model{name, college}
	m.mode = modeProfile
	return m.setFormIndex(0)
}

func (m *Model) openAddProblemForm() tea.Cmd {
	difficulty := newFormInput("Difficulty: ")
	difficulty.SetValue(string(model.Easy))
	m.formInputs = []textinput.Model{
		newFormInput("Title: "),
		difficulty,
		newFormInput("Topic: "),
	}
	m.mode = modeAddProblem
	return m.setFormIndex(0)
}

func newFormInput(prompt string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.CharLimit = 64
	return in
}

func (m *Model) setFormIndex(idx int) tea.Cmd {
	if len(m.formInputs) == 0 {
		return nil
	}
	if idx < 0 {
		idx = len(m.formInputs) - 1
	}
	m.formIndex = idx % len(m.formInputs)
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == m.formIndex {
			cmd = m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil
	case "tab", "down":
		return m.setFormIndex(m.formIndex + 1)
	case "shift+tab", "up":
		return m.setFormIndex(m.formIndex - 1)
	case "enter":
		if m.formIndex < len(m.formInputs)-1 {
			return m.setFormIndex(m.formIndex + 1)
		}
		if err := m.applyForm(); err != nil {
			m.formError = err.Error()
			return nil
		}
		m.closeForm()
		return nil
	}
	var cmd tea.Cmd
	m.formInputs[m.formIndex], cmd = m.formInputs[m.formIndex].Update(msg)
	return cmd
}

func (m *Model) applyForm() error {
	switch m.mode {
	case modeProfile:
		p := model.Profile{
			Name:    strings.TrimSpace(m.formInputs[0].Value()),
			College: strings.TrimSpace(m.formInputs[1].Value()),
		}
		if p.Name == "" {
			return fmt.Errorf("name must not be empty")
		}
		m.sess.SetProfile(p)
		if m.store != nil {
			if err := m.store.SaveProfile(context.Background(), p); err != nil {
				m.setOutput(fmt.Sprintf("Profile updated but not saved: %v", err), true)
				return nil
			}
		}
		m.setOutput(fmt.Sprintf("%s • %s. Skill score updates after each submission.", p.Name, p.College), false)
	case modeAddProblem:
		p, err := m.sess.AddProblem(m.formInputs[0].Value(), m.formInputs[1].Value(), m.formInputs[2].Value())
		if err != nil {
			return err
		}
		m.refreshProblems()
		m.setOutput(fmt.Sprintf("Added problem #%d: %s", p.ID, p.Title), false)
	}
	return nil
}

func (m *Model) closeForm() {
	m.mode = modeMain
	m.formInputs = nil
	m.formIndex = 0
	m.formError = ""
}

func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	half := m.width/2 - 4
	if half < 20 {
		half = 20
	}
	m.editor.SetWidth(half)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode != modeMain {
		form := m.renderForm()
		if m.width == 0 || m.height == 0 {
			return form
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.pane(focusProblems, m.renderProblems()),
		paneStyle.Render(m.renderAnalysis()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.pane(focusEditor, titleStyle.Render("Editor")+"\n"+m.editor.View()),
		m.pane(focusTime, m.timeIn.View()),
		paneStyle.Render(m.renderOutput()),
		paneStyle.Render(m.renderLeaderboard()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + m.renderFooter()
}

func (m *Model) pane(f focus, content string) string {
	if m.focus == f {
		return focusedStyle.Render(content)
	}
	return paneStyle.Render(content)
}

func (m *Model) renderProblems() string {
	header := titleStyle.Render("Problems") + mutedStyle.Render(
		fmt.Sprintf("  difficulty: %s (d)  topic: %s (t)", m.difficultyLabel(), m.topicLabel()))
	return header + "\n" + m.problems.View()
}

func (m *Model) renderAnalysis() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Analysis"))
	b.WriteString("\n")
	a := m.sess.Analysis()
	if a.Empty {
		b.WriteString(mutedStyle.Render(analytics.Placeholder))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(waitingMessage))
		return b.String()
	}
	var buf bytes.Buffer
	if err := analytics.RenderReport(&buf, a); err != nil {
		return errStyle.Render(err.Error())
	}
	b.WriteString(strings.TrimRight(buf.String(), "\n"))
	curve := analytics.AccuracyCurve(m.sess.Submissions(), 5)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Accuracy trend: "))
	b.WriteString(analytics.Sparkline(analytics.Tail(curve, 40), 0, 100))
	return b.String()
}

func (m *Model) renderOutput() string {
	width := m.width/2 - 6
	style := okStyle
	if m.outputErr {
		style = errStyle
	}
	lines := []string{
		titleStyle.Render("Output") + mutedStyle.Render(fmt.Sprintf("  contest %s", m.countdown.View())),
		style.Render(wrapText(m.output, width)),
	}
	if m.similarity != "" {
		lines = append(lines, mutedStyle.Render(wrapText(m.similarity, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLeaderboard() string {
	var buf bytes.Buffer
	if err := leaderboard.Render(&buf, m.sess.Leaderboard()); err != nil {
		return errStyle.Render(err.Error())
	}
	return titleStyle.Render("Weekly Leaderboard") + "\n" + strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderForm() string {
	title := "Profile"
	if m.mode == modeAddProblem {
		title = "Add Problem"
	}
	lines := []string{titleStyle.Render(title), ""}
	for _, in := range m.formInputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "")
	if m.formError != "" {
		lines = append(lines, errStyle.Render(m.formError))
	}
	lines = append(lines, mutedStyle.Render("tab: next  enter: save  esc: cancel"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Submissions %d", len(m.sess.Submissions())),
		fmt.Sprintf("Score %d", leaderboard.Score(m.sess.Submissions())),
	}
	if m.countdown.Active() {
		segments = append(segments, fmt.Sprintf("Contest %s", m.countdown.View()))
	}
	segments = append(segments, "tab focus · ctrl+s submit · ctrl+r run · ctrl+t contest · ctrl+e export · ctrl+p profile · ctrl+n add · ctrl+c quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
