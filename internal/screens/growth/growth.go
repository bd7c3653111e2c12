// Package growth shows the user's long-term progress: level, XP,
// streak, week badges and journal totals.
package growth

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/thinkle/deep/internal/feedback"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/router"
	"github.com/thinkle/deep/internal/screen"
	"github.com/thinkle/deep/internal/store"
	"github.com/thinkle/deep/internal/ui/components"
	"github.com/thinkle/deep/internal/ui/layout"
	"github.com/thinkle/deep/internal/ui/theme"
)

type growthLoadedMsg struct {
	Progress *store.ProgressState
	Entries  int
	Err      error
}

// GrowthScreen displays the progress overview.
type GrowthScreen struct {
	progressRepo store.ProgressRepo
	journalRepo  store.JournalRepo
	userID       string

	progress *store.ProgressState
	entries  int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*GrowthScreen)(nil)
var _ screen.KeyHintProvider = (*GrowthScreen)(nil)

// New creates a new GrowthScreen.
func New(progressRepo store.ProgressRepo, journalRepo store.JournalRepo, userID string) *GrowthScreen {
	return &GrowthScreen{
		progressRepo: progressRepo,
		journalRepo:  journalRepo,
		userID:       userID,
	}
}

func (s *GrowthScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prog, err := s.progressRepo.Get(ctx, s.userID)
		if err != nil {
			return growthLoadedMsg{Err: err}
		}

		entries := 0
		if s.journalRepo != nil {
			entries, _ = s.journalRepo.CountReflections(ctx, s.userID)
		}

		return growthLoadedMsg{Progress: prog, Entries: entries}
	}
}

func (s *GrowthScreen) Title() string {
	return "Growth"
}

func (s *GrowthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GrowthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case growthLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.progress = msg.Progress
		s.entries = msg.Entries
		s.loaded = true

		stats := progression.ComputeLevelStats(msg.Progress.XPTotal)
		prog := msg.Progress
		return s, func() tea.Msg {
			return screen.ProgressChangedMsg{
				Level:   stats.Level,
				XPTotal: prog.XPTotal,
				Streak:  prog.Streak,
			}
		}

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *GrowthScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded || s.progress == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Gathering your progress...")
	}

	prog := s.progress
	stats := progression.ComputeLevelStats(prog.XPTotal)

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Level %d", stats.Level)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP total  ·  %d to next level", prog.XPTotal, stats.XPToNextLevel)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(stats.ProgressPercent)/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("★ %d day streak", prog.Streak)))
	b.WriteString("\n\n")

	weekLine := fmt.Sprintf("This week: %d of %d days", prog.CompletedDays, progression.WeekDays)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(weekLine))
	b.WriteString("\n")

	if prog.BadgeEarned && prog.BadgeName != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("🏅 " + prog.BadgeName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d reflections written", s.entries)))
	b.WriteString("\n\n")

	if prog.LastFeedback != "" {
		tip := lipgloss.NewStyle().
			Width(min(width-8, 66)).
			Foreground(theme.Secondary).
			Render(feedback.Suggestion(prog.LastFeedback))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tip))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
