// Package journal displays past reflections as a browsable log.
package journal

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/thinkle/deep/internal/feedback"
	"github.com/thinkle/deep/internal/router"
	"github.com/thinkle/deep/internal/screen"
	"github.com/thinkle/deep/internal/store"
	"github.com/thinkle/deep/internal/ui/layout"
	"github.com/thinkle/deep/internal/ui/theme"
)

type journalLoadedMsg struct {
	Entries []store.ReflectionRecord
	Err     error
}

// JournalScreen displays past reflections, newest first.
type JournalScreen struct {
	repo     store.JournalRepo
	userID   string
	entries  []store.ReflectionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

// New creates a new JournalScreen.
func New(repo store.JournalRepo, userID string) *JournalScreen {
	return &JournalScreen{
		repo:     repo,
		userID:   userID,
		expanded: make(map[int]bool),
	}
}

func (s *JournalScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.ListReflections(context.Background(), s.userID, store.QueryOpts{Limit: 60})
		if err != nil {
			return journalLoadedMsg{Err: err}
		}
		return journalLoadedMsg{Entries: entries}
	}
}

func (s *JournalScreen) Title() string {
	return "Journal"
}

func (s *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Read"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *JournalScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening your journal...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Your first reflection starts the story.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range s.entries {
		dateStr := entry.Timestamp.Format("Jan 02, 2006")
		mins := entry.DurationSeconds / 60
		secs := entry.DurationSeconds % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d:%02d  +%d XP",
			prefix, dateStr, entry.Theme, mins, secs, entry.XPAwarded)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderEntry(entry, width))
		}
	}

	return b.String()
}

// renderEntry renders the expanded prompt, answer and feedback.
func (s *JournalScreen) renderEntry(entry store.ReflectionRecord, width int) string {
	bodyWidth := width - 16
	if bodyWidth > 66 {
		bodyWidth = 66
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var b strings.Builder

	prompt := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Secondary).
		Italic(true).
		Render(entry.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n")

	answer := theme.Body.
		Width(bodyWidth).
		Render(entry.Answer)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
	b.WriteString("\n")

	if entry.Feedback != "" {
		tip := lipgloss.NewStyle().
			Width(bodyWidth).
			Foreground(theme.Accent).
			Render(feedback.Suggestion(entry.Feedback))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tip))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}
