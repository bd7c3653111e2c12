// Package home implements the main menu screen.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/router"
	"github.com/thinkle/deep/internal/screen"
	"github.com/thinkle/deep/internal/screens/growth"
	"github.com/thinkle/deep/internal/screens/journal"
	"github.com/thinkle/deep/internal/screens/today"
	"github.com/thinkle/deep/internal/store"
	"github.com/thinkle/deep/internal/ui/components"
	"github.com/thinkle/deep/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	level   int
	streak  int
	xpTotal int
	entries int
	locked  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the reflection backend and the
// local progress store.
func New(gateway api.Gateway, priming today.PrimingTracker, progressRepo store.ProgressRepo, journalRepo store.JournalRepo, userID string) *HomeScreen {
	ctx := context.Background()

	var level, streak, xpTotal, entries int
	var locked bool
	if progressRepo != nil {
		if prog, err := progressRepo.Get(ctx, userID); err == nil {
			stats := progression.ComputeLevelStats(prog.XPTotal)
			level = stats.Level
			streak = prog.Streak
			xpTotal = prog.XPTotal
		}
	}
	if journalRepo != nil {
		if n, err := journalRepo.CountReflections(ctx, userID); err == nil {
			entries = n
		}
		// The journal decides whether today is done, so the banner
		// stays accurate after a progress reset.
		day := time.Now().Format("2006-01-02")
		if answered, err := journalRepo.HasAnsweredOn(ctx, userID, day); err == nil {
			locked = answered
		}
	}

	items := []components.MenuItem{
		{Label: "TODAY'S REFLECTION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: today.New(gateway, priming, userID)}
			}
		}},
		{Label: "JOURNAL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: journal.New(journalRepo, userID)}
			}
		}},
		{Label: "GROWTH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: growth.New(progressRepo, journalRepo, userID)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		level:   level,
		streak:  streak,
		xpTotal: xpTotal,
		entries: entries,
		locked:  locked,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	level, xpTotal, streak := h.level, h.xpTotal, h.streak
	return func() tea.Msg {
		return screen.ProgressChangedMsg{Level: level, XPTotal: xpTotal, Streak: streak}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("D E E P")
	subtitle := theme.Subtitle.Render("One question a day. A few honest minutes.")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats())

	if h.locked {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("Today's reflection is done. See you tomorrow."))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (h *HomeScreen) renderStats() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Accent)

	parts := []string{
		accent.Render(fmt.Sprintf("Lv %d", h.level)),
		accent.Render(fmt.Sprintf("★ %d day", h.streak)),
		dim.Render(fmt.Sprintf("%d XP", h.xpTotal)),
		dim.Render(fmt.Sprintf("%d entries", h.entries)),
	}
	return strings.Join(parts, dim.Render("  ·  "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
