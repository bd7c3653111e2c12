package today

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thinkle/deep/internal/feedback"
	sess "github.com/thinkle/deep/internal/session"
	"github.com/thinkle/deep/internal/ui/components"
	"github.com/thinkle/deep/internal/ui/theme"
)

func (s *TodayScreen) View(width, height int) string {
	st := s.state

	switch {
	case st.Phase == sess.PhaseLoading && st.ErrorMessage != "":
		return renderLoadError(width, st.ErrorMessage)
	case st.Phase == sess.PhaseLoading:
		return renderLoading(width)
	case st.ShowPriming:
		return s.renderPriming(width)
	case st.Phase == sess.PhaseAnswering:
		return s.renderAnswering(width, height)
	case st.Phase == sess.PhaseSubmitting:
		return renderSubmitting(width)
	case st.Phase == sess.PhaseCelebrating:
		return s.renderCelebration(width)
	case st.Locked:
		return s.renderLockedSummary(width)
	default:
		return s.renderReady(width)
	}
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Finding today's question...")
}

func renderLoadError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to retry.", errMsg))
}

func renderSubmitting(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Reading your reflection...")
}

// renderPriming shows the pre-session material before the timer starts.
func (s *TodayScreen) renderPriming(width int) string {
	q := s.state.Question
	p := q.Priming
	if p == nil {
		return ""
	}

	var b strings.Builder

	title := "Before you begin"
	if s.state.PrimingMode == sess.PrimingReminder {
		title = "A quick reminder"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if p.EmotionalHook != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.EmotionalHook))
		b.WriteString("\n\n")
	}
	if p.TeaserQuestion != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Render(p.TeaserQuestion))
		b.WriteString("\n\n")
	}

	// Reminder visits get the hook and teaser only.
	if s.state.PrimingMode == sess.PrimingIntro {
		if p.SomaticCue != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Body: " + p.SomaticCue))
			b.WriteString("\n")
		}
		if p.CognitiveCue != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mind: " + p.CognitiveCue))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render("Press Enter when you're ready."))

	card := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderReady shows the pre-timer view. The prompt stays hidden until
// the timer starts.
func (s *TodayScreen) renderReady(width int) string {
	q := s.state.Question

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(q.Theme))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Day %d of 7  ·  %s  ·  %s on the clock",
			q.DayIndex+1, q.Difficulty.Label, formatTimer(q.TimerSeconds))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(weekDots(q.WeekProgress.CompletedDays, q.WeekProgress.TotalDays)))
	b.WriteString("\n\n")

	if q.Dopamine != nil && q.Dopamine.CuriosityHook != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Italic(true).
			Render(q.Dopamine.CuriosityHook))
		b.WriteString("\n\n")
	}

	if q.PreviousFeedback != nil && q.PreviousFeedback.Feedback != "" {
		tip := feedback.Suggestion(q.PreviousFeedback.Feedback)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(tip))
		b.WriteString("\n\n")
	}

	if s.state.ErrorMessage != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.state.ErrorMessage))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Press Enter to see today's prompt and start writing."))

	return b.String()
}

// renderAnswering shows the prompt, countdown and editor.
func (s *TodayScreen) renderAnswering(width, height int) string {
	st := s.state
	q := st.Question

	var b strings.Builder

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if st.SecondsLeft <= 30 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Theme)
	infoRight := timerStyle.Render(formatTimer(st.SecondsLeft))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	editorWidth := min(width-8, 70)
	editorHeight := height - lipgloss.Height(b.String()) - 4
	if editorHeight < 3 {
		editorHeight = 3
	}
	if editorHeight > 10 {
		editorHeight = 10
	}
	s.input.SetSize(editorWidth, editorHeight)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n")

	if st.SecondsLeft == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Time's up. Finish your thought and submit when ready."))
		b.WriteString("\n")
	}

	if st.ErrorMessage != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(st.ErrorMessage))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCelebration shows the verdict: XP, streak, week progress, badge.
func (s *TodayScreen) renderCelebration(width int) string {
	r := s.state.Result

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("+%d XP", r.XPAwarded)))
	b.WriteString("\n")

	if r.BonusXP > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d base + %d week bonus", r.BaseXP, r.BonusXP)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tip := feedback.Suggestion(r.Feedback)
	tipStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tipStyle.Render(tip)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("★ %d day streak", r.Streak)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(weekDots(r.WeekCompletedDays, r.WeekTotalDays)))
	b.WriteString("\n")

	if r.WeekBadgeEarned && r.BadgeName != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Week complete! " + r.BadgeName + " earned."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", r.Level),
		float64(r.LevelProgressPercent)/100,
		true,
		min(width-8, 50),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish."))

	return b.String()
}

// renderLockedSummary shows the done-for-today view.
func (s *TodayScreen) renderLockedSummary(width int) string {
	st := s.state
	q := st.Question

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Done for today"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sess.AlreadyAnsweredMessage))
	b.WriteString("\n\n")

	var lastFeedback string
	if st.Result != nil {
		lastFeedback = st.Result.Feedback
	} else if q.PreviousFeedback != nil {
		lastFeedback = q.PreviousFeedback.Feedback
	}
	if lastFeedback != "" {
		tip := feedback.Suggestion(lastFeedback)
		tipStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tipStyle.Render(tip)))
		b.WriteString("\n\n")
	}

	streak := q.Streak
	completed := q.WeekProgress.CompletedDays
	total := q.WeekProgress.TotalDays
	if st.Result != nil {
		streak = st.Result.Streak
		completed = st.Result.WeekCompletedDays
		total = st.Result.WeekTotalDays
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("★ %d day streak", streak)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(weekDots(completed, total)))

	return b.String()
}

func formatTimer(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// weekDots renders the rolling week tracker, e.g. "● ● ● ○ ○ ○ ○".
func weekDots(completed, total int) string {
	if total <= 0 {
		return ""
	}
	if completed > total {
		completed = total
	}
	parts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i < completed {
			parts = append(parts, "●")
		} else {
			parts = append(parts, "○")
		}
	}
	return strings.Join(parts, " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
