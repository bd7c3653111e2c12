// Package today implements the daily reflection screen: priming,
// the timed answer window, submission and the celebration view.
package today

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/chime"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/router"
	"github.com/thinkle/deep/internal/screen"
	sess "github.com/thinkle/deep/internal/session"
	"github.com/thinkle/deep/internal/ui/components"
	"github.com/thinkle/deep/internal/ui/layout"
)

// PrimingTracker records whether the user viewed today's priming
// material, so later visits get the short reminder framing.
type PrimingTracker interface {
	PrimingSeen(ctx context.Context, userID string) (bool, error)
	MarkPrimingSeen(ctx context.Context, userID string) error
}

const answerCharLimit = 4000

// TodayScreen implements screen.Screen for the daily reflection flow.
type TodayScreen struct {
	gateway api.Gateway
	priming PrimingTracker
	state   *sess.State
	input   components.TextArea
	clock   func() time.Time
}

var _ screen.Screen = (*TodayScreen)(nil)
var _ screen.KeyHintProvider = (*TodayScreen)(nil)

// New creates a TodayScreen for the given user. The priming tracker
// may be nil, in which case priming always uses the intro framing.
func New(gateway api.Gateway, priming PrimingTracker, userID string) *TodayScreen {
	return &TodayScreen{
		gateway: gateway,
		priming: priming,
		state:   sess.New(userID),
		input:   components.NewTextArea("Start writing. There is no wrong answer.", answerCharLimit),
		clock:   time.Now,
	}
}

func (s *TodayScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadQuestion(),
		s.input.Init(),
	)
}

func (s *TodayScreen) Title() string {
	return "Today"
}

func (s *TodayScreen) KeyHints() []layout.KeyHint {
	st := s.state
	switch {
	case st.Phase == sess.PhaseLoading && st.ErrorMessage != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case st.ShowPriming:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case st.Phase == sess.PhaseReady && !st.Locked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case st.Phase == sess.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case st.Phase == sess.PhaseCelebrating:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *TodayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionLoadedMsg:
		return s.handleQuestionLoaded(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case submitResultMsg:
		return s.handleSubmitResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the editor while writing.
	if s.state.Phase == sess.PhaseAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *TodayScreen) handleQuestionLoaded(msg questionLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.state.FailLoad(msg.Err.Error())
		return s, nil
	}

	s.state.LoadQuestion(msg.Question, msg.PrimingSeen)

	stats := progression.ComputeLevelStats(msg.Question.XPTotal)
	return s, func() tea.Msg {
		return screen.ProgressChangedMsg{
			Level:   stats.Level,
			XPTotal: msg.Question.XPTotal,
			Streak:  msg.Question.Streak,
		}
	}
}

func (s *TodayScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.state.Phase != sess.PhaseAnswering {
		return s, nil
	}
	s.state.Tick(time.Time(msg))
	return s, tickCmd()
}

func (s *TodayScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.state.FailSubmission(msg.Err.Error())
		return s, tickCmd()
	}

	s.state.ApplySubmission(msg.Result)
	chime.Ring()

	result := msg.Result
	return s, func() tea.Msg {
		return screen.ProgressChangedMsg{
			Level:   result.Level,
			XPTotal: result.XPTotal,
			Streak:  result.Streak,
		}
	}
}

func (s *TodayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	st := s.state

	// Load failed, offer retry.
	if st.Phase == sess.PhaseLoading && st.ErrorMessage != "" {
		switch key {
		case "r", "R":
			st.ErrorMessage = ""
			return s, s.loadQuestion()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Priming panel.
	if st.ShowPriming {
		switch key {
		case "enter", " ":
			st.DismissPriming()
			return s, s.markPrimingSeen()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch st.Phase {
	case sess.PhaseReady:
		switch key {
		case "enter":
			if st.Locked {
				st.Start(s.clock())
				return s, nil
			}
			st.Start(s.clock())
			s.input.Reset()
			return s, tea.Batch(s.input.Init(), tickCmd())
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case sess.PhaseAnswering:
		switch key {
		case "ctrl+d":
			return s.submit()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case sess.PhaseCelebrating:
		switch key {
		case "enter", "esc", " ":
			st.DismissCelebration()
			return s, nil
		}

	default:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// submit validates locally, then sends the answer for scoring.
func (s *TodayScreen) submit() (screen.Screen, tea.Cmd) {
	if strings.TrimSpace(s.input.Value()) == "" {
		s.state.ErrorMessage = "Write at least a sentence before submitting."
		return s, nil
	}

	sub := s.state.BeginSubmission(s.input.Value(), s.clock())
	if sub == nil {
		return s, nil
	}

	gateway := s.gateway
	payload := *sub
	return s, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := gateway.SubmitAnswer(ctx, payload)
		return submitResultMsg{Result: result, Err: err}
	}
}

// loadQuestion fetches today's question asynchronously.
func (s *TodayScreen) loadQuestion() tea.Cmd {
	gateway := s.gateway
	priming := s.priming
	userID := s.state.UserID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		q, err := gateway.DailyQuestion(ctx, userID)
		if err != nil {
			return questionLoadedMsg{Err: err}
		}

		seen := false
		if priming != nil {
			seen, _ = priming.PrimingSeen(ctx, userID)
		}
		return questionLoadedMsg{Question: q, PrimingSeen: seen}
	}
}

// markPrimingSeen records the priming view without blocking the UI.
func (s *TodayScreen) markPrimingSeen() tea.Cmd {
	priming := s.priming
	userID := s.state.UserID
	if priming == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = priming.MarkPrimingSeen(ctx, userID)
		return nil
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
