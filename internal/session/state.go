// Package session implements the daily reflection flow as a pure state
// machine: load the question, optionally show priming, run the timed
// answer window, submit, celebrate, lock. All transitions are methods
// on State and take explicit clock inputs, so the UI layer stays a
// thin shell and the flow is testable without a terminal.
package session

import (
	"math"
	"time"

	"github.com/thinkle/deep/internal/api"
)

// Phase is where the user is in today's flow.
type Phase int

const (
	PhaseLoading Phase = iota // Waiting for today's question
	PhaseReady                // Question loaded, timer not started
	PhaseAnswering            // Timed answer window open
	PhaseSubmitting           // Answer sent, verdict pending
	PhaseCelebrating          // Verdict in, celebration showing
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// PrimingMode distinguishes the first time a user sees priming content
// from later visits on the same day.
type PrimingMode int

const (
	PrimingIntro PrimingMode = iota
	PrimingReminder
)

// AlreadyAnsweredMessage is shown when the user tries to start after
// today's reflection is already done.
const AlreadyAnsweredMessage = "You've already completed today's reflection. Come back tomorrow for a fresh one."

// State tracks the runtime state of one daily reflection.
type State struct {
	// Phase is the current flow phase.
	Phase Phase

	// UserID is the identity the question was loaded for.
	UserID string

	// Question is today's prompt (nil until loaded).
	Question *api.DailyQuestion

	// Result is the verdict of a successful submission (nil before).
	Result *api.AnswerResult

	// Locked means today's reflection is complete: either the backend
	// reported it already answered on load, or a submission succeeded.
	Locked bool

	// SecondsLeft is the countdown value shown in the answer window.
	SecondsLeft int

	// ShowPriming is true while the priming panel is displayed.
	ShowPriming bool

	// PrimingMode selects the intro or reminder framing of priming.
	PrimingMode PrimingMode

	// ErrorMessage is the current user-facing error, empty when none.
	ErrorMessage string

	startedAt time.Time
}

// New returns a session waiting for its question.
func New(userID string) *State {
	return &State{Phase: PhaseLoading, UserID: userID}
}

// LoadQuestion installs today's question and resets all per-day flow
// state. primingSeen reports whether this user already viewed the
// priming material today, which downgrades it to a short reminder.
func (s *State) LoadQuestion(q *api.DailyQuestion, primingSeen bool) {
	s.Question = q
	s.Result = nil
	s.ErrorMessage = ""
	s.Locked = q.HasAnsweredToday
	s.SecondsLeft = q.TimerSeconds
	s.startedAt = time.Time{}
	s.Phase = PhaseReady

	s.ShowPriming = q.Priming != nil && !s.Locked
	if primingSeen {
		s.PrimingMode = PrimingReminder
	} else {
		s.PrimingMode = PrimingIntro
	}
}

// FailLoad records a load failure. The session stays in the loading
// phase so the UI can offer a retry.
func (s *State) FailLoad(message string) {
	s.Phase = PhaseLoading
	s.Question = nil
	s.ErrorMessage = message
}

// SwitchUser resets the session for a different identity. The question
// must be reloaded because totals, streak and lock state are per-user.
func (s *State) SwitchUser(userID string) {
	*s = State{Phase: PhaseLoading, UserID: userID}
}

// DismissPriming hides the priming panel without touching the timer.
func (s *State) DismissPriming() {
	s.ShowPriming = false
}

// Start opens the timed answer window. Starting a locked session is
// rejected with a message instead of a transition; starting from any
// phase other than ready is a no-op.
func (s *State) Start(now time.Time) {
	if s.Locked {
		s.ErrorMessage = AlreadyAnsweredMessage
		return
	}
	if s.Phase != PhaseReady || s.Question == nil {
		return
	}
	s.ErrorMessage = ""
	s.ShowPriming = false
	s.startedAt = now
	s.SecondsLeft = s.Question.TimerSeconds
	s.Phase = PhaseAnswering
}

// Tick recomputes the countdown from wall-clock elapsed time, so a
// suspended terminal catches up instead of drifting. The countdown
// floors at zero but never force-submits.
func (s *State) Tick(now time.Time) {
	if s.Phase != PhaseAnswering || s.Question == nil {
		return
	}
	elapsed := now.Sub(s.startedAt).Seconds()
	left := int(math.Round(float64(s.Question.TimerSeconds) - elapsed))
	if left < 0 {
		left = 0
	}
	s.SecondsLeft = left
}

// BeginSubmission moves to the submitting phase and returns the payload
// to send. It returns nil when no submission should happen: not in the
// answer window, already locked, or a submit already in flight.
func (s *State) BeginSubmission(answer string, now time.Time) *api.AnswerSubmission {
	if s.Phase != PhaseAnswering || s.Locked || s.Question == nil {
		return nil
	}
	duration := int(math.Round(now.Sub(s.startedAt).Seconds()))
	if duration < 0 {
		duration = 0
	}
	if duration > s.Question.TimerSeconds {
		duration = s.Question.TimerSeconds
	}
	s.Phase = PhaseSubmitting
	s.ErrorMessage = ""
	return &api.AnswerSubmission{
		QuestionID:      s.Question.ID,
		Answer:          answer,
		UserID:          s.UserID,
		DurationSeconds: duration,
	}
}

// ApplySubmission records a successful verdict and locks the day.
func (s *State) ApplySubmission(result *api.AnswerResult) {
	if s.Phase != PhaseSubmitting {
		return
	}
	s.Result = result
	s.Locked = true
	s.ErrorMessage = ""
	s.Phase = PhaseCelebrating
}

// FailSubmission returns to the answer window with the backend's
// message so the user can retry without losing their text.
func (s *State) FailSubmission(message string) {
	if s.Phase != PhaseSubmitting {
		return
	}
	if message == "" {
		message = api.GenericSubmitError
	}
	s.ErrorMessage = message
	s.Phase = PhaseAnswering
}

// DismissCelebration closes the celebration view. The result stays
// available for the locked summary.
func (s *State) DismissCelebration() {
	if s.Phase != PhaseCelebrating {
		return
	}
	s.Phase = PhaseReady
}
