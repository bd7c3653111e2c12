package journal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thinkle/deep/internal/store"
)

// mockJournal implements store.JournalRepo for testing.
type mockJournal struct {
	entries []store.ReflectionRecord
	err     error
}

func (m *mockJournal) AppendReflection(_ context.Context, _ store.ReflectionEventData) error {
	return nil
}

func (m *mockJournal) ListReflections(_ context.Context, _ string, _ store.QueryOpts) ([]store.ReflectionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockJournal) HasAnsweredOn(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (m *mockJournal) CountReflections(_ context.Context, _ string) (int, error) {
	return len(m.entries), nil
}

func testEntries() []store.ReflectionRecord {
	return []store.ReflectionRecord{
		{
			Sequence:  2,
			Timestamp: time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC),
			ReflectionEventData: store.ReflectionEventData{
				UserID:          "user-1",
				QuestionID:      "week-3-day-2",
				Day:             "2026-08-29",
				Theme:           "Choice — The Forks in the Road",
				Prompt:          "What did you choose without noticing?",
				Answer:          "I said yes to a meeting I could have skipped.",
				DurationSeconds: 95,
				Feedback:        "Clear example. Improve: name what the yes cost you.",
				XPAwarded:       7,
				Streak:          2,
			},
		},
		{
			Sequence:  1,
			Timestamp: time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC),
			ReflectionEventData: store.ReflectionEventData{
				UserID:     "user-1",
				Theme:      "Choice — The Forks in the Road",
				Prompt:     "Where did the day fork?",
				Answer:     "Lunch.",
				Feedback:   "Short. Improve: add one detail.",
				XPAwarded:  2,
				Streak:     1,
			},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T, repo *mockJournal) *JournalScreen {
	t.Helper()
	s := New(repo, "user-1")
	scr, _ := s.Update(s.Init()())
	return scr.(*JournalScreen)
}

func TestJournalScreen_Empty(t *testing.T) {
	s := loaded(t, &mockJournal{})
	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing here yet") {
		t.Error("expected empty-journal message")
	}
}

func TestJournalScreen_LoadError(t *testing.T) {
	s := loaded(t, &mockJournal{err: errors.New("db locked")})
	if !strings.Contains(s.View(80, 24), "db locked") {
		t.Error("expected error message in view")
	}
}

func TestJournalScreen_ListAndExpand(t *testing.T) {
	s := loaded(t, &mockJournal{entries: testEntries()})

	view := s.View(80, 24)
	if !strings.Contains(view, "Aug 29, 2026") {
		t.Error("expected newest entry date")
	}
	if strings.Contains(view, "I said yes to a meeting") {
		t.Error("answer should be hidden until expanded")
	}

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*JournalScreen)
	view = s.View(80, 24)
	if !strings.Contains(view, "I said yes to a meeting") {
		t.Error("expected expanded answer")
	}
	if !strings.Contains(view, "What did you choose without noticing?") {
		t.Error("expected expanded prompt")
	}
}

func TestJournalScreen_Navigation(t *testing.T) {
	s := loaded(t, &mockJournal{entries: testEntries()})

	scr, _ := s.Update(keyPress('j'))
	s = scr.(*JournalScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	// Down at the bottom stays put.
	scr, _ = s.Update(keyPress('j'))
	s = scr.(*JournalScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	scr, _ = s.Update(keyPress('k'))
	s = scr.(*JournalScreen)
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestJournalScreen_EscPops(t *testing.T) {
	s := loaded(t, &mockJournal{entries: testEntries()})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
}
