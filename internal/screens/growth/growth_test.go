package growth

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thinkle/deep/internal/screen"
	"github.com/thinkle/deep/internal/store"
)

// mockProgress implements store.ProgressRepo for testing.
type mockProgress struct {
	state *store.ProgressState
	err   error
}

func (m *mockProgress) Get(_ context.Context, userID string) (*store.ProgressState, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.state != nil {
		return m.state, nil
	}
	return &store.ProgressState{UserID: userID}, nil
}

func (m *mockProgress) Save(_ context.Context, _ *store.ProgressState) error { return nil }
func (m *mockProgress) Delete(_ context.Context, _ string) error             { return nil }

// mockJournal implements store.JournalRepo for testing.
type mockJournal struct {
	count int
}

func (m *mockJournal) AppendReflection(_ context.Context, _ store.ReflectionEventData) error {
	return nil
}
func (m *mockJournal) ListReflections(_ context.Context, _ string, _ store.QueryOpts) ([]store.ReflectionRecord, error) {
	return nil, nil
}
func (m *mockJournal) HasAnsweredOn(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}
func (m *mockJournal) CountReflections(_ context.Context, _ string) (int, error) {
	return m.count, nil
}

func testState() *store.ProgressState {
	return &store.ProgressState{
		UserID:        "user-1",
		XPTotal:       138,
		Streak:        3,
		WeekIndex:     2,
		CompletedDays: 7,
		BadgeEarned:   true,
		BadgeName:     "The Forks in the Road Insight Badge",
		LastFeedback:  "Good specifics. Improve: linger on the feeling.",
	}
}

func TestGrowthScreen_View(t *testing.T) {
	s := New(&mockProgress{state: testState()}, &mockJournal{count: 17}, "user-1")

	scr, cmd := s.Update(s.Init()())
	s = scr.(*GrowthScreen)

	view := s.View(80, 24)
	for _, want := range []string{"Level 2", "138 XP total", "3 day streak", "7 of 7 days", "Insight Badge", "17 reflections"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if cmd == nil {
		t.Fatal("expected a progress command after load")
	}
	prog, ok := cmd().(screen.ProgressChangedMsg)
	if !ok || prog.Level != 2 || prog.Streak != 3 {
		t.Errorf("progress = %+v", prog)
	}
}

func TestGrowthScreen_LoadError(t *testing.T) {
	s := New(&mockProgress{err: errors.New("db locked")}, nil, "user-1")
	scr, _ := s.Update(s.Init()())
	s = scr.(*GrowthScreen)
	if !strings.Contains(s.View(80, 24), "db locked") {
		t.Error("expected error message in view")
	}
}

func TestGrowthScreen_EscPops(t *testing.T) {
	s := New(&mockProgress{state: testState()}, nil, "user-1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
}
