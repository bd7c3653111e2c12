package reflect

import (
	"fmt"
	"testing"
	"time"
)

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if bank.Size() == 0 {
		t.Fatal("bank is empty")
	}
	if bank.Size()%7 != 0 {
		t.Errorf("bank size %d is not a whole number of weeks", bank.Size())
	}
}

func TestQuestionForDeterministic(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	jan1 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	q := bank.QuestionFor(jan1)
	if q.ID != "week-1-day-1" {
		t.Errorf("Jan 1 id = %q, want week-1-day-1", q.ID)
	}
	if q.WeekIndex != 0 || q.DayIndex != 0 {
		t.Errorf("Jan 1 indices = %d/%d, want 0/0", q.WeekIndex, q.DayIndex)
	}
	if q.TimerSeconds != DefaultTimerSeconds {
		t.Errorf("timer = %d, want default %d", q.TimerSeconds, DefaultTimerSeconds)
	}

	// Same day, different time of day, same question.
	if got := bank.QuestionFor(jan1.Add(10 * time.Hour)); got.ID != q.ID {
		t.Errorf("same-day id changed: %q", got.ID)
	}

	// The bank wraps around after Size() days.
	wrapped := bank.QuestionFor(jan1.AddDate(0, 0, bank.Size()))
	if wrapped.ID != q.ID {
		t.Errorf("wrapped id = %q, want %q", wrapped.ID, q.ID)
	}
}

func TestQuestionForWalksWholeBank(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < bank.Size(); i++ {
		q := bank.QuestionFor(start.AddDate(0, 0, i))
		if q.Prompt == "" || q.Theme == "" {
			t.Fatalf("day %d: empty prompt or theme", i)
		}
		if q.DayIndex < 0 || q.DayIndex >= 7 {
			t.Fatalf("day %d: day index %d out of week range", i, q.DayIndex)
		}
		want := fmt.Sprintf("week-%d-day-%d", q.WeekIndex+1, q.DayIndex+1)
		if q.ID != want {
			t.Fatalf("day %d: id %q does not match indices (%s)", i, q.ID, want)
		}
		if seen[q.ID] {
			t.Fatalf("day %d: duplicate id %q within one cycle", i, q.ID)
		}
		seen[q.ID] = true
	}
}

func TestParseBankRejectsBadInput(t *testing.T) {
	if _, err := parseBank([]byte(`[]`)); err == nil {
		t.Error("empty bank should fail")
	}
	if _, err := parseBank([]byte(`not json`)); err == nil {
		t.Error("invalid JSON should fail")
	}
	if _, err := parseBank([]byte(`[{"theme":"T","days":[]}]`)); err == nil {
		t.Error("week without days should fail")
	}
}
