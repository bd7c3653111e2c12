package progression

import "testing"

func TestComputeLevelStats(t *testing.T) {
	tests := []struct {
		name        string
		totalXP     int
		wantLevel   int
		wantInto    int
		wantToNext  int
		wantPercent int
	}{
		{"zero", 0, 1, 0, 120, 0},
		{"early first level", 18, 1, 18, 102, 15},
		{"just below level two", 119, 1, 119, 1, 99},
		{"exact level boundary", 120, 2, 0, 120, 0},
		{"mid second level", 180, 2, 60, 60, 50},
		{"deep ladder", 1234, 11, 34, 86, 28},
		{"negative clamps to zero", -50, 1, 0, 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLevelStats(tt.totalXP)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.XPIntoLevel != tt.wantInto {
				t.Errorf("XPIntoLevel = %d, want %d", got.XPIntoLevel, tt.wantInto)
			}
			if got.XPToNextLevel != tt.wantToNext {
				t.Errorf("XPToNextLevel = %d, want %d", got.XPToNextLevel, tt.wantToNext)
			}
			if got.ProgressPercent != tt.wantPercent {
				t.Errorf("ProgressPercent = %d, want %d", got.ProgressPercent, tt.wantPercent)
			}
		})
	}
}

func TestComputeLevelStatsInvariants(t *testing.T) {
	for totalXP := 0; totalXP <= 1000; totalXP++ {
		s := ComputeLevelStats(totalXP)
		if s.XPIntoLevel+s.XPToNextLevel != XPPerLevel {
			t.Fatalf("totalXP=%d: into+toNext = %d, want %d",
				totalXP, s.XPIntoLevel+s.XPToNextLevel, XPPerLevel)
		}
		if s.ProgressPercent < 0 || s.ProgressPercent > 100 {
			t.Fatalf("totalXP=%d: percent = %d out of range", totalXP, s.ProgressPercent)
		}
		if want := totalXP/XPPerLevel + 1; s.Level != want {
			t.Fatalf("totalXP=%d: level = %d, want %d", totalXP, s.Level, want)
		}
	}
}

func TestComputeLevelStatsNegativeMatchesZero(t *testing.T) {
	zero := ComputeLevelStats(0)
	for _, xp := range []int{-1, -120, -999999} {
		if got := ComputeLevelStats(xp); got != zero {
			t.Errorf("ComputeLevelStats(%d) = %+v, want %+v", xp, got, zero)
		}
	}
}

func TestBadgeName(t *testing.T) {
	tests := []struct {
		name       string
		theme      string
		earned     bool
		current    string
		want       string
	}{
		{"last segment", "Attention — Noticing", false, "", "Noticing Insight Badge"},
		{"no segment", "Gratitude", false, "", "Gratitude Insight Badge"},
		{"empty theme", "", false, "", "Weekly Insight Insight Badge"},
		{"earned keeps current", "Attention — Noticing", true, "Focus Insight Badge", "Focus Insight Badge"},
		{"earned without current derives", "Attention — Noticing", true, "", "Noticing Insight Badge"},
		{"whitespace segments", "  Slowing Down —  Stillness  ", false, "", "Stillness Insight Badge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeName(tt.theme, tt.earned, tt.current); got != tt.want {
				t.Errorf("BadgeName(%q, %v, %q) = %q, want %q",
					tt.theme, tt.earned, tt.current, got, tt.want)
			}
		})
	}
}

func TestDifficultyForDay(t *testing.T) {
	tests := []struct {
		dayIndex   int
		wantLabel  string
		wantMult   float64
	}{
		{0, "primer", 1.0},
		{2, "primer", 1.0},
		{3, "deepening", 1.15},
		{4, "deepening", 1.15},
		{5, "mastery", 1.35},
		{6, "mastery", 1.35},
	}

	for _, tt := range tests {
		d := DifficultyForDay(tt.dayIndex)
		if d.Label != tt.wantLabel || d.Multiplier != tt.wantMult {
			t.Errorf("DifficultyForDay(%d) = {%s %v}, want {%s %v}",
				tt.dayIndex, d.Label, d.Multiplier, tt.wantLabel, tt.wantMult)
		}
		if d.Score != tt.dayIndex+1 {
			t.Errorf("DifficultyForDay(%d).Score = %d, want %d", tt.dayIndex, d.Score, tt.dayIndex+1)
		}
	}
}

func TestApplyDifficulty(t *testing.T) {
	tests := []struct {
		baseXP int
		mult   float64
		want   int
	}{
		{10, 1.0, 10},
		{10, 1.15, 12}, // 11.5 rounds up
		{10, 1.35, 14}, // 13.5 rounds up
		{0, 1.0, 1},    // floor of one point
		{1, 1.35, 1},
	}

	for _, tt := range tests {
		if got := ApplyDifficulty(tt.baseXP, tt.mult); got != tt.want {
			t.Errorf("ApplyDifficulty(%d, %v) = %d, want %d", tt.baseXP, tt.mult, got, tt.want)
		}
	}
}
