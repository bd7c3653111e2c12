// Package progression holds the pure gamification math shared by the
// session flow and the offline reflection service: level stats from
// cumulative XP, difficulty tiers, and week badge naming.
package progression

import "math"

const (
	// XPPerLevel is the fixed XP span of every level.
	XPPerLevel = 120

	// WeekDays is the length of the rolling week tracker.
	WeekDays = 7

	// WeekCompletionBonusXP is awarded when all seven days are completed.
	WeekCompletionBonusXP = 25
)

// LevelStats describes where a cumulative XP total sits within the
// level ladder.
type LevelStats struct {
	Level           int
	XPIntoLevel     int
	XPToNextLevel   int
	ProgressPercent int
}

// ComputeLevelStats converts a cumulative XP total into level stats.
// Negative totals are treated as zero; the function is total over all
// integers and has no side effects.
func ComputeLevelStats(totalXP int) LevelStats {
	if totalXP < 0 {
		totalXP = 0
	}
	level := totalXP/XPPerLevel + 1
	previousThreshold := (level - 1) * XPPerLevel
	nextThreshold := level * XPPerLevel
	into := totalXP - previousThreshold
	toNext := nextThreshold - totalXP
	if toNext < 0 {
		toNext = 0
	}
	percent := int(math.Round(float64(into) / XPPerLevel * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return LevelStats{
		Level:           level,
		XPIntoLevel:     into,
		XPToNextLevel:   toNext,
		ProgressPercent: percent,
	}
}

// NextLevelThreshold returns the cumulative XP total at which the next
// level begins.
func (s LevelStats) NextLevelThreshold() int {
	return s.Level * XPPerLevel
}
