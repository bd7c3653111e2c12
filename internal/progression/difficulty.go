package progression

import "math"

// Difficulty describes the prompt difficulty tier for a day of the week.
type Difficulty struct {
	Label      string
	Score      int
	Multiplier float64
}

// DifficultyForDay maps a zero-based day index within the week to its
// difficulty tier. Days 0-2 are primers, 3-4 deepen, 5-6 are mastery.
func DifficultyForDay(dayIndex int) Difficulty {
	d := Difficulty{Label: "primer", Score: dayIndex + 1, Multiplier: 1.0}
	switch {
	case dayIndex >= 5:
		d.Label = "mastery"
		d.Multiplier = 1.35
	case dayIndex >= 3:
		d.Label = "deepening"
		d.Multiplier = 1.15
	}
	return d
}

// ApplyDifficulty scales a base XP award by a difficulty multiplier.
// Every accepted answer is worth at least one point.
func ApplyDifficulty(baseXP int, multiplier float64) int {
	scaled := int(math.Round(float64(baseXP) * multiplier))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
