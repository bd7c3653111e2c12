// Package reflect is the offline reflection backend: it serves the
// daily question from an embedded bank, scores answers with an LLM
// provider (or a local heuristic), and keeps XP, streaks, and week
// badges in the local store. It implements the same Gateway contract
// as the HTTP client, so the UI cannot tell the two apart.
package reflect

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thinkle/deep/internal/api"
)

//go:embed questions.json
var bankJSON []byte

// DefaultTimerSeconds is the answer window when a question doesn't
// override it.
const DefaultTimerSeconds = 180

// DayEntry is one prompt with its optional priming material.
type DayEntry struct {
	Prompt       string              `json:"prompt"`
	TimerSeconds int                 `json:"timerSeconds,omitempty"`
	Priming      *api.PrimingContent `json:"priming,omitempty"`
}

// Week groups seven prompts under a theme.
type Week struct {
	Theme string     `json:"theme"`
	Days  []DayEntry `json:"days"`
}

// Bank is the full question bank.
type Bank struct {
	weeks []Week
	total int
}

// BankQuestion is a resolved bank entry for a specific calendar day.
type BankQuestion struct {
	ID           string
	Prompt       string
	Theme        string
	WeekIndex    int
	DayIndex     int
	TimerSeconds int
	Priming      *api.PrimingContent
}

// LoadBank parses the embedded question bank.
func LoadBank() (*Bank, error) {
	return parseBank(bankJSON)
}

func parseBank(data []byte) (*Bank, error) {
	var weeks []Week
	if err := json.Unmarshal(data, &weeks); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	total := 0
	for i, w := range weeks {
		if len(w.Days) == 0 {
			return nil, fmt.Errorf("week %d has no days", i+1)
		}
		total += len(w.Days)
	}
	return &Bank{weeks: weeks, total: total}, nil
}

// Size returns the total number of prompts in the bank.
func (b *Bank) Size() int {
	return b.total
}

// QuestionFor returns the prompt for the given calendar day. Selection
// walks the bank by day of year, so every install sees the same prompt
// on the same date and the bank wraps around when exhausted.
func (b *Bank) QuestionFor(date time.Time) BankQuestion {
	idx := (date.YearDay() - 1) % b.total

	week := 0
	for idx >= len(b.weeks[week].Days) {
		idx -= len(b.weeks[week].Days)
		week++
	}
	entry := b.weeks[week].Days[idx]

	timer := entry.TimerSeconds
	if timer <= 0 {
		timer = DefaultTimerSeconds
	}

	return BankQuestion{
		ID:           fmt.Sprintf("week-%d-day-%d", week+1, idx+1),
		Prompt:       entry.Prompt,
		Theme:        b.weeks[week].Theme,
		WeekIndex:    week,
		DayIndex:     idx,
		TimerSeconds: timer,
		Priming:      entry.Priming,
	}
}
