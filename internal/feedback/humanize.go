// Package feedback rewrites scorer feedback into a short, warm
// suggestion suitable for the end-of-session celebration.
package feedback

import (
	"regexp"
	"strings"
)

// replacement is a single ordered rewrite rule. Patterns are compiled
// once at init; all matching is case-insensitive and word-bounded.
type replacement struct {
	pattern *regexp.Regexp
	with    string
}

var replacements = []replacement{
	{word(`utilise`), "use"},
	{word(`utilize`), "use"},
	{word(`ensure`), "make sure"},
	{word(`consider`), "try"},
	{word(`incorporate`), "add"},
	{word(`reference`), "mention"},
	{word(`elaborate`), "unpack"},
	{word(`clarify`), "make clearer"},
	{word(`focus on`), "lean into"},
	{word(`should`), "could"},
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	trailingPunct  = regexp.MustCompile(`[.!?]*$`)
	improveSplitRe = regexp.MustCompile(`(?i)improve:`)
	howeverRe      = word(`however`)
	thereforeRe    = word(`therefore`)
)

func word(w string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + w + `\b`)
}

// Humanize turns a raw suggestion fragment into a friendly call to
// action. Empty input stays empty.
func Humanize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	out := raw
	for _, r := range replacements {
		out = r.pattern.ReplaceAllString(out, r.with)
	}
	out = whitespaceRe.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)
	out = howeverRe.ReplaceAllString(out, "but")
	out = thereforeRe.ReplaceAllString(out, "so")
	core := trailingPunct.ReplaceAllString(out, "")
	if core == "" {
		return ""
	}
	return "Give this a try today: " + core + "."
}

// Suggestion extracts the actionable part of a feedback string. The
// scorer appends its tip after an "Improve:" marker; when present the
// tip is surfaced as a Focus line, otherwise the whole feedback is
// humanized.
func Suggestion(feedback string) string {
	parts := improveSplitRe.Split(feedback, 2)
	if len(parts) == 2 {
		if tip := strings.TrimSpace(parts[1]); tip != "" {
			return "Focus: " + tip
		}
	}
	return Humanize(feedback)
}
