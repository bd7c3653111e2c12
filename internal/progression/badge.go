package progression

import "strings"

// DefaultBadgeBase is used when a theme yields no usable badge base.
const DefaultBadgeBase = "Weekly Insight"

// BadgeName derives the week badge label from a theme string.
// Themes are written as "Big Idea — Short Label"; the last em-dash
// segment becomes the badge base. An already-earned badge keeps its
// current name so a later theme change doesn't rename it.
func BadgeName(theme string, badgeEarned bool, current string) string {
	base := ""
	for _, part := range strings.Split(theme, "—") {
		if p := strings.TrimSpace(part); p != "" {
			base = p
		}
	}
	if base == "" {
		base = strings.TrimSpace(theme)
	}
	if base == "" {
		base = DefaultBadgeBase
	}
	name := base + " Insight Badge"
	if badgeEarned && current != "" {
		return current
	}
	return name
}
