package reflect

import "fmt"

// dopamineLines are short variable-reward hooks shown above the prompt.
// Rotation is keyed by day of year so the line changes daily without
// any stored state.
var dopamineLines = []string{
	"Two minutes of honesty beats an hour of scrolling.",
	"Nobody else will ever write today's answer.",
	"Your future self reads these. Give them something good.",
	"The streak is nice. The noticing is the point.",
	"One true sentence is enough to start.",
	"Today's prompt only exists once.",
	"Thinking deeply is a muscle. This is the rep.",
}

// dopamineFor picks the hook for a day, upgrading it when a streak is
// on the line.
func dopamineFor(yearDay, streak int) string {
	if streak >= 3 {
		return fmt.Sprintf("Day %d of your streak is waiting. %s", streak+1, dopamineLines[yearDay%len(dopamineLines)])
	}
	return dopamineLines[yearDay%len(dopamineLines)]
}
