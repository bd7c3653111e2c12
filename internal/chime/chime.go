// Package chime emits the terminal bell as a reward cue. Everything here
// is best effort: a terminal without a bell, or no controlling terminal
// at all, just means silence.
package chime

import "os"

// Ring sounds the terminal bell. Writing straight to the controlling
// terminal keeps the bell out of the renderer's output stream.
func Ring() {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		_, _ = os.Stderr.WriteString("\a")
		return
	}
	defer tty.Close()
	_, _ = tty.WriteString("\a")
}
