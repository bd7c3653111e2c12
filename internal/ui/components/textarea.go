package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line free writing.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(placeholder string, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	if charLimit > 0 {
		ta.CharLimit = charLimit
	}
	ta.Focus()

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetSize resizes the editing region.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// Reset clears the input.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// WordCount returns the number of whitespace-separated words typed so far.
func (t TextArea) WordCount() int {
	return len(strings.Fields(t.Model.Value()))
}
