package feedback

import "testing"

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"empty",
			"",
			"",
		},
		{
			"whitespace only",
			"   \n\t ",
			"",
		},
		{
			"plain sentence",
			"name one feeling you noticed",
			"Give this a try today: name one feeling you noticed.",
		},
		{
			"strips trailing punctuation",
			"write a second sentence!!",
			"Give this a try today: write a second sentence.",
		},
		{
			"softens advice words",
			"You should utilize examples and ensure clarity.",
			"Give this a try today: You could use examples and make sure clarity.",
		},
		{
			"case insensitive replacements",
			"Consider this. However, elaborate more.",
			"Give this a try today: try this. but, unpack more.",
		},
		{
			"focus on becomes lean into",
			"Focus on one detail therefore it sticks.",
			"Give this a try today: lean into one detail so it sticks.",
		},
		{
			"collapses whitespace",
			"add   one\n\nconcrete   detail",
			"Give this a try today: add one concrete detail.",
		},
		{
			"word boundaries respected",
			"shoulder your references",
			"Give this a try today: shoulder your references.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.in); got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"improve marker preferred",
			"Nice depth in your answer. Improve: name the feeling behind it",
			"Focus: name the feeling behind it",
		},
		{
			"marker is case insensitive",
			"Good start. IMPROVE: slow down before writing",
			"Focus: slow down before writing",
		},
		{
			"empty tip falls back to humanizer",
			"Keep going. Improve: ",
			"Give this a try today: Keep going. Improve:.",
		},
		{
			"no marker humanizes whole feedback",
			"You should clarify your main point.",
			"Give this a try today: You could make clearer your main point.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggestion(tt.in); got != tt.want {
				t.Errorf("Suggestion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
