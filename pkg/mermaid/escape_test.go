package mermaid

import "testing"

func TestEscapeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Start", want: "Start"},
		{name: "empty", in: "", want: ""},
		{name: "quote", in: `say "hi"`, want: "say #quot;hi#quot;"},
		{name: "newline", in: "line one\nline two", want: "line one<br/>line two"},
		{name: "both", in: "\"a\"\n\"b\"", want: "#quot;a#quot;<br/>#quot;b#quot;"},
		{name: "single quotes untouched", in: "it's fine", want: "it's fine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLabel(tt.in); got != tt.want {
				t.Errorf("EscapeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
