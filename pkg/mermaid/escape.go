package mermaid

import "strings"

var labelEscaper = strings.NewReplacer(
	`"`, "#quot;",
	"\n", "<br/>",
)

// EscapeLabel rewrites characters that would break out of a quoted Mermaid
// label. Double quotes become the #quot; entity and literal newlines become
// <br/> so multi-line labels survive the single-line statement grammar.
// Any string can be escaped; the function never fails.
func EscapeLabel(s string) string {
	return labelEscaper.Replace(s)
}
