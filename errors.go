// errors.go — caret-snippet rendering for parser diagnostics.
//
// Turns a ParseError into a readable snippet with a caret pointing at the
// offending column:
//
//	PARSE ERROR at 3:12: expected next token to be ), got ; instead
//
//	   2 | let x = (1 + 2
//	   3 |            ;
//	     |            ^
//
// The snippet includes up to one line of context before and after, numbers
// the lines, and places the caret under the 1-based column. Coordinates are
// clamped so short or empty sources never break rendering. Output is plain
// text; the REPL applies color separately.
package monkey

import (
	"fmt"
	"strings"
)

// RenderParseError formats one diagnostic against its source.
func RenderParseError(src string, e *ParseError) string {
	return prettySnippet(src, "PARSE ERROR", e.Line, e.Col+1, e.Msg)
}

// RenderParseErrors joins the snippets for a whole error list.
func RenderParseErrors(src string, errs []*ParseError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, RenderParseError(src, e))
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// prettySnippet builds the header plus caret block. Line and col are
// treated as 1-based and clamped to the source bounds.
func prettySnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
