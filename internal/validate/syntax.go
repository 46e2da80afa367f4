// Package validate checks JSON documents for well-formedness and for
// conformance to a JSON Schema, producing user-facing messages with
// source locations.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jmorales/jsonfmt/internal/document"
)

// Issue describes a single problem found in an input document.
type Issue struct {
	Message string

	// Line and Column are 1-based, 0 when unknown.
	Line   int
	Column int

	// Context is a short excerpt of the offending source line.
	Context string
}

// String renders the issue the way the CLI reports it.
func (i *Issue) String() string {
	var sb strings.Builder
	sb.WriteString(i.Message)
	if i.Line > 0 {
		fmt.Fprintf(&sb, " at line %d", i.Line)
		if i.Column > 0 {
			fmt.Fprintf(&sb, ", column %d", i.Column)
		}
	}
	if i.Context != "" {
		fmt.Fprintf(&sb, " near: %s", i.Context)
	}
	return sb.String()
}

// Syntax checks that input is well-formed JSON. It returns nil for
// valid documents.
func Syntax(input []byte) *Issue {
	_, err := document.DecodeBytes(input)
	if err == nil {
		return nil
	}
	return Describe(input, err)
}

// Describe converts a decode error into an Issue, preferring a
// hint about a recognizable common mistake over the raw scanner
// message.
func Describe(input []byte, err error) *Issue {
	if errors.Is(err, document.ErrEmptyInput) {
		return &Issue{Message: "empty input, no JSON data found"}
	}
	if hint := commonMistake(input); hint != nil {
		return hint
	}

	var syn *document.SyntaxError
	if errors.As(err, &syn) {
		iss := &Issue{Message: syn.Msg}
		// Scanner offsets point at the offending byte.
		pos := syn.Offset
		if pos < 0 {
			pos = 0
		}
		iss.Line, iss.Column = lineColumn(input, pos)
		iss.Context = excerpt(input, iss.Line, iss.Column)
		return iss
	}
	return &Issue{Message: err.Error()}
}

// commonMistake recognizes frequent hand-written JSON mistakes and
// returns a targeted hint, or nil.
func commonMistake(input []byte) *Issue {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 {
		return &Issue{Message: "empty input, no JSON data found"}
	}

	switch string(trimmed) {
	case "{", "[":
		return &Issue{Message: "incomplete JSON structure"}
	}

	// Single-quoted strings: a quote character appears but no double
	// quote does, so the document cannot be valid JSON anyway.
	if i := bytes.IndexByte(input, '\''); i >= 0 && !bytes.ContainsRune(input, '"') {
		line, col := lineColumn(input, int64(i))
		return &Issue{
			Message: "single quotes are not valid in JSON",
			Line:    line,
			Column:  col,
		}
	}

	// Trailing commas before a closing brace or bracket, on the same
	// line or with the closer on a following line.
	lines := strings.Split(string(input), "\n")
	for n, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasSuffix(t, ",}") || strings.HasSuffix(t, ",]") {
			return &Issue{
				Message: "trailing comma before closing bracket",
				Line:    n + 1,
			}
		}
		if !strings.HasSuffix(t, ",") {
			continue
		}
		for _, follow := range lines[n+1:] {
			next := strings.TrimSpace(follow)
			if next == "" {
				continue
			}
			if strings.HasPrefix(next, "}") || strings.HasPrefix(next, "]") {
				return &Issue{
					Message: "trailing comma before closing bracket",
					Line:    n + 1,
				}
			}
			break
		}
	}

	return nil
}

// lineColumn converts a byte offset into 1-based line and column
// numbers.
func lineColumn(input []byte, pos int64) (line, col int) {
	if pos > int64(len(input)) {
		pos = int64(len(input))
	}
	before := input[:pos]
	line = bytes.Count(before, []byte{'\n'}) + 1
	if i := bytes.LastIndexByte(before, '\n'); i >= 0 {
		col = int(pos) - i
	} else {
		col = int(pos) + 1
	}
	return line, col
}

// excerpt returns up to 40 characters of the source line around the
// error column.
func excerpt(input []byte, line, col int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(string(input), "\n")
	if line > len(lines) {
		return ""
	}
	src := lines[line-1]
	start := col - 20
	if start < 0 {
		start = 0
	}
	end := col + 20
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return strings.TrimSpace(src[start:end])
}
