// Package format serializes ordered JSON documents with configurable
// indentation, key sorting, compact mode, and optional terminal
// syntax highlighting.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jmorales/jsonfmt/internal/document"
)

// Options controls how a document is rendered.
type Options struct {
	// Indent is "2", "4", or "tab". Ignored in compact mode.
	Indent string

	// SortKeys sorts object members alphabetically at every level.
	SortKeys bool

	// Compact renders without any whitespace.
	Compact bool
}

// IndentString translates an indent flag value to the literal indent
// unit. Accepted values are "2", "4" and "tab".
func IndentString(flag string) (string, error) {
	switch flag {
	case "2":
		return "  ", nil
	case "4":
		return "    ", nil
	case "tab":
		return "\t", nil
	default:
		return "", fmt.Errorf("invalid indent %q: must be 2, 4, or 'tab'", flag)
	}
}

// Write renders v to w without highlighting.
func Write(w io.Writer, v document.Value, opts Options) error {
	return write(w, v, opts, PlainStyles())
}

// WriteHighlighted renders v to w, colorizing tokens with s.
func WriteHighlighted(w io.Writer, v document.Value, opts Options, s Styles) error {
	return write(w, v, opts, s)
}

func write(w io.Writer, v document.Value, opts Options, s Styles) error {
	indent := ""
	if !opts.Compact {
		var err error
		indent, err = IndentString(opts.Indent)
		if err != nil {
			return err
		}
	}
	p := &printer{
		w:        w,
		indent:   indent,
		sortKeys: opts.SortKeys,
		compact:  opts.Compact,
		styles:   s,
	}
	p.value(v, 0)
	return p.err
}

type printer struct {
	w        io.Writer
	indent   string
	sortKeys bool
	compact  bool
	styles   Styles
	err      error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) newline(level int) {
	if p.compact {
		return
	}
	p.print("\n" + strings.Repeat(p.indent, level))
}

func (p *printer) value(v document.Value, level int) {
	switch t := v.(type) {
	case document.Object:
		p.object(t, level)
	case document.Array:
		p.array(t, level)
	case document.String:
		p.print(p.styles.String.Render(quote(string(t))))
	case document.Number:
		p.print(p.styles.Number.Render(string(t)))
	case document.Bool:
		p.print(p.styles.Literal.Render(fmt.Sprintf("%t", bool(t))))
	case document.Null:
		p.print(p.styles.Literal.Render("null"))
	}
}

func (p *printer) object(o document.Object, level int) {
	punct := p.styles.Punct
	if len(o) == 0 {
		p.print(punct.Render("{}"))
		return
	}

	members := o
	if p.sortKeys {
		members = make(document.Object, len(o))
		copy(members, o)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Key < members[j].Key
		})
	}

	colon := ": "
	if p.compact {
		colon = ":"
	}

	p.print(punct.Render("{"))
	for i, m := range members {
		if i > 0 {
			p.print(punct.Render(","))
		}
		p.newline(level + 1)
		p.print(p.styles.Key.Render(quote(m.Key)))
		p.print(punct.Render(colon))
		p.value(m.Value, level+1)
	}
	p.newline(level)
	p.print(punct.Render("}"))
}

func (p *printer) array(a document.Array, level int) {
	punct := p.styles.Punct
	if len(a) == 0 {
		p.print(punct.Render("[]"))
		return
	}

	p.print(punct.Render("["))
	for i, v := range a {
		if i > 0 {
			p.print(punct.Render(","))
		}
		p.newline(level + 1)
		p.value(v, level+1)
	}
	p.newline(level)
	p.print(punct.Render("]"))
}

// quote renders s as a JSON string literal. Non-ASCII characters are
// preserved rather than \u-escaped, matching the formatter contract.
func quote(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(sb.String(), "\n")
}
