package format

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/jmorales/jsonfmt/internal/document"
)

// stripANSI removes ANSI escape sequences for text comparison.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func mustDecode(t *testing.T, input string) document.Value {
	t.Helper()
	doc, err := document.DecodeBytes([]byte(input))
	if err != nil {
		t.Fatalf("decoding %q: %v", input, err)
	}
	return doc
}

func render(t *testing.T, input string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, mustDecode(t, input), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestWrite_IndentTwo(t *testing.T) {
	got := render(t, `{"a":1,"b":[2,3]}`, Options{Indent: "2"})
	want := "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWrite_IndentFour(t *testing.T) {
	got := render(t, `{"a":1}`, Options{Indent: "4"})
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWrite_IndentTab(t *testing.T) {
	got := render(t, `{"a":{"b":1}}`, Options{Indent: "tab"})
	want := "{\n\t\"a\": {\n\t\t\"b\": 1\n\t}\n}"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWrite_Compact(t *testing.T) {
	got := render(t, "{\n  \"a\": 1,\n  \"b\": [2, 3]\n}", Options{Compact: true})
	want := `{"a":1,"b":[2,3]}`
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWrite_SortKeys(t *testing.T) {
	got := render(t, `{"zebra":1,"alpha":{"m":1,"a":2},"mango":3}`,
		Options{Indent: "2", SortKeys: true})
	wantOrder := []string{"alpha", "a", "m", "mango", "zebra"}
	last := -1
	for _, key := range wantOrder {
		i := strings.Index(got, `"`+key+`"`)
		if i < 0 {
			t.Fatalf("key %q missing from output:\n%s", key, got)
		}
		if i < last {
			t.Errorf("key %q out of order in output:\n%s", key, got)
		}
		last = i
	}
}

func TestWrite_PreservesKeyOrderByDefault(t *testing.T) {
	got := render(t, `{"zebra":1,"alpha":2}`, Options{Indent: "2"})
	if strings.Index(got, "zebra") > strings.Index(got, "alpha") {
		t.Errorf("key order not preserved:\n%s", got)
	}
}

func TestWrite_EmptyContainers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`{"a":{},"b":[]}`, "{\n  \"a\": {},\n  \"b\": []\n}"},
	}
	for _, tt := range tests {
		if got := render(t, tt.input, Options{Indent: "2"}); got != tt.want {
			t.Errorf("input %q: output = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrite_Primitives(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`false`, `false`},
		{`42`, `42`},
		{`"hello"`, `"hello"`},
	}
	for _, tt := range tests {
		if got := render(t, tt.input, Options{Indent: "2"}); got != tt.want {
			t.Errorf("input %q: output = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrite_NumberTextPreserved(t *testing.T) {
	got := render(t, `[1e3,0.5000,-0,123456789012345678901234567890]`,
		Options{Compact: true})
	want := `[1e3,0.5000,-0,123456789012345678901234567890]`
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWrite_UnicodePreserved(t *testing.T) {
	got := render(t, `{"city":"São Paulo","emoji":"🎉"}`, Options{Compact: true})
	if !strings.Contains(got, "São Paulo") {
		t.Errorf("non-ASCII text was escaped: %q", got)
	}
	if !strings.Contains(got, "🎉") {
		t.Errorf("emoji was escaped: %q", got)
	}
}

func TestWrite_HTMLCharactersNotEscaped(t *testing.T) {
	got := render(t, `{"html":"<a href=\"x\">&</a>"}`, Options{Compact: true})
	if strings.Contains(got, `<`) || strings.Contains(got, `&`) {
		t.Errorf("HTML characters were escaped: %q", got)
	}
	if !strings.Contains(got, `<a href=`) || !strings.Contains(got, `&`) {
		t.Errorf("expected literal HTML characters: %q", got)
	}
}

func TestWrite_ControlCharactersEscaped(t *testing.T) {
	got := render(t, `{"s":"line1\nline2\ttab"}`, Options{Compact: true})
	if !strings.Contains(got, `\n`) || !strings.Contains(got, `\t`) {
		t.Errorf("control characters not escaped: %q", got)
	}
}

func TestWrite_InvalidIndentRejected(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, mustDecode(t, `{}`), Options{Indent: "3"})
	if err == nil {
		t.Fatal("expected error for invalid indent")
	}
	if !strings.Contains(err.Error(), `invalid indent "3"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestIndentString(t *testing.T) {
	tests := []struct {
		flag    string
		want    string
		wantErr bool
	}{
		{"2", "  ", false},
		{"4", "    ", false},
		{"tab", "\t", false},
		{"8", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := IndentString(tt.flag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("flag %q: expected error", tt.flag)
			}
			continue
		}
		if err != nil {
			t.Errorf("flag %q: unexpected error: %v", tt.flag, err)
		}
		if got != tt.want {
			t.Errorf("flag %q: indent = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func TestWriteHighlighted_SameTextAsPlain(t *testing.T) {
	// In a non-TTY environment lipgloss degrades to plain text, so
	// the highlighted render must carry the same characters.
	doc := mustDecode(t, `{"a":[1,"x",null,true]}`)
	opts := Options{Indent: "2"}

	var plain, colored bytes.Buffer
	if err := Write(&plain, doc, opts); err != nil {
		t.Fatal(err)
	}
	if err := WriteHighlighted(&colored, doc, opts, DefaultStyles()); err != nil {
		t.Fatal(err)
	}
	if stripANSI(colored.String()) != plain.String() {
		t.Errorf("highlighted text differs from plain:\n%q\nvs\n%q",
			colored.String(), plain.String())
	}
}

func TestWrite_RoundTripStable(t *testing.T) {
	input := `{"b":1,"a":[true,null,{"x":"y"}],"n":1.5}`
	first := render(t, input, Options{Indent: "2"})
	second := render(t, first, Options{Indent: "2"})
	if first != second {
		t.Errorf("formatting is not a fixed point:\n%s\nvs\n%s", first, second)
	}
}
