package report

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/jmorales/jsonfmt/internal/document"
	"github.com/jmorales/jsonfmt/internal/stats"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

func sampleReport(t *testing.T) *stats.Report {
	t.Helper()
	input := `{"users":[{"id":1,"name":"Ada"},{"id":2,"name":"Lin"}],"active":true}`
	doc, err := document.DecodeBytes([]byte(input))
	if err != nil {
		t.Fatalf("decoding sample: %v", err)
	}
	return stats.Collect(doc, len(input))
}

func TestWriteText_Sections(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, "sample.json", sampleReport(t), 10, DefaultStyles()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"JSON Statistics: sample.json",
		"Maximum depth:",
		"Total nodes:",
		"Objects",
		"Keys:",
		"Arrays:",
		"Strings:",
		"Most frequent keys:",
		`"id"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteText_NoNameOmitsLabel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, "", sampleReport(t), 10, DefaultStyles()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "=== JSON Statistics ===") {
		t.Errorf("expected bare header, got:\n%s", buf.String())
	}
}

func TestWriteText_ScalarDocument(t *testing.T) {
	doc, err := document.DecodeBytes([]byte(`42`))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, "", stats.Collect(doc, 2), 10, DefaultStyles()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Arrays: ") && strings.Contains(out, "avg length") {
		t.Errorf("scalar document should have no array summary:\n%s", out)
	}
	if strings.Contains(out, "Most frequent keys") {
		t.Errorf("scalar document should list no keys:\n%s", out)
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{NewEntry("sample.json", sampleReport(t), 10)}
	if err := WriteJSON(&buf, entries); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var parsed struct {
		Version string `json:"version"`
		Reports []struct {
			File   string `json:"file"`
			Counts struct {
				Objects int `json:"objects"`
				Numbers int `json:"numbers"`
			} `json:"counts"`
			TopKeys []struct {
				Key   string `json:"key"`
				Count int    `json:"count"`
			} `json:"top_keys"`
		} `json:"reports"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if parsed.Version != Version {
		t.Errorf("version = %q, want %q", parsed.Version, Version)
	}
	if len(parsed.Reports) != 1 {
		t.Fatalf("reports length = %d, want 1", len(parsed.Reports))
	}
	r := parsed.Reports[0]
	if r.File != "sample.json" {
		t.Errorf("file = %q, want sample.json", r.File)
	}
	if r.Counts.Objects != 3 {
		t.Errorf("objects = %d, want 3", r.Counts.Objects)
	}
	if len(r.TopKeys) == 0 || r.TopKeys[0].Key != "id" {
		t.Errorf("top keys = %v, want id first", r.TopKeys)
	}
}

func TestWriteJSON_EmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"reports": []`) {
		t.Errorf("nil entries should encode as empty array:\n%s", buf.String())
	}
}

func compileSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}
	return compiled
}

func TestWriteJSON_ValidAgainstSchema(t *testing.T) {
	compiled := compileSchema(t)

	var buf bytes.Buffer
	entries := []Entry{
		NewEntry("sample.json", sampleReport(t), 10),
		NewEntry("", sampleReport(t), 2),
	}
	if err := WriteJSON(&buf, entries); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if err := compiled.Validate(inst); err != nil {
		t.Errorf("JSON output does not conform to schema:\n%v", err)
	}
}

func TestWriteJSON_ScalarReportValidAgainstSchema(t *testing.T) {
	compiled := compileSchema(t)

	doc, err := document.DecodeBytes([]byte(`"just a string"`))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Entry{NewEntry("", stats.Collect(doc, 15), 10)}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if err := compiled.Validate(inst); err != nil {
		t.Errorf("JSON output does not conform to schema:\n%v", err)
	}
}

// stripANSI removes ANSI escape sequences from text for width measurement.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestWriteText_FitsIn80Columns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, "sample.json", sampleReport(t), 10, DefaultStyles()); err != nil {
		t.Fatal(err)
	}

	const maxWidth = 80
	for i, line := range strings.Split(buf.String(), "\n") {
		if w := len([]rune(stripANSI(line))); w > maxWidth {
			t.Errorf("line %d is %d columns wide (max %d): %s", i+1, w, maxWidth, line)
		}
	}
}
