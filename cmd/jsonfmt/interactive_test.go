package main

import (
	"strings"
	"testing"

	"github.com/jmorales/jsonfmt/internal/document"
	"github.com/jmorales/jsonfmt/internal/stats"
)

func sampleReports(t *testing.T) []documentReport {
	t.Helper()
	inputs := map[string]string{
		"a.json": `{"id":1,"tags":["x","y"]}`,
		"b.json": `[true,false,null]`,
	}
	var reports []documentReport
	for name, input := range inputs {
		doc, err := document.DecodeBytes([]byte(input))
		if err != nil {
			t.Fatalf("decoding %s: %v", name, err)
		}
		reports = append(reports, documentReport{
			name: name,
			rpt:  stats.Collect(doc, len(input)),
		})
	}
	return reports
}

func TestRenderStatsContent_Header(t *testing.T) {
	content := renderStatsContent(sampleReports(t), 10)
	if !strings.Contains(content, "2 document(s)") {
		t.Errorf("expected document count in title, got:\n%s", content)
	}
	if !strings.Contains(content, "node(s)") {
		t.Errorf("expected node count in title, got:\n%s", content)
	}
}

func TestRenderStatsContent_PerFileSections(t *testing.T) {
	content := renderStatsContent(sampleReports(t), 10)
	for _, want := range []string{"a.json", "b.json", "Maximum depth:"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q:\n%s", want, content)
		}
	}
}

func TestRenderStatsContent_Empty(t *testing.T) {
	content := renderStatsContent(nil, 10)
	if !strings.Contains(content, "0 document(s)") {
		t.Errorf("expected zero-document title, got:\n%s", content)
	}
}

func TestNewStatsModel(t *testing.T) {
	m := newStatsModel(sampleReports(t), 10)
	if m.ready {
		t.Error("model should not be ready before the first window size message")
	}
	if m.content == "" {
		t.Error("model content should be pre-rendered")
	}
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before ready = %q", got)
	}
}
