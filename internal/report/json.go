// Package report provides output formatters for JSON document
// statistics in styled text and JSON formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/jmorales/jsonfmt/internal/stats"
)

// Version identifies the JSON report format.
const Version = "1.0.0"

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string  `json:"version"`
	Reports []Entry `json:"reports"`
}

// Entry is the statistics of one input document.
type Entry struct {
	// File is the source path; empty for stdin.
	File string `json:"file,omitempty"`

	SizeBytes  int                  `json:"size_bytes"`
	MaxDepth   int                  `json:"max_depth"`
	Counts     stats.TypeCounts     `json:"counts"`
	TotalKeys  int                  `json:"total_keys"`
	UniqueKeys int                  `json:"unique_keys"`
	TopKeys    []stats.KeyCount     `json:"top_keys"`
	Arrays     *stats.LengthSummary `json:"arrays,omitempty"`
	Strings    *stats.LengthSummary `json:"strings,omitempty"`
}

// NewEntry converts a stats report into its wire form, keeping the
// topN most frequent keys.
func NewEntry(file string, rpt *stats.Report, topN int) Entry {
	top := rpt.TopKeys(topN)
	if top == nil {
		top = []stats.KeyCount{}
	}
	return Entry{
		File:       file,
		SizeBytes:  rpt.SizeBytes,
		MaxDepth:   rpt.MaxDepth,
		Counts:     rpt.Counts,
		TotalKeys:  rpt.TotalKeys,
		UniqueKeys: rpt.UniqueKeys,
		TopKeys:    top,
		Arrays:     rpt.Arrays,
		Strings:    rpt.Strings,
	}
}

// WriteJSON writes statistics entries as formatted JSON to the writer.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	out := JSONReport{
		Version: Version,
		Reports: entries,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
