// Package stats implements the structural statistics pass over a
// decoded JSON document: per-type node counts, nesting depth, key
// frequencies, and array/string length summaries.
package stats

import (
	"sort"

	"github.com/jmorales/jsonfmt/internal/document"
)

// TypeCounts holds the number of nodes seen per JSON type.
type TypeCounts struct {
	Objects  int `json:"objects"`
	Arrays   int `json:"arrays"`
	Strings  int `json:"strings"`
	Numbers  int `json:"numbers"`
	Booleans int `json:"booleans"`
	Nulls    int `json:"nulls"`
}

// Total returns the total number of nodes visited.
func (c TypeCounts) Total() int {
	return c.Objects + c.Arrays + c.Strings + c.Numbers + c.Booleans + c.Nulls
}

// LengthSummary summarizes the lengths of all arrays or all strings
// encountered during one pass.
type LengthSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

// KeyCount is one object key with its occurrence count.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Report is the immutable result of one statistics pass.
type Report struct {
	// SizeBytes is the encoded size of the document, supplied by the
	// caller; the traversal itself never re-serializes.
	SizeBytes int

	// MaxDepth is the deepest nesting level reached. The root node is
	// at depth 1, so a bare scalar document reports 1.
	MaxDepth int

	Counts TypeCounts

	// TotalKeys counts every (object, key) pair; UniqueKeys counts
	// distinct key strings.
	TotalKeys  int
	UniqueKeys int

	// KeyCounts lists every distinct key ordered by descending count,
	// ties broken by first-encountered document order.
	KeyCounts []KeyCount

	// Arrays and Strings are nil when the document contains no
	// arrays or no strings respectively.
	Arrays  *LengthSummary
	Strings *LengthSummary
}

// TopKeys returns the n most frequent keys, fewer when the document
// has fewer distinct keys.
func (r *Report) TopKeys(n int) []KeyCount {
	if n > len(r.KeyCounts) {
		n = len(r.KeyCounts)
	}
	if n < 0 {
		n = 0
	}
	return r.KeyCounts[:n]
}

// frame is one pending node of the traversal work list.
type frame struct {
	value document.Value
	depth int
}

// Collect walks root and returns a fresh report. sizeBytes is the
// encoded size of the document. The traversal is iterative so
// adversarially deep documents cannot exhaust the call stack, and it
// visits nodes in document order.
func Collect(root document.Value, sizeBytes int) *Report {
	var (
		counts     TypeCounts
		maxDepth   int
		totalKeys  int
		freq       = make(map[string]int)
		keyOrder   []string
		arrayLens  []int
		stringLens []int
	)

	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > maxDepth {
			maxDepth = f.depth
		}

		switch v := f.value.(type) {
		case document.Object:
			counts.Objects++
			for _, m := range v {
				totalKeys++
				if freq[m.Key] == 0 {
					keyOrder = append(keyOrder, m.Key)
				}
				freq[m.Key]++
			}
			// Push members in reverse so they pop in document order.
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, frame{v[i].Value, f.depth + 1})
			}
		case document.Array:
			counts.Arrays++
			arrayLens = append(arrayLens, len(v))
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, frame{v[i], f.depth + 1})
			}
		case document.String:
			counts.Strings++
			stringLens = append(stringLens, len([]rune(string(v))))
		case document.Number:
			counts.Numbers++
		case document.Bool:
			counts.Booleans++
		case document.Null:
			counts.Nulls++
		}
	}

	keyCounts := make([]KeyCount, 0, len(keyOrder))
	for _, k := range keyOrder {
		keyCounts = append(keyCounts, KeyCount{Key: k, Count: freq[k]})
	}
	// Stable sort keeps first-encountered order for equal counts.
	sort.SliceStable(keyCounts, func(i, j int) bool {
		return keyCounts[i].Count > keyCounts[j].Count
	})

	return &Report{
		SizeBytes:  sizeBytes,
		MaxDepth:   maxDepth,
		Counts:     counts,
		TotalKeys:  totalKeys,
		UniqueKeys: len(keyOrder),
		KeyCounts:  keyCounts,
		Arrays:     summarize(arrayLens),
		Strings:    summarize(stringLens),
	}
}

// summarize reduces a length series to count/mean/min/max. Returns
// nil for an empty series.
func summarize(lengths []int) *LengthSummary {
	if len(lengths) == 0 {
		return nil
	}
	s := &LengthSummary{
		Count: len(lengths),
		Min:   lengths[0],
		Max:   lengths[0],
	}
	sum := 0
	for _, n := range lengths {
		sum += n
		if n < s.Min {
			s.Min = n
		}
		if n > s.Max {
			s.Max = n
		}
	}
	s.Mean = float64(sum) / float64(len(lengths))
	return s
}
