package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jmorales/jsonfmt/internal/stats"
)

// WriteText writes one statistics report as human-readable styled
// text. name labels the source document and may be empty for stdin.
func WriteText(w io.Writer, name string, rpt *stats.Report, topN int, s Styles) error {
	header := "JSON Statistics"
	if name != "" {
		header += ": " + name
	}
	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", header)))

	writeLabeled(w, s, "Size", fmt.Sprintf("%d bytes", rpt.SizeBytes))
	writeLabeled(w, s, "Maximum depth", strconv.Itoa(rpt.MaxDepth))
	writeLabeled(w, s, "Total nodes", strconv.Itoa(rpt.Counts.Total()))
	fmt.Fprintln(w)

	if err := writeCountsTable(w, rpt, s); err != nil {
		return err
	}

	fmt.Fprintln(w)
	writeLabeled(w, s, "Keys",
		fmt.Sprintf("%d total, %d unique", rpt.TotalKeys, rpt.UniqueKeys))
	if rpt.Arrays != nil {
		writeLabeled(w, s, "Arrays", summaryLine(rpt.Arrays))
	}
	if rpt.Strings != nil {
		writeLabeled(w, s, "Strings", summaryLine(rpt.Strings))
	}

	top := rpt.TopKeys(topN)
	if len(top) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Label.Render("Most frequent keys:"))
		for _, kc := range top {
			fmt.Fprintf(w, "  %s %s\n",
				s.KeyName.Render(strconv.Quote(kc.Key)),
				s.Muted.Render(fmt.Sprintf("x%d", kc.Count)))
		}
	}

	return nil
}

func writeLabeled(w io.Writer, s Styles, label, value string) {
	fmt.Fprintf(w, "%s %s\n",
		s.Label.Render(label+":"), s.Value.Render(value))
}

func summaryLine(ls *stats.LengthSummary) string {
	return fmt.Sprintf("%d (avg length %.1f, min %d, max %d)",
		ls.Count, ls.Mean, ls.Min, ls.Max)
}

func writeCountsTable(w io.Writer, rpt *stats.Report, s Styles) error {
	rows := [][]string{
		{"Objects", strconv.Itoa(rpt.Counts.Objects)},
		{"Arrays", strconv.Itoa(rpt.Counts.Arrays)},
		{"Strings", strconv.Itoa(rpt.Counts.Strings)},
		{"Numbers", strconv.Itoa(rpt.Counts.Numbers)},
		{"Booleans", strconv.Itoa(rpt.Counts.Booleans)},
		{"Nulls", strconv.Itoa(rpt.Counts.Nulls)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		}).
		Headers("TYPE", "COUNT").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t)
	return err
}
