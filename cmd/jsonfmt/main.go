package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/jmorales/jsonfmt/internal/config"
	"github.com/jmorales/jsonfmt/internal/document"
	"github.com/jmorales/jsonfmt/internal/format"
	"github.com/jmorales/jsonfmt/internal/input"
	"github.com/jmorales/jsonfmt/internal/report"
	"github.com/jmorales/jsonfmt/internal/stats"
	"github.com/jmorales/jsonfmt/internal/validate"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	sepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

func main() {
	root := &cobra.Command{
		Use:   "jsonfmt",
		Short: "jsonfmt — pretty-print, validate and analyze JSON",
		Long: `Jsonfmt pretty-prints JSON documents with syntax highlighting,
validates them against JSON Schemas, and reports structural
statistics such as nesting depth and key frequencies.`,
		Version: version,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// display names an input path for messages; stdin reads show as "stdin".
func display(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// resolveConfig loads the config file and applies explicit flag
// overrides. Empty/zero flag values mean "not set".
func resolveConfig(path, indent, color string, sortKeys, compact bool, topKeys int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if indent != "" {
		cfg.Indent = indent
	}
	if color != "" {
		cfg.Color = color
	}
	if sortKeys {
		cfg.SortKeys = true
	}
	if compact {
		cfg.Compact = true
	}
	if topKeys > 0 {
		cfg.TopKeys = topKeys
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// failures summarizes a multi-file run where some inputs failed.
func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d input(s) failed", failed, total)
}

// ---------------------------------------------------------------------------
// format
// ---------------------------------------------------------------------------

// formatParams holds the parsed flags for the format command.
type formatParams struct {
	files      []string
	indent     string
	sortKeys   bool
	compact    bool
	color      string
	output     string
	encoding   string
	configPath string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// runFormat is the extracted, testable body of the format command.
func runFormat(p formatParams) error {
	cfg, err := resolveConfig(p.configPath, p.indent, p.color, p.sortKeys, p.compact, 0)
	if err != nil {
		return err
	}

	opts := format.Options{
		Indent:   cfg.Indent,
		SortKeys: cfg.SortKeys,
		Compact:  cfg.Compact,
	}
	// Files never get ANSI sequences; compact output stays greppable.
	highlight := cfg.Color != "never" && p.output == "" && !cfg.Compact
	if highlight && cfg.Color == "always" {
		// Lipgloss profiles os.Stdout and would degrade to plain text
		// on a pipe; "always" forces color anyway.
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	inputs := p.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var outputs []string
	failed := 0
	for i, path := range inputs {
		data, err := input.Read(path, p.stdin, p.encoding)
		if err != nil {
			logger.Error("reading input", "file", display(path), "err", err)
			failed++
			continue
		}

		doc, err := document.DecodeBytes(data)
		if err != nil {
			iss := validate.Describe(data, err)
			logger.Error("invalid JSON", "file", display(path), "reason", iss.String())
			failed++
			continue
		}

		var sb strings.Builder
		if highlight {
			err = format.WriteHighlighted(&sb, doc, opts, format.DefaultStyles())
		} else {
			err = format.Write(&sb, doc, opts)
		}
		if err != nil {
			return err
		}

		if p.output != "" {
			outputs = append(outputs, sb.String())
			continue
		}
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(p.stdout)
			}
			fmt.Fprintln(p.stdout, sepStyle.Render(
				fmt.Sprintf("--- %s ---", filepath.Base(path))))
		}
		fmt.Fprintln(p.stdout, sb.String())
	}

	if p.output != "" && len(outputs) > 0 {
		if err := writeOutputFile(p.output, outputs); err != nil {
			return err
		}
		logger.Info("written", "file", p.output)
	}

	return failures(failed, len(inputs))
}

// writeOutputFile writes all formatted documents to one file,
// separated by blank lines. Parent directories are created as needed.
func writeOutputFile(path string, outputs []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	combined := strings.Join(outputs, "\n\n") + "\n"
	if err := os.WriteFile(path, []byte(combined), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func newFormatCmd() *cobra.Command {
	var p formatParams

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Pretty-print JSON documents",
		Long: `Pretty-print JSON files, or stdin when no files are given.
Key order is preserved unless --sort-keys is set. Invalid files are
reported and the run continues with the next file.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.files = args
			p.stdin = os.Stdin
			p.stdout = os.Stdout
			p.stderr = os.Stderr
			return runFormat(p)
		},
	}

	cmd.Flags().StringVarP(&p.indent, "indent", "i", "",
		"indentation width: 2, 4, or 'tab' (default 2)")
	cmd.Flags().BoolVarP(&p.sortKeys, "sort-keys", "s", false,
		"sort object keys alphabetically")
	cmd.Flags().BoolVarP(&p.compact, "compact", "c", false,
		"output compact JSON without whitespace")
	cmd.Flags().StringVar(&p.color, "color", "",
		"syntax highlighting: auto, always, or never (default auto)")
	cmd.Flags().StringVarP(&p.output, "output", "o", "",
		"write output to file instead of stdout")
	cmd.Flags().StringVarP(&p.encoding, "encoding", "e", "",
		"input character encoding (default utf-8)")
	cmd.Flags().StringVar(&p.configPath, "config", "",
		"config file (default .jsonfmt.yaml if present)")

	return cmd
}

// ---------------------------------------------------------------------------
// validate
// ---------------------------------------------------------------------------

// validateParams holds the parsed flags for the validate command.
type validateParams struct {
	files      []string
	schemaPath string
	encoding   string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// runValidate is the extracted, testable body of the validate command.
func runValidate(p validateParams) error {
	var sch *validate.Schema
	if p.schemaPath != "" {
		var err error
		sch, err = validate.LoadSchema(p.schemaPath)
		if err != nil {
			return err
		}
	}

	inputs := p.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	failed := 0
	for _, path := range inputs {
		data, err := input.Read(path, p.stdin, p.encoding)
		if err != nil {
			logger.Error("reading input", "file", display(path), "err", err)
			failed++
			continue
		}

		if iss := validate.Syntax(data); iss != nil {
			logger.Error("invalid JSON",
				"file", display(path), "reason", iss.String())
			failed++
			continue
		}

		if sch == nil {
			fmt.Fprintln(p.stdout, okStyle.Render(
				fmt.Sprintf("✓ valid JSON (%s)", display(path))))
			continue
		}

		msgs, err := sch.Validate(data)
		if err != nil {
			logger.Error("schema validation", "file", display(path), "err", err)
			failed++
			continue
		}
		if len(msgs) > 0 {
			logger.Error("schema validation failed",
				"file", display(path), "violations", len(msgs))
			for _, m := range msgs {
				fmt.Fprintf(p.stderr, "  - %s\n", m)
			}
			failed++
			continue
		}
		fmt.Fprintln(p.stdout, okStyle.Render(
			fmt.Sprintf("✓ valid JSON matching schema (%s)", display(path))))
	}

	return failures(failed, len(inputs))
}

func newValidateCmd() *cobra.Command {
	var p validateParams

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate JSON syntax, optionally against a JSON Schema",
		Long: `Check that inputs are well-formed JSON. Syntax errors are
reported with line and column. With --schema, documents are also
checked against a JSON Schema and violations listed per path.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.files = args
			p.stdin = os.Stdin
			p.stdout = os.Stdout
			p.stderr = os.Stderr
			return runValidate(p)
		},
	}

	cmd.Flags().StringVar(&p.schemaPath, "schema", "",
		"validate against this JSON Schema file")
	cmd.Flags().StringVarP(&p.encoding, "encoding", "e", "",
		"input character encoding (default utf-8)")

	return cmd
}

// ---------------------------------------------------------------------------
// stats
// ---------------------------------------------------------------------------

// statsParams holds the parsed flags for the stats command.
type statsParams struct {
	files       []string
	format      string
	top         int
	interactive bool
	encoding    string
	configPath  string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// documentReport pairs an input name with its collected statistics.
type documentReport struct {
	name string
	rpt  *stats.Report
}

// runStats is the extracted, testable body of the stats command.
func runStats(p statsParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := resolveConfig(p.configPath, "", "", false, false, p.top)
	if err != nil {
		return err
	}

	inputs := p.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var reports []documentReport
	failed := 0
	for _, path := range inputs {
		data, err := input.Read(path, p.stdin, p.encoding)
		if err != nil {
			logger.Error("reading input", "file", display(path), "err", err)
			failed++
			continue
		}

		doc, err := document.DecodeBytes(data)
		if err != nil {
			iss := validate.Describe(data, err)
			logger.Error("invalid JSON", "file", display(path), "reason", iss.String())
			failed++
			continue
		}

		name := ""
		if path != "" && path != "-" {
			name = path
		}
		reports = append(reports, documentReport{
			name: name,
			rpt:  stats.Collect(doc, len(data)),
		})
	}

	if p.interactive {
		if err := runInteractiveStats(reports, cfg.TopKeys); err != nil {
			return err
		}
		return failures(failed, len(inputs))
	}

	switch p.format {
	case "json":
		entries := make([]report.Entry, 0, len(reports))
		for _, r := range reports {
			entries = append(entries, report.NewEntry(r.name, r.rpt, cfg.TopKeys))
		}
		if err := report.WriteJSON(p.stdout, entries); err != nil {
			return err
		}
	default:
		styles := report.DefaultStyles()
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(p.stdout)
			}
			if err := report.WriteText(p.stdout, r.name, r.rpt, cfg.TopKeys, styles); err != nil {
				return err
			}
		}
	}

	return failures(failed, len(inputs))
}

func newStatsCmd() *cobra.Command {
	var p statsParams

	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Report structural statistics of JSON documents",
		Long: `Walk each document and report node counts per type, maximum
nesting depth, key frequencies, and array/string length summaries.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.files = args
			p.stdin = os.Stdin
			p.stdout = os.Stdout
			p.stderr = os.Stderr
			return runStats(p)
		},
	}

	cmd.Flags().StringVar(&p.format, "format", "text",
		"output format: text or json")
	cmd.Flags().IntVar(&p.top, "top", 0,
		"number of most frequent keys to list (default 10)")
	cmd.Flags().BoolVarP(&p.interactive, "interactive", "i", false,
		"launch interactive TUI for browsing reports")
	cmd.Flags().StringVarP(&p.encoding, "encoding", "e", "",
		"input character encoding (default utf-8)")
	cmd.Flags().StringVar(&p.configPath, "config", "",
		"config file (default .jsonfmt.yaml if present)")

	return cmd
}

// ---------------------------------------------------------------------------
// schema
// ---------------------------------------------------------------------------

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for jsonfmt statistics output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of jsonfmt stats --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
