package serialwrite

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReportFormat selects how [WriteReport] renders check results.
type ReportFormat string

const (
	TableReport ReportFormat = "table"
	TSVReport   ReportFormat = "tsv"
	YAMLReport  ReportFormat = "yaml"
	JSONLReport ReportFormat = "jsonl"
)

var reportFormats = []ReportFormat{TableReport, TSVReport, YAMLReport, JSONLReport}

// String returns the format name.
func (f ReportFormat) String() string { return string(f) }

// ReportFormats returns all supported report formats.
func ReportFormats() []ReportFormat {
	out := make([]ReportFormat, len(reportFormats))
	copy(out, reportFormats)
	return out
}

// ParseReportFormat parses a report format name.
func ParseReportFormat(s string) (ReportFormat, error) {
	for _, f := range reportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedReport, s)
}

// ReportOptions tunes table rendering. Other formats ignore it.
type ReportOptions struct {
	Border BorderStyle
	// MaxWidth truncates the got and want columns with "...".
	// Zero means no limit.
	MaxWidth int
}

// reportRow is the serialized shape of a Result.
type reportRow struct {
	Name    string `yaml:"name" json:"name"`
	Kind    Kind   `yaml:"kind" json:"kind"`
	Got     string `yaml:"got" json:"got"`
	Want    string `yaml:"want,omitempty" json:"want,omitempty"`
	Written int    `yaml:"written" json:"written"`
	Passed  bool   `yaml:"passed" json:"passed"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

func newReportRow(r Result) reportRow {
	row := reportRow{
		Name:    r.Name,
		Kind:    r.Kind,
		Got:     r.Got,
		Want:    r.Want,
		Written: r.Written,
		Passed:  r.Passed(),
	}
	if r.Err != nil {
		row.Error = r.Err.Error()
	}
	return row
}

func (r reportRow) status() string {
	switch {
	case r.Error != "":
		return "error"
	case r.Passed:
		return "ok"
	default:
		return "FAIL"
	}
}

func (r reportRow) cells() []string {
	return []string{r.Name, string(r.Kind), quoteControl(r.Got), quoteControl(r.Want), strconv.Itoa(r.Written), r.status()}
}

var reportHeader = []string{"Check", "Kind", "Got", "Want", "Bytes", "Status"}

// quoteControl makes line terminators visible in tabular output.
func quoteControl(s string) string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)
}

// WriteReport renders results to w in format f.
func WriteReport(w io.Writer, f ReportFormat, results []Result, opts ReportOptions) error {
	rows := make([]reportRow, len(results))
	for i, r := range results {
		rows[i] = newReportRow(r)
	}
	switch f {
	case TableReport:
		return writeTableReport(w, rows, opts)
	case TSVReport:
		return writeTSVReport(w, rows)
	case YAMLReport:
		return writeYAMLReport(w, rows)
	case JSONLReport:
		return writeJSONLReport(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedReport, f)
	}
}

func writeTSVReport(w io.Writer, rows []reportRow) error {
	if _, err := fmt.Fprintln(w, strings.Join(reportHeader, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row.cells(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeYAMLReport(w io.Writer, rows []reportRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSONLReport(w io.Writer, rows []reportRow) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// Summary counts passed results.
func Summary(results []Result) (passed, total int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}
	return passed, len(results)
}
