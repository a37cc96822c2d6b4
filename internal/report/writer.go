package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
)

const (
	// SummaryFilename is the name of the structured summary file in the reports directory.
	SummaryFilename = "summary.json"

	// ContractsFilename is the name of the contract declaration inventory written by profiles that scan contracts.
	ContractsFilename = "contracts-analysis.json"

	// TimestampFormat is ISO 8601 with microsecond precision.
	TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

	jsonIndent = "  "
)

type jsonSummary struct {
	Timestamp         string            `json:"timestamp" jsonschema:"required,format=date-time"`
	Project           string            `json:"project" jsonschema:"required"`
	AnalyzedDirectory string            `json:"analyzedDirectory" jsonschema:"required"`
	Tools             []*ToolRun        `json:"tools" jsonschema:"required"`
	FileAnalysis      jsonFileInventory `json:"file_analysis" jsonschema:"required"`
}

type jsonFileInventory struct {
	TotalFiles int      `json:"total_python_files" jsonschema:"required,minimum=0"`
	Files      []string `json:"files" jsonschema:"required"`
}

// MarshalJSON implements json.Marshaler. The field names are the ones consumers of summary.json rely on.
func (summary *Summary) MarshalJSON() ([]byte, error) {
	out := jsonSummary{
		Timestamp:         summary.Timestamp.Format(TimestampFormat),
		Project:           summary.Project,
		AnalyzedDirectory: summary.AnalyzedDirectory,
		Tools:             summary.Tools,
		FileAnalysis: jsonFileInventory{
			TotalFiles: summary.FileAnalysis.Total(),
			Files:      []string{},
		},
	}

	if out.Tools == nil {
		out.Tools = []*ToolRun{}
	}

	if summary.FileAnalysis != nil && summary.FileAnalysis.Files != nil {
		out.FileAnalysis.Files = summary.FileAnalysis.Files
	}

	return json.Marshal(out)
}

// WriteJSON writes the summary as indented JSON.
func (summary *Summary) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndent)

	if err := encoder.Encode(summary); err != nil {
		return errors.New(err)
	}

	return nil
}

// WriteSummaryFile writes the summary to the given path, overwriting any previous file.
// The encoded summary is validated against the summary schema before anything is written.
func WriteSummaryFile(path string, summary *Summary) error {
	var buf bytes.Buffer

	if err := summary.WriteJSON(&buf); err != nil {
		return err
	}

	if err := ValidateSummary(buf.Bytes()); err != nil {
		return err
	}

	return util.WriteFile(path, buf.Bytes())
}

// WriteText writes the per-tool text report:
//
//	<Display Name> Analysis Results
//	===============================
//
//	Found <N> <issue noun>:
//
//	<raw output>
func (run *ToolRun) WriteText(w io.Writer) error {
	title := run.DisplayName + " Analysis Results"

	_, err := fmt.Fprintf(w, "%s\n%s\n\nFound %d %s:\n\n%s",
		title,
		strings.Repeat("=", utf8.RuneCountInString(title)),
		run.IssueCount,
		run.IssueNoun,
		run.Stdout,
	)
	if err != nil {
		return errors.New(err)
	}

	return nil
}

// WriteToolReportFile writes the per-tool text report to the given path, overwriting any previous file.
func WriteToolReportFile(path string, run *ToolRun) error {
	var buf bytes.Buffer

	if err := run.WriteText(&buf); err != nil {
		return err
	}

	return util.WriteFile(path, buf.Bytes())
}
