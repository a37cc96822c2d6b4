package config

import (
	"path/filepath"

	"github.com/devansh-srv/deadcode-report/internal/report"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const reportFileSuffix = "-analysis.txt"

// Tool is one external analysis tool of a profile.
type Tool struct {
	// Name identifies the tool in summary.json.
	Name string
	// DisplayName titles the per-tool text report. Defaults to the title-cased Name.
	DisplayName string
	// Description is the purpose of the tool, recorded in summary.json.
	Description string
	// Title is printed when the tool starts. Defaults to Description.
	Title string
	// Command is the command line run in the analyzed directory.
	Command string
	// ReportFile is the name of the text report inside the reports directory. Defaults to `<name>-analysis.txt`.
	ReportFile string
	// IssueNoun names what each output line of the tool is counted as.
	IssueNoun string
}

// Clone returns a copy of the tool.
func (tool *Tool) Clone() *Tool {
	clone := *tool
	return &clone
}

// ApplyDefaults fills every optional field left empty.
func (tool *Tool) ApplyDefaults() {
	if tool.DisplayName == "" {
		tool.DisplayName = cases.Title(language.English).String(tool.Name)
	}

	if tool.Description == "" {
		tool.Description = tool.DisplayName + " analysis"
	}

	if tool.Title == "" {
		tool.Title = tool.Description
	}

	if tool.ReportFile == "" {
		tool.ReportFile = tool.Name + reportFileSuffix
	}

	if tool.IssueNoun == "" {
		tool.IssueNoun = report.DefaultIssueNoun
	}
}

// validate returns every problem of the tool on its own.
func (tool *Tool) validate() []error {
	var errs []error

	if tool.Name == "" {
		errs = append(errs, MissingToolNameError{})
	}

	if tool.Command == "" {
		errs = append(errs, MissingToolCommandError(tool.Name))
	}

	switch {
	case tool.ReportFile == report.SummaryFilename:
		errs = append(errs, ReservedReportFileError{Tool: tool.Name, ReportFile: tool.ReportFile})
	case tool.ReportFile != filepath.Base(tool.ReportFile) || tool.ReportFile == "." || tool.ReportFile == "..":
		errs = append(errs, InvalidReportFileError{Tool: tool.Name, ReportFile: tool.ReportFile})
	}

	return errs
}
