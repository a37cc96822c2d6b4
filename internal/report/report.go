// Package report provides the data collected during an analysis run and writes the per-tool text reports,
// the structured summary file and the console output derived from it.
package report

import (
	"strings"
	"time"
)

// DefaultIssueNoun is used in report lines when a tool does not name its findings.
const DefaultIssueNoun = "potential issues"

// ToolRun captures the result of invoking one external analysis tool. It is never mutated after creation.
type ToolRun struct {
	Name        string `json:"name" jsonschema:"required,minLength=1"`
	Description string `json:"description" jsonschema:"required"`
	IssueCount  int    `json:"issues_found" jsonschema:"required,minimum=0"`
	ExitCode    int    `json:"exit_code" jsonschema:"required"`

	// Raw streams and presentation details are kept out of the summary file;
	// they only end up in the per-tool text report.
	DisplayName string `json:"-"`
	IssueNoun   string `json:"-"`
	Stdout      string `json:"-"`
	Stderr      string `json:"-"`
}

// NewToolRun creates a ToolRun from the captured output of a tool and counts its issues.
func NewToolRun(name, description, stdout, stderr string, exitCode int) *ToolRun {
	return &ToolRun{
		Name:        name,
		Description: description,
		DisplayName: name,
		IssueNoun:   DefaultIssueNoun,
		Stdout:      stdout,
		Stderr:      stderr,
		ExitCode:    exitCode,
		IssueCount:  CountIssues(stdout),
	}
}

// WithPresentation returns a copy of the run with the given display name and issue noun.
// Empty values leave the current ones in place.
func (run ToolRun) WithPresentation(displayName, issueNoun string) *ToolRun {
	if displayName != "" {
		run.DisplayName = displayName
	}

	if issueNoun != "" {
		run.IssueNoun = issueNoun
	}

	return &run
}

// CountIssues returns the number of non-empty lines in the given tool output.
// Every such line is treated as one finding; the output is never parsed.
func CountIssues(output string) int {
	var count int

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return count
}

// FileInventory is the list of source files found under the analyzed directory.
type FileInventory struct {
	RootPath     string
	Extension    string
	ExcludedDirs []string
	Files        []string
}

// Total returns the number of files in the inventory.
func (inventory *FileInventory) Total() int {
	if inventory == nil {
		return 0
	}

	return len(inventory.Files)
}

// Summary aggregates all tool runs and the file inventory of one analysis run.
type Summary struct {
	Timestamp         time.Time
	FileAnalysis      *FileInventory
	Project           string
	AnalyzedDirectory string
	Tools             []*ToolRun
}

// NewSummary creates an empty summary for a run started at the given time.
func NewSummary(project, analyzedDirectory string, started time.Time) *Summary {
	return &Summary{
		Timestamp:         started,
		Project:           project,
		AnalyzedDirectory: analyzedDirectory,
		Tools:             make([]*ToolRun, 0),
	}
}

// AddToolRun appends a tool run. Runs keep their insertion order.
func (summary *Summary) AddToolRun(run *ToolRun) {
	summary.Tools = append(summary.Tools, run)
}

// SetFileInventory records the file inventory of the run.
func (summary *Summary) SetFileInventory(inventory *FileInventory) {
	summary.FileAnalysis = inventory
}

// TotalIssues returns the sum of the issue counts of all tool runs.
// It is recomputed on every call so it can never drift from the runs.
func (summary *Summary) TotalIssues() int {
	var total int

	for _, run := range summary.Tools {
		total += run.IssueCount
	}

	return total
}

// ExitCode returns the process exit code for the run: 1 if any issue was found, 0 otherwise.
func (summary *Summary) ExitCode() int {
	if summary.TotalIssues() > 0 {
		return 1
	}

	return 0
}
