package config

import (
	"slices"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/report"
)

// DefaultProfileName is the profile used when neither a flag nor a config file selects one.
const DefaultProfileName = "python"

// Profile is a named, ordered list of tools together with the description of the source tree they analyze.
type Profile struct {
	Name    string
	Project string
	// Language names the source files in the console output, e.g. "Python".
	Language        string
	SourceExtension string
	ExcludedDirs    []string
	// ContractsDir, when set, is scanned for contract declarations after the tools ran.
	// Relative paths are relative to the analyzed directory.
	ContractsDir string
	Tools        []*Tool
}

// Clone returns a deep copy of the profile.
func (profile *Profile) Clone() *Profile {
	clone := *profile
	clone.ExcludedDirs = slices.Clone(profile.ExcludedDirs)
	clone.Tools = make([]*Tool, 0, len(profile.Tools))

	for _, tool := range profile.Tools {
		clone.Tools = append(clone.Tools, tool.Clone())
	}

	return &clone
}

// Title is the heading printed at the start of a run.
func (profile *Profile) Title() string {
	return profile.Project + " Dead Code Analysis"
}

// ApplyDefaults fills the optional fields of every tool.
func (profile *Profile) ApplyDefaults() {
	for _, tool := range profile.Tools {
		tool.ApplyDefaults()
	}
}

// Validate checks the profile and returns all problems found as one error.
func (profile *Profile) Validate() error {
	errs := &errors.MultiError{}

	if len(profile.Tools) == 0 {
		errs = errs.Append(NoToolsError(profile.Name))
	}

	names := make(map[string]bool, len(profile.Tools))
	reportFiles := make(map[string]bool, len(profile.Tools))

	for _, tool := range profile.Tools {
		for _, err := range tool.validate() {
			errs = errs.Append(err)
		}

		if profile.ContractsDir != "" && tool.ReportFile == report.ContractsFilename {
			errs = errs.Append(ReservedReportFileError{Tool: tool.Name, ReportFile: tool.ReportFile})
		}

		if tool.Name != "" {
			if names[tool.Name] {
				errs = errs.Append(DuplicateToolError(tool.Name))
			}

			names[tool.Name] = true
		}

		if tool.ReportFile != "" {
			if reportFiles[tool.ReportFile] {
				errs = errs.Append(DuplicateReportFileError{Tool: tool.Name, ReportFile: tool.ReportFile})
			}

			reportFiles[tool.ReportFile] = true
		}
	}

	return errs.ErrorOrNil()
}

// SourceLabel names the source files of the profile, falling back to the extension.
func (profile *Profile) SourceLabel() string {
	if profile.Language != "" {
		return profile.Language
	}

	return profile.SourceExtension
}
