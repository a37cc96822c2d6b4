package config

import (
	"fmt"
	"strings"
)

// UnknownProfileError is returned when no built-in profile has the requested name.
type UnknownProfileError struct {
	Name  string
	Known []string
}

func (err UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q, available profiles: %s", err.Name, strings.Join(err.Known, ", "))
}

// ConfigFileNotFoundError is returned when an explicitly requested config file does not exist.
type ConfigFileNotFoundError string

func (err ConfigFileNotFoundError) Error() string {
	return "config file not found: " + string(err)
}

type MissingToolNameError struct{}

func (err MissingToolNameError) Error() string {
	return "tool block must have a name label"
}

type MissingToolCommandError string

func (err MissingToolCommandError) Error() string {
	return fmt.Sprintf("tool %q has no command", string(err))
}

type DuplicateToolError string

func (err DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q is defined more than once", string(err))
}

type DuplicateReportFileError struct {
	Tool       string
	ReportFile string
}

func (err DuplicateReportFileError) Error() string {
	return fmt.Sprintf("tool %q writes to report file %q, which is already used by another tool", err.Tool, err.ReportFile)
}

// ReservedReportFileError is returned when a tool report would overwrite a file written by the run itself.
type ReservedReportFileError struct {
	Tool       string
	ReportFile string
}

func (err ReservedReportFileError) Error() string {
	return fmt.Sprintf("tool %q cannot write its report to %q: the name is reserved for a run report", err.Tool, err.ReportFile)
}

// InvalidReportFileError is returned when a report file is not a plain file name.
type InvalidReportFileError struct {
	Tool       string
	ReportFile string
}

func (err InvalidReportFileError) Error() string {
	return fmt.Sprintf("tool %q has report file %q, which must be a file name without directories", err.Tool, err.ReportFile)
}

type NoToolsError string

func (err NoToolsError) Error() string {
	return fmt.Sprintf("profile %q has no tools", string(err))
}
