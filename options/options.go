// Package options provides the set of options that configure one analysis run.
package options

import (
	"io"
	"os"
	"path/filepath"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/mattn/go-isatty"
)

const (
	// DefaultReportsDirName is the reports directory created inside the analyzed directory.
	DefaultReportsDirName = "reports"

	defaultLogLevel = log.InfoLevel
)

// AnalyzerOptions represents options that configure the behavior of a run.
type AnalyzerOptions struct {
	// Writer receives the console output of the run.
	Writer io.Writer
	// ErrWriter receives log messages.
	ErrWriter io.Writer
	Logger    log.Logger
	// WorkingDir is the analyzed directory. Tools run with it as their working directory.
	WorkingDir string
	// ReportsDir is where the per-tool reports and summary.json are written.
	ReportsDir string
	// ProfileName selects a built-in tool profile. Empty means the config file or default decides.
	ProfileName string
	// ConfigFile is an explicitly requested config file. It must exist when set.
	ConfigFile string
	LogFile    string
	LogLevel   log.Level
	// DisableColor disables colored console and log output even on a terminal.
	DisableColor bool
}

// NewAnalyzerOptions creates options writing to the process standard streams.
func NewAnalyzerOptions() *AnalyzerOptions {
	return NewAnalyzerOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewAnalyzerOptionsWithWriters creates options writing console output to stdout and logs to stderr.
func NewAnalyzerOptionsWithWriters(stdout, stderr io.Writer) *AnalyzerOptions {
	return &AnalyzerOptions{
		Writer:    stdout,
		ErrWriter: stderr,
		LogLevel:  defaultLogLevel,
		Logger:    log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
	}
}

// NewAnalyzerOptionsForTest creates options analyzing workingDir with debug logging and colors off.
func NewAnalyzerOptionsForTest(workingDir string, stdout io.Writer) *AnalyzerOptions {
	opts := NewAnalyzerOptionsWithWriters(stdout, io.Discard)
	opts.WorkingDir = workingDir
	opts.ReportsDir = filepath.Join(workingDir, DefaultReportsDirName)
	opts.DisableColor = true
	opts.LogLevel = log.DebugLevel
	opts.Logger.SetOptions(log.WithLevel(log.DebugLevel))

	return opts
}

// ResolvePaths turns the configured paths into clean absolute paths, relative ones being
// relative to the current directory. An empty WorkingDir
// becomes the directory of the running executable; an empty ReportsDir becomes
// the "reports" directory inside WorkingDir.
func (opts *AnalyzerOptions) ResolvePaths() error {
	if opts.WorkingDir == "" {
		dir, err := util.ExecutableDir()
		if err != nil {
			return err
		}

		opts.WorkingDir = dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.New(err)
	}

	if opts.WorkingDir, err = util.CanonicalPath(opts.WorkingDir, cwd); err != nil {
		return err
	}

	if opts.ReportsDir == "" {
		opts.ReportsDir = filepath.Join(opts.WorkingDir, DefaultReportsDirName)
	} else if opts.ReportsDir, err = util.CanonicalPath(opts.ReportsDir, cwd); err != nil {
		return err
	}

	if opts.ConfigFile != "" {
		if opts.ConfigFile, err = util.CanonicalPath(opts.ConfigFile, cwd); err != nil {
			return err
		}
	}

	return nil
}

// ShouldColor reports whether console output should be colored: colors are enabled
// only when the writer is a terminal and they were not disabled.
func (opts *AnalyzerOptions) ShouldColor() bool {
	return !opts.DisableColor && isTerminal(opts.Writer)
}

// ShouldColorLogs reports whether log output should be colored. Logs copied to a log file are never colored.
func (opts *AnalyzerOptions) ShouldColorLogs() bool {
	return !opts.DisableColor && opts.LogFile == "" && isTerminal(opts.ErrWriter)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
