// Package orchestrator runs the tools of a profile one after the other against the analyzed directory
// and turns their output into the per-tool reports and the run summary.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/internal/contracts"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/inventory"
	"github.com/devansh-srv/deadcode-report/internal/report"
	"github.com/devansh-srv/deadcode-report/internal/shell"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/google/uuid"
)

// Orchestrator drives one analysis run.
type Orchestrator struct {
	logger  log.Logger
	opts    *options.AnalyzerOptions
	profile *config.Profile
	invoker shell.Invoker
	console *report.Console
	now     func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithInvoker replaces the process based tool invoker.
func WithInvoker(invoker shell.Invoker) Option {
	return func(orchestrator *Orchestrator) {
		orchestrator.invoker = invoker
	}
}

// WithClock replaces the clock used to timestamp the summary.
func WithClock(now func() time.Time) Option {
	return func(orchestrator *Orchestrator) {
		orchestrator.now = now
	}
}

// New returns an Orchestrator running the tools of profile against opts.WorkingDir.
func New(l log.Logger, opts *options.AnalyzerOptions, profile *config.Profile, optFns ...Option) *Orchestrator {
	orchestrator := &Orchestrator{
		logger:  l,
		opts:    opts,
		profile: profile,
		invoker: shell.NewExecInvoker(l),
		console: report.NewConsole(opts.Writer, opts.ShouldColor()),
		now:     time.Now,
	}

	for _, fn := range optFns {
		fn(orchestrator)
	}

	return orchestrator
}

// Run runs every tool of the profile in order, writes a text report per tool, lists the source files
// of the analyzed directory and writes summary.json.
//
// A tool that cannot be run never stops the run, it is recorded with empty output and exit code 1.
// Any filesystem failure is returned as an error.
func (orchestrator *Orchestrator) Run(ctx context.Context) (*report.Summary, error) {
	var (
		opts    = orchestrator.opts
		profile = orchestrator.profile
		l       = orchestrator.logger.WithFields(log.Fields{
			log.FieldKeyRun:     uuid.NewString(),
			log.FieldKeyProfile: profile.Name,
		})
	)

	scanner, err := inventory.NewScanner(l, profile.SourceExtension, profile.ExcludedDirs)
	if err != nil {
		return nil, err
	}

	summary := report.NewSummary(profile.Project, opts.WorkingDir, orchestrator.now())

	l.Debugf("Analyzing %s, writing reports to %s", opts.WorkingDir, opts.ReportsDir)

	orchestrator.console.Header(profile.Title())

	if err := util.EnsureDirectory(opts.ReportsDir); err != nil {
		return nil, err
	}

	lockfile := util.NewLockfile(opts.ReportsDir)
	if err := lockfile.TryLock(opts.ReportsDir); err != nil {
		return nil, err
	}

	defer func() {
		if err := lockfile.Unlock(); err != nil {
			l.Warnf("Failed to release lock file %s: %v", lockfile.Path(), err)
		}
	}()

	for _, tool := range profile.Tools {
		run, err := orchestrator.runTool(ctx, l.WithField(log.FieldKeyTool, tool.Name), tool)
		if err != nil {
			return nil, err
		}

		summary.AddToolRun(run)
	}

	orchestrator.console.Section(fmt.Sprintf("Analyzing %s files in directory", profile.SourceLabel()))

	inv, err := scanner.Scan(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	summary.SetFileInventory(inv)
	orchestrator.console.FilesFound(inv, profile.Language)

	if profile.ContractsDir != "" {
		if err := orchestrator.analyzeContracts(l, summary.Timestamp); err != nil {
			return nil, err
		}
	}

	summaryPath := filepath.Join(opts.ReportsDir, report.SummaryFilename)
	if err := report.WriteSummaryFile(summaryPath, summary); err != nil {
		return nil, err
	}

	listing, err := util.ReadDirNames(opts.ReportsDir)
	if err != nil {
		return nil, err
	}

	totalIssues := summary.TotalIssues()

	orchestrator.console.Banner(opts.ReportsDir, summaryPath, totalIssues, listing)
	orchestrator.console.Verdict(totalIssues)

	l.Debugf("Run finished: %d tools, %d issues, %d files", len(summary.Tools), totalIssues, inv.Total())

	return summary, nil
}

// analyzeContracts writes the declaration inventory of the contracts directory. It is informational only
// and never adds to the issue total.
func (orchestrator *Orchestrator) analyzeContracts(l log.Logger, started time.Time) error {
	var (
		opts    = orchestrator.opts
		profile = orchestrator.profile
		dir     = profile.ContractsDir
	)

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(opts.WorkingDir, dir)
	}

	orchestrator.console.Section("Analyzing contract declarations")

	found, err := contracts.ScanDir(l, dir)
	if err != nil {
		return err
	}

	analysis := &contracts.Analysis{
		Timestamp:         started,
		Project:           profile.Project,
		AnalyzedDirectory: opts.WorkingDir,
		Contracts:         found,
	}

	analysisPath := filepath.Join(opts.ReportsDir, report.ContractsFilename)
	if err := contracts.WriteAnalysisFile(analysisPath, analysis); err != nil {
		return err
	}

	orchestrator.console.ContractsFound(analysisPath, len(found),
		analysis.TotalFunctions(), analysis.TotalVariables(), analysis.TotalEvents())

	return nil
}

func (orchestrator *Orchestrator) runTool(ctx context.Context, l log.Logger, tool *config.Tool) (*report.ToolRun, error) {
	orchestrator.console.Section(tool.Title)

	result := orchestrator.invoke(ctx, l, tool)

	if result.ExitCode != 0 && result.Stdout == "" {
		l.Warnf("%s exited with status %d and no output: %s", tool.Name, result.ExitCode, result.Stderr)
	} else if result.Stderr != "" {
		l.Debugf("%s stderr: %s", tool.Name, result.Stderr)
	}

	run := report.NewToolRun(tool.Name, tool.Description, result.Stdout, result.Stderr, result.ExitCode).
		WithPresentation(tool.DisplayName, tool.IssueNoun)

	orchestrator.console.ToolOutput(run.Stdout)

	if err := report.WriteToolReportFile(filepath.Join(orchestrator.opts.ReportsDir, tool.ReportFile), run); err != nil {
		return nil, err
	}

	orchestrator.console.ToolDone(run)

	return run, nil
}

// invoke runs the tool command. A panicking invoker is converted the same way as a tool that failed to start.
func (orchestrator *Orchestrator) invoke(ctx context.Context, l log.Logger, tool *config.Tool) (result *shell.Result) {
	defer errors.Recover(func(cause error) {
		l.Debugf("Recovered from panic while running %s: %s", tool.Name, errors.ErrorStack(cause))

		result = shell.FailedResult(cause)
	})

	result = orchestrator.invoker.Invoke(ctx, tool.Command, orchestrator.opts.WorkingDir)
	if result == nil {
		result = shell.FailedResult(errors.Errorf("no result from %s", tool.Name))
	}

	return result
}
