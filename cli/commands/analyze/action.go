package analyze

import (
	"context"

	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/internal/exitcode"
	"github.com/devansh-srv/deadcode-report/internal/orchestrator"
	"github.com/devansh-srv/deadcode-report/options"
)

// Run resolves the profile, runs it and records the exit code of the run in the context.
func Run(ctx context.Context, opts *options.AnalyzerOptions, optFns ...orchestrator.Option) error {
	profile, err := config.LoadProfile(opts.Logger, opts)
	if err != nil {
		return err
	}

	opts.Logger.Debugf("Running profile %s with %d tools", profile.Name, len(profile.Tools))

	summary, err := orchestrator.New(opts.Logger, opts, profile, optFns...).Run(ctx)
	if err != nil {
		return err
	}

	if exitCode := exitcode.FromContext(ctx); exitCode != nil {
		exitCode.Set(summary.ExitCode())
	}

	return nil
}
