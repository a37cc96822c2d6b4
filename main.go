package main

import (
	"context"
	"os"

	"github.com/devansh-srv/deadcode-report/cli"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/exitcode"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
)

// The main entrypoint for deadcode-report
func main() {
	var exitCode exitcode.ExitCode

	opts := options.NewAnalyzerOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger, &exitCode))

	app := cli.NewApp(opts)

	ctx := setupContext(opts, &exitCode)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts.Logger, &exitCode)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit with the
// exit code of the run.
func checkForErrorsAndExit(logger log.Logger, exitCode *exitcode.ExitCode) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(exitCode.Get())
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		// exit with the underlying error code
		code, exitCodeErr := util.GetExitCode(err)
		if exitCodeErr != nil || code <= 0 {
			code = exitcode.IssuesFound
		}

		os.Exit(code)
	}
}

func setupContext(opts *options.AnalyzerOptions, exitCode *exitcode.ExitCode) context.Context {
	ctx := context.Background()
	ctx = exitcode.ContextWithExitCode(ctx, exitCode)

	return log.ContextWithLogger(ctx, opts.Logger)
}
