// Package cli configures the deadcode-report command line application.
package cli

import (
	"io"
	"os"

	"github.com/devansh-srv/deadcode-report/cli/commands/analyze"
	"github.com/devansh-srv/deadcode-report/cli/commands/profiles"
	"github.com/devansh-srv/deadcode-report/cli/commands/schema"
	"github.com/devansh-srv/deadcode-report/cli/flags"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/urfave/cli/v2"
)

const AppName = "deadcode-report"

// Version is set at build time with `-ldflags "-X github.com/devansh-srv/deadcode-report/cli.Version=..."`.
var Version = "dev"

// App is the CLI app together with the resources opened while it runs.
type App struct {
	*cli.App
	opts    *options.AnalyzerOptions
	logFile io.Closer
}

// NewApp creates the deadcode-report CLI app. Running it without a command runs `analyze`.
func NewApp(opts *options.AnalyzerOptions) *App {
	app := &App{opts: opts}

	app.App = &cli.App{
		Name:      AppName,
		Usage:     "Runs dead code analysis tools against a source tree and writes per-tool reports and a summary.",
		UsageText: AppName + " [global options] [command]",
		Version:   Version,
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags:     flags.NewGlobalFlags(opts),
		Commands: []*cli.Command{
			analyze.NewCommand(opts),
			profiles.NewCommand(opts),
			schema.NewCommand(opts),
		},
		Before: app.initialSetup,
		After:  app.cleanup,
		Action: func(cliCtx *cli.Context) error {
			if cliCtx.Args().Present() {
				return errors.New(UnknownCommandError(cliCtx.Args().First()))
			}

			return analyze.Run(cliCtx.Context, opts)
		},
		// Exit codes are handled by the caller, never by the app itself.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return app
}

// initialSetup configures the logger from the parsed flags and resolves the paths of the run.
func (app *App) initialSetup(cliCtx *cli.Context) error {
	opts := app.opts

	if err := flags.ParseLogLevel(cliCtx, opts); err != nil {
		return err
	}

	output := opts.ErrWriter

	if opts.LogFile != "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.New(err)
		}

		logFile, err := util.CanonicalPath(opts.LogFile, cwd)
		if err != nil {
			return err
		}

		writer := log.NewRotatingFileWriter(logFile)
		app.logFile = writer
		output = io.MultiWriter(opts.ErrWriter, writer)
	}

	formatter := log.NewFormatter()
	formatter.DisableColors = !opts.ShouldColorLogs()

	opts.Logger.SetOptions(
		log.WithLevel(opts.LogLevel),
		log.WithOutput(output),
		log.WithFormatter(formatter),
	)

	return opts.ResolvePaths()
}

func (app *App) cleanup(_ *cli.Context) error {
	if app.logFile == nil {
		return nil
	}

	if err := app.logFile.Close(); err != nil {
		return errors.New(err)
	}

	return nil
}

// UnknownCommandError is returned when the first argument is not a known command.
type UnknownCommandError string

func (err UnknownCommandError) Error() string {
	return "unknown command: " + string(err)
}
