// Package flags provides the global CLI flags.
package flags

import (
	"fmt"
	"strings"

	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/urfave/cli/v2"
)

// EnvVarPrefix is prepended to every flag environment variable.
const EnvVarPrefix = "DEADCODE_"

const (
	WorkingDirFlagName = "working-dir"
	ReportsDirFlagName = "reports-dir"
	ProfileFlagName    = "profile"
	ConfigFlagName     = "config"
	LogLevelFlagName   = "log-level"
	LogFileFlagName    = "log-file"
	NoColorFlagName    = "no-color"
)

// EnvVars returns the environment variable names for the given flag name,
// e.g. `log-level` becomes `DEADCODE_LOG_LEVEL`.
func EnvVars(name string) []string {
	return []string{EnvVarPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

// NewGlobalFlags creates the flags shared by all commands. Parsed values are written into opts.
func NewGlobalFlags(opts *options.AnalyzerOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        WorkingDirFlagName,
			EnvVars:     EnvVars(WorkingDirFlagName),
			Destination: &opts.WorkingDir,
			Usage:       "The directory to analyze. Default is the directory of the deadcode-report executable.",
		},
		&cli.StringFlag{
			Name:        ReportsDirFlagName,
			EnvVars:     EnvVars(ReportsDirFlagName),
			Destination: &opts.ReportsDir,
			Usage:       "The directory reports are written to. Default is the reports directory inside the analyzed directory.",
		},
		&cli.StringFlag{
			Name:        ProfileFlagName,
			EnvVars:     EnvVars(ProfileFlagName),
			Destination: &opts.ProfileName,
			Usage: fmt.Sprintf("The tool profile to run, one of: %s. Default is %s.",
				strings.Join(config.ProfileNames(), ", "), config.DefaultProfileName),
		},
		&cli.StringFlag{
			Name:        ConfigFlagName,
			EnvVars:     EnvVars(ConfigFlagName),
			Destination: &opts.ConfigFile,
			Usage:       fmt.Sprintf("The path to a config file. Default is %s in the analyzed directory, if present.", config.DefaultConfigFile),
		},
		&cli.StringFlag{
			Name:    LogLevelFlagName,
			EnvVars: EnvVars(LogLevelFlagName),
			Value:   opts.LogLevel.String(),
			Usage:   fmt.Sprintf("Sets the logging level. Supported levels: %s.", log.AllLevels),
		},
		&cli.StringFlag{
			Name:        LogFileFlagName,
			EnvVars:     EnvVars(LogFileFlagName),
			Destination: &opts.LogFile,
			Usage:       "Also write logs to the given file, rotated by size.",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     EnvVars(NoColorFlagName),
			Destination: &opts.DisableColor,
			Usage:       "Disable color output.",
		},
	}
}

// ParseLogLevel sets opts.LogLevel from the log level flag, if it was set.
func ParseLogLevel(cliCtx *cli.Context, opts *options.AnalyzerOptions) error {
	if !cliCtx.IsSet(LogLevelFlagName) {
		return nil
	}

	level, err := log.ParseLevel(cliCtx.String(LogLevelFlagName))
	if err != nil {
		return err
	}

	opts.LogLevel = level

	return nil
}
