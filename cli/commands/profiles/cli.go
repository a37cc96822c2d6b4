// Package profiles provides the `profiles` command, which lists the built-in tool profiles.
package profiles

import (
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "profiles"

func NewCommand(opts *options.AnalyzerOptions) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "List the built-in tool profiles and the commands they run.",
		Action: func(_ *cli.Context) error {
			return Run(opts)
		},
	}
}
