// Package analyze provides the `analyze` command, which runs the tools of a profile and writes the reports.
// It is also the default action of the app.
package analyze

import (
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "analyze"

func NewCommand(opts *options.AnalyzerOptions) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Run the analysis tools and write the reports. This is the default command.",
		Description: `Runs every tool of the selected profile in the analyzed directory, one after the other,
writes one text report per tool and a summary.json file to the reports directory, and exits
with code 1 if any tool reported an issue.`,
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, opts)
		},
	}
}
