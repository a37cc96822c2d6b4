// Package schema provides the `schema` command, which prints the JSON schema of summary.json.
package schema

import (
	"github.com/devansh-srv/deadcode-report/internal/report"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "schema"

func NewCommand(opts *options.AnalyzerOptions) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Print the JSON schema of the " + report.SummaryFilename + " file.",
		Action: func(_ *cli.Context) error {
			return report.WriteSchema(opts.Writer)
		},
	}
}
