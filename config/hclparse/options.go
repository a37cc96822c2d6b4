package hclparse

import (
	"io"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/hashicorp/hcl/v2"
)

type Option func(*Parser) *Parser

// WithLogger sets the logger used to report parse failures.
func WithLogger(logger log.Logger) Option {
	return func(parser *Parser) *Parser {
		parser.logger = logger
		return parser
	}
}

// WithDiagnosticsWriter writes every error diagnostic, with the offending source snippet, to the given writer.
func WithDiagnosticsWriter(writer io.Writer, disableColor bool) Option {
	return func(parser *Parser) *Parser {
		diagsWriter := parser.GetDiagnosticsWriter(writer, disableColor)

		parser.diagsWriterFunc = func(diags hcl.Diagnostics) error {
			if err := diagsWriter.WriteDiagnostics(diags); err != nil {
				return errors.New(err)
			}

			return nil
		}

		return parser
	}
}
