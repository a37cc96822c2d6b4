// Package hclparse wraps the HCL2 parser so that diagnostics of a configuration file are handled in one place.
package hclparse

import (
	"io"
	"os"
	"path/filepath"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/term"
)

const defaultTermWidth = 80

type Parser struct {
	*hclparse.Parser
	diagsWriterFunc func(hcl.Diagnostics) error
	logger          log.Logger
}

func NewParser(opts ...Option) *Parser {
	return (&Parser{
		Parser: hclparse.NewParser(),
		logger: log.Default(),
	}).withOptions(opts...)
}

func (parser *Parser) withOptions(opts ...Option) *Parser {
	for _, opt := range opts {
		parser = opt(parser)
	}

	return parser
}

func (parser *Parser) ParseFromFile(configPath string) (*File, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		parser.logger.Warnf("Error reading file %s: %v", configPath, err)

		return nil, errors.New(err)
	}

	return parser.ParseFromBytes(content, configPath)
}

// ParseFromString parses the given string into an HCL file body.
func (parser *Parser) ParseFromString(content, configPath string) (*File, error) {
	return parser.ParseFromBytes([]byte(content), configPath)
}

// ParseFromBytes parses the content as HCL, or as JSON when configPath has a .json extension.
func (parser *Parser) ParseFromBytes(content []byte, configPath string) (file *File, err error) {
	// cty conversions panic on some malformed input.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(PanicWhileParsingConfigError{RecoveredValue: recovered, ConfigFile: configPath})
		}
	}()

	var (
		diags   hcl.Diagnostics
		hclFile *hcl.File
	)

	switch filepath.Ext(configPath) {
	case ".json":
		hclFile, diags = parser.ParseJSON(content, configPath)
	default:
		hclFile, diags = parser.ParseHCL(content, configPath)
	}

	if err := parser.handleDiagnostics(diags); err != nil {
		parser.logger.Warnf("Failed to parse HCL in file %s: %v", configPath, diags)

		return nil, err
	}

	return &File{
		Parser:     parser,
		File:       hclFile,
		ConfigPath: configPath,
	}, nil
}

// GetDiagnosticsWriter returns a diagnostics emitter for the current terminal.
func (parser *Parser) GetDiagnosticsWriter(writer io.Writer, disableColor bool) hcl.DiagnosticWriter {
	termColor := !disableColor && term.IsTerminal(int(os.Stderr.Fd()))

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = defaultTermWidth
	}

	return hcl.NewDiagnosticTextWriter(writer, parser.Files(), uint(termWidth), termColor)
}

func (parser *Parser) handleDiagnostics(diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}

	if fn := parser.diagsWriterFunc; fn != nil {
		if err := fn(diags); err != nil {
			return err
		}
	}

	return errors.New(diags)
}
