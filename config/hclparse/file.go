package hclparse

import (
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// File is a parsed configuration file.
type File struct {
	*hcl.File
	*Parser
	ConfigPath string
}

// Decode decodes the file body into out, a pointer to a struct with `hcl` tags, evaluating expressions in evalCtx.
func (file *File) Decode(out any, evalCtx *hcl.EvalContext) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(PanicWhileParsingConfigError{RecoveredValue: recovered, ConfigFile: file.ConfigPath})
		}
	}()

	diags := gohcl.DecodeBody(file.Body, evalCtx, out)

	return file.handleDiagnostics(diags)
}
