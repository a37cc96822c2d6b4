// Package shell runs the external analysis tools and captures their output.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/pkg/log"
)

// RunCommandWithOutput runs the command with the given arguments in workingDir and captures
// its stdout and stderr. The returned output is never nil, it holds whatever was written before a failure.
//
// Any failure, including a non-zero exit status, is returned as a util.ProcessExecutionError.
func RunCommandWithOutput(
	ctx context.Context,
	l log.Logger,
	workingDir string,
	command string,
	args ...string,
) (*util.CmdOutput, error) {
	output := new(util.CmdOutput)

	l.Debugf("Running command: %s %s", command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = workingDir
	cmd.Stdin = nil
	cmd.Stdout = &output.Stdout
	cmd.Stderr = &output.Stderr

	if err := cmd.Start(); err != nil {
		return output, errors.New(util.ProcessExecutionError{
			Err:        err,
			Command:    command,
			Args:       args,
			WorkingDir: workingDir,
		})
	}

	if err := cmd.Wait(); err != nil {
		return output, errors.New(util.ProcessExecutionError{
			Err:        err,
			Command:    command,
			Args:       args,
			WorkingDir: workingDir,
		})
	}

	return output, nil
}
