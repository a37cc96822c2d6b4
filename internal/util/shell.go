package util

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/devansh-srv/deadcode-report/internal/errors"
)

// CmdOutput holds the captured output streams of a command.
type CmdOutput struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// GetExitCode returns the exit code of a command. If the error does not
// implement ExitStatus or is not an exec.ExitError
// or *errors.MultiError type, the error is returned.
func GetExitCode(err error) (int, error) {
	var exitStatus interface {
		ExitStatus() (int, error)
	}

	if errors.As(err, &exitStatus) {
		return exitStatus.ExitStatus()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	var multiErr *errors.MultiError
	if errors.As(err, &multiErr) {
		for _, err := range multiErr.WrappedErrors() {
			exitCode, exitCodeErr := GetExitCode(err)
			if exitCodeErr == nil {
				return exitCode, nil
			}
		}
	}

	return 0, err
}

// ProcessExecutionError is returned when a command could not be run to completion.
type ProcessExecutionError struct {
	Err        error
	WorkingDir string
	Command    string
	Args       []string
}

func (err ProcessExecutionError) Error() string {
	return fmt.Sprintf("Failed to execute \"%s\" in %s: %v",
		strings.TrimSpace(err.Command+" "+strings.Join(err.Args, " ")),
		err.WorkingDir,
		err.Err,
	)
}

// ExitStatus returns the exit code of the underlying error.
func (err ProcessExecutionError) ExitStatus() (int, error) {
	return GetExitCode(err.Err)
}

func (err ProcessExecutionError) Unwrap() error {
	return err.Err
}
