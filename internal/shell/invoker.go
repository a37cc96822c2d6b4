package shell

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

// FailureExitCode is the exit status recorded for a tool that could not be run at all.
const FailureExitCode = 1

const globMetaChars = "*?["

// shellMetaChars mark command lines that only a shell can run as written.
const shellMetaChars = "|&;<>()`\\"

// Result is the captured outcome of one tool invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// FailedResult converts an invocation failure into a Result: no output, the error message as stderr
// and FailureExitCode.
func FailedResult(err error) *Result {
	return &Result{
		Stderr:   err.Error(),
		ExitCode: FailureExitCode,
	}
}

// Invoker runs a command line in a working directory. Implementations never return an error:
// every failure is folded into the Result.
type Invoker interface {
	Invoke(ctx context.Context, commandLine, workingDir string) *Result
}

// InvokerFunc is an adapter to allow the use of ordinary functions as Invoker.
type InvokerFunc func(ctx context.Context, commandLine, workingDir string) *Result

// Invoke implements Invoker.
func (fn InvokerFunc) Invoke(ctx context.Context, commandLine, workingDir string) *Result {
	return fn(ctx, commandLine, workingDir)
}

// ExecInvoker runs command lines as child processes. Only command lines using shell syntax go through a shell.
type ExecInvoker struct {
	logger log.Logger
}

// NewExecInvoker returns an ExecInvoker logging to the given logger.
func NewExecInvoker(l log.Logger) *ExecInvoker {
	return &ExecInvoker{logger: l}
}

// Invoke implements Invoker. A non-zero exit status keeps the captured streams and the real
// exit code; any other failure yields FailedResult.
func (invoker *ExecInvoker) Invoke(ctx context.Context, commandLine, workingDir string) *Result {
	command, args, err := ParseCommandLine(commandLine, workingDir)
	if err != nil {
		return FailedResult(err)
	}

	output, err := RunCommandWithOutput(ctx, invoker.logger, workingDir, command, args...)
	if err == nil {
		return &Result{
			Stdout: output.Stdout.String(),
			Stderr: output.Stderr.String(),
		}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		invoker.logger.Debugf("Command %q could not be run: %v", commandLine, err)
		return FailedResult(err)
	}

	exitCode := exitErr.ExitCode()
	if exitCode < 0 {
		// Terminated by a signal.
		exitCode = FailureExitCode
	}

	invoker.logger.Debugf("Command %q exited with status %d", commandLine, exitCode)

	return &Result{
		Stdout:   output.Stdout.String(),
		Stderr:   output.Stderr.String(),
		ExitCode: exitCode,
	}
}

// ParseCommandLine splits a command line into the command and its arguments. Environment variables
// are expanded, and arguments containing glob patterns are expanded relative to workingDir.
// A pattern without matches is passed through literally, the same way a POSIX shell does.
//
// A command line using shell syntax (pipes, command lists, redirections, escapes) is handed over
// to the platform shell as a whole.
func ParseCommandLine(commandLine, workingDir string) (string, []string, error) {
	if strings.TrimSpace(commandLine) == "" {
		return "", nil, errors.New(InvalidCommandLineError{CommandLine: commandLine})
	}

	if NeedsShell(commandLine) {
		command, args := shellCommand(commandLine)
		return command, args, nil
	}

	parser := shellwords.NewParser()
	parser.ParseEnv = true

	parts, err := parser.Parse(commandLine)
	if err != nil {
		return "", nil, errors.New(InvalidCommandLineError{CommandLine: commandLine, Err: err})
	}

	if len(parts) == 0 {
		return "", nil, errors.New(InvalidCommandLineError{CommandLine: commandLine})
	}

	// The parser stops at the first operator it does not understand.
	if parser.Position > 0 {
		return "", nil, errors.New(InvalidCommandLineError{
			CommandLine: commandLine,
			Err:         errors.Errorf("unsupported syntax at position %d", parser.Position),
		})
	}

	args := make([]string, 0, len(parts)-1)
	for _, arg := range parts[1:] {
		args = append(args, expandGlob(arg, workingDir)...)
	}

	return parts[0], args, nil
}

// NeedsShell returns true if the command line uses syntax that only a shell can interpret.
func NeedsShell(commandLine string) bool {
	return strings.ContainsAny(commandLine, shellMetaChars) || strings.Contains(commandLine, "$(")
}

func shellCommand(commandLine string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", commandLine}
	}

	return "sh", []string{"-c", commandLine}
}

func expandGlob(arg, workingDir string) []string {
	if !strings.ContainsAny(arg, globMetaChars) {
		return []string{arg}
	}

	pattern := arg
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(workingDir, pattern)
	}

	matches, err := zglob.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return []string{arg}
	}

	sort.Strings(matches)

	if filepath.IsAbs(arg) {
		return matches
	}

	expanded := make([]string, 0, len(matches))

	for _, match := range matches {
		rel, err := filepath.Rel(workingDir, match)
		if err != nil {
			rel = match
		}

		expanded = append(expanded, filepath.ToSlash(rel))
	}

	return expanded
}

// InvalidCommandLineError is returned when a tool command line is empty or cannot be split into words.
type InvalidCommandLineError struct {
	Err         error
	CommandLine string
}

func (err InvalidCommandLineError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("invalid command line %q: no command", err.CommandLine)
	}

	return fmt.Sprintf("invalid command line %q: %v", err.CommandLine, err.Err)
}

func (err InvalidCommandLineError) Unwrap() error {
	return err.Err
}
