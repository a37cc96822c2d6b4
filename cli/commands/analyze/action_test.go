package analyze_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/devansh-srv/deadcode-report/cli/commands/analyze"
	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/internal/exitcode"
	"github.com/devansh-srv/deadcode-report/internal/orchestrator"
	"github.com/devansh-srv/deadcode-report/internal/shell"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSetsExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		stdout   string
		expected int
	}{
		{name: "issues", stdout: "app.py:3: unused function 'helper' (60% confidence)\n", expected: exitcode.IssuesFound},
		{name: "clean", stdout: "", expected: exitcode.Success},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			opts := options.NewAnalyzerOptionsForTest(dir, &bytes.Buffer{})

			var commands []string

			invoker := shell.InvokerFunc(func(_ context.Context, commandLine, _ string) *shell.Result {
				commands = append(commands, commandLine)

				if commandLine == "vulture ." {
					return &shell.Result{Stdout: tc.stdout}
				}

				return &shell.Result{}
			})

			code := new(exitcode.ExitCode)
			ctx := exitcode.ContextWithExitCode(context.Background(), code)

			require.NoError(t, analyze.Run(ctx, opts, orchestrator.WithInvoker(invoker)))
			assert.Equal(t, tc.expected, code.Get())
			assert.Equal(t, []string{"vulture .", "unimport --check .", "pyflakes ."}, commands)
		})
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigFile), []byte(`
profile = "react"

tool "eslint" {
  command = "npx eslint --rule no-unused-vars:error src"
}
`), 0o644))

	var stdout bytes.Buffer

	opts := options.NewAnalyzerOptionsForTest(dir, &stdout)

	invoker := shell.InvokerFunc(func(_ context.Context, commandLine, _ string) *shell.Result {
		return &shell.Result{Stdout: commandLine}
	})

	require.NoError(t, analyze.Run(context.Background(), opts, orchestrator.WithInvoker(invoker)))

	assert.FileExists(t, filepath.Join(dir, "reports", "eslint-analysis.txt"))
	assert.Contains(t, stdout.String(), "React Frontend Dead Code Analysis")
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := options.NewAnalyzerOptionsForTest(dir, &bytes.Buffer{})
	opts.ProfileName = "fortran"

	err := analyze.Run(context.Background(), opts)
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "reports"))
}
