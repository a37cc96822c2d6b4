package options_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/devansh-srv/deadcode-report/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts := options.NewAnalyzerOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	opts.WorkingDir = filepath.Join(dir, "backend", "..", "backend")

	require.NoError(t, opts.ResolvePaths())
	assert.Equal(t, filepath.Join(dir, "backend"), opts.WorkingDir)
	assert.Equal(t, filepath.Join(dir, "backend", options.DefaultReportsDirName), opts.ReportsDir)
	assert.Empty(t, opts.ConfigFile)
}

func TestResolvePathsExecutableDir(t *testing.T) {
	t.Parallel()

	opts := options.NewAnalyzerOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, opts.ResolvePaths())

	executable, err := os.Executable()
	require.NoError(t, err)

	executable, err = filepath.EvalSymlinks(executable)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(executable), opts.WorkingDir)
}

func TestResolvePathsKeepsExplicitReportsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts := options.NewAnalyzerOptionsForTest(dir, &bytes.Buffer{})
	opts.ReportsDir = filepath.Join(dir, "out")
	opts.ConfigFile = filepath.Join(dir, "deadcode.hcl")

	require.NoError(t, opts.ResolvePaths())
	assert.Equal(t, filepath.Join(dir, "out"), opts.ReportsDir)
	assert.Equal(t, filepath.Join(dir, "deadcode.hcl"), opts.ConfigFile)
}

func TestShouldColor(t *testing.T) {
	t.Parallel()

	opts := options.NewAnalyzerOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	assert.False(t, opts.ShouldColor(), "a buffer is not a terminal")

	opts.Writer = os.Stdout
	opts.DisableColor = true
	assert.False(t, opts.ShouldColor())
}

func TestShouldColorLogs(t *testing.T) {
	t.Parallel()

	opts := options.NewAnalyzerOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	assert.False(t, opts.ShouldColorLogs())

	opts.ErrWriter = os.Stderr
	opts.LogFile = "deadcode.log"
	assert.False(t, opts.ShouldColorLogs(), "logs written to a file are never colored")
}
