package util_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")

	require.NoError(t, util.EnsureDirectory(dir))
	require.NoError(t, util.EnsureDirectory(dir), "creating an existing directory must be a no-op")
	assert.DirExists(t, dir)

	file := filepath.Join(dir, "summary.json")
	require.NoError(t, util.WriteFile(file, []byte("{}")))

	err := util.EnsureDirectory(file)
	require.Error(t, err)

	var notDir util.PathIsNotDirectory
	assert.True(t, errors.As(err, &notDir))
}

func TestReadDirNamesSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"vulture-analysis.txt", "summary.json", "pyflakes-analysis.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	names, err := util.ReadDirNames(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"pyflakes-analysis.txt", "summary.json", "vulture-analysis.txt"}, names)
}

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	path, err := util.CanonicalPath("backend/../backend", base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "backend"), path)

	path, err = util.CanonicalPath(base, "/somewhere/else")
	require.NoError(t, err)
	assert.Equal(t, base, path)
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()

	explicit := fmt.Errorf("explicit error")

	code, err := util.GetExitCode(explicit)
	require.Error(t, err)
	assert.Equal(t, 0, code)

	var multiErr *errors.MultiError
	multiErr = multiErr.Append(explicit, util.ProcessExecutionError{Err: &exec.ExitError{}})

	_, err = util.GetExitCode(multiErr)
	require.NoError(t, err)
}

func TestLockfile(t *testing.T) {
	t.Parallel()

	guarded := t.TempDir()

	first := util.NewLockfile(guarded)
	require.NoError(t, first.TryLock(guarded))

	second := util.NewLockfile(guarded)
	err := second.TryLock(guarded)
	require.Error(t, err)

	var lockedErr util.DirLockedError
	require.True(t, errors.As(err, &lockedErr))
	assert.Equal(t, guarded, lockedErr.Dir)

	require.NoError(t, first.Unlock())
	require.NoError(t, second.TryLock(guarded))
	require.NoError(t, second.Unlock())
}
