package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devansh-srv/deadcode-report/internal/inventory"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pythonExcludes = []string{"__pycache__", ".git", "venv", "env", "migrations"}

func createFiles(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("pass\n"), 0o644))
	}
}

func TestScanExcludesDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root,
		"app.py",
		"config.py",
		"README.md",
		"app/routes/auditor_routes.py",
		"app/__pycache__/auditor_routes.cpython-311.py",
		".git/hooks/pre-commit.py",
		"venv/lib/site.py",
		"env/bin/activate.py",
		"migrations/versions/0001_init.py",
	)

	scanner, err := inventory.NewScanner(log.Default(), ".py", pythonExcludes)
	require.NoError(t, err)

	inv, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, root, inv.RootPath)
	assert.Equal(t, []string{
		"./app.py",
		"./config.py",
		"./app/routes/auditor_routes.py",
	}, inv.Files)
	assert.Equal(t, 3, inv.Total())
}

func TestScanIsDeterministic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "b.py", "a.py", "z/c.py", "m/d.py", "m/n/e.py")

	scanner, err := inventory.NewScanner(log.Default(), ".py", nil)
	require.NoError(t, err)

	first, err := scanner.Scan(root)
	require.NoError(t, err)

	second, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"./a.py", "./b.py", "./m/d.py", "./m/n/e.py", "./z/c.py"}, first.Files)
	assert.Equal(t, first.Files, second.Files)
}

func TestScanGlobExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "pkg/mod.py", "pkg.egg-info/setup.py", ".tox/py311/x.py")

	scanner, err := inventory.NewScanner(log.Default(), ".py", []string{"*.egg-info", ".tox"})
	require.NoError(t, err)

	inv, err := scanner.Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"./pkg/mod.py"}, inv.Files)
	assert.True(t, scanner.IsExcluded("backend.egg-info"))
	assert.False(t, scanner.IsExcluded("egg-info"))
}

func TestScanDoesNotFollowSymlinkedDirectories(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	createFiles(t, outside, "leak.py")

	root := t.TempDir()
	createFiles(t, root, "main.py")

	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	scanner, err := inventory.NewScanner(log.Default(), ".py", nil)
	require.NoError(t, err)

	inv, err := scanner.Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"./main.py"}, inv.Files)
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()

	scanner, err := inventory.NewScanner(log.Default(), ".py", nil)
	require.NoError(t, err)

	_, err = scanner.Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestInvalidExcludePattern(t *testing.T) {
	t.Parallel()

	_, err := inventory.NewScanner(log.Default(), ".py", []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}
