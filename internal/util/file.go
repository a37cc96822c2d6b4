package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/mitchellh/go-homedir"
)

// DefaultDirPerms is the permission used for directories created by the tool.
const DefaultDirPerms = 0o755

// DefaultFilePerms is the permission used for report files.
const DefaultFilePerms = 0o644

// FileExists returns true if the given file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile returns true if the path points to a file.
func IsFile(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && !fileInfo.IsDir()
}

// EnsureDirectory creates a directory at this path if it does not exist, or error if the path exists and is a file.
func EnsureDirectory(path string) error {
	if IsFile(path) {
		return errors.New(PathIsNotDirectory{path})
	}

	if err := os.MkdirAll(path, DefaultDirPerms); err != nil {
		return errors.New(err)
	}

	return nil
}

// WriteFile writes the contents to the file at path, truncating any previous content.
func WriteFile(path string, contents []byte) error {
	if err := os.WriteFile(path, contents, DefaultFilePerms); err != nil {
		return errors.WithStackTraceAndPrefix(err, "Error writing file at path %s", path)
	}

	return nil
}

// ReadDirNames returns the sorted names of all entries of the given directory.
func ReadDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.New(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// CanonicalPath returns the absolute, cleaned version of the given path. A leading `~` is expanded to the
// home directory, and a relative path is assumed to be relative to basePath.
func CanonicalPath(path, basePath string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.New(err)
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(basePath, expanded)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.New(err)
	}

	return filepath.Clean(absPath), nil
}

// ExecutableDir returns the directory that contains the running executable, with symlinks resolved.
func ExecutableDir() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", errors.New(err)
	}

	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}

	return filepath.Dir(executable), nil
}

// PathIsNotDirectory is returned when a directory was expected but a file was found.
type PathIsNotDirectory struct {
	path string
}

func (err PathIsNotDirectory) Error() string {
	return fmt.Sprintf("%s is not a directory", err.path)
}
