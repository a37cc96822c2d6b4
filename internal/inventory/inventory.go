// Package inventory walks the analyzed directory tree and lists its source files.
package inventory

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/report"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/gobwas/glob"
)

// Scanner lists the files with a given extension under a root directory.
type Scanner struct {
	logger    log.Logger
	extension string
	excluded  []string
	matchers  []glob.Glob
}

// NewScanner compiles the excluded directory patterns. A plain name is a pattern that only matches itself.
func NewScanner(logger log.Logger, extension string, excluded []string) (*Scanner, error) {
	scanner := &Scanner{
		logger:    logger,
		extension: extension,
		excluded:  excluded,
		matchers:  make([]glob.Glob, 0, len(excluded)),
	}

	for _, pattern := range excluded {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.New(InvalidExcludePatternError{Pattern: pattern, Err: err})
		}

		scanner.matchers = append(scanner.matchers, matcher)
	}

	return scanner, nil
}

// Scan walks root top-down. At each directory its matching files are listed first, in lexical order,
// then its sub-directories are walked in lexical order. Excluded directories are not descended into,
// symlinked directories are not followed. Paths are recorded relative to root, slash separated and
// prefixed with "./".
func (scanner *Scanner) Scan(root string) (*report.FileInventory, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.New(err)
	}

	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, errors.New(err)
	}

	inventory := &report.FileInventory{
		RootPath:     absRoot,
		Extension:    scanner.extension,
		ExcludedDirs: scanner.excluded,
		Files:        make([]string, 0),
	}

	scanner.walk(absRoot, ".", inventory)

	return inventory, nil
}

func (scanner *Scanner) walk(dir, relDir string, inventory *report.FileInventory) {
	// os.ReadDir returns the entries sorted by name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		scanner.logger.Warnf("Skipping unreadable directory %s: %v", dir, err)
		return
	}

	var subDirs []string

	for _, entry := range entries {
		name := entry.Name()

		switch scanner.kindOf(dir, entry) {
		case kindDir:
			if scanner.IsExcluded(name) {
				scanner.logger.Tracef("Excluding directory %s", path.Join(relDir, name))
				continue
			}

			subDirs = append(subDirs, name)
		case kindFile:
			if strings.HasSuffix(name, scanner.extension) {
				inventory.Files = append(inventory.Files, "./"+path.Join(relDir, name))
			}
		case kindSkip:
		}
	}

	for _, name := range subDirs {
		scanner.walk(filepath.Join(dir, name), path.Join(relDir, name), inventory)
	}
}

type entryKind byte

const (
	kindFile entryKind = iota
	kindDir
	kindSkip
)

// kindOf classifies a directory entry. Symlinks to directories are skipped so the walk never leaves the tree
// through a link; symlinks to files count as files.
func (scanner *Scanner) kindOf(dir string, entry os.DirEntry) entryKind {
	if entry.Type()&os.ModeSymlink == 0 {
		if entry.IsDir() {
			return kindDir
		}

		return kindFile
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return kindSkip
	}

	if info.IsDir() {
		scanner.logger.Tracef("Not following symlinked directory %s", filepath.Join(dir, entry.Name()))
		return kindSkip
	}

	return kindFile
}

// IsExcluded reports whether a directory with the given name must not be descended into.
func (scanner *Scanner) IsExcluded(name string) bool {
	for _, matcher := range scanner.matchers {
		if matcher.Match(name) {
			return true
		}
	}

	return false
}

// InvalidExcludePatternError is returned when an excluded directory pattern does not compile.
type InvalidExcludePatternError struct {
	Err     error
	Pattern string
}

func (err InvalidExcludePatternError) Error() string {
	return fmt.Sprintf("invalid excluded directory pattern %q: %v", err.Pattern, err.Err)
}

func (err InvalidExcludePatternError) Unwrap() error {
	return err.Err
}
