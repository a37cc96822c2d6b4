package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/gofrs/flock"
)

const lockFilePrefix = "deadcode-report-"

// Lockfile is an advisory file lock guarding a directory against concurrent writers.
type Lockfile struct {
	*flock.Flock
}

// NewLockfile returns a lock file in the OS temp directory, named after the guarded directory,
// so nothing is written inside the guarded directory itself.
func NewLockfile(guardedDir string) *Lockfile {
	filename := filepath.Join(os.TempDir(), lockFilePrefix+EncodeBase64Sha1(guardedDir)+".lock")

	return &Lockfile{flock.New(filename)}
}

// TryLock takes the lock without blocking. It fails with DirLockedError if another process holds it.
func (lockfile *Lockfile) TryLock(guardedDir string) error {
	locked, err := lockfile.Flock.TryLock()
	if err != nil {
		return errors.New(err)
	}

	if !locked {
		return errors.New(DirLockedError{Dir: guardedDir, LockFile: lockfile.Path()})
	}

	return nil
}

// Unlock releases the lock if it is held.
func (lockfile *Lockfile) Unlock() error {
	if !lockfile.Locked() {
		return nil
	}

	if err := lockfile.Flock.Unlock(); err != nil {
		return errors.New(err)
	}

	return nil
}

// DirLockedError is returned when another run holds the lock for the same directory.
type DirLockedError struct {
	Dir      string
	LockFile string
}

func (err DirLockedError) Error() string {
	return fmt.Sprintf("another run is already writing to %s (lock file %s)", err.Dir, err.LockFile)
}
