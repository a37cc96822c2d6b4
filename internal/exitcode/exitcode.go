// Package exitcode carries the process exit code of a run through the context.
package exitcode

import (
	"context"
	"sync"
)

const (
	// Success means the run completed and no tool reported an issue.
	Success = 0
	// IssuesFound means at least one tool reported an issue, or the run failed.
	IssuesFound = 1
)

type ctxKey byte

const exitCodeContextKey ctxKey = iota

// ExitCode is the exit code of the current run.
type ExitCode struct {
	code int
	mu   sync.RWMutex
}

// Get returns exit code.
func (coder *ExitCode) Get() int {
	coder.mu.RLock()
	defer coder.mu.RUnlock()

	return coder.code
}

// Set updates the exit code. A higher code already recorded is kept, so a failing
// step is never masked by a later clean one.
func (coder *ExitCode) Set(newCode int) {
	coder.mu.Lock()
	defer coder.mu.Unlock()

	if newCode > coder.code {
		coder.code = newCode
	}
}

// ContextWithExitCode returns a new context containing the given ExitCode.
func ContextWithExitCode(ctx context.Context, exitCode *ExitCode) context.Context {
	return context.WithValue(ctx, exitCodeContextKey, exitCode)
}

// FromContext returns the ExitCode if the given context contains it.
func FromContext(ctx context.Context) *ExitCode {
	if val := ctx.Value(exitCodeContextKey); val != nil {
		if val, ok := val.(*ExitCode); ok {
			return val
		}
	}

	return nil
}
