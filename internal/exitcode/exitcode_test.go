package exitcode_test

import (
	"context"
	"sync"
	"testing"

	"github.com/devansh-srv/deadcode-report/internal/exitcode"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeKeepsHighest(t *testing.T) {
	t.Parallel()

	var code exitcode.ExitCode

	assert.Equal(t, exitcode.Success, code.Get())

	code.Set(exitcode.IssuesFound)
	code.Set(exitcode.Success)

	assert.Equal(t, exitcode.IssuesFound, code.Get())
}

func TestExitCodeConcurrentSet(t *testing.T) {
	t.Parallel()

	var (
		code exitcode.ExitCode
		wg   sync.WaitGroup
	)

	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()
			code.Set(i % 2)
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, code.Get())
}

func TestExitCodeFromContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, exitcode.FromContext(context.Background()))

	code := new(exitcode.ExitCode)
	ctx := exitcode.ContextWithExitCode(context.Background(), code)

	exitcode.FromContext(ctx).Set(exitcode.IssuesFound)
	assert.Equal(t, exitcode.IssuesFound, code.Get())
}
