package profiles_test

import (
	"bytes"
	"testing"

	"github.com/devansh-srv/deadcode-report/cli/commands/profiles"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProfiles(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	require.NoError(t, profiles.Run(options.NewAnalyzerOptionsForTest(t.TempDir(), &stdout)))

	out := stdout.String()
	assert.Contains(t, out, "python (default): Python Backend\n")
	assert.Contains(t, out, "  - vulture   vulture .\n")
	assert.Contains(t, out, "  - unimport  unimport --check .\n")
	assert.Contains(t, out, "react: React Frontend\n")
	assert.Contains(t, out, "  - ts-unused-exports  npx ts-unused-exports tsconfig.json\n")
	assert.Contains(t, out, "solidity: Solidity Smart Contracts\n")
	assert.Contains(t, out, "  excluded: node_modules, .git, artifacts, cache, reports\n")
}
