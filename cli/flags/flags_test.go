package flags_test

import (
	"testing"

	"github.com/devansh-srv/deadcode-report/cli/flags"
	"github.com/stretchr/testify/assert"
)

func TestEnvVars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		flagName string
		expected string
	}{
		{flags.WorkingDirFlagName, "DEADCODE_WORKING_DIR"},
		{flags.ProfileFlagName, "DEADCODE_PROFILE"},
		{flags.LogLevelFlagName, "DEADCODE_LOG_LEVEL"},
		{flags.NoColorFlagName, "DEADCODE_NO_COLOR"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.flagName, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, []string{tc.expected}, flags.EnvVars(tc.flagName))
		})
	}
}
