package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T, hcl string) *options.AnalyzerOptions {
	t.Helper()

	dir := t.TempDir()
	if hcl != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigFile), []byte(hcl), 0o644))
	}

	opts := options.NewAnalyzerOptionsForTest(dir, &bytes.Buffer{})
	opts.ErrWriter = &bytes.Buffer{}

	return opts
}

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, "")

	profile, err := config.LoadProfile(log.Default(), opts)
	require.NoError(t, err)

	assert.Equal(t, "python", profile.Name)
	assert.Equal(t, "Python Backend Dead Code Analysis", profile.Title())
	assert.Equal(t, ".py", profile.SourceExtension)
	assert.Equal(t, []string{"__pycache__", ".git", "venv", "env", "migrations"}, profile.ExcludedDirs)

	var commands, reports, displayNames []string
	for _, tool := range profile.Tools {
		commands = append(commands, tool.Command)
		reports = append(reports, tool.ReportFile)
		displayNames = append(displayNames, tool.DisplayName)
	}

	assert.Equal(t, []string{"vulture .", "unimport --check .", "pyflakes ."}, commands)
	assert.Equal(t, []string{"vulture-analysis.txt", "unimport-analysis.txt", "pyflakes-analysis.txt"}, reports)
	assert.Equal(t, []string{"Vulture", "Unimport", "Pyflakes"}, displayNames)
	assert.Equal(t, "Dead code detection", profile.Tools[0].Description)
	assert.Equal(t, "Scanning for dead code with vulture", profile.Tools[0].Title)
}

func TestBuiltinProfilesAreValid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"python", "react", "solidity"}, config.ProfileNames())

	for _, profile := range config.BuiltinProfiles() {
		assert.NoError(t, profile.Validate(), profile.Name)
	}
}

func TestLookupProfileReturnsCopies(t *testing.T) {
	t.Parallel()

	first, err := config.LookupProfile("solidity")
	require.NoError(t, err)

	first.Tools[0].Command = "changed"
	first.ExcludedDirs[0] = "changed"

	second, err := config.LookupProfile("solidity")
	require.NoError(t, err)

	assert.Equal(t, "solhint contracts/*.sol", second.Tools[0].Command)
	assert.Equal(t, "node_modules", second.ExcludedDirs[0])
}

func TestUnknownProfile(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, "")
	opts.ProfileName = "cobol"

	_, err := config.LoadProfile(log.Default(), opts)

	var unknownErr config.UnknownProfileError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "cobol", unknownErr.Name)
	assert.Contains(t, err.Error(), "python, react, solidity")
}

func TestMissingExplicitConfigFile(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, "")
	opts.ConfigFile = filepath.Join(opts.WorkingDir, "missing.hcl")

	_, err := config.LoadProfile(log.Default(), opts)

	var notFoundErr config.ConfigFileNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestConfigFileOverrides(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, `
profile       = "solidity"
project       = "Carbon Credits"
excluded_dirs = ["node_modules", "lib"]

tool "slither" {
  description = "Static analysis"
  command     = "slither ${target_dir} --json ${reports_dir}/slither.json"
}

tool "solhint" {
  display_name = "Solhint"
  command      = join(" ", ["solhint", "contracts/**/*.sol"])
  issue_noun   = lower("LINT WARNINGS")
}
`)

	profile, err := config.LoadProfile(log.Default(), opts)
	require.NoError(t, err)

	assert.Equal(t, "solidity", profile.Name)
	assert.Equal(t, "Carbon Credits", profile.Project)
	assert.Equal(t, ".sol", profile.SourceExtension, "unset attributes keep the profile value")
	assert.Equal(t, []string{"node_modules", "lib"}, profile.ExcludedDirs)

	require.Len(t, profile.Tools, 2)

	slither := profile.Tools[0]
	assert.Equal(t, "slither", slither.Name)
	assert.Equal(t, "Slither", slither.DisplayName)
	assert.Equal(t, "Static analysis", slither.Title)
	assert.Equal(t, "slither-analysis.txt", slither.ReportFile)
	assert.Equal(t, "slither "+opts.WorkingDir+" --json "+opts.ReportsDir+"/slither.json", slither.Command)

	solhint := profile.Tools[1]
	assert.Equal(t, "solhint contracts/**/*.sol", solhint.Command)
	assert.Equal(t, "lint warnings", solhint.IssueNoun)
	assert.Equal(t, "Solhint analysis", solhint.Description)
}

func TestProfileFlagWinsOverConfigFile(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, `profile = "solidity"`)
	opts.ProfileName = "react"

	profile, err := config.LoadProfile(log.Default(), opts)
	require.NoError(t, err)
	assert.Equal(t, "react", profile.Name)
	assert.Len(t, profile.Tools, 3)
}

func TestConfigFileValidation(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, `
tool "vulture" {
  command = "vulture ."
}

tool "vulture" {
  command = "vulture --min-confidence 80 ."
}

tool "summary" {
  command     = "true"
  report_file = "summary.json"
}

tool "empty" {
  report_file = "vulture-analysis.txt"
}

tool "nested" {
  command     = "true"
  report_file = "../outside.txt"
}
`)

	_, err := config.LoadProfile(log.Default(), opts)
	require.Error(t, err)

	var multiErr *errors.MultiError
	require.ErrorAs(t, err, &multiErr)
	// The second vulture block and the empty block both reuse vulture-analysis.txt.
	assert.Equal(t, 6, multiErr.Len())

	var (
		duplicateTool   config.DuplicateToolError
		duplicateReport config.DuplicateReportFileError
		reserved        config.ReservedReportFileError
		missingCommand  config.MissingToolCommandError
		invalidReport   config.InvalidReportFileError
	)

	assert.ErrorAs(t, err, &duplicateTool)
	assert.ErrorAs(t, err, &duplicateReport)
	assert.ErrorAs(t, err, &reserved)
	assert.ErrorAs(t, err, &missingCommand)
	assert.ErrorAs(t, err, &invalidReport)
}

func TestContractsDir(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		hcl         string
		expectedDir string
	}{
		{name: "solidity default", hcl: `profile = "solidity"`, expectedDir: "contracts"},
		{name: "override", hcl: "profile = \"solidity\"\ncontracts_dir = \"src/contracts\"", expectedDir: "src/contracts"},
		{name: "disabled", hcl: "profile = \"solidity\"\ncontracts_dir = \"\"", expectedDir: ""},
		{name: "python has none", hcl: `profile = "python"`, expectedDir: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			profile, err := config.LoadProfile(log.Default(), newTestOptions(t, tc.hcl))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDir, profile.ContractsDir)
		})
	}
}

func TestContractsAnalysisFileIsReserved(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, `
profile = "solidity"

tool "slither" {
  command     = "slither ."
  report_file = "contracts-analysis.json"
}
`)

	_, err := config.LoadProfile(log.Default(), opts)
	require.Error(t, err)

	var reserved config.ReservedReportFileError
	require.ErrorAs(t, err, &reserved)
	assert.Equal(t, "slither", reserved.Tool)
}

func TestConfigFileSyntaxError(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t, `tool "vulture" {`)

	_, err := config.LoadProfile(log.Default(), opts)
	require.Error(t, err)
	assert.Contains(t, opts.ErrWriter.(*bytes.Buffer).String(), config.DefaultConfigFile)
}

func TestGetEnvFunction(t *testing.T) {
	t.Setenv("DEADCODE_TEST_VULTURE_CONFIDENCE", "90")

	opts := newTestOptions(t, `
tool "vulture" {
  command = format("vulture --min-confidence %s .", get_env("DEADCODE_TEST_VULTURE_CONFIDENCE", "60"))
}

tool "pyflakes" {
  command = "pyflakes ${get_env("DEADCODE_TEST_UNSET_VARIABLE", ".")}"
}
`)

	profile, err := config.LoadProfile(log.Default(), opts)
	require.NoError(t, err)
	assert.Equal(t, "vulture --min-confidence 90 .", profile.Tools[0].Command)
	assert.Equal(t, "pyflakes .", profile.Tools[1].Command)
}
