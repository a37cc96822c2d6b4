package config

import (
	"github.com/devansh-srv/deadcode-report/internal/errors"
)

var builtinProfiles = []*Profile{
	{
		Name:            "python",
		Project:         "Python Backend",
		Language:        "Python",
		SourceExtension: ".py",
		ExcludedDirs:    []string{"__pycache__", ".git", "venv", "env", "migrations"},
		Tools: []*Tool{
			{
				Name:        "vulture",
				Description: "Dead code detection",
				Title:       "Scanning for dead code with vulture",
				Command:     "vulture .",
				IssueNoun:   "potential dead code issues",
			},
			{
				Name:        "unimport",
				Description: "Unused imports detection",
				Title:       "Checking for unused imports with unimport",
				Command:     "unimport --check .",
				IssueNoun:   "unused imports",
			},
			{
				Name:        "pyflakes",
				Description: "Unused variables and imports detection",
				Title:       "Checking for unused variables and imports with pyflakes",
				Command:     "pyflakes .",
				IssueNoun:   "issues",
			},
		},
	},
	{
		Name:            "react",
		Project:         "React Frontend",
		Language:        "JavaScript",
		SourceExtension: ".js",
		ExcludedDirs:    []string{"node_modules", ".git", "build", "reports", "coverage"},
		Tools: []*Tool{
			{
				Name:        "unimported",
				Description: "Unused files and dependencies",
				Title:       "Checking for unused files and dependencies",
				Command:     "npx unimported",
				IssueNoun:   "unused files and dependencies",
			},
			{
				Name:        "depcheck",
				Description: "Dependency analysis",
				Title:       "Checking dependencies with depcheck",
				Command:     "npx depcheck",
				IssueNoun:   "dependency issues",
			},
			{
				Name:        "ts-unused-exports",
				DisplayName: "TS Unused Exports",
				Description: "Unused exports",
				Title:       "Checking for unused exports",
				Command:     "npx ts-unused-exports tsconfig.json",
				ReportFile:  "unused-exports.txt",
				IssueNoun:   "unused exports",
			},
		},
	},
	{
		Name:            "solidity",
		Project:         "Solidity Smart Contracts",
		Language:        "Solidity",
		SourceExtension: ".sol",
		ExcludedDirs:    []string{"node_modules", ".git", "artifacts", "cache", "reports"},
		ContractsDir:    "contracts",
		Tools: []*Tool{
			{
				Name:        "solhint",
				Description: "Solidity linting",
				Title:       "Checking for linting issues with solhint",
				Command:     "solhint contracts/*.sol",
				IssueNoun:   "linting issues",
			},
			{
				Name:        "depcheck",
				Description: "Dependency analysis",
				Title:       "Checking dependencies",
				Command:     "npx depcheck",
				ReportFile:  "dependencies-analysis.txt",
				IssueNoun:   "dependency issues",
			},
		},
	},
}

// ProfileNames returns the names of the built-in profiles in declaration order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))

	for _, profile := range builtinProfiles {
		names = append(names, profile.Name)
	}

	return names
}

// BuiltinProfiles returns copies of all built-in profiles with defaults applied.
func BuiltinProfiles() []*Profile {
	profiles := make([]*Profile, 0, len(builtinProfiles))

	for _, profile := range builtinProfiles {
		clone := profile.Clone()
		clone.ApplyDefaults()
		profiles = append(profiles, clone)
	}

	return profiles
}

// LookupProfile returns a copy of the built-in profile with the given name, defaults applied.
func LookupProfile(name string) (*Profile, error) {
	for _, profile := range builtinProfiles {
		if profile.Name == name {
			clone := profile.Clone()
			clone.ApplyDefaults()

			return clone, nil
		}
	}

	return nil, errors.New(UnknownProfileError{Name: name, Known: ProfileNames()})
}
