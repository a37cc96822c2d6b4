// Package config resolves the tool profile of a run from the built-in profiles and an optional HCL config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/devansh-srv/deadcode-report/config/hclparse"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/devansh-srv/deadcode-report/pkg/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// DefaultConfigFile is looked up in the analyzed directory when no config file is given explicitly.
const DefaultConfigFile = "deadcode.hcl"

const (
	VarTargetDir  = "target_dir"
	VarReportsDir = "reports_dir"
)

// FileConfig is the content of a config file. Every attribute is optional; set attributes override the
// selected profile, and tool blocks, when present, replace its tool list.
//
//	profile          = "solidity"
//	excluded_dirs    = ["node_modules", "*.egg-info"]
//	contracts_dir    = "src/contracts"
//
//	tool "slither" {
//	  description = "Static analysis"
//	  command     = "slither ${target_dir}"
//	}
type FileConfig struct {
	Profile         string       `hcl:"profile,optional"`
	Project         string       `hcl:"project,optional"`
	Language        string       `hcl:"source_language,optional"`
	SourceExtension string       `hcl:"source_extension,optional"`
	ExcludedDirs    []string     `hcl:"excluded_dirs,optional"`
	ContractsDir    *string      `hcl:"contracts_dir,optional"`
	Tools           []ToolConfig `hcl:"tool,block"`
}

// ToolConfig is a `tool` block of a config file.
type ToolConfig struct {
	Name        string `hcl:"name,label"`
	Command     string `hcl:"command,optional"`
	DisplayName string `hcl:"display_name,optional"`
	Description string `hcl:"description,optional"`
	Title       string `hcl:"title,optional"`
	ReportFile  string `hcl:"report_file,optional"`
	IssueNoun   string `hcl:"issue_noun,optional"`
}

// LoadProfile resolves the profile for a run. The profile named by opts.ProfileName wins over the one named in
// the config file, which wins over DefaultProfileName. The config file is opts.ConfigFile when set, otherwise
// DefaultConfigFile in the analyzed directory if it exists.
func LoadProfile(l log.Logger, opts *options.AnalyzerOptions) (*Profile, error) {
	configPath := opts.ConfigFile
	if configPath == "" {
		configPath = filepath.Join(opts.WorkingDir, DefaultConfigFile)

		if !util.FileExists(configPath) {
			configPath = ""
		}
	} else if !util.IsFile(configPath) {
		return nil, errors.New(ConfigFileNotFoundError(configPath))
	}

	var fileCfg *FileConfig

	if configPath != "" {
		l.Debugf("Reading config file %s", configPath)

		cfg, err := ParseConfigFile(l, opts, configPath)
		if err != nil {
			return nil, err
		}

		fileCfg = cfg
	}

	name := opts.ProfileName
	if name == "" && fileCfg != nil {
		name = fileCfg.Profile
	}

	if name == "" {
		name = DefaultProfileName
	}

	profile, err := LookupProfile(name)
	if err != nil {
		return nil, err
	}

	if fileCfg != nil {
		fileCfg.ApplyTo(profile)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// ParseConfigFile decodes the config file at configPath.
func ParseConfigFile(l log.Logger, opts *options.AnalyzerOptions, configPath string) (*FileConfig, error) {
	parser := hclparse.NewParser(
		hclparse.WithLogger(l),
		hclparse.WithDiagnosticsWriter(opts.ErrWriter, opts.DisableColor),
	)

	file, err := parser.ParseFromFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := new(FileConfig)
	if err := file.Decode(cfg, createEvalContext(opts)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyTo overrides the profile with every value set in the config file.
func (cfg *FileConfig) ApplyTo(profile *Profile) {
	if cfg.Project != "" {
		profile.Project = cfg.Project
	}

	if cfg.Language != "" {
		profile.Language = cfg.Language
	}

	if cfg.SourceExtension != "" {
		profile.SourceExtension = cfg.SourceExtension
	}

	if cfg.ExcludedDirs != nil {
		profile.ExcludedDirs = cfg.ExcludedDirs
	}

	// An empty string turns the contract scan off.
	if cfg.ContractsDir != nil {
		profile.ContractsDir = *cfg.ContractsDir
	}

	if len(cfg.Tools) == 0 {
		return
	}

	profile.Tools = make([]*Tool, 0, len(cfg.Tools))

	for _, block := range cfg.Tools {
		tool := &Tool{
			Name:        block.Name,
			DisplayName: block.DisplayName,
			Description: block.Description,
			Title:       block.Title,
			Command:     block.Command,
			ReportFile:  block.ReportFile,
			IssueNoun:   block.IssueNoun,
		}
		tool.ApplyDefaults()

		profile.Tools = append(profile.Tools, tool)
	}
}

func createEvalContext(opts *options.AnalyzerOptions) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			VarTargetDir:  cty.StringVal(opts.WorkingDir),
			VarReportsDir: cty.StringVal(opts.ReportsDir),
		},
		Functions: map[string]function.Function{
			"get_env": getEnvFunc,
			"upper":   stdlib.UpperFunc,
			"lower":   stdlib.LowerFunc,
			"join":    stdlib.JoinFunc,
			"concat":  stdlib.ConcatFunc,
			"format":  stdlib.FormatFunc,
		},
	}
}

// getEnvFunc returns the value of an environment variable, or the given default when it is unset.
var getEnvFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
		{Name: "default", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		if value, ok := os.LookupEnv(args[0].AsString()); ok {
			return cty.StringVal(value), nil
		}

		return args[1], nil
	},
})
