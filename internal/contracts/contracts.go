// Package contracts lists the functions, state variables and events declared in Solidity contract files.
//
// The scan is line based and lists declarations for review, it does not parse Solidity.
package contracts

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/internal/report"
	"github.com/devansh-srv/deadcode-report/internal/util"
	"github.com/devansh-srv/deadcode-report/pkg/log"
)

// Extension is the file extension of Solidity contract files.
const Extension = ".sol"

const (
	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityInternal = "internal"
	VisibilityExternal = "external"

	VariableTypeMapping  = "mapping"
	VariableTypeVariable = "variable"
)

var (
	functionRe = regexp.MustCompile(`function\s+(\w+)`)
	variableRe = regexp.MustCompile(`(\w+)\s*;`)
	eventRe    = regexp.MustCompile(`event\s+(\w+)`)
)

type Function struct {
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
	Line       int    `json:"line"`
}

type Variable struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line int    `json:"line"`
}

type Event struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Contract is the declaration inventory of one contract file.
type Contract struct {
	File       string     `json:"file"`
	Path       string     `json:"path"`
	TotalLines int        `json:"totalLines"`
	Functions  []Function `json:"functions"`
	Variables  []Variable `json:"variables"`
	Events     []Event    `json:"events"`
}

// Analysis is the content of the contracts analysis file.
type Analysis struct {
	Timestamp         time.Time   `json:"-"`
	Project           string      `json:"project"`
	AnalyzedDirectory string      `json:"analyzedDirectory"`
	Contracts         []*Contract `json:"contracts"`
}

// ParseContract scans the content of one contract file. Lines starting with `//` are ignored.
func ParseContract(file, path string, content []byte) *Contract {
	lines := strings.Split(string(content), "\n")

	contract := &Contract{
		File:       file,
		Path:       path,
		TotalLines: len(lines),
		Functions:  []Function{},
		Variables:  []Variable{},
		Events:     []Event{},
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}

		lineNum := i + 1

		if strings.Contains(trimmed, "function ") {
			if match := functionRe.FindStringSubmatch(trimmed); match != nil {
				contract.Functions = append(contract.Functions, Function{
					Name:       match[1],
					Visibility: visibility(trimmed),
					Line:       lineNum,
				})
			}
		}

		isMapping := strings.Contains(trimmed, "mapping")
		if isMapping || (strings.Contains(trimmed, "uint") && strings.Contains(trimmed, ";")) {
			if match := variableRe.FindStringSubmatch(trimmed); match != nil {
				varType := VariableTypeVariable
				if isMapping {
					varType = VariableTypeMapping
				}

				contract.Variables = append(contract.Variables, Variable{Name: match[1], Type: varType, Line: lineNum})
			}
		}

		if strings.Contains(trimmed, "event ") {
			if match := eventRe.FindStringSubmatch(trimmed); match != nil {
				contract.Events = append(contract.Events, Event{Name: match[1], Line: lineNum})
			}
		}
	}

	return contract
}

// A function without an explicit public, private or internal modifier is counted as external.
func visibility(line string) string {
	switch {
	case strings.Contains(line, VisibilityPublic):
		return VisibilityPublic
	case strings.Contains(line, VisibilityPrivate):
		return VisibilityPrivate
	case strings.Contains(line, VisibilityInternal):
		return VisibilityInternal
	default:
		return VisibilityExternal
	}
}

// ScanDir parses every contract file directly inside dir, in file name order.
// A missing directory yields no contracts.
func ScanDir(l log.Logger, dir string) ([]*Contract, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.Debugf("Contracts directory %s does not exist", dir)
			return []*Contract{}, nil
		}

		return nil, errors.New(err)
	}

	contracts := make([]*Contract, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.New(err)
		}

		contracts = append(contracts, ParseContract(entry.Name(), path, content))
	}

	sort.Slice(contracts, func(i, j int) bool { return contracts[i].File < contracts[j].File })

	return contracts, nil
}

// TotalFunctions returns the number of functions over all contracts.
func (analysis *Analysis) TotalFunctions() int {
	var total int
	for _, contract := range analysis.Contracts {
		total += len(contract.Functions)
	}

	return total
}

// TotalVariables returns the number of state variables and mappings over all contracts.
func (analysis *Analysis) TotalVariables() int {
	var total int
	for _, contract := range analysis.Contracts {
		total += len(contract.Variables)
	}

	return total
}

// TotalEvents returns the number of events over all contracts.
func (analysis *Analysis) TotalEvents() int {
	var total int
	for _, contract := range analysis.Contracts {
		total += len(contract.Events)
	}

	return total
}

// MarshalJSON implements json.Marshaler, writing the timestamp first in the summary format.
func (analysis *Analysis) MarshalJSON() ([]byte, error) {
	type alias Analysis

	contracts := analysis.Contracts
	if contracts == nil {
		contracts = []*Contract{}
	}

	return json.Marshal(struct {
		Timestamp string `json:"timestamp"`
		*alias
		Contracts []*Contract `json:"contracts"`
	}{
		Timestamp: analysis.Timestamp.Format(report.TimestampFormat),
		alias:     (*alias)(analysis),
		Contracts: contracts,
	})
}

// WriteAnalysisFile writes the analysis as indented JSON to path, overwriting any previous file.
func WriteAnalysisFile(path string, analysis *Analysis) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(analysis); err != nil {
		return errors.New(err)
	}

	return util.WriteFile(path, buf.Bytes())
}
