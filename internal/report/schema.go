package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

const (
	schemaDraft = "http://json-schema.org/draft-07/schema#"
	schemaID    = "https://github.com/devansh-srv/deadcode-report/schemas/summary/v1/schema.json"
)

// SchemaValidationError is returned when a summary does not match the summary schema.
type SchemaValidationError struct {
	Errors []string
}

func (err *SchemaValidationError) Error() string {
	return fmt.Sprintf("summary schema validation failed with %d error(s): %v", len(err.Errors), err.Errors)
}

// WriteSchema writes the JSON schema of summary.json to w.
func WriteSchema(w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(generateSummarySchema(), "", jsonIndent)
	if err != nil {
		return errors.New(err)
	}

	jsonBytes = append(jsonBytes, '\n')

	if _, err := w.Write(jsonBytes); err != nil {
		return errors.New(err)
	}

	return nil
}

// ValidateSummary validates an encoded summary against the summary schema.
// It returns nil if the summary is valid, or a SchemaValidationError listing every violation.
func ValidateSummary(data []byte) error {
	schemaBytes, err := json.Marshal(generateSummarySchema())
	if err != nil {
		return errors.Errorf("failed to generate summary schema: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Errorf("failed to validate summary: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, len(result.Errors()))
	for i, resultErr := range result.Errors() {
		violations[i] = resultErr.String()
	}

	return errors.New(&SchemaValidationError{Errors: violations})
}

// ValidateSummaryFile reads and validates a summary file.
func ValidateSummaryFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("failed to read summary file %s: %w", path, err)
	}

	return ValidateSummary(data)
}

func generateSummarySchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := reflector.Reflect(&jsonSummary{})
	schema.Version = schemaDraft
	schema.ID = schemaID
	schema.Title = "Dead Code Analysis Summary Schema"
	schema.Description = "Schema for the summary.json file of a dead code analysis run"

	return schema
}
