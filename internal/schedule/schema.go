package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation indicates a JSON payload that does not conform to the
// input schema.
var ErrSchemaViolation = errors.New("schedule: input schema violation")

// taskSchema is the JSON Schema for reference task payloads.
const taskSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "start", "end"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "discipline": {"type": "string"},
      "start": {"type": "string", "format": "date"},
      "end": {"type": "string", "format": "date"}
    }
  }
}`

// reportSchema is the JSON Schema for progress report payloads.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["date", "task_id", "progress"],
    "properties": {
      "date": {"type": "string", "format": "date"},
      "task_id": {"type": "string", "minLength": 1},
      "progress": {"type": "number", "minimum": 0}
    }
  }
}`

// validateJSON checks raw JSON bytes against a schema. A missing required
// property surfaces as ErrMissingColumn so callers see the same taxonomy
// regardless of input format.
func validateJSON(schema string, payload []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	missing := false

	for _, re := range result.Errors() {
		if re.Type() == "required" {
			missing = true
		}

		details = append(details, re.String())
	}

	if missing {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(details, "; "))
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
}
