package sink

import (
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the wire shape the sink accepts. An outgoing
// record that fails this check is a programming error, not a network
// one, so it is caught before anything leaves the process.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"givenName":       map[string]any{"type": "string", "minLength": 1},
		"paternalSurname": map[string]any{"type": "string", "minLength": 1},
		"maternalSurname": map[string]any{"type": "string"},
		"birthDay":        map[string]any{"type": "integer", "minimum": 1, "maximum": 31},
		"birthMonth":      map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
		"birthYear":       map[string]any{"type": "integer"},
		"sex":             map[string]any{"type": "string", "minLength": 1},
		"zodiacSign":      map[string]any{"type": "string", "minLength": 1},
		"score":           map[string]any{"type": "integer", "minimum": 0, "maximum": 6},
		"submittedAtEpochMillis": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
	},
	"required": []any{
		"givenName", "paternalSurname", "birthDay", "birthMonth",
		"birthYear", "sex", "zodiacSign", "score", "submittedAtEpochMillis",
	},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled compiles the record schema once per process.
func compiled() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go maps with
		// typed numbers. Round-trip through JSON to normalize.
		raw, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal record schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://result-record.json", parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://result-record.json")
	})
	return compiledSchema, compileErr
}

// validateRecord checks the marshaled record against the wire schema.
func validateRecord(raw []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse record: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("record schema validation: %w", err)
	}
	return nil
}
