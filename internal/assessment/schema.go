package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// snapshotSchemaDef is the JSON Schema for persisted session snapshots.
// Loads are validated before decoding so a corrupt row degrades to "no
// prior progress" instead of surfacing a parse failure mid-resume.
const snapshotSchemaDef = `{
	"type": "object",
	"required": ["test_id", "question_index", "phase", "responses", "start_time", "last_updated"],
	"properties": {
		"test_id": {"type": "string", "minLength": 1},
		"question_index": {"type": "integer", "minimum": 0, "maximum": 59},
		"phase": {"enum": ["like", "dislike"]},
		"responses": {
			"type": "array",
			"maxItems": 60,
			"items": {
				"type": "object",
				"required": ["question_id", "option_text", "dimension", "timestamp"],
				"properties": {
					"question_id": {"type": "integer", "minimum": 1, "maximum": 60},
					"option_text": {"type": "string", "minLength": 1},
					"dimension": {"enum": ["vision", "goal", "logic", "action"]},
					"timestamp": {"type": "string"}
				}
			}
		},
		"start_time": {"type": "string"},
		"last_updated": {"type": "string"}
	}
}`

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

// compiledSnapshotSchema compiles the schema once and caches it.
func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(snapshotSchemaDef))
		if err != nil {
			snapshotSchemaErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://session-snapshot.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			snapshotSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		snapshotSchema, snapshotSchemaErr = c.Compile(schemaURL)
	})
	return snapshotSchema, snapshotSchemaErr
}

// DecodeSnapshot validates raw JSON against the snapshot schema and decodes
// it. Any failure is returned as an error; callers degrade to an empty
// session rather than crash.
func DecodeSnapshot(raw []byte) (*Snapshot, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}

	schema, err := compiledSnapshotSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("snapshot schema validation failed: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// EncodeSnapshot serializes a snapshot to JSON.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}
