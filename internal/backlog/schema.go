package backlog

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// backlogSchema is the JSON schema for JSON backlog snapshots.
// Dependencies accept both descriptor forms; unknown extra fields are
// allowed so external stores can carry their own metadata alongside.
const backlogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "status": {"type": "string"},
          "worker": {"type": "string"},
          "depends_on": {
            "type": "array",
            "items": {
              "oneOf": [
                {"type": "string", "minLength": 1},
                {
                  "type": "object",
                  "anyOf": [
                    {"required": ["id"]},
                    {"required": ["item_id"]},
                    {"required": ["task_id"]},
                    {"required": ["depends_on"]}
                  ]
                }
              ]
            }
          },
          "touches": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "path": {"type": "string"},
                "kind": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("backlog.schema.json", backlogSchema)

// ValidateSchema checks a raw JSON backlog document against the
// embedded schema. Returns the first validation failure found.
func ValidateSchema(data []byte) error {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiledSchema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return firstSchemaError(ve)
		}
		return err
	}
	return nil
}

// firstSchemaError walks the cause tree to the first leaf failure,
// which is usually the actionable one
func firstSchemaError(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return fmt.Errorf("%s: %s", ve.InstanceLocation, ve.Message)
}
