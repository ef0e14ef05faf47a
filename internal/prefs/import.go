package prefs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/storiz/internal/stories"
)

// importSchemaJSON is the shape accepted by ParseFile. Validation happens
// before decoding so a bad file is rejected with a schema error rather
// than half-applied.
const importSchemaJSON = `{
	"type": "object",
	"properties": {
		"topics": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"reading_level": {"type": "integer", "minimum": 0},
		"session_minutes": {"type": "integer", "minimum": 1}
	},
	"required": ["topics", "reading_level", "session_minutes"],
	"additionalProperties": false
}`

var (
	importSchemaOnce sync.Once
	importSchema     *jsonschema.Schema
	importSchemaErr  error
)

func compiledImportSchema() (*jsonschema.Schema, error) {
	importSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(importSchemaJSON), &def); err != nil {
			importSchemaErr = fmt.Errorf("parse import schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://preferences.json", def); err != nil {
			importSchemaErr = fmt.Errorf("add import schema: %w", err)
			return
		}
		importSchema, importSchemaErr = c.Compile("schema://preferences.json")
	})
	return importSchema, importSchemaErr
}

// ParseFile validates and decodes a preferences JSON file.
func ParseFile(data []byte) (stories.StoryPreferences, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return stories.StoryPreferences{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledImportSchema()
	if err != nil {
		return stories.StoryPreferences{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return stories.StoryPreferences{}, fmt.Errorf("preferences file rejected: %w", err)
	}

	var file struct {
		Topics         []string `json:"topics"`
		ReadingLevel   int      `json:"reading_level"`
		SessionMinutes int      `json:"session_minutes"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return stories.StoryPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}

	return stories.StoryPreferences{
		Topics:         file.Topics,
		ReadingLevel:   file.ReadingLevel,
		SessionMinutes: file.SessionMinutes,
	}, nil
}
