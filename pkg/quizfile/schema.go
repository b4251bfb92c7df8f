package quizfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://quizgen/quiz.schema.json"

//go:embed quiz.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// Schema returns the JSON Schema describing quiz documents.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// CheckSchema validates a raw quiz document against Schema. YAML documents
// are converted to their JSON form first, so both formats report the same
// locations (for example /questions/0/points).
func CheckSchema(data []byte, format Format) error {
	compiled, err := compiledSchema()
	if err != nil {
		return err
	}
	doc, err := documentValue(data, format)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("quizfile: schema: %w", err)
	}
	return nil
}

// CheckFile reads path and validates it with CheckSchema.
func CheckFile(path string) error {
	if path == "" {
		return errors.New("quizfile: file path is required")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("quizfile: read %q: %w", path, err)
	}
	if err := CheckSchema(data, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("quizfile: parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("quizfile: add schema: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("quizfile: compile schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}

func documentValue(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("quizfile: decode yaml: %w", err)
		}
		converted, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("quizfile: convert yaml: %w", err)
		}
		data = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("quizfile: decode json: %w", err)
	}
	return doc, nil
}
