package quizfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// Format identifies a quiz document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned when the format cannot be derived from a path.
var ErrUnknownFormat = errors.New("quizfile: unknown format")

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads and decodes the quiz at path.
func LoadFile(ctx context.Context, path string) (model.Quiz, error) {
	if path == "" {
		return model.Quiz{}, errors.New("quizfile: file path is required")
	}
	select {
	case <-ctx.Done():
		return model.Quiz{}, ctx.Err()
	default:
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return model.Quiz{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("quizfile: resolve %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("quizfile: read %q: %w", path, err)
	}

	quiz, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("quizfile: %s: %w", path, err)
	}
	return quiz, nil
}

// LoadFS reads and decodes the quiz called name from files.
func LoadFS(ctx context.Context, files fs.FS, name string) (model.Quiz, error) {
	if name == "" {
		return model.Quiz{}, errors.New("quizfile: fs path is required")
	}
	if files == nil {
		return model.Quiz{}, errors.New("quizfile: fs is nil")
	}
	select {
	case <-ctx.Done():
		return model.Quiz{}, ctx.Err()
	default:
	}

	format, err := FormatFromPath(name)
	if err != nil {
		return model.Quiz{}, err
	}
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("quizfile: read %q: %w", name, err)
	}

	quiz, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("quizfile: %s: %w", name, err)
	}
	return quiz, nil
}

// Decode reads one quiz document in the given format.
func Decode(r io.Reader, format Format) (model.Quiz, error) {
	var quiz model.Quiz
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&quiz); err != nil {
			if errors.Is(err, io.EOF) {
				return model.Quiz{}, errors.New("decode yaml: empty document")
			}
			return model.Quiz{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&quiz); err != nil {
			return model.Quiz{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return model.Quiz{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return quiz, nil
}

// Encode writes quiz in the given format. JSON output is indented.
func Encode(w io.Writer, quiz model.Quiz, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(quiz); err != nil {
			return fmt.Errorf("quizfile: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(quiz); err != nil {
			return fmt.Errorf("quizfile: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
