// Package store reads, validates and writes the forecast document file.
package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
)

//go:embed forecast.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("forecast.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load forecast schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("forecast.schema.json")
	})
	return schema, schemaErr
}

// Validate checks raw JSON against the forecast document schema
func Validate(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("forecast is not valid JSON: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("forecast does not match schema: %w", err)
	}
	return nil
}

// Decode parses a forecast document without validating it
func Decode(raw []byte) (*models.ForecastDocument, error) {
	var doc models.ForecastDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}
	return &doc, nil
}

// Load reads the forecast document at path. Missing optional fields decode to
// zero values; the document is not schema-checked so hand-edited files still load.
func Load(path string) (*models.ForecastDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast file: %w", err)
	}
	return Decode(raw)
}

// Write stores the document as indented JSON, replacing path atomically
func Write(path string, doc *models.ForecastDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode forecast: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create forecast directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".forecast-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write forecast: %w", err)
	}
	// CreateTemp makes the file owner-only; the web server may run as another user
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set forecast permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write forecast: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace forecast file: %w", err)
	}
	return nil
}
