// Package validation checks world snapshots against the embedded JSON schema
// before they are decoded into a game.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// SchemaValidator validates JSON documents against a compiled schema
type SchemaValidator interface {
	ValidateBytes(data []byte) error
}

type validator struct {
	schema *jsonschema.Schema
}

var (
	worldOnce   sync.Once
	worldSchema *validator
	worldErr    error
)

// WorldSnapshot returns the validator for stored world snapshots. The schema
// is compiled once per process.
func WorldSnapshot() (SchemaValidator, error) {
	worldOnce.Do(func() {
		worldSchema, worldErr = compile(WorldSchemaFile)
	})
	return worldSchema, worldErr
}

// ValidateWorld checks one snapshot document.
func ValidateWorld(data []byte) error {
	v, err := WorldSnapshot()
	if err != nil {
		return err
	}
	return v.ValidateBytes(data)
}

func compile(name string) (*validator, error) {
	raw, err := schemaFS.ReadFile(SchemaDir + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &validator{schema: schema}, nil
}

// ValidateBytes validates JSON data bytes against the schema
func (v *validator) ValidateBytes(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	if err := v.schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("%s:\n%s", ErrMsgSchemaValidationFailed, strings.Join(msgs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	// Leaf causes carry the useful locations; wrapper nodes only repeat them.
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
