package validate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Schema validates documents against a compiled JSON Schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// errPrinter localizes schema keyword messages.
var errPrinter = message.NewPrinter(language.English)

// LoadSchema reads and compiles the JSON Schema at path.
func LoadSchema(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON in schema file %s: %w", path, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", path, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", path, err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks a raw JSON document against the schema. It returns
// one path-qualified message per violation; an empty slice means the
// document conforms. The error return covers non-schema failures
// such as malformed input.
func (s *Schema) Validate(input []byte) ([]string, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	err = s.compiled.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}
	return flatten(ve), nil
}

// flatten collects the leaf causes of a validation error tree as
// human-readable messages qualified by instance location.
func flatten(e *jsonschema.ValidationError) []string {
	if len(e.Causes) == 0 {
		return []string{fmt.Sprintf("%s: %s",
			instancePath(e.InstanceLocation),
			e.ErrorKind.LocalizedString(errPrinter))}
	}
	var out []string
	for _, c := range e.Causes {
		out = append(out, flatten(c)...)
	}
	return out
}

func instancePath(loc []string) string {
	if len(loc) == 0 {
		return "root"
	}
	return "root/" + strings.Join(loc, "/")
}
