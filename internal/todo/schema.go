package todo

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

var documentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("todo.schema.json", schemaSource)
})

// validateDocument checks a decoded JSON value against the list schema. On
// failure it returns the location of the first offending value as a dotted
// path ("entries[1].status") together with the reason.
func validateDocument(doc any) (string, error) {
	schema, err := documentSchema()
	if err != nil {
		return "", fmt.Errorf("compile todo schema: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return "", nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return "", err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return jsonPointerToPath(ve.InstanceLocation), errors.New(ve.Message)
}

func jsonPointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if isIndex(part) {
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
