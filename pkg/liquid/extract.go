package liquid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/hyldmo/shopify-codegen/pkg/models"
)

// schemaTag matches the first {% schema %} ... {% endschema %} region, including
// the whitespace-control variants {%- schema -%}.
var schemaTag = regexp.MustCompile(`\{%-?\s*schema\s*-?%\}([\s\S]*?)\{%-?\s*endschema\s*-?%\}`)

// SchemaError reports a schema block that is present but not valid JSON.
type SchemaError struct {
	File string // template file name
	Err  error  // underlying decode error
}

// Error implements error.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to extract schema in %s: %v", e.File, e.Err)
}

// Unwrap returns the decode error.
func (e *SchemaError) Unwrap() error { return e.Err }

// ExtractSchema returns the section schema embedded in a template.
//
// A template without a schema block (or with an empty one) yields (nil, nil). A block
// that fails to parse yields a *SchemaError; callers skip the file.
func ExtractSchema(content []byte, fileName string) (*models.SectionSchema, error) {
	m := schemaTag.FindSubmatch(content)
	if m == nil {
		return nil, nil
	}
	body := bytes.TrimSpace(m[1])
	if len(body) == 0 {
		return nil, nil
	}

	var schema models.SectionSchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return nil, &SchemaError{File: fileName, Err: err}
	}
	return &schema, nil
}
