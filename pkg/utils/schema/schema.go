// Package schema generates JSON schemas for the configuration file and for the
// {% schema %} block of section templates.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/hyldmo/shopify-codegen/pkg/configs"
	"github.com/hyldmo/shopify-codegen/pkg/models"
)

// Target selects which schema to generate.
type Target string

const (
	// TargetConfig is the schema of .shopify-codegen.yaml.
	TargetConfig Target = "config"
	// TargetSection is the schema of a section template's {% schema %} JSON.
	TargetSection Target = "section"
)

// ValidTargets lists the accepted targets.
func ValidTargets() []string {
	return []string{string(TargetConfig), string(TargetSection)}
}

// Generate writes the schema for target to out.
func Generate(target Target, out io.Writer) error {
	switch target {
	case TargetConfig:
		return GenConfigSchema(out)
	case TargetSection:
		return GenSectionSchema(out)
	default:
		return fmt.Errorf("unknown schema target %q, supported: %v", target, ValidTargets())
	}
}

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	return write(out, reflector.Reflect(configs.Config{}))
}

// GenSectionSchema generates the JSON schema of a section's {% schema %} block.
func GenSectionSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	s := reflector.Reflect(models.SectionSchema{})
	s.Title = "Shopify section schema"
	return write(out, s)
}

func write(out io.Writer, s *jsonschema.Schema) error {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
