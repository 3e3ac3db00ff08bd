package models

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SettingKinds lists every kind with a dedicated TypeScript mapping.
func SettingKinds() []SettingKind {
	return []SettingKind{
		KindText, KindTextarea, KindHTML, KindURL, KindProduct, KindCollection, KindPage,
		KindImagePicker, KindRichText, KindColor, KindCheckbox, KindRange, KindNumber,
		KindSelect, KindVideoURL, KindHeader, KindVideo,
	}
}

// JSONSchema describes the list as an array of setting descriptors. Unknown kinds
// are accepted, so `type` is documented rather than constrained.
func (SettingList) JSONSchema() *jsonschema.Schema {
	kinds := make([]any, 0, len(SettingKinds()))
	for _, k := range SettingKinds() {
		kinds = append(kinds, string(k))
	}

	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("type", &jsonschema.Schema{
		Type:        "string",
		Description: "Setting kind",
		Examples:    kinds,
	})
	props.Set("id", &jsonschema.Schema{Type: "string", Description: "Property name in the generated settings type"})
	props.Set("label", &jsonschema.Schema{Type: "string"})
	props.Set("default", &jsonschema.Schema{Description: "A default makes the generated property required"})
	props.Set("min", &jsonschema.Schema{Type: "number"})
	props.Set("max", &jsonschema.Schema{Type: "number"})
	props.Set("step", &jsonschema.Schema{Type: "number"})
	props.Set("options", &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"value"},
			Properties: func() *orderedmap.OrderedMap[string, *jsonschema.Schema] {
				p := orderedmap.New[string, *jsonschema.Schema]()
				p.Set("value", &jsonschema.Schema{Type: "string"})
				p.Set("label", &jsonschema.Schema{Type: "string"})
				return p
			}(),
		},
	})
	props.Set("accept", &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}})
	props.Set("content", &jsonschema.Schema{Type: "string", Description: "Heading text of a header setting"})

	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type:       "object",
			Required:   []string{"type"},
			Properties: props,
		},
	}
}
