package liquid

import (
	"strings"

	"github.com/hyldmo/shopify-codegen/pkg/models"
)

// Type expressions emitted for setting values.
const (
	TypeString   = "string"
	TypeBoolean  = "boolean"
	TypeNumber   = "number"
	TypeAny      = "any"
	TypeRichText = "ShopifyRichText"
	TypeVideoURL = "{ id: string; type: string }"
)

// MapType maps a setting to its TypeScript type expression and whether the property
// is required. An empty expression means the setting is not a property at all.
//
// A property is required when the schema declares a default, and always for checkbox
// and richtext settings: the theme editor materialises a value for those two kinds
// even without a default. Everything else may be left unset by the merchant.
func MapType(setting models.Setting) (string, bool) {
	if setting == nil {
		return "", false
	}
	required := setting.HasDefault()

	switch s := setting.(type) {
	case models.HeaderSetting:
		return "", false
	case models.StringSetting:
		return TypeString, required
	case models.RichTextSetting:
		return TypeRichText, true
	case models.CheckboxSetting:
		return TypeBoolean, true
	case models.NumberSetting:
		return TypeNumber, required
	case models.SelectSetting:
		return selectUnion(s.Options), required
	case models.VideoURLSetting:
		return TypeVideoURL, required
	case models.UnknownSetting:
		return TypeAny, required
	default:
		return TypeAny, required
	}
}

func selectUnion(options []models.SelectOption) string {
	if len(options) == 0 {
		return TypeString
	}
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, quote(opt.Value))
	}
	return strings.Join(values, " | ")
}

// quote renders s as a single-quoted TypeScript string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
