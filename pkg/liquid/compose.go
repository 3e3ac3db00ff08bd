package liquid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyldmo/shopify-codegen/pkg/models"
)

// Base types declared once in the document preamble.
const (
	SectionBaseType       = "ShopifySection"
	BlockBaseType         = "Block"
	SectionSettingsType   = "Settings"
	BlockSettingsType     = "BlockSettings"
	SectionsUnionTypeName = "ShopifySections"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ComposeBlockType renders the interface of one block.
//
// ok is false for a custom block whose settings are missing or not a list: such a
// block is not a valid custom block and is not emitted.
func ComposeBlockType(block models.BlockSchema, name string) (decl string, ok bool) {
	if !block.IsApp() && !block.Settings.IsList {
		return "", false
	}

	settings := BlockSettingsType
	if !block.IsApp() {
		settings = composeSettings(block.Settings, BlockSettingsType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s extends %s {\n", name, BlockBaseType)
	fmt.Fprintf(&b, "\ttype: %s\n", quote(block.Type))
	fmt.Fprintf(&b, "\tsettings: %s\n", settings)
	b.WriteString("}")
	return b.String(), true
}

// ComposeSectionType renders the interface of one section. blockNames are the
// distinct type names of the section's valid blocks, in declaration order; when
// empty the blocks property is left to the ShopifySection base.
func ComposeSectionType(schema *models.SectionSchema, name string, blockNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s extends %s {\n", name, SectionBaseType)
	fmt.Fprintf(&b, "\tname: %s\n", quote(schema.Name))
	fmt.Fprintf(&b, "\ttag: %s\n", quote(schema.TagOrDefault()))
	fmt.Fprintf(&b, "\tsettings: %s\n", composeSettings(schema.Settings, SectionSettingsType))
	if blocks := blocksType(blockNames); blocks != "" {
		fmt.Fprintf(&b, "\tblocks: %s\n", blocks)
	}
	b.WriteString("}")
	return b.String()
}

func blocksType(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + "[]"
	default:
		return "Array<" + strings.Join(names, " | ") + ">"
	}
}

// composeSettings renders an inline object type for the settings, or emptyType when
// no setting becomes a property.
func composeSettings(list models.SettingList, emptyType string) string {
	var props []string
	for _, s := range list.Properties() {
		expr, required := MapType(s)
		if expr == "" {
			continue
		}
		marker := "?"
		if required {
			marker = ""
		}
		props = append(props, fmt.Sprintf("\t\t%s%s: %s", propertyKey(s.SettingID()), marker, expr))
	}
	if len(props) == 0 {
		return emptyType
	}
	return "{\n" + strings.Join(props, "\n") + "\n\t}"
}

func propertyKey(id string) string {
	if identifierPattern.MatchString(id) {
		return id
	}
	return quote(id)
}
