package liquid

import (
	"strings"
	"unicode"

	"github.com/hyldmo/shopify-codegen/pkg/models"
)

const (
	sectionSuffix = "Section"
	blockSuffix   = "Block"
	appSuffix     = "App"
)

// Canonicalize turns a raw identifier (file name, block type, i18n key) into PascalCase.
//
// A leading "t:" or "@" is dropped, each of - _ : . and whitespace separates words,
// the first letter of every word is upper-cased and the words are joined. Letters
// that are not at a word start keep their case.
func Canonicalize(identifier string) string {
	s := strings.TrimPrefix(identifier, "t:")
	s = strings.TrimPrefix(s, "@")

	var b strings.Builder
	b.Grow(len(s))
	prevWord := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ':' || r == '.' || unicode.IsSpace(r):
			prevWord = false
		case isWordRune(r):
			if !prevWord {
				r = unicode.ToUpper(r)
			}
			b.WriteRune(r)
			prevWord = true
		default:
			b.WriteRune(r)
			prevWord = false
		}
	}
	return b.String()
}

// isWordRune matches the ASCII word class [A-Za-z0-9].
func isWordRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// SectionBaseName is the canonical type name of a section file without any suffix.
// Block type names are built on top of it.
func SectionBaseName(fileName, extension string) string {
	return Canonicalize(strings.TrimSuffix(fileName, extension))
}

// SectionTypeName returns the interface name of the section in fileBase.
// Under prefix mode a "Section" suffix is added unless already present.
func SectionTypeName(fileBase string, prefix bool) string {
	name := Canonicalize(fileBase)
	if prefix {
		name = withSuffix(name, sectionSuffix)
	}
	return name
}

// BlockTypeName returns the interface name of a block of blockType inside the section
// whose un-suffixed canonical name is sectionBase.
func BlockTypeName(blockType, sectionBase string, prefix bool) string {
	var name string
	if blockType == models.AppBlockType {
		name = sectionBase + appSuffix
	} else {
		name = sectionBase + Canonicalize(blockType)
	}
	if prefix {
		name = withSuffix(name, blockSuffix)
	}
	return name
}

func withSuffix(name, suffix string) string {
	if strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}
