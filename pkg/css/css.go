// Package css turns a theme's settings_data.json into SCSS or LESS variables.
package css

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dialect is the target stylesheet language.
type Dialect string

const (
	// DialectSCSS emits `$name: value;`.
	DialectSCSS Dialect = "scss"
	// DialectLESS emits `@name: value;`.
	DialectLESS Dialect = "less"
)

var (
	// ErrUnknownDialect is returned for a language other than scss or less.
	ErrUnknownDialect = errors.New("unknown css dialect")
	// ErrNoCurrentSettings is returned when `current` is neither an object nor a known preset name.
	ErrNoCurrentSettings = errors.New("settings data has no usable current settings")
)

// ValidDialects lists the accepted --lang values.
func ValidDialects() []string {
	return []string{string(DialectSCSS), string(DialectLESS)}
}

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case DialectSCSS, DialectLESS:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q, supported: %s", ErrUnknownDialect, s, strings.Join(ValidDialects(), ", "))
	}
}

func (d Dialect) sigil() string {
	if d == DialectLESS {
		return "@"
	}
	return "$"
}

// Settings is the ordered key/value map of theme settings.
type Settings = orderedmap.OrderedMap[string, any]

// SettingsData is the decoded settings_data.json.
type SettingsData struct {
	Current *Settings                  `json:"-"`
	Presets map[string]json.RawMessage `json:"presets"`
}

// Options tweaks how values are rendered.
type Options struct {
	// NormalizeColors rewrites hex colours (#FFF, #A1B2C3) to lower-case #rrggbb.
	NormalizeColors bool
}

var blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)

// StripComments removes /* ... */ comments, which Shopify writes at the top of
// settings_data.json.
func StripComments(data []byte) []byte {
	return blockComment.ReplaceAll(data, nil)
}

// ParseSettingsData decodes settings data. `current` may be the settings object
// itself or the name of an entry in `presets`.
func ParseSettingsData(data []byte) (*SettingsData, error) {
	var raw struct {
		Current json.RawMessage            `json:"current"`
		Presets map[string]json.RawMessage `json:"presets"`
	}
	if err := json.Unmarshal(StripComments(data), &raw); err != nil {
		return nil, fmt.Errorf("parse settings data: %w", err)
	}

	current := bytes.TrimSpace(raw.Current)
	if len(current) == 0 || bytes.Equal(current, []byte("null")) {
		return nil, ErrNoCurrentSettings
	}
	if current[0] == '"' {
		var presetName string
		if err := json.Unmarshal(current, &presetName); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoCurrentSettings, err)
		}
		preset, ok := raw.Presets[presetName]
		if !ok {
			return nil, fmt.Errorf("%w: preset %q not found", ErrNoCurrentSettings, presetName)
		}
		current = preset
	}

	settings := orderedmap.New[string, any]()
	if err := settings.UnmarshalJSON(current); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCurrentSettings, err)
	}
	return &SettingsData{Current: settings, Presets: raw.Presets}, nil
}

// LoadSettingsData reads and decodes the settings file at path.
func LoadSettingsData(path string) (*SettingsData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings data: %w", err)
	}
	return ParseSettingsData(data)
}

// Variables renders one variable per eligible current setting, in file order.
// Eligible settings are non-empty strings that are not URLs, with keys that do not
// mention "font".
func Variables(data *SettingsData, dialect Dialect, opts Options) string {
	var lines []string
	for pair := data.Current.Oldest(); pair != nil; pair = pair.Next() {
		value, ok := pair.Value.(string)
		if !ok || value == "" || strings.Contains(value, "://") {
			continue
		}
		if strings.Contains(pair.Key, "font") {
			continue
		}
		if opts.NormalizeColors {
			value = normalizeColor(value)
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s;", dialect.sigil(), strings.ReplaceAll(pair.Key, "_", "-"), value))
	}
	return strings.Join(lines, "\n")
}

// Generate loads the settings file and renders its variables.
func Generate(path string, dialect Dialect, opts Options) (string, error) {
	data, err := LoadSettingsData(path)
	if err != nil {
		return "", err
	}
	return Variables(data, dialect, opts), nil
}

func normalizeColor(value string) string {
	if !strings.HasPrefix(value, "#") || (len(value) != 4 && len(value) != 7) {
		return value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return value
	}
	return c.Hex()
}
