package models

import (
	"bytes"
	"encoding/json"
)

// SettingKind is the `type` field of a setting descriptor in a section schema.
type SettingKind string

// Setting kinds understood by the theme editor.
const (
	KindText        SettingKind = "text"
	KindTextarea    SettingKind = "textarea"
	KindHTML        SettingKind = "html"
	KindURL         SettingKind = "url"
	KindProduct     SettingKind = "product"
	KindCollection  SettingKind = "collection"
	KindPage        SettingKind = "page"
	KindImagePicker SettingKind = "image_picker"
	KindRichText    SettingKind = "richtext"
	KindColor       SettingKind = "color"
	KindCheckbox    SettingKind = "checkbox"
	KindRange       SettingKind = "range"
	KindNumber      SettingKind = "number"
	KindSelect      SettingKind = "select"
	KindVideoURL    SettingKind = "video_url"
	KindHeader      SettingKind = "header"
	KindVideo       SettingKind = "video"
)

// AppBlockType marks a platform-managed app block.
const AppBlockType = "@app"

// DefaultSectionTag is used when a section schema has no tag.
const DefaultSectionTag = "section"

// Setting is one configurable field of a section or block.
// The set of implementations is closed; see the *Setting types in this file.
type Setting interface {
	// Kind returns the setting's `type` as written in the schema.
	Kind() SettingKind
	// SettingID returns the `id`, empty for header settings and malformed input.
	SettingID() string
	// HasDefault reports whether the descriptor carried a `default` key.
	HasDefault() bool

	sealed()
}

// SettingBase holds the fields shared by every data-carrying setting.
type SettingBase struct {
	ID      string `json:"id"`
	Default any    `json:"default,omitempty"`

	hasDefault bool
}

// NewSettingBase builds a SettingBase. A nil def still counts as a default when hasDefault is set.
func NewSettingBase(id string, def any, hasDefault bool) SettingBase {
	return SettingBase{ID: id, Default: def, hasDefault: hasDefault}
}

// SettingID implements Setting.
func (b SettingBase) SettingID() string { return b.ID }

// HasDefault implements Setting.
func (b SettingBase) HasDefault() bool { return b.hasDefault }

func (SettingBase) sealed() {}

// StringSetting covers every kind whose value is a plain string:
// text, textarea, html, url, product, collection, page, image_picker, color and video.
type StringSetting struct {
	SettingBase
	Type SettingKind `json:"type"`
}

// Kind implements Setting.
func (s StringSetting) Kind() SettingKind { return s.Type }

// RichTextSetting is a richtext field; its value is pre-sanitized markup.
type RichTextSetting struct {
	SettingBase
}

// Kind implements Setting.
func (RichTextSetting) Kind() SettingKind { return KindRichText }

// CheckboxSetting is a boolean toggle.
type CheckboxSetting struct {
	SettingBase
}

// Kind implements Setting.
func (CheckboxSetting) Kind() SettingKind { return KindCheckbox }

// NumberSetting covers range and number kinds.
type NumberSetting struct {
	SettingBase
	Type SettingKind `json:"type"`
	Min  *float64    `json:"min,omitempty"`
	Max  *float64    `json:"max,omitempty"`
	Step *float64    `json:"step,omitempty"`
}

// Kind implements Setting.
func (s NumberSetting) Kind() SettingKind { return s.Type }

// SelectOption is one entry of a select setting. Label is editor-only.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SelectSetting is a dropdown over a fixed list of values.
type SelectSetting struct {
	SettingBase
	Options []SelectOption `json:"options,omitempty"`
}

// Kind implements Setting.
func (SelectSetting) Kind() SettingKind { return KindSelect }

// VideoURLSetting is a hosted video reference (YouTube, Vimeo).
type VideoURLSetting struct {
	SettingBase
	Accept []string `json:"accept,omitempty"`
}

// Kind implements Setting.
func (VideoURLSetting) Kind() SettingKind { return KindVideoURL }

// HeaderSetting is a display-only divider in the editor sidebar.
type HeaderSetting struct {
	Content string `json:"content"`
}

// Kind implements Setting.
func (HeaderSetting) Kind() SettingKind { return KindHeader }

// SettingID implements Setting.
func (HeaderSetting) SettingID() string { return "" }

// HasDefault implements Setting.
func (HeaderSetting) HasDefault() bool { return false }

func (HeaderSetting) sealed() {}

// UnknownSetting keeps a descriptor whose kind this tool does not recognise.
type UnknownSetting struct {
	SettingBase
	Type SettingKind `json:"type"`
}

// Kind implements Setting.
func (s UnknownSetting) Kind() SettingKind { return s.Type }

// SettingList is the `settings` array of a section or block.
// IsList is false when the key was missing or held something other than an array.
type SettingList struct {
	Items  []Setting
	IsList bool
}

// UnmarshalJSON decodes each element into its Setting variant. Elements of the wrong
// shape decode as UnknownSetting instead of failing the whole schema.
func (l *SettingList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = SettingList{}
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = SettingList{}
		return nil
	}
	items := make([]Setting, 0, len(raw))
	for _, r := range raw {
		items = append(items, decodeSetting(r))
	}
	*l = SettingList{Items: items, IsList: true}
	return nil
}

// MarshalJSON writes the list back as a plain array.
func (l SettingList) MarshalJSON() ([]byte, error) {
	if !l.IsList {
		return []byte("null"), nil
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// Properties returns the settings that become type properties: non-header and with an id.
func (l SettingList) Properties() []Setting {
	var out []Setting
	for _, s := range l.Items {
		if s.Kind() == KindHeader || s.SettingID() == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// rawSetting is the loose wire shape every descriptor is first decoded into.
type rawSetting struct {
	Type    json.RawMessage `json:"type"`
	ID      json.RawMessage `json:"id"`
	Default json.RawMessage `json:"default"`
	Min     json.RawMessage `json:"min"`
	Max     json.RawMessage `json:"max"`
	Step    json.RawMessage `json:"step"`
	Options json.RawMessage `json:"options"`
	Accept  json.RawMessage `json:"accept"`
	Content json.RawMessage `json:"content"`
}

func decodeSetting(data json.RawMessage) Setting {
	var r rawSetting
	if err := json.Unmarshal(data, &r); err != nil {
		return UnknownSetting{}
	}

	base := SettingBase{ID: looseString(r.ID)}
	if r.Default != nil {
		base.hasDefault = true
		_ = json.Unmarshal(r.Default, &base.Default)
	}

	kind := SettingKind(looseString(r.Type))
	switch kind {
	case KindText, KindTextarea, KindHTML, KindURL, KindProduct, KindCollection,
		KindPage, KindImagePicker, KindColor, KindVideo:
		return StringSetting{SettingBase: base, Type: kind}
	case KindRichText:
		return RichTextSetting{SettingBase: base}
	case KindCheckbox:
		return CheckboxSetting{SettingBase: base}
	case KindRange, KindNumber:
		return NumberSetting{
			SettingBase: base,
			Type:        kind,
			Min:         looseNumber(r.Min),
			Max:         looseNumber(r.Max),
			Step:        looseNumber(r.Step),
		}
	case KindSelect:
		return SelectSetting{SettingBase: base, Options: looseOptions(r.Options)}
	case KindVideoURL:
		var accept []string
		_ = json.Unmarshal(r.Accept, &accept)
		return VideoURLSetting{SettingBase: base, Accept: accept}
	case KindHeader:
		return HeaderSetting{Content: looseString(r.Content)}
	default:
		return UnknownSetting{SettingBase: base, Type: kind}
	}
}

// BlockSchema is one entry of a section's `blocks` array.
type BlockSchema struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Settings SettingList `json:"settings"`
}

// IsApp reports whether the block is the platform-managed @app block.
func (b BlockSchema) IsApp() bool { return b.Type == AppBlockType }

// UnmarshalJSON tolerates wrong-typed fields.
func (b *BlockSchema) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     json.RawMessage `json:"name"`
		Type     json.RawMessage `json:"type"`
		Settings SettingList     `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = BlockSchema{}
		return nil
	}
	*b = BlockSchema{
		Name:     looseString(raw.Name),
		Type:     looseString(raw.Type),
		Settings: raw.Settings,
	}
	return nil
}

// SectionSchema is the JSON document embedded in a section template.
type SectionSchema struct {
	Name     string          `json:"name"`
	Tag      string          `json:"tag,omitempty"`
	Class    string          `json:"class,omitempty"`
	Settings SettingList     `json:"settings"`
	Blocks   []BlockSchema   `json:"blocks,omitempty"`
	Presets  json.RawMessage `json:"presets,omitempty"`
}

// TagOrDefault returns the wrapper tag used when rendering the section.
func (s *SectionSchema) TagOrDefault() string {
	if s.Tag == "" {
		return DefaultSectionTag
	}
	return s.Tag
}

// UnmarshalJSON tolerates wrong-typed fields; only invalid JSON is an error.
func (s *SectionSchema) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     json.RawMessage `json:"name"`
		Tag      json.RawMessage `json:"tag"`
		Class    json.RawMessage `json:"class"`
		Settings SettingList     `json:"settings"`
		Blocks   json.RawMessage `json:"blocks"`
		Presets  json.RawMessage `json:"presets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// valid JSON that is not an object (e.g. an array): degrade to an empty schema
		*s = SectionSchema{}
		return nil
	}
	var blocks []BlockSchema
	if err := json.Unmarshal(raw.Blocks, &blocks); err != nil {
		blocks = nil
	}
	*s = SectionSchema{
		Name:     looseString(raw.Name),
		Tag:      looseString(raw.Tag),
		Class:    looseString(raw.Class),
		Settings: raw.Settings,
		Blocks:   blocks,
		Presets:  raw.Presets,
	}
	return nil
}

func looseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func looseNumber(raw json.RawMessage) *float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

func looseOptions(raw json.RawMessage) []SelectOption {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	opts := make([]SelectOption, 0, len(items))
	for _, item := range items {
		var o struct {
			Value json.RawMessage `json:"value"`
			Label json.RawMessage `json:"label"`
		}
		if err := json.Unmarshal(item, &o); err != nil {
			continue
		}
		opts = append(opts, SelectOption{Value: looseScalar(o.Value), Label: looseString(o.Label)})
	}
	return opts
}

// looseScalar reads a string, or the literal text of a number or boolean.
func looseScalar(raw json.RawMessage) string {
	if s := looseString(raw); s != "" {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case float64, bool:
		return string(bytes.TrimSpace(raw))
	}
	return ""
}
