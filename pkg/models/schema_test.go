package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingListDecode(t *testing.T) {
	var list SettingList
	require.NoError(t, json.Unmarshal([]byte(`[
		{"type": "header", "content": "Layout"},
		{"type": "text", "id": "title", "default": "Hi"},
		{"type": "range", "id": "width", "min": 0, "max": 100, "step": 10},
		{"type": "select", "id": "size", "options": [{"value": "s", "label": "S"}, {"value": 2, "label": "Two"}]},
		{"type": "video_url", "id": "video", "accept": ["youtube"]},
		{"type": "richtext", "id": "body"},
		{"type": "checkbox", "id": "flag", "default": null},
		{"type": "metaobject", "id": "meta"},
		"not an object"
	]`), &list))

	require.True(t, list.IsList)
	require.Len(t, list.Items, 9)

	assert.Equal(t, KindHeader, list.Items[0].Kind())

	text, ok := list.Items[1].(StringSetting)
	require.True(t, ok)
	assert.Equal(t, KindText, text.Kind())
	assert.Equal(t, "Hi", text.Default)
	assert.True(t, text.HasDefault())

	num, ok := list.Items[2].(NumberSetting)
	require.True(t, ok)
	require.NotNil(t, num.Max)
	assert.Equal(t, 100.0, *num.Max)
	assert.False(t, num.HasDefault())

	sel, ok := list.Items[3].(SelectSetting)
	require.True(t, ok)
	assert.Equal(t, []SelectOption{{Value: "s", Label: "S"}, {Value: "2", Label: "Two"}}, sel.Options)

	video, ok := list.Items[4].(VideoURLSetting)
	require.True(t, ok)
	assert.Equal(t, []string{"youtube"}, video.Accept)

	assert.IsType(t, RichTextSetting{}, list.Items[5])
	assert.True(t, list.Items[6].HasDefault(), "an explicit null default still counts as a default")
	assert.Equal(t, SettingKind("metaobject"), list.Items[7].Kind())
	assert.IsType(t, UnknownSetting{}, list.Items[8])
}

func TestSettingListNotAList(t *testing.T) {
	for _, raw := range []string{`null`, `{"a": 1}`, `"text"`, `3`} {
		var list SettingList
		require.NoError(t, json.Unmarshal([]byte(raw), &list), raw)
		assert.False(t, list.IsList, raw)
		assert.Empty(t, list.Items, raw)
	}
}

func TestSettingListProperties(t *testing.T) {
	var list SettingList
	require.NoError(t, json.Unmarshal([]byte(`[
		{"type": "header", "content": "x"},
		{"type": "text"},
		{"type": "text", "id": "kept"}
	]`), &list))

	props := list.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "kept", props[0].SettingID())
}

func TestSectionSchemaDecode(t *testing.T) {
	var s SectionSchema
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Hero",
		"class": "hero",
		"settings": [],
		"blocks": [{"type": "@app"}, {"type": "slide", "name": 5, "settings": []}],
		"presets": [{"name": "Hero"}]
	}`), &s))

	assert.Equal(t, "Hero", s.Name)
	assert.Equal(t, "hero", s.Class)
	assert.Equal(t, DefaultSectionTag, s.TagOrDefault())
	assert.True(t, s.Settings.IsList)
	require.Len(t, s.Blocks, 2)
	assert.True(t, s.Blocks[0].IsApp())
	assert.False(t, s.Blocks[0].Settings.IsList)
	assert.Equal(t, "slide", s.Blocks[1].Type)
	assert.Empty(t, s.Blocks[1].Name)
	assert.NotEmpty(t, s.Presets)
}

func TestSectionSchemaWrongTypes(t *testing.T) {
	var s SectionSchema
	require.NoError(t, json.Unmarshal([]byte(`{"name": ["x"], "tag": 1, "blocks": "nope"}`), &s))

	assert.Empty(t, s.Name)
	assert.Equal(t, DefaultSectionTag, s.TagOrDefault())
	assert.Nil(t, s.Blocks)
	assert.False(t, s.Settings.IsList)
}

func TestSettingListJSONSchema(t *testing.T) {
	s := SettingList{}.JSONSchema()
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	_, ok := s.Items.Properties.Get("type")
	assert.True(t, ok)
	assert.Len(t, SettingKinds(), 17)
}
