package css

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsData = `/*
 * ------------------------------------------------------------
 * IMPORTANT: The contents of this file are auto-generated.
 * ------------------------------------------------------------
 */
{
  "current": {
    "color_primary": "#000000",
    "color_secondary": "#ffffff",
    "heading_font": "Arial",
    "font_body": "helvetica_n4",
    "spacing_large": "40px",
    "logo": "shopify://shop_images/logo.png",
    "favicon": "",
    "show_cart": true,
    "max_items": 4,
    "sections": { "header": { "type": "header" } }
  },
  "presets": {
    "Default": { "color_primary": "#123456" }
  }
}`

func TestVariablesSCSS(t *testing.T) {
	data, err := ParseSettingsData([]byte(settingsData))
	require.NoError(t, err)

	got := Variables(data, DialectSCSS, Options{})
	assert.Equal(t, "$color-primary: #000000;\n$color-secondary: #ffffff;\n$spacing-large: 40px;", got)
	assert.NotContains(t, got, "font")
}

func TestVariablesLESS(t *testing.T) {
	data, err := ParseSettingsData([]byte(settingsData))
	require.NoError(t, err)

	got := Variables(data, DialectLESS, Options{})
	assert.Equal(t, "@color-primary: #000000;\n@color-secondary: #ffffff;\n@spacing-large: 40px;", got)
}

func TestVariablesKeepFileOrder(t *testing.T) {
	data, err := ParseSettingsData([]byte(`{"current": {"z_last": "1", "a_first": "2", "m_mid": "3"}}`))
	require.NoError(t, err)

	assert.Equal(t, "$z-last: 1;\n$a-first: 2;\n$m-mid: 3;", Variables(data, DialectSCSS, Options{}))
}

func TestVariablesEmpty(t *testing.T) {
	data, err := ParseSettingsData([]byte(`{"current": {"heading_font": "Arial", "flag": false}}`))
	require.NoError(t, err)

	assert.Empty(t, Variables(data, DialectSCSS, Options{}))
}

func TestPresetNameResolution(t *testing.T) {
	data, err := ParseSettingsData([]byte(`{
		"current": "Default",
		"presets": {"Default": {"color_primary": "#123456", "heading_font": "Arial"}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "$color-primary: #123456;", Variables(data, DialectSCSS, Options{}))
}

func TestParseSettingsDataErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		sentinel error
	}{
		{"missing current", `{"presets": {}}`, ErrNoCurrentSettings},
		{"null current", `{"current": null}`, ErrNoCurrentSettings},
		{"unknown preset", `{"current": "Nope", "presets": {}}`, ErrNoCurrentSettings},
		{"array current", `{"current": [1, 2]}`, ErrNoCurrentSettings},
		{"invalid json", `{"current": {`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSettingsData([]byte(tc.input))
			require.Error(t, err)
			if tc.sentinel != nil {
				assert.True(t, errors.Is(err, tc.sentinel), "got %v", err)
			}
		})
	}
}

func TestNormalizeColors(t *testing.T) {
	data, err := ParseSettingsData([]byte(`{"current": {
		"accent": "#FFF",
		"text": "#A1B2C3",
		"bad": "#GGGGGG",
		"size": "12px"
	}}`))
	require.NoError(t, err)

	got := Variables(data, DialectSCSS, Options{NormalizeColors: true})
	assert.Equal(t, "$accent: #ffffff;\n$text: #a1b2c3;\n$bad: #GGGGGG;\n$size: 12px;", got)
}

func TestParseDialect(t *testing.T) {
	for _, in := range []string{"scss", "SCSS", " less "} {
		_, err := ParseDialect(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseDialect("sass")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "settings_data.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(settingsData), 0o644))

	got, err := Generate(path, DialectSCSS, Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "$color-primary: #000000;"))

	_, err = Generate(filepath.Join(t.TempDir(), "missing.json"), DialectSCSS, Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
