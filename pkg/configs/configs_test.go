package configs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate resets the global viper instance and moves into an empty directory so
// no config file on the machine is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		globalConfig = nil
	})
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sections", config.Liquid.Dir)
	assert.Equal(t, ".liquid", config.Liquid.Extension)
	assert.False(t, config.Liquid.Prefix)
	assert.Equal(t, "scss", config.CSS.Lang)
	assert.Equal(t, "config/settings_data.json", config.CSS.ConfigPath)
	assert.Equal(t, 300, config.Watch.Debounce)
	assert.Equal(t, "console", config.Log.Mode)
	assert.Same(t, config, GetConfig())
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "codegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
liquid:
  dir: theme/sections
  prefix: true
css:
  lang: less
watch:
  debounce: 50
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "theme/sections", config.Liquid.Dir)
	assert.True(t, config.Liquid.Prefix)
	assert.Equal(t, "less", config.CSS.Lang)
	assert.Equal(t, 50, config.Watch.Debounce)
	assert.Equal(t, ".liquid", config.Liquid.Extension, "unset keys keep defaults")
}

func TestLoadConfigSearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shopify-codegen.toml"), []byte("[css]\nnormalize_colors = true\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, config.CSS.NormalizeColors)
}

func TestLoadConfigEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SHOPIFY_CODEGEN_LIQUID_DIR", "from-env")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Liquid.Dir)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("liquid: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := isolate(t)
	_, err := LoadConfig("")
	require.NoError(t, err)

	path := filepath.Join(dir, "out", "config.json")
	require.NoError(t, CreateDefaultConfig(path, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Config
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, "sections", written.Liquid.Dir)

	err = CreateDefaultConfig(path, FormatJSON)
	assert.ErrorContains(t, err, "already exists")

	assert.Error(t, CreateDefaultConfig(filepath.Join(dir, "c.txt"), FormatText))
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", FormatTOML, false},
		{"txt", FormatText, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputData(t *testing.T) {
	data := LiquidConfig{Dir: "sections", Extension: ".liquid"}

	var buf bytes.Buffer
	require.NoError(t, OutputData(data, FormatYAML, &buf, false))
	assert.Contains(t, buf.String(), "dir: sections")

	buf.Reset()
	require.NoError(t, OutputData(data, FormatJSON, &buf, false))
	assert.Contains(t, buf.String(), `"dir": "sections"`)

	buf.Reset()
	require.NoError(t, OutputData(data, FormatTOML, &buf, false))
	assert.Contains(t, buf.String(), "dir = 'sections'")

	assert.Error(t, OutputData(data, OutputFormat("xml"), &buf, false))
}

func TestGetConfigSection(t *testing.T) {
	isolate(t)
	_, err := LoadConfig("")
	require.NoError(t, err)

	section, err := GetConfigSection(viper.GetViper(), "css", true)
	require.NoError(t, err)
	assert.Equal(t, "scss", section.(CSSConfig).Lang)

	_, err = GetConfigSection(viper.GetViper(), "nope", true)
	assert.Error(t, err)
}
