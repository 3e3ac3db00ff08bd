package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		target Target
		want   []string
	}{
		{TargetConfig, []string{`"liquid"`, `"css"`, `"watch"`, `"config_path"`}},
		{TargetSection, []string{`"Shopify section schema"`, `"settings"`, `"blocks"`, `"richtext"`}},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Generate(tt.target, &buf))
			assert.True(t, json.Valid(buf.Bytes()), "output is not valid JSON")
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestGenerateUnknownTarget(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(Target("theme"), &buf)
	assert.ErrorContains(t, err, "unknown schema target")
	assert.Zero(t, buf.Len())
}
