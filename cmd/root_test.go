package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithoutCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Empty(t, stdout.String())
}

func TestRunUnknownCodegen(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"graphql"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `Unknown codegen "graphql". Available codegens: liquid, css`)
}

func TestUnknownCommandName(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New(`unknown command "foo" for "shopify-codegen"`), "foo"},
		{errors.New(`unknown command "" for "shopify-codegen"`), ""},
		{errors.New("something else"), ""},
	}
	for _, tt := range tests {
		if got := unknownCommandName(tt.err); got != tt.want {
			t.Errorf("unknownCommandName(%q) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
