// Package codegen runs the code generators behind the CLI commands and writes
// their artifacts.
package codegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyldmo/shopify-codegen/pkg/style"
)

// Codegen names a generator subcommand.
type Codegen string

const (
	// Liquid generates TypeScript section types from templates.
	Liquid Codegen = "liquid"
	// CSS generates stylesheet variables from settings_data.json.
	CSS Codegen = "css"
)

// Available lists the generators in display order.
func Available() []string {
	return []string{string(Liquid), string(CSS)}
}

// UnknownCodegenMessage is printed for a subcommand that is not a generator.
func UnknownCodegenMessage(name string) string {
	return fmt.Sprintf("Unknown codegen %q. Available codegens: %s", name, strings.Join(Available(), ", "))
}

// WriteOutput writes content to path, or to out when path is empty. After a file
// write a success line naming the path relative to the working directory is
// printed to out.
func WriteOutput(out io.Writer, codegen Codegen, content, path string) error {
	if path == "" {
		_, err := io.WriteString(out, content)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return style.PrintSuccess(out, "Generated %s written to %s", codegen, displayPath(path))
}

// displayPath returns path relative to the working directory when possible.
func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}
