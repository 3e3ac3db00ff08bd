// Package main regenerates the JSON schemas under docs/.
package main

import (
	"os"
	"path/filepath"

	"github.com/hyldmo/shopify-codegen/pkg/utils/schema"
)

//go:generate go run github.com/hyldmo/shopify-codegen/cmd/schema
func main() {
	docs := filepath.Join("..", "..", "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		panic(err)
	}

	for file, target := range map[string]schema.Target{
		"config_schema.json":  schema.TargetConfig,
		"section_schema.json": schema.TargetSection,
	} {
		f, err := os.Create(filepath.Join(docs, file))
		if err != nil {
			panic(err)
		}
		if err := schema.Generate(target, f); err != nil {
			_ = f.Close()
			panic(err)
		}
		if err := f.Close(); err != nil {
			panic(err)
		}
	}
}
