package main

import (
	"github.com/hyldmo/shopify-codegen/cmd"
)

func main() {
	cmd.Execute()
}
