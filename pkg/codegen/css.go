package codegen

import (
	"io"

	appctx "github.com/hyldmo/shopify-codegen/pkg/context"
	"github.com/hyldmo/shopify-codegen/pkg/css"
)

// CSSOptions are the flags of the css command.
type CSSOptions struct {
	Lang            string
	ConfigPath      string
	Output          string
	NormalizeColors bool
}

// NewCSSOptions reads the css section of the loaded config.
func NewCSSOptions(ctx *appctx.AppContext) CSSOptions {
	c := ctx.Config.CSS
	return CSSOptions{
		Lang:            c.Lang,
		ConfigPath:      c.ConfigPath,
		Output:          c.Output,
		NormalizeColors: c.NormalizeColors,
	}
}

// ExecuteCSSCommand renders the theme settings as stylesheet variables.
func ExecuteCSSCommand(ctx *appctx.AppContext, opts CSSOptions, out io.Writer) error {
	dialect, err := css.ParseDialect(opts.Lang)
	if err != nil {
		return err
	}
	vars, err := css.Generate(opts.ConfigPath, dialect, css.Options{NormalizeColors: opts.NormalizeColors})
	if err != nil {
		return err
	}
	ctx.Logger.Debug().Str("lang", string(dialect)).Str("settings", opts.ConfigPath).Msg("css variables generated")
	return WriteOutput(out, CSS, vars, opts.Output)
}
