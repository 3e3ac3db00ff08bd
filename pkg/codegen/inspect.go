package codegen

import (
	"io"

	appctx "github.com/hyldmo/shopify-codegen/pkg/context"
	"github.com/hyldmo/shopify-codegen/pkg/inspect"
	"github.com/hyldmo/shopify-codegen/pkg/liquid"
)

// InspectOptions are the flags of the inspect command.
type InspectOptions struct {
	Liquid  LiquidOptions
	Query   string
	Format  string
	Pick    bool
	NoColor bool
}

// ExecuteInspectCommand prints the sections found in the templates directory.
func ExecuteInspectCommand(ctx *appctx.AppContext, opts InspectOptions, out io.Writer) error {
	format := inspect.FormatTree
	if opts.Format != "" {
		f, err := inspect.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
		format = f
	}

	results, err := liquid.Collect(ctx.Context, opts.Liquid.generatorOptions(ctx))
	if err != nil {
		return err
	}
	report := inspect.NewReport(opts.Liquid.Dir, results).Filter(opts.Query)
	if opts.Pick {
		if report, err = inspect.Pick(report); err != nil {
			return err
		}
	}
	return inspect.Render(out, report, format, !opts.NoColor)
}
