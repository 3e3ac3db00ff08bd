package codegen

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	appctx "github.com/hyldmo/shopify-codegen/pkg/context"
	"github.com/hyldmo/shopify-codegen/pkg/liquid"
	"github.com/hyldmo/shopify-codegen/pkg/utils/hotload"
)

// LiquidOptions are the flags of the liquid command.
type LiquidOptions struct {
	Dir         string
	Output      string
	Extension   string
	Prefix      bool
	Concurrency int

	Watch          bool
	Debounce       time.Duration
	IgnorePatterns []string
}

// NewLiquidOptions reads the liquid and watch sections of the loaded config.
func NewLiquidOptions(ctx *appctx.AppContext) LiquidOptions {
	c := ctx.Config
	return LiquidOptions{
		Dir:            c.Liquid.Dir,
		Output:         c.Liquid.Output,
		Extension:      c.Liquid.Extension,
		Prefix:         c.Liquid.Prefix,
		Concurrency:    c.Liquid.Concurrency,
		Debounce:       time.Duration(c.Watch.Debounce) * time.Millisecond,
		IgnorePatterns: c.Watch.IgnorePatterns,
	}
}

func (o LiquidOptions) generatorOptions(ctx *appctx.AppContext) liquid.Options {
	return liquid.Options{
		Dir:         o.Dir,
		Extension:   o.Extension,
		Prefix:      o.Prefix,
		Concurrency: o.Concurrency,
		Logger:      ctx.Logger,
	}
}

// ExecuteLiquidCommand generates the section types once, then keeps regenerating
// on template changes when opts.Watch is set.
func ExecuteLiquidCommand(ctx *appctx.AppContext, opts LiquidOptions, out io.Writer) error {
	if err := generateLiquid(ctx, ctx.Context, opts, out); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	watchCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Logger.Info().Str("dir", opts.Dir).Msg("watching section templates, press Ctrl+C to stop")
	return hotload.Watch(watchCtx, hotload.Options{
		Dir:            opts.Dir,
		Extension:      liquidExtension(opts.Extension),
		IgnorePatterns: opts.IgnorePatterns,
		Debounce:       opts.Debounce,
		Logger:         ctx.Logger,
	}, func() {
		// a failed regeneration is reported and the watch goes on
		if err := generateLiquid(ctx, watchCtx, opts, out); err != nil {
			ctx.Logger.Error().Err(err).Msg("regeneration failed")
		}
	})
}

func generateLiquid(ctx *appctx.AppContext, runCtx context.Context, opts LiquidOptions, out io.Writer) error {
	start := time.Now()
	doc, err := liquid.Generate(runCtx, opts.generatorOptions(ctx))
	if err != nil {
		return err
	}
	ctx.Logger.Debug().Dur("took", time.Since(start)).Msg("section types generated")
	return WriteOutput(out, Liquid, doc, opts.Output)
}

func liquidExtension(ext string) string {
	if ext == "" {
		return liquid.DefaultExtension
	}
	return ext
}
