package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/tapwright/tapwright/injector"
)

type TypeCmd struct {
	Text  string        `arg:"" help:"ASCII text; letters, digits and spaces, anything else is skipped"`
	Delay time.Duration `help:"Pause between characters" default:"100ms"`
	Wait  time.Duration `help:"Countdown before typing starts" default:"0s"`
}

func (c *TypeCmd) Run(logger *slog.Logger) error {
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		return in.TypeText(ctx, c.Text, c.Delay)
	})
}
