package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/tapwright/tapwright/injector"
	"github.com/tapwright/tapwright/key"
)

type ShortcutCmd struct {
	Key      string        `arg:"" help:"Main key name (see 'tapwright keys')"`
	Mod      []string      `short:"m" help:"Modifier keys, pressed in the given order"`
	Hold     time.Duration `help:"How long the main key stays down" default:"100ms"`
	InterKey time.Duration `name:"inter-key" help:"Pause between successive key events" default:"50ms"`
	Settle   time.Duration `help:"Pause after the last release" default:"200ms"`
	Wait     time.Duration `help:"Countdown before the shortcut is sent" default:"0s"`
}

func (c *ShortcutCmd) Run(logger *slog.Logger) error {
	main, err := key.Parse(c.Key)
	if err != nil {
		return err
	}
	mods := make([]key.Key, 0, len(c.Mod))
	for _, name := range c.Mod {
		m, err := key.Parse(name)
		if err != nil {
			return err
		}
		if !m.IsModifier() {
			logger.Warn("key used as modifier", "key", m)
		}
		mods = append(mods, m)
	}

	sc := injector.Shortcut{
		Key:       main,
		Modifiers: mods,
		Hold:      c.Hold,
		InterKey:  c.InterKey,
		Settle:    c.Settle,
	}
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		return in.SendShortcut(ctx, sc)
	})
}

type SelectAllCmd struct {
	Wait time.Duration `help:"Countdown before the shortcut is sent" default:"0s"`
}

func (c *SelectAllCmd) Run(logger *slog.Logger) error {
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		return in.SelectAll(ctx)
	})
}

type PaletteCmd struct {
	Wait time.Duration `help:"Countdown before the shortcut is sent" default:"0s"`
}

func (c *PaletteCmd) Run(logger *slog.Logger) error {
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		return in.CommandPalette(ctx)
	})
}
