package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tapwright/tapwright/injector"
	"github.com/tapwright/tapwright/key"
)

type KeyCmd struct {
	Name    string        `arg:"" help:"Logical key name (see 'tapwright keys')"`
	Press   bool          `help:"Only press, do not release" xor:"action"`
	Release bool          `help:"Only release" xor:"action"`
	Wait    time.Duration `help:"Countdown before the event is sent" default:"0s"`
}

func (c *KeyCmd) Run(logger *slog.Logger) error {
	k, err := key.Parse(c.Name)
	if err != nil {
		return err
	}
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		switch {
		case c.Press:
			return in.SendKey(k, true)
		case c.Release:
			return in.SendKey(k, false)
		default:
			return in.Tap(k)
		}
	})
}

type RawCmd struct {
	Code    uint32        `arg:"" help:"Platform-native key code"`
	Press   bool          `help:"Only press, do not release" xor:"action"`
	Release bool          `help:"Only release" xor:"action"`
	Wait    time.Duration `help:"Countdown before the event is sent" default:"0s"`
}

func (c *RawCmd) Run(logger *slog.Logger) error {
	return withInjector(logger, c.Wait, func(ctx context.Context, in *injector.Injector) error {
		switch {
		case c.Press:
			return in.SendRaw(c.Code, true)
		case c.Release:
			return in.SendRaw(c.Code, false)
		default:
			if err := in.SendRaw(c.Code, true); err != nil {
				return err
			}
			return in.SendRaw(c.Code, false)
		}
	})
}

type KeysCmd struct{}

func (c *KeysCmd) Run() error {
	for _, k := range key.All() {
		if k.IsModifier() {
			fmt.Printf("%s (modifier)\n", k)
		} else {
			fmt.Println(k)
		}
	}
	return nil
}
