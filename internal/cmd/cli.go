// Package cmd defines the tapwright CLI commands.
package cmd

// LogOptions configure the CLI logger, shared by all commands.
type LogOptions struct {
	Level string `help:"Log level (debug, info, warn, error)" default:"info" env:"TAPWRIGHT_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"TAPWRIGHT_LOG_FILE"`
}

// CLI is the root command tree parsed by kong.
type CLI struct {
	Log    LogOptions `embed:"" prefix:"log."`
	Config string     `help:"Path to a configuration file" env:"TAPWRIGHT_CONFIG"`

	Type      TypeCmd       `cmd:"" help:"Type text into the focused window"`
	Shortcut  ShortcutCmd   `cmd:"" help:"Send a modifier shortcut"`
	Key       KeyCmd        `cmd:"" help:"Press, release or tap a single logical key"`
	Raw       RawCmd        `cmd:"" help:"Inject a raw platform-native key code"`
	SelectAll SelectAllCmd  `cmd:"" name:"select-all" help:"Send the platform select-all shortcut"`
	Palette   PaletteCmd    `cmd:"" help:"Send the platform command-palette shortcut"`
	Keys      KeysCmd       `cmd:"" help:"List logical key names"`
	Cfg       ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
