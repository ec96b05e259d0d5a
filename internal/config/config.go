// Package config provides YAML-based configuration loading for t2048:
// presentation settings only (keys, colors, logging, seed). Game rules are fixed.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete t2048 configuration.
type Config struct {
	Seed  int64     `yaml:"seed"`
	Log   LogConfig `yaml:"log"`
	Keys  KeyConfig `yaml:"keys"`
	Theme Theme     `yaml:"theme"`
}

// LogConfig controls the logger built by the CLI.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = front end default
}

// KeyConfig lists the Bubble Tea key names bound to each command.
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	NewGame []string `yaml:"new_game"`
	Help    []string `yaml:"help"`
	Quit    []string `yaml:"quit"`
}

// Bindings returns the key lists paired with their command names, in display order.
func (k KeyConfig) Bindings() []NamedKeys {
	return []NamedKeys{
		{Name: "left", Keys: k.Left},
		{Name: "right", Keys: k.Right},
		{Name: "up", Keys: k.Up},
		{Name: "down", Keys: k.Down},
		{Name: "new_game", Keys: k.NewGame},
		{Name: "help", Keys: k.Help},
		{Name: "quit", Keys: k.Quit},
	}
}

// NamedKeys is one command and its keys.
type NamedKeys struct {
	Name string
	Keys []string
}

// Theme holds the colors of the interface and of each tile value.
// A color is "#rrggbb", an ANSI code "0".."255", or empty for the terminal default.
type Theme struct {
	Frame    string         `yaml:"frame"`
	Title    string         `yaml:"title"`
	Text     string         `yaml:"text"`
	Overlay  string         `yaml:"overlay"`
	TileText string         `yaml:"tile_text"`
	Empty    string         `yaml:"empty"`
	Super    string         `yaml:"super"` // Tiles above 2048
	Tiles    map[int]string `yaml:"tiles"`
}

type namedColor struct {
	Name  string
	Color string
}

// namedColors lists the interface colors in file order.
func (t Theme) namedColors() []namedColor {
	return []namedColor{
		{Name: "frame", Color: t.Frame},
		{Name: "title", Color: t.Title},
		{Name: "text", Color: t.Text},
		{Name: "overlay", Color: t.Overlay},
		{Name: "tile_text", Color: t.TileText},
		{Name: "empty", Color: t.Empty},
		{Name: "super", Color: t.Super},
	}
}

// TileColor returns the background color for a tile value.
func (t Theme) TileColor(value int) string {
	if value == 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Super
}
