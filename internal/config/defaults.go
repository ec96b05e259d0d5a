package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches defaults/t2048.yaml.
func Default() Config {
	return Config{
		Seed: 0,
		Log: LogConfig{
			Level: "warn",
		},
		Keys: KeyConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			NewGame: []string{"n"},
			Help:    []string{"?"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Theme: Theme{
			Frame:    "#bbada0",
			Title:    "#edc22e",
			Text:     "",
			Overlay:  "#f65e3b",
			TileText: "#000000",
			Empty:    "#c0c0c0",
			Super:    "#cdc1b4",
			Tiles: map[int]string{
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
		},
	}
}
