package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in Loaded.Source.
const SourceEmbedded = "embedded"

// Loaded is the result of Load.
type Loaded struct {
	Config Config
	Source string  // File the config came from, or SourceEmbedded
	Skip   []error // Files that were found but could not be used
}

// Load loads the t2048 configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// A custom path must exist and be valid. Broken files further down the list
// are reported in Loaded.Skip and the search continues.
func Load(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	var res Loaded
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "t2048.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			res.Skip = append(res.Skip, err)
			continue
		}
		res.Config, res.Source = cfg, path
		return res, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		// Embedded file is broken; fall back to the hardcoded copy.
		res.Skip = append(res.Skip, fmt.Errorf("embedded defaults: %w", err))
		cfg = Default()
	}
	res.Config, res.Source = cfg, SourceEmbedded
	return res, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result,
// so a file only needs the settings it changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validColor(c string) bool {
	if c == "" || hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks the log level, every color, and that each command has at
// least one key and no key is bound twice.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %w", ErrInvalidConfig, c.Log.Level, err)
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no keys", ErrInvalidConfig, b.Name)
		}
		for _, k := range b.Keys {
			if k == "" {
				return fmt.Errorf("%w: keys.%s has an empty key", ErrInvalidConfig, b.Name)
			}
			if other, dup := seen[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, other, b.Name)
			}
			seen[k] = b.Name
		}
	}

	for _, nc := range c.Theme.namedColors() {
		if !validColor(nc.Color) {
			return fmt.Errorf("%w: theme.%s %q is not a color", ErrInvalidConfig, nc.Name, nc.Color)
		}
	}

	values := make([]int, 0, len(c.Theme.Tiles))
	for value := range c.Theme.Tiles {
		values = append(values, value)
	}
	slices.Sort(values)
	for _, value := range values {
		if value < 2 || value&(value-1) != 0 {
			return fmt.Errorf("%w: theme.tiles key %d is not a tile value", ErrInvalidConfig, value)
		}
		if col := c.Theme.Tiles[value]; !validColor(col) {
			return fmt.Errorf("%w: theme.tiles.%d %q is not a color", ErrInvalidConfig, value, col)
		}
	}
	return nil
}
