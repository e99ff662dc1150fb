package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/peco/linegrep/internal/util"
	"github.com/pelletier/go-toml/v2"
)

// ColorMode specifies when linegrep styles its output
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

func (c *ColorMode) unmarshal(s string) error {
	switch s {
	case "", "auto":
		*c = ColorModeAuto
	case "always":
		*c = ColorModeAlways
	case "never", "none":
		*c = ColorModeNever
	default:
		return fmt.Errorf("invalid Color value %q: must be %q, %q or %q", s, ColorModeAuto, ColorModeAlways, ColorModeNever)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by JSON/YAML/TOML decoders).
func (c *ColorMode) UnmarshalText(b []byte) error {
	return c.unmarshal(string(b))
}

// UnmarshalFlag implements go-flags Unmarshaler (used by CLI flag parsing).
func (c *ColorMode) UnmarshalFlag(s string) error {
	return c.unmarshal(s)
}

// Config holds all the data that can be configured in the
// external configuration file
type Config struct {
	Style StyleSet  `json:"Style" yaml:"Style" toml:"Style"`
	Color ColorMode `json:"Color" yaml:"Color" toml:"Color"`

	// Pattern defaults. Command line flags can only turn these on.
	IgnoreCase   bool `json:"IgnoreCase" yaml:"IgnoreCase" toml:"IgnoreCase"`
	SmartCase    bool `json:"SmartCase" yaml:"SmartCase" toml:"SmartCase"`
	FixedStrings bool `json:"FixedStrings" yaml:"FixedStrings" toml:"FixedStrings"`

	// Column prints the display column of the first match
	Column bool `json:"Column" yaml:"Column" toml:"Column"`

	// MaxLineSize is the longest line, in bytes, that linegrep accepts.
	// Zero means no limit.
	MaxLineSize int `json:"MaxLineSize" yaml:"MaxLineSize" toml:"MaxLineSize"`

	// BufferSize is the size of the read buffer, in bytes
	BufferSize int `json:"BufferSize" yaml:"BufferSize" toml:"BufferSize"`
}

var homedirFunc = util.Homedir

// Init initializes the Config with default values
func (c *Config) Init() error {
	c.Style.Init()
	c.Color = ColorModeAuto
	return nil
}

// ReadFilename reads the config from the given file, and
// does the appropriate processing, if any
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(c)
		if err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	case ".toml":
		err = toml.NewDecoder(f).Decode(c)
		if err != nil {
			return fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		err = json.NewDecoder(f).Decode(c)
		if err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	}

	return c.Validate()
}

// Validate checks for values that cannot be used
func (c *Config) Validate() error {
	if c.MaxLineSize < 0 {
		return fmt.Errorf("invalid MaxLineSize %d: must not be negative", c.MaxLineSize)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("invalid BufferSize %d: must not be negative", c.BufferSize)
	}
	return nil
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// DefaultConfigLocator searches for a config file with one of the known
// filenames (config.json, config.yaml, config.yml, config.toml) in the
// given directory.
var DefaultConfigLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", fmt.Errorf("config file not found in %s", dir)
})

// ErrRcfileNotFound is returned by LocateRcfile when no config file exists
var ErrRcfileNotFound = errors.New("config file not found")

// LocateRcfile attempts to find the config file in various locations
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/linegrep/config.{json,yaml,yml,toml}
	//    $XDG_CONFIG_DIR/linegrep/config.{json,yaml,yml,toml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.linegrep/config.{json,yaml,yml,toml}

	home, uErr := homedirFunc()

	// Try dir supplied via env var
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, "linegrep")); err == nil {
			return file, nil
		}
	} else if uErr == nil { // silently ignore failure for homedir()
		// Try "default" XDG location, is user is available
		if file, err := locater.Locate(filepath.Join(home, ".config", "linegrep")); err == nil {
			return file, nil
		}
	}

	// XDG_CONFIG_DIRS is ":" separated on unix. Use filepath.ListSeparator
	// so that windows style lists work too
	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, fmt.Sprintf("%c", filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, "linegrep")); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".linegrep")); err == nil {
			return file, nil
		}
	}

	return "", ErrRcfileNotFound
}
