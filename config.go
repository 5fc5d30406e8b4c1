package screenspace

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultDoubleClickInterval = 500 * time.Millisecond
	defaultDoubleClickDistance = 4.0 // pixels
)

// Config configures a Handler and the hosts that synthesize double-clicks.
// Zero fields fall back to their defaults.
type Config struct {
	// ClickTolerance is the accumulated travel in pixels below which a
	// release also fires a click. Default 5.
	ClickTolerance float64
	// DoubleClickInterval is the longest gap between two releases that
	// still counts as a double-click. Default 500ms.
	DoubleClickInterval time.Duration
	// DoubleClickDistance is the farthest two releases may be apart and
	// still count as a double-click. Default 4.
	DoubleClickDistance float64
	// Debug logs every produced event to stderr.
	Debug bool
	// Surface makes coordinates local. Nil uses host coordinates unchanged.
	Surface Surface
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ClickTolerance:      defaultClickTolerance,
		DoubleClickInterval: defaultDoubleClickInterval,
		DoubleClickDistance: defaultDoubleClickDistance,
	}
}

func (c Config) withDefaults() Config {
	if c.ClickTolerance <= 0 {
		c.ClickTolerance = defaultClickTolerance
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClickInterval
	}
	if c.DoubleClickDistance <= 0 {
		c.DoubleClickDistance = defaultDoubleClickDistance
	}
	return c
}

// configFile is the TOML layout of a configuration file.
type configFile struct {
	ClickTolerance      float64 `toml:"click_tolerance"`
	DoubleClickMillis   int     `toml:"double_click_ms"`
	DoubleClickDistance float64 `toml:"double_click_distance"`
	Debug               bool    `toml:"debug"`
}

// DecodeConfig parses a TOML configuration:
//
//	click_tolerance = 5.0
//	double_click_ms = 500
//	double_click_distance = 4.0
//	debug = false
func DecodeConfig(data []byte) (Config, error) {
	var f configFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return f.toConfig(md)
}

// LoadConfig reads and parses the TOML configuration file at path.
func LoadConfig(path string) (Config, error) {
	var f configFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f.toConfig(md)
}

func (f configFile) toConfig(md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if f.ClickTolerance < 0 {
		return Config{}, fmt.Errorf("parse config: click_tolerance must not be negative, got %v", f.ClickTolerance)
	}
	if f.DoubleClickMillis < 0 {
		return Config{}, fmt.Errorf("parse config: double_click_ms must not be negative, got %d", f.DoubleClickMillis)
	}
	if f.DoubleClickDistance < 0 {
		return Config{}, fmt.Errorf("parse config: double_click_distance must not be negative, got %v", f.DoubleClickDistance)
	}
	c := Config{
		ClickTolerance:      f.ClickTolerance,
		DoubleClickInterval: time.Duration(f.DoubleClickMillis) * time.Millisecond,
		DoubleClickDistance: f.DoubleClickDistance,
		Debug:               f.Debug,
	}
	return c.withDefaults(), nil
}
