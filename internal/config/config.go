package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// InputConfig holds the key bindings. Multiple keys may map to one action.
type InputConfig struct {
	NavUp     []string `toml:"nav_up"`
	NavDown   []string `toml:"nav_down"`
	NavLeft   []string `toml:"nav_left"`
	NavRight  []string `toml:"nav_right"`
	Confirm   []string `toml:"confirm"`
	Back      []string `toml:"back"`
	SOS       string   `toml:"sos"`
	Call      string   `toml:"call"`
	Chat      string   `toml:"chat"`
	QuickBook string   `toml:"quick_book"`
	Voice     string   `toml:"voice"`
}

// Config is the runtime application configuration loaded from config.toml.
// Display preferences (theme, text size, language) can also be changed from
// the settings screens, in which case the new value is persisted to prefs
// and wins over the file.
type Config struct {
	Theme    string      `toml:"theme"`
	TextSize int         `toml:"text_size"` // 1..3
	Language string      `toml:"language"`  // "en" or "ur"
	Keys     InputConfig `toml:"keys"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    "night",
		TextSize: 2,
		Language: "en",
		Keys: InputConfig{
			NavUp:     []string{"up", "k"},
			NavDown:   []string{"down", "j"},
			NavLeft:   []string{"left", "h"},
			NavRight:  []string{"right", "l"},
			Confirm:   []string{"enter"},
			Back:      []string{"esc", "q"},
			SOS:       "x",
			Call:      "c",
			Chat:      "m",
			QuickBook: "b",
			Voice:     "v",
		},
	}
}

// ApplyDefaults fills any zero-valued field from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.TextSize == 0 {
		c.TextSize = d.TextSize
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if len(c.Keys.NavUp) == 0 {
		c.Keys.NavUp = d.Keys.NavUp
	}
	if len(c.Keys.NavDown) == 0 {
		c.Keys.NavDown = d.Keys.NavDown
	}
	if len(c.Keys.NavLeft) == 0 {
		c.Keys.NavLeft = d.Keys.NavLeft
	}
	if len(c.Keys.NavRight) == 0 {
		c.Keys.NavRight = d.Keys.NavRight
	}
	if len(c.Keys.Confirm) == 0 {
		c.Keys.Confirm = d.Keys.Confirm
	}
	if len(c.Keys.Back) == 0 {
		c.Keys.Back = d.Keys.Back
	}
	if c.Keys.SOS == "" {
		c.Keys.SOS = d.Keys.SOS
	}
	if c.Keys.Call == "" {
		c.Keys.Call = d.Keys.Call
	}
	if c.Keys.Chat == "" {
		c.Keys.Chat = d.Keys.Chat
	}
	if c.Keys.QuickBook == "" {
		c.Keys.QuickBook = d.Keys.QuickBook
	}
	if c.Keys.Voice == "" {
		c.Keys.Voice = d.Keys.Voice
	}
}

// ClampConfig keeps tunables inside their supported ranges.
func ClampConfig(c *Config) {
	if c.TextSize < 1 {
		c.TextSize = 1
	}
	if c.TextSize > 3 {
		c.TextSize = 3
	}
	if c.Language != "en" && c.Language != "ur" {
		c.Language = "en"
	}
}

// GetConfigDir returns the per-user config directory for the app.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "safar"), nil
}

// LoadConfig reads config.toml from dir. A missing or broken file is not an
// error: the app falls back to defaults and logs what happened.
func LoadConfig(dir string) Config {
	cfg := Config{}
	path := filepath.Join(dir, "config.toml")
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: %s unreadable, using defaults: %v", path, err)
		}
	}
	cfg.ApplyDefaults()
	ClampConfig(&cfg)
	return cfg
}
