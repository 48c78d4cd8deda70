// Package settings loads the reader's preferences from a TOML file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Reader preference defaults for a fresh install.
const (
	DefaultWPM      = 130
	DefaultLanguage = "en"
)

// Settings represents the TOML configuration file.
type Settings struct {
	Reader ReaderSettings `toml:"reader"`
}

// ReaderSettings maps reader-related preferences. Pointer fields
// distinguish "unset" from explicit zero values.
type ReaderSettings struct {
	Name      *string  `toml:"name"`
	WPM       *int     `toml:"wpm"`
	Language  *string  `toml:"language"`
	Themes    []string `toml:"themes"`
	Interests []string `toml:"interests"`
}

// Name returns the reader's name, or empty when unset.
func (s Settings) Name() string {
	if s.Reader.Name == nil {
		return ""
	}
	return *s.Reader.Name
}

// WPM returns the configured reading speed, bounded to a sane range.
func (s Settings) WPM() int {
	if s.Reader.WPM == nil {
		return DefaultWPM
	}
	wpm := *s.Reader.WPM
	if wpm < 30 {
		return 30
	}
	if wpm > 600 {
		return 600
	}
	return wpm
}

// Language returns the story language code.
func (s Settings) Language() string {
	if s.Reader.Language == nil || *s.Reader.Language == "" {
		return DefaultLanguage
	}
	return *s.Reader.Language
}

// Themes returns the preferred story themes, possibly empty.
func (s Settings) Themes() []string {
	return s.Reader.Themes
}

// Interests returns the reader's interests, possibly empty.
func (s Settings) Interests() []string {
	return s.Reader.Interests
}

// Load reads a TOML settings file from the given path. Missing file is
// not an error; defaults apply.
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, fmt.Errorf("settings path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("stat settings: %w", err)
	}
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// DefaultPath resolves the settings file path in priority order:
// 1. STORYFOX_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/storyfox/config.toml
// 3. ~/.config/storyfox/config.toml
func DefaultPath() string {
	if p := os.Getenv("STORYFOX_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdgConfigHome(), "storyfox", "config.toml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
