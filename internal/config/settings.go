package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/micro-editor/json5"
	homedir "github.com/mitchellh/go-homedir"
)

// SettingsFileName is the name of the settings file inside the config dir.
const SettingsFileName = "settings.json"

// Settings holds the user-tunable options. The file is parsed as JSON5 so
// comments and trailing commas are tolerated.
type Settings struct {
	Colorscheme  string `json:"colorscheme"`
	TabSize      int    `json:"tabsize"`
	ScrollMargin int    `json:"scrollmargin"`
	Clipboard    string `json:"clipboard"`
}

// GlobalSettings is the loaded settings instance.
var GlobalSettings *Settings

// ConfigDir is the resolved configuration directory.
var ConfigDir string

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Colorscheme:  "midnight",
		TabSize:      DefaultTabSize,
		ScrollMargin: DefaultScrollMargin,
		Clipboard:    "internal",
	}
}

// InitConfigDir resolves the configuration directory, preferring the flag
// value, then $TILDE_CONFIG_HOME, then $XDG_CONFIG_HOME, then ~/.config.
func InitConfigDir(flagDir string) error {
	if flagDir != "" {
		ConfigDir = flagDir
		return nil
	}
	if dir := os.Getenv("TILDE_CONFIG_HOME"); dir != "" {
		ConfigDir = dir
		return nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		ConfigDir = filepath.Join(xdg, "tilde")
		return nil
	}
	home, err := homedir.Dir()
	if err != nil {
		ConfigDir = "."
		return err
	}
	ConfigDir = filepath.Join(home, ".config", "tilde")
	return nil
}

// ReadSettings loads settings from the config dir, falling back to defaults
// for a missing file or any invalid value.
func ReadSettings() *Settings {
	settings := DefaultSettings()

	path := filepath.Join(ConfigDir, SettingsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("tilde: could not read %s: %v", path, err)
		}
		GlobalSettings = settings
		return settings
	}

	if err := json5.Unmarshal(data, settings); err != nil {
		log.Printf("tilde: could not parse %s: %v", path, err)
		GlobalSettings = DefaultSettings()
		return GlobalSettings
	}

	validateSettings(settings)
	GlobalSettings = settings
	return settings
}

// validateSettings replaces out-of-range values with defaults.
func validateSettings(s *Settings) {
	if s.TabSize <= 0 || s.TabSize > 16 {
		s.TabSize = DefaultTabSize
	}
	if s.ScrollMargin < 0 {
		s.ScrollMargin = DefaultScrollMargin
	}
	if s.Clipboard != "internal" && s.Clipboard != "terminal" {
		s.Clipboard = "internal"
	}
	if _, ok := LookupScheme(s.Colorscheme); !ok {
		s.Colorscheme = DefaultSettings().Colorscheme
	}
}

// TabSize returns the configured indent width.
func TabSize() int {
	if GlobalSettings == nil {
		return DefaultTabSize
	}
	return GlobalSettings.TabSize
}

// ScrollMargin returns the configured viewport scroll margin.
func ScrollMargin() int {
	if GlobalSettings == nil {
		return DefaultScrollMargin
	}
	return GlobalSettings.ScrollMargin
}
