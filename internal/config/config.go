package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// JavaHomeKey is the settings key holding the user-configured JDK root.
const JavaHomeKey = "java.home"

// Settings holds the tool configuration
type Settings struct {
	JavaHome   string         `json:"java.home"` // User-configured JDK root, empty when unset
	Update     UpdateSettings `json:"update"`    // Auto-update configuration
	configPath string
}

// UpdateSettings holds settings for the auto-update feature
type UpdateSettings struct {
	Enabled     bool      `json:"enabled"`      // Master toggle for update functionality
	AutoCheck   bool      `json:"auto_check"`   // Check for updates on startup
	LastCheck   time.Time `json:"last_check"`   // Last time update check was performed
	SkipVersion string    `json:"skip_version"` // Version user chose to skip
}

// Load loads the settings from the user's config directory
func Load() (*Settings, error) {
	configPath := getConfigPath()

	s := &Settings{
		Update: UpdateSettings{
			Enabled:   true,
			AutoCheck: true,
		},
		configPath: configPath,
	}

	// If the settings file doesn't exist, return defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return s, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	// This handles files created by PowerShell with Set-Content -Encoding UTF8
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	s.JavaHome = sanitizePath(s.JavaHome)
	s.configPath = configPath
	return s, nil
}

// Save writes the settings to disk
func (s *Settings) Save() error {
	configDir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.configPath, data, 0644)
}

// SetJavaHome updates the configured JDK root. An empty value clears it.
func (s *Settings) SetJavaHome(path string) {
	s.JavaHome = sanitizePath(path)
}

// sanitizePath normalizes a configured path, mapping blank values to empty
func sanitizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// getConfigPath returns the path to the settings file
// Following XDG Base Directory specification
func getConfigPath() string {
	// Try XDG_CONFIG_HOME first (standard on Unix systems)
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		return filepath.Join(configHome, "jrc", "settings.json")
	}

	// Fallback to $HOME/.config/jrc/settings.json (XDG default)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".config", "jrc", "settings.json")
}
