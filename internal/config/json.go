package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Preferences is the JSON preferences file. It holds the settings a user
// can change from the config command.
type Preferences struct {
	// DatabasePath is the database opened on startup.
	DatabasePath        string   `json:"database_path,omitempty"`
	Locale              string   `json:"locale,omitempty"`
	ClipboardClearAfter Duration `json:"clipboard_clear_after,omitempty"`
	LogLevel            string   `json:"log_level,omitempty"`
	LogFile             string   `json:"log_file,omitempty"`
}

// Config converts p into a [StructuredConfig] layer.
func (p Preferences) Config() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			Path:   p.DatabasePath,
			Locale: p.Locale,
		},
		Clipboard: Clipboard{
			ClearAfter: time.Duration(p.ClipboardClearAfter),
		},
		Log: Log{
			Level: p.LogLevel,
			File:  p.LogFile,
		},
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	prefs, err := LoadPreferences(jsonFilePath)
	if err != nil {
		return nil, err
	}
	return prefs.Config(), nil
}

// LoadPreferences reads the preferences file at path.
func LoadPreferences(path string) (Preferences, error) {
	var prefs Preferences

	jsonFile, err := os.Open(path)
	if err != nil {
		return prefs, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	if err = json.NewDecoder(jsonFile).Decode(&prefs); err != nil {
		return prefs, fmt.Errorf("error decoding json configs: %w", err)
	}

	return prefs, nil
}

// LoadPreferencesOrEmpty is LoadPreferences that treats a missing file as
// empty preferences.
func LoadPreferencesOrEmpty(path string) (Preferences, error) {
	prefs, err := LoadPreferences(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Preferences{}, nil
	}
	return prefs, err
}

// SavePreferences writes prefs to path, creating the parent directory.
func SavePreferences(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json configs: %w", err)
	}
	data = append(data, '\n')

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// DefaultDir is the per-user directory holding preferences and logs.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(base, "passvault"), nil
}

// DefaultJSONFilePath is the preferences file used when none is configured.
func DefaultJSONFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
