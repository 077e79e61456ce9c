package config

import (
	"fmt"
	"time"
)

// Preference keys as they appear in the JSON file.
const (
	KeyDatabasePath        = "database_path"
	KeyLocale              = "locale"
	KeyClipboardClearAfter = "clipboard_clear_after"
	KeyLogLevel            = "log_level"
	KeyLogFile             = "log_file"
)

// PreferenceKeys lists the keys accepted by [Preferences.Set] in file order.
var PreferenceKeys = []string{
	KeyDatabasePath,
	KeyLocale,
	KeyClipboardClearAfter,
	KeyLogLevel,
	KeyLogFile,
}

// Set changes one preference. An empty value removes it from the file.
// The new value is validated the same way a merged config is.
func (p *Preferences) Set(key, value string) error {
	next := *p

	switch key {
	case KeyDatabasePath:
		next.DatabasePath = value
	case KeyLocale:
		next.Locale = value
	case KeyClipboardClearAfter:
		var d time.Duration
		if value != "" {
			parsed, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidClipboardConfigs, err)
			}
			d = parsed
		}
		next.ClipboardClearAfter = Duration(d)
	case KeyLogLevel:
		next.LogLevel = value
	case KeyLogFile:
		next.LogFile = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}

	if err := next.Config().validate(); err != nil {
		return err
	}
	*p = next
	return nil
}

// Get returns the stored value of key, or "" when it is unset.
func (p Preferences) Get(key string) (string, error) {
	switch key {
	case KeyDatabasePath:
		return p.DatabasePath, nil
	case KeyLocale:
		return p.Locale, nil
	case KeyClipboardClearAfter:
		if p.ClipboardClearAfter == 0 {
			return "", nil
		}
		return time.Duration(p.ClipboardClearAfter).String(), nil
	case KeyLogLevel:
		return p.LogLevel, nil
	case KeyLogFile:
		return p.LogFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}
}
