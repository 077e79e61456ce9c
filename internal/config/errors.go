package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidVaultConfigs indicates an unusable locale tag.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidClipboardConfigs indicates a negative clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

// ErrUnknownPreference is returned by [Preferences.Set] for a key that is
// not stored in the preferences file.
var ErrUnknownPreference = errors.New("unknown preference")
