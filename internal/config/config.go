// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/text/language"
)

// StructuredConfig is the top-level configuration of passvault. It is
// populated by merging command-line flags, environment variables, the JSON
// preferences file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with PASSVAULT_.
type StructuredConfig struct {
	// Vault holds the database file and display settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Clipboard holds copy-to-clipboard behavior.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the path of the preferences file. When empty the
	// default location under the user config directory is used.
	// Env: PASSVAULT_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Vault configures which database is used and how accounts are listed.
type Vault struct {
	// Path is the database opened on startup.
	// Env: PASSVAULT_VAULT_PATH
	Path string `env:"PATH"`

	// Locale is a BCP 47 tag used to sort account names, e.g. "en" or "de".
	// Env: PASSVAULT_VAULT_LOCALE
	Locale string `env:"LOCALE"`
}

// Clipboard configures copying of account fields.
type Clipboard struct {
	// ClearAfter clears the clipboard this long after a copy.
	// Zero keeps the copied value.
	// Env: PASSVAULT_CLIPBOARD_CLEAR_AFTER
	ClearAfter time.Duration `env:"CLEAR_AFTER"`
}

// Log configures the diagnostic log.
type Log struct {
	// Level is a zerolog level name.
	// Env: PASSVAULT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log destination; "-" writes to stderr.
	// Env: PASSVAULT_LOG_FILE
	File string `env:"FILE"`
}

// Language returns the parsed Vault.Locale, or English when it is unset or
// invalid.
func (cfg *StructuredConfig) Language() language.Tag {
	if cfg.Vault.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(cfg.Vault.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
