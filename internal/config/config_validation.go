// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Locale != "" {
		if _, err := language.Parse(cfg.Vault.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %w", ErrInvalidVaultConfigs, cfg.Vault.Locale, err)
		}
	}

	if cfg.Clipboard.ClearAfter < 0 {
		return fmt.Errorf("%w: negative clear delay %s", ErrInvalidClipboardConfigs, cfg.Clipboard.ClearAfter)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
