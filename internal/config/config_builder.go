package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"dario.cat/mergo"
)

// Defaults applied when no other source sets a value.
const (
	DefaultLocale   = "en"
	DefaultLogLevel = "info"
)

// GetStructuredConfig merges flags (may be nil), environment, preferences
// file and defaults, then validates the result.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	defaultJSONFilePath func() (string, error)
	defaultDir          func() (string, error)
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:             make([]*StructuredConfig, 0, 4),
		defaultJSONFilePath: DefaultJSONFilePath,
		defaultDir:          DefaultDir,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON loads the preferences file named by an earlier layer, or the
// default one. Only an explicitly named file has to exist.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.jsonFilePath()
	explicit := jsonPath != ""

	if !explicit {
		var err error
		if jsonPath, err = b.defaultJSONFilePath(); err != nil {
			return b
		}
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	jsonCfg.JSONFilePath = jsonPath
	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) jsonFilePath() string {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return cfg.JSONFilePath
		}
	}
	return ""
}

func (b *configBuilder) withDefaults() *configBuilder {
	defaults := &StructuredConfig{
		Vault: Vault{Locale: DefaultLocale},
		Log:   Log{Level: DefaultLogLevel},
	}

	if dir, err := b.defaultDir(); err == nil {
		defaults.Log.File = filepath.Join(dir, "passvault.log")
		defaults.JSONFilePath = filepath.Join(dir, "config.json")
	} else {
		defaults.Log.File = "-"
	}

	b.configs = append(b.configs, defaults)
	return b
}
