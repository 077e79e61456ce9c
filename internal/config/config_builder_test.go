package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempPreferences(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// newTestBuilder returns a builder whose default locations point into a
// temporary directory.
func newTestBuilder(t *testing.T) (*configBuilder, string) {
	t.Helper()
	dir := t.TempDir()
	b := newConfigBuilder()
	b.defaultDir = func() (string, error) { return dir, nil }
	b.defaultJSONFilePath = func() (string, error) { return filepath.Join(dir, "config.json"), nil }
	return b, dir
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies that a field set in an earlier layer
// is not replaced by a later one, while unset fields are filled.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{Path: "/flags.upm"}},
		&StructuredConfig{Vault: Vault{Path: "/env.upm", Locale: "de"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/flags.upm", cfg.Vault.Path)
	assert.Equal(t, "de", cfg.Vault.Locale)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "valid", cfg: StructuredConfig{Vault: Vault{Locale: "pt-BR"}, Log: Log{Level: "debug"}}},
		{name: "bad locale", cfg: StructuredConfig{Vault: Vault{Locale: "not a locale!"}}, wantErr: ErrInvalidVaultConfigs},
		{name: "negative clear", cfg: StructuredConfig{Clipboard: Clipboard{ClearAfter: -time.Second}}, wantErr: ErrInvalidClipboardConfigs},
		{name: "bad level", cfg: StructuredConfig{Log: Log{Level: "loud"}}, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			got, err := b.build()
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, got)
				return
			}
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)

	b.withFlags(&StructuredConfig{})
	assert.Len(t, b.configs, 1)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("PASSVAULT_VAULT_PATH", "/env/vault.upm")
	t.Setenv("PASSVAULT_CLIPBOARD_CLEAR_AFTER", "45s")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env/vault.upm", b.configs[0].Vault.Path)
	assert.Equal(t, 45*time.Second, b.configs[0].Clipboard.ClearAfter)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("PASSVAULT_CLIPBOARD_CLEAR_AFTER", "soon")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_MissingDefaultFileIsIgnored(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_ReadsDefaultFile(t *testing.T) {
	b, dir := newTestBuilder(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"database_path":"/default.upm"}`), 0o600))

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/default.upm", b.configs[0].Vault.Path)
	assert.Equal(t, filepath.Join(dir, "config.json"), b.configs[0].JSONFilePath)
}

func TestWithJSON_ExplicitPath(t *testing.T) {
	path := writeTempPreferences(t, `{"database_path":"/explicit.upm","clipboard_clear_after":"1m"}`)

	b, _ := newTestBuilder(t)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/explicit.upm", b.configs[1].Vault.Path)
	assert.Equal(t, time.Minute, b.configs[1].Clipboard.ClearAfter)
}

func TestWithJSON_MissingExplicitFileIsError(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_MalformedFileIsError(t *testing.T) {
	path := writeTempPreferences(t, "{not valid json")

	b, _ := newTestBuilder(t)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_DefaultLocationUnavailable(t *testing.T) {
	b := newConfigBuilder()
	b.defaultJSONFilePath = func() (string, error) { return "", errors.New("no home") }
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	b, dir := newTestBuilder(t)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, cfg.Vault.Locale)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "passvault.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(dir, "config.json"), cfg.JSONFilePath)
	assert.Zero(t, cfg.Clipboard.ClearAfter)
	assert.Empty(t, cfg.Vault.Path)
}

func TestWithDefaults_NoUserDir(t *testing.T) {
	b := newConfigBuilder()
	b.defaultDir = func() (string, error) { return "", errors.New("no home") }
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Log.File)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_Priority(t *testing.T) {
	path := writeTempPreferences(t, `{
		"database_path": "/json.upm",
		"locale": "fr",
		"clipboard_clear_after": "10s",
		"log_level": "warn"
	}`)
	t.Setenv("PASSVAULT_CONFIG", path)
	t.Setenv("PASSVAULT_VAULT_LOCALE", "de")
	t.Setenv("PASSVAULT_LOG_LEVEL", "error")

	b, _ := newTestBuilder(t)
	cfg, err := b.
		withFlags(&StructuredConfig{Log: Log{Level: "debug"}}).
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level, "flags beat env")
	assert.Equal(t, "de", cfg.Vault.Locale, "env beats json")
	assert.Equal(t, "/json.upm", cfg.Vault.Path, "json beats defaults")
	assert.Equal(t, 10*time.Second, cfg.Clipboard.ClearAfter)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestStructuredConfig_Language(t *testing.T) {
	cfg := &StructuredConfig{Vault: Vault{Locale: "de-CH"}}
	assert.Equal(t, "de-CH", cfg.Language().String())

	cfg.Vault.Locale = ""
	assert.Equal(t, "en", cfg.Language().String())
}
