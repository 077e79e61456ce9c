package main

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
)

func TestConfig_SetGetShow(t *testing.T) {
	path := setup(t)
	prefsFile := filepath.Join(filepath.Dir(path), "passvault", "config.json")

	res := execute(t, "", "config", "set", config.KeyDatabasePath, path)
	require.NoError(t, res.err)

	res = execute(t, "", "config", "set", config.KeyClipboardClearAfter, "30s")
	require.NoError(t, res.err)

	res = execute(t, "", "config", "get", config.KeyClipboardClearAfter)
	require.NoError(t, res.err)
	assert.Equal(t, "30s\n", res.stdout)

	res = execute(t, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, prefsFile)
	assert.Regexp(t, `database_path\s+`+regexp.QuoteMeta(path), res.stdout)
	assert.Regexp(t, `clipboard_clear_after\s+30s`, res.stdout)
	assert.Regexp(t, `locale\s+en`, res.stdout)

	prefs, err := config.LoadPreferences(prefsFile)
	require.NoError(t, err)
	assert.Equal(t, path, prefs.DatabasePath)
}

func TestConfig_FlagsOverridePreferences(t *testing.T) {
	setup(t)

	require.NoError(t, execute(t, "", "config", "set", config.KeyLocale, "de").err)

	res := execute(t, "", "--locale", "fr", "config", "show")
	require.NoError(t, res.err)
	assert.Regexp(t, `locale\s+fr`, res.stdout)
}

func TestConfig_SetInvalid(t *testing.T) {
	setup(t)

	res := execute(t, "", "config", "set", "theme", "dark")
	assert.ErrorIs(t, res.err, config.ErrUnknownPreference)

	res = execute(t, "", "config", "set", config.KeyLogLevel, "loud")
	assert.ErrorIs(t, res.err, config.ErrInvalidLogConfigs)
}

func TestInit_DefaultDatabase(t *testing.T) {
	path := setup(t)

	withPasswords(t, "master", "master")
	res := execute(t, "", "--db", path, "init", "--default")
	require.NoError(t, res.err)

	// no --db: the database comes from the preferences file
	withPasswords(t, "master")
	res = execute(t, "", "list")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}
