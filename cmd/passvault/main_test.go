package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/container"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var testParams = crypto.Params{Time: 1, MemoryKiB: 8, Threads: 1}

var passvaultEnv = []string{
	"PASSVAULT_CONFIG",
	"PASSVAULT_VAULT_PATH",
	"PASSVAULT_VAULT_LOCALE",
	"PASSVAULT_CLIPBOARD_CLEAR_AFTER",
	"PASSVAULT_LOG_LEVEL",
	"PASSVAULT_LOG_FILE",
}

// setup isolates a test from the user's preferences and environment and
// returns a database path inside a temporary directory.
func setup(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range passvaultEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	oldCodec := newCodec
	newCodec = func(log *logger.Logger) service.VaultCodec {
		return container.NewCodec(
			container.WithLogger(log),
			container.WithCipherOptions(crypto.WithParams(testParams)),
		)
	}
	t.Cleanup(func() { newCodec = oldCodec })

	return filepath.Join(dir, "vault.upm")
}

// withPasswords makes the password prompt answer with passwords in order.
func withPasswords(t *testing.T, passwords ...string) {
	t.Helper()

	old := passwordReader
	queue := append([]string(nil), passwords...)
	passwordReader = func() ([]byte, error) {
		if len(queue) == 0 {
			return nil, errors.New("unexpected password prompt")
		}
		next := queue[0]
		queue = queue[1:]
		return []byte(next), nil
	}
	t.Cleanup(func() {
		passwordReader = old
		if len(queue) != 0 {
			t.Errorf("%d password(s) were not asked for", len(queue))
		}
	})
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	root := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// initVault creates a database protected by "master".
func initVault(t *testing.T, path string) {
	t.Helper()
	withPasswords(t, "master", "master")
	res := execute(t, "", "--db", path, "init")
	require.NoError(t, res.err)
}

// addAccount adds name with the given secret to a database protected by
// "master".
func addAccount(t *testing.T, path, name, secret string, flags ...string) {
	t.Helper()
	withPasswords(t, "master", secret, secret)
	args := append([]string{"--db", path, "add", name}, flags...)
	res := execute(t, "", args...)
	require.NoError(t, res.err)
}
