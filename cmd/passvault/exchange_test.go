package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/exchange"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

const importCSV = "name,username,password,url,notes\n" +
	"gmail,me,imported,https://mail,\n" +
	"bank,acct,pin,,\"multi\nline\"\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImport_ConflictModes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantOut    string
		wantSecret string
		wantErr    error
	}{
		{
			name:       "keep",
			args:       []string{"--on-conflict", "keep"},
			wantOut:    "Imported: 1 added, 0 overwritten, 1 kept\n",
			wantSecret: "original",
		},
		{
			name:       "overwrite",
			args:       []string{"--on-conflict", "overwrite"},
			wantOut:    "Imported: 1 added, 1 overwritten, 0 kept\n",
			wantSecret: "imported",
		},
		{
			name:       "cancel",
			args:       []string{"--on-conflict", "cancel"},
			wantErr:    service.ErrImportCanceled,
			wantSecret: "original",
		},
		{
			name:       "ask overwrite",
			stdin:      "o\n",
			wantOut:    "Imported: 1 added, 1 overwritten, 0 kept\n",
			wantSecret: "imported",
		},
		{
			name:       "ask keep after invalid answer",
			stdin:      "maybe\nk\n",
			wantOut:    "Imported: 1 added, 0 overwritten, 1 kept\n",
			wantSecret: "original",
		},
		{
			name:       "ask without answer cancels",
			stdin:      "",
			wantErr:    service.ErrImportCanceled,
			wantSecret: "original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setup(t)
			initVault(t, path)
			addAccount(t, path, "gmail", "original")
			csvPath := writeCSV(t, importCSV)

			withPasswords(t, "master")
			args := append([]string{"--db", path, "import", csvPath}, tt.args...)
			res := execute(t, tt.stdin, args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, res.err, tt.wantErr)
			} else {
				require.NoError(t, res.err)
				assert.Equal(t, tt.wantOut, res.stdout)
			}

			withPasswords(t, "master")
			res = execute(t, "", "--db", path, "show", "-r", "gmail")
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "Password: "+tt.wantSecret+"\n")
		})
	}
}

func TestImport_UnknownMode(t *testing.T) {
	path := setup(t)
	csvPath := writeCSV(t, importCSV)

	res := execute(t, "", "--db", path, "import", csvPath, "--on-conflict", "merge")
	assert.ErrorIs(t, res.err, errUnknownConflictMode)
}

func TestImport_MalformedCSV(t *testing.T) {
	path := setup(t)
	csvPath := writeCSV(t, "gmail,me,pw\n")

	res := execute(t, "", "--db", path, "import", csvPath)
	assert.ErrorIs(t, res.err, exchange.ErrMalformedCSV)
}

func TestExport(t *testing.T) {
	path := setup(t)
	initVault(t, path)
	addAccount(t, path, "zeta", "z", "--user", "zu")
	addAccount(t, path, "Alpha", "a", "--notes", "x,y")

	withPasswords(t, "master")
	res := execute(t, "", "--db", path, "export", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "name,username,password,url,notes\nAlpha,,a,,\"x,y\"\nzeta,zu,z,,\n", res.stdout)

	out := filepath.Join(t.TempDir(), "out.csv")
	withPasswords(t, "master")
	res = execute(t, "", "--db", path, "export", out)
	require.NoError(t, res.err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	withPasswords(t, "master")
	res = execute(t, "", "--db", path, "export", out)
	assert.ErrorIs(t, res.err, os.ErrExist)

	withPasswords(t, "master")
	res = execute(t, "", "--db", path, "export", "--force", out)
	require.NoError(t, res.err)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setup(t)
	initVault(t, src)
	addAccount(t, src, "gmail", "pässwörd", "--notes", "line1\nline2")

	out := filepath.Join(t.TempDir(), "out.csv")
	withPasswords(t, "master")
	require.NoError(t, execute(t, "", "--db", src, "export", out).err)

	dst := filepath.Join(t.TempDir(), "copy.upm")
	initVault(t, dst)
	withPasswords(t, "master")
	res := execute(t, "", "--db", dst, "import", out)
	require.NoError(t, res.err)
	assert.Equal(t, "Imported: 1 added, 0 overwritten, 0 kept\n", res.stdout)

	withPasswords(t, "master")
	res = execute(t, "", "--db", dst, "show", "-r", "gmail")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Password: pässwörd\n")
	assert.Contains(t, res.stdout, "Notes:\n  line1\n  line2\n")
}
