package utils

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	first := NewToken()
	second := NewToken()

	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.LessOrEqual(t, first, second)
}

func TestTempSibling(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		token string
		want  string
	}{
		{name: "absolute", path: "/data/vault.upm", token: "abc", want: "/data/.vault.upm.abc.tmp"},
		{name: "relative", path: "vault.upm", token: "x", want: ".vault.upm.x.tmp"},
		{name: "nested", path: filepath.Join("a", "b", "db"), token: "t", want: filepath.Join("a", "b", ".db.t.tmp")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TempSibling(tt.path, tt.token))
		})
	}
}
