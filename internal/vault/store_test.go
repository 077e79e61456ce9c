package vault

import (
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func rec(name, secret string) models.Record {
	return models.NewRecordFromStrings(name, "user-"+name, secret, "https://"+name, "notes "+name)
}

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("mail", "pw1")))

	got, ok := s.Get("mail")
	require.True(t, ok)
	assert.True(t, got.Equal(rec("mail", "pw1")))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("mail"))
}

func TestStore_PutOverwrites(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("mail", "pw1")))
	require.NoError(t, s.Put(rec("mail", "pw2")))

	got, ok := s.Get("mail")
	require.True(t, ok)
	assert.Equal(t, "pw2", string(got.Secret))
	assert.Equal(t, 1, s.Len())
}

func TestStore_PutEmptyName(t *testing.T) {
	s := NewStore()
	err := s.Put(models.NewRecord())
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Zero(t, s.Len())
}

func TestStore_PutKeepsPrivateCopy(t *testing.T) {
	s := NewStore()
	r := rec("mail", "pw1")
	require.NoError(t, s.Put(r))

	r.Secret[0] = 'X'
	r.Wipe()

	got, _ := s.Get("mail")
	assert.Equal(t, "pw1", string(got.Secret))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("mail", "pw1")))

	got, _ := s.Get("mail")
	got.Secret[0] = 'X'

	again, _ := s.Get("mail")
	assert.Equal(t, "pw1", string(again.Secret))
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	got, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, models.Record{}, got)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("mail", "pw1")))

	assert.True(t, s.Delete("mail"))
	assert.False(t, s.Has("mail"))
	assert.False(t, s.Delete("mail"), "second delete reports not found")
	assert.False(t, s.Delete("never-existed"))
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("a", "1")))
	require.NoError(t, s.Put(rec("b", "2")))

	list := s.List()
	require.Len(t, list, 2)

	s.Delete("a")
	require.NoError(t, s.Put(rec("c", "3")))

	names := []string{list[0].Name, list[1].Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
	for _, r := range list {
		assert.NotEmpty(t, r.Secret, "deleting from the store must not wipe snapshot copies")
	}
}

func TestStore_RenameSemantics(t *testing.T) {
	s := NewStore()
	original := rec("old name", "pw")
	require.NoError(t, s.Put(original))
	require.NoError(t, s.Put(rec("other", "x")))

	renamed, _ := s.Get("old name")
	renamed.Name = "new name"
	s.Delete("old name")
	require.NoError(t, s.Put(renamed))

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has("old name"))
	got, ok := s.Get("new name")
	require.True(t, ok)
	assert.Equal(t, original.UserID, got.UserID)
	assert.Equal(t, original.Secret, got.Secret)
	assert.Equal(t, original.URL, got.URL)
	assert.Equal(t, original.Notes, got.Notes)
}

func TestStore_SortedNames(t *testing.T) {
	s := NewStore()
	for _, n := range []string{"zeta", "Alpha", "beta", "Émile", "delta"} {
		require.NoError(t, s.Put(rec(n, "p")))
	}

	got := s.SortedNames(language.English)
	assert.Equal(t, []string{"Alpha", "beta", "delta", "Émile", "zeta"}, got)
}

func TestStore_Filter(t *testing.T) {
	s := NewStore()
	for _, n := range []string{"Gmail", "mailbox", "Bank", "Hotmail"} {
		require.NoError(t, s.Put(rec(n, "p")))
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty matches all", query: "", want: []string{"Bank", "Gmail", "Hotmail", "mailbox"}},
		{name: "case insensitive", query: "MAIL", want: []string{"Gmail", "Hotmail", "mailbox"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "single", query: "ban", want: []string{"Bank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Filter(tt.query, language.English))
		})
	}
}

func TestStore_Wipe(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(rec("a", "secret")))

	inner := s.records["a"].Secret
	s.Wipe()

	assert.Zero(t, s.Len())
	assert.Equal(t, make([]byte, len("secret")), inner[:len("secret")])
}
