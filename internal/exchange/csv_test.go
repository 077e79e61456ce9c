package exchange

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	records := []models.Record{
		models.NewRecordFromStrings("Gmail", "bob", "hunter2", "https://mail.google.com", ""),
		models.NewRecordFromStrings("Bank, main", "иван", `pa"ss`, "", "line1\nline2"),
	}

	var buf bytes.Buffer
	require.NoError(t, Marshal(&buf, records))

	want := "name,username,password,url,notes\n" +
		"Gmail,bob,hunter2,https://mail.google.com,\n" +
		"\"Bank, main\",иван,\"pa\"\"ss\",,\"line1\nline2\"\n"
	assert.Equal(t, want, buf.String())
}

func TestMarshal_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Marshal(&buf, nil))
	assert.Equal(t, "name,username,password,url,notes\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestMarshal_WriteError(t *testing.T) {
	err := Marshal(failingWriter{}, []models.Record{models.NewRecordFromStrings("a", "", "", "", "")})
	assert.ErrorIs(t, err, ErrWriteCSV)
}

func TestUnmarshal_RoundTrip(t *testing.T) {
	in := []models.Record{
		models.NewRecordFromStrings("Gmail", "bob", "hunter2", "https://mail.google.com", ""),
		models.NewRecordFromStrings("日本語", "ユーザー", "秘密", "", "multi\nline"),
		models.NewRecordFromStrings("quotes", `"q"`, ",", "", ""),
	}

	var buf bytes.Buffer
	require.NoError(t, Marshal(&buf, in))

	out, err := Unmarshal(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.True(t, in[i].Equal(out[i]), "record %d", i)
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
		wantErr   string
	}{
		{
			name:      "without header",
			input:     "a,u,p,url,n\nb,u,p,,\n",
			wantNames: []string{"a", "b"},
		},
		{
			name:      "header in any case",
			input:     "Name,Username,Password,URL,Notes\na,u,p,,\n",
			wantNames: []string{"a"},
		},
		{
			name:      "empty input",
			input:     "",
			wantNames: nil,
		},
		{
			name:    "too few fields",
			input:   "name,username,password,url,notes\na,u,p\n",
			wantErr: "line 2",
		},
		{
			name:    "too many fields",
			input:   "a,u,p,url,n\nb,u,p,url,n,extra\n",
			wantErr: "line 2",
		},
		{
			name:    "bare quote",
			input:   "a,u,p,url,n\nb,u\"x,p,url,n\n",
			wantErr: "line 2",
		},
		{
			name:    "invalid utf8 name",
			input:   "\xff,u,p,url,n\n",
			wantErr: "line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unmarshal(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedCSV)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, rec := range got {
				names = append(names, rec.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestUnmarshal_RecordsDoNotAlias(t *testing.T) {
	got, err := Unmarshal(strings.NewReader("a,u1,p1,,\nb,u2,p2,,\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("p1"), got[0].Secret)
	assert.Equal(t, []byte("p2"), got[1].Secret)
}
