package container

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecords_FieldOrder(t *testing.T) {
	stream, err := encodeRecords([]models.Record{models.NewRecordFromStrings("n", "uu", "ssss", "rrr", "")})
	require.NoError(t, err)

	want := []byte{
		0, 0, 0, 1, 'n',
		0, 0, 0, 2, 'u', 'u',
		0, 0, 0, 3, 'r', 'r', 'r',
		0, 0, 0, 0,
		0, 0, 0, 4, 's', 's', 's', 's',
	}
	assert.Equal(t, want, stream)
}

func TestEncodeRecords_Rejects(t *testing.T) {
	tests := []struct {
		name string
		rec  models.Record
	}{
		{name: "invalid utf8 name", rec: models.Record{Name: "\xff"}},
		{name: "oversized secret", rec: models.Record{Name: "big", Secret: make([]byte, MaxFieldLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeRecords([]models.Record{tt.rec})
			assert.Error(t, err)
		})
	}
}

func TestRecordDecoder_RoundTrip(t *testing.T) {
	in := []models.Record{
		models.NewRecordFromStrings("first", "user", "secret", "https://x", "notes"),
		models.NewRecordFromStrings("second", "", "", "", ""),
		models.NewRecordFromStrings(strings.Repeat("é", 100), "ü", "ß", "", "日本"),
	}
	stream, err := encodeRecords(in)
	require.NoError(t, err)

	dec := newRecordDecoder(stream)
	for _, want := range in {
		got, err := dec.next()
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "record %q", want.Name)
		assert.NotNil(t, got.UserID)
		assert.NotNil(t, got.Secret)
	}
	_, err = dec.next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestRecordDecoder_CopiesFields(t *testing.T) {
	stream, err := encodeRecords([]models.Record{models.NewRecordFromStrings("a", "u", "p", "", "")})
	require.NoError(t, err)
	stream = bytes.Clone(stream)

	got, err := newRecordDecoder(stream).next()
	require.NoError(t, err)

	for i := range stream {
		stream[i] = 0
	}
	assert.Equal(t, []byte("u"), got.UserID)
	assert.Equal(t, []byte("p"), got.Secret)
}

func TestRecordDecoder_EmptyStream(t *testing.T) {
	_, err := newRecordDecoder(nil).next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRecordDecoder_CorruptionIsNotEOF(t *testing.T) {
	_, err := newRecordDecoder([]byte{0, 0}).next()
	assert.ErrorIs(t, err, ErrCorruptRecordStream)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestCompress_RoundTrip(t *testing.T) {
	plain := bytes.Repeat([]byte("record"), 1000)
	compressed, err := compress(plain)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(plain))

	out, err := decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestCompress_ReusedWriterKeepsStreamsIndependent(t *testing.T) {
	first := bytes.Repeat([]byte("first-secret"), 500)
	second := []byte("second")

	c1, err := compress(first)
	require.NoError(t, err)
	c2, err := compress(second)
	require.NoError(t, err)

	out1, err := decompress(c1)
	require.NoError(t, err)
	assert.Equal(t, first, out1)

	out2, err := decompress(c2)
	require.NoError(t, err)
	assert.Equal(t, second, out2)

	assert.Equal(t, make([]byte, len(scrubBlock)), scrubBlock)
}
