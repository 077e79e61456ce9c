// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// MaxFieldLength bounds a single encoded field. A length prefix above it is
// treated as corruption rather than an allocation request.
const MaxFieldLength = 16 << 20 // 16 MiB

// lengthPrefixSize is the size of the big-endian uint32 field length.
const lengthPrefixSize = 4

// Record wire layout, repeated until end of stream:
//
//	u32 len ‖ name (UTF-8)
//	u32 len ‖ userId
//	u32 len ‖ url
//	u32 len ‖ notes
//	u32 len ‖ secret
func encodeRecord(w *bytes.Buffer, rec models.Record) error {
	if !utf8.ValidString(rec.Name) {
		return fmt.Errorf("record name is not valid UTF-8")
	}
	for _, field := range [][]byte{[]byte(rec.Name), rec.UserID, rec.URL, rec.Notes, rec.Secret} {
		if len(field) > MaxFieldLength {
			return fmt.Errorf("record %q: field of %d bytes exceeds limit", rec.Name, len(field))
		}
		var prefix [lengthPrefixSize]byte
		binary.BigEndian.PutUint32(prefix[:], uint32(len(field)))
		w.Write(prefix[:])
		w.Write(field)
	}
	return nil
}

// encodeRecords serializes records into a single stream. The caller owns
// the returned buffer and must zero it once it is no longer needed.
func encodeRecords(records []models.Record) ([]byte, error) {
	// Sizing the buffer up front keeps the plaintext in one allocation, so
	// the single wipe below covers every copy.
	size := 0
	for _, rec := range records {
		size += 5*lengthPrefixSize + len(rec.Name) + len(rec.UserID) + len(rec.URL) + len(rec.Notes) + len(rec.Secret)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	for _, rec := range records {
		if err := encodeRecord(&buf, rec); err != nil {
			wipeBuffer(&buf)
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// recordDecoder reads records one at a time from a decoded stream.
type recordDecoder struct {
	data []byte
	off  int
}

func newRecordDecoder(data []byte) *recordDecoder {
	return &recordDecoder{data: data}
}

// next returns the next record, or io.EOF when the stream ended exactly on a
// record boundary. Any other failure wraps [ErrCorruptRecordStream].
func (d *recordDecoder) next() (models.Record, error) {
	if d.off == len(d.data) {
		return models.Record{}, io.EOF
	}

	start := d.off
	name, err := d.field()
	if err != nil {
		return models.Record{}, d.corrupt(start, "name", err)
	}
	if len(name) == 0 {
		return models.Record{}, d.corrupt(start, "name", fmt.Errorf("empty name"))
	}
	if !utf8.Valid(name) {
		return models.Record{}, d.corrupt(start, "name", fmt.Errorf("invalid UTF-8"))
	}

	rec := models.Record{Name: string(name)}
	for _, f := range []struct {
		label string
		dst   *[]byte
	}{
		{"userId", &rec.UserID},
		{"url", &rec.URL},
		{"notes", &rec.Notes},
		{"secret", &rec.Secret},
	} {
		v, err := d.field()
		if err != nil {
			rec.Wipe()
			return models.Record{}, d.corrupt(start, f.label, err)
		}
		*f.dst = bytes.Clone(v)
		if *f.dst == nil {
			*f.dst = []byte{}
		}
	}
	return rec, nil
}

func (d *recordDecoder) field() ([]byte, error) {
	if len(d.data)-d.off < lengthPrefixSize {
		return nil, io.ErrUnexpectedEOF
	}
	n := binary.BigEndian.Uint32(d.data[d.off:])
	if n > MaxFieldLength {
		return nil, fmt.Errorf("field length %d exceeds limit", n)
	}
	d.off += lengthPrefixSize

	if uint32(len(d.data)-d.off) < n {
		return nil, io.ErrUnexpectedEOF
	}
	v := d.data[d.off : d.off+int(n)]
	d.off += int(n)
	return v, nil
}

func (d *recordDecoder) corrupt(offset int, field string, cause error) error {
	return fmt.Errorf("%w: record at offset %d, field %s: %w", ErrCorruptRecordStream, offset, field, cause)
}

func wipeBuffer(buf *bytes.Buffer) {
	b := buf.Bytes()
	b = b[:cap(b)]
	for i := range b {
		b[i] = 0
	}
	buf.Reset()
}
