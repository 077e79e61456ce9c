// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
)

// redacted is printed in place of the secret wherever a Record is formatted.
const redacted = "********"

// Record is a single credential entry of a vault.
//
// Name is the unique identifier of the entry and the key under which it is
// kept in the vault store. Every other field is an opaque byte sequence that
// may hold arbitrary, possibly non-ASCII text.
//
// Secret holds the account password. It is kept in a byte buffer (rather
// than a string) so that it can be overwritten with [Record.Wipe] once it is
// no longer needed. It is never logged and never written anywhere except the
// encrypted container.
type Record struct {
	// Name is the display name and map key of the entry.
	Name string

	// UserID is the login (user name, e-mail, ...) of the account.
	UserID []byte

	// Secret is the account password (UTF-8).
	Secret []byte

	// URL is the address of the service the account belongs to.
	URL []byte

	// Notes contains free-form user notes.
	Notes []byte
}

// NewRecord returns a Record whose fields are all initialized to empty,
// non-nil values.
func NewRecord() Record {
	return Record{
		Name:   "",
		UserID: []byte{},
		Secret: []byte{},
		URL:    []byte{},
		Notes:  []byte{},
	}
}

// NewRecordFromStrings is a convenience constructor used by the CLI, the TUI
// and the CSV importer.
func NewRecordFromStrings(name, userID, secret, url, notes string) Record {
	return Record{
		Name:   name,
		UserID: []byte(userID),
		Secret: []byte(secret),
		URL:    []byte(url),
		Notes:  []byte(notes),
	}
}

// Clone returns a deep copy of r. The copy shares no buffer with r, so wiping
// one never affects the other.
func (r Record) Clone() Record {
	return Record{
		Name:   r.Name,
		UserID: cloneBytes(r.UserID),
		Secret: cloneBytes(r.Secret),
		URL:    cloneBytes(r.URL),
		Notes:  cloneBytes(r.Notes),
	}
}

// Wipe overwrites the secret buffer with zeros and truncates it.
func (r *Record) Wipe() {
	for i := range r.Secret {
		r.Secret[i] = 0
	}
	r.Secret = r.Secret[:0]
}

// Equal reports whether r and other hold the same name and field contents.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name &&
		bytes.Equal(r.UserID, other.UserID) &&
		bytes.Equal(r.Secret, other.Secret) &&
		bytes.Equal(r.URL, other.URL) &&
		bytes.Equal(r.Notes, other.Notes)
}

// String implements [fmt.Stringer] without revealing the secret.
func (r Record) String() string {
	return fmt.Sprintf("Record{Name: %q, UserID: %q, Secret: %s, URL: %q}",
		r.Name, r.UserID, redacted, r.URL)
}

// GoString implements [fmt.GoStringer] so that %#v is redacted as well.
func (r Record) GoString() string {
	return r.String()
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Only the
// name and field sizes are emitted.
func (r Record) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", r.Name).
		Int("user_id_len", len(r.UserID)).
		Int("url_len", len(r.URL)).
		Int("notes_len", len(r.Notes))
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
