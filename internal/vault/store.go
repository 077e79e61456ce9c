// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the in-memory record store of an open vault.
//
// The store owns its records exclusively: Put keeps a private copy and Get /
// List hand out copies, so no record buffer is ever shared with a caller.
// The store never touches disk; persisting it is the job of the container
// codec, and every mutation has to be followed by an explicit full save.
//
// A Store is not safe for concurrent use. A vault is a document-style
// resource driven by one interactive session at a time.
package vault

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store is a mapping from record name to [models.Record].
type Store struct {
	records map[string]models.Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]models.Record)}
}

// Put inserts rec or overwrites the record with the same name.
// It returns [ErrEmptyName] when rec has no name.
func (s *Store) Put(rec models.Record) error {
	if rec.Name == "" {
		return ErrEmptyName
	}
	if old, ok := s.records[rec.Name]; ok {
		old.Wipe()
	}
	s.records[rec.Name] = rec.Clone()
	return nil
}

// Delete removes the record called name. It reports whether a record was
// removed; deleting a missing name is a no-op.
func (s *Store) Delete(name string) bool {
	rec, ok := s.records[name]
	if !ok {
		return false
	}
	rec.Wipe()
	delete(s.records, name)
	return true
}

// Get returns a copy of the record called name.
func (s *Store) Get(name string) (models.Record, bool) {
	rec, ok := s.records[name]
	if !ok {
		return models.Record{}, false
	}
	return rec.Clone(), true
}

// Has reports whether a record called name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.records[name]
	return ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// List returns a snapshot of all records in unspecified order. The returned
// records are copies; mutating the store afterwards does not affect them.
func (s *Store) List() []models.Record {
	out := make([]models.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	return out
}

// Names returns the record names in unspecified order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.records))
	for name := range s.records {
		out = append(out, name)
	}
	return out
}

// SortedNames returns the record names ordered by the collation rules of
// tag. The order is presentation only and is never persisted.
func (s *Store) SortedNames(tag language.Tag) []string {
	names := s.Names()
	SortNames(names, tag)
	return names
}

// Filter returns the names containing query, compared case-insensitively,
// in collation order of tag. An empty query matches every record.
func (s *Store) Filter(query string, tag language.Tag) []string {
	query = strings.ToLower(query)

	out := make([]string, 0, len(s.records))
	for name := range s.records {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	SortNames(out, tag)
	return out
}

// Wipe zeroes every held secret and empties the store.
func (s *Store) Wipe() {
	for name, rec := range s.records {
		rec.Wipe()
		delete(s.records, name)
	}
}

// SortNames sorts names in place using a case-insensitive collator for tag.
func SortNames(names []string, tag language.Tag) {
	collate.New(tag, collate.IgnoreCase).SortStrings(names)
}
