// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package exchange converts accounts to and from plain-text CSV for import
// and export. Output is unencrypted and intended for an explicit user action.
//
// Columns, in order:
//
//	name,username,password,url,notes
//
// Marshal always writes the header row. Unmarshal skips it when present.
package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Header is the first row written by Marshal.
var Header = []string{"name", "username", "password", "url", "notes"}

// Marshal writes records as CSV to w.
func Marshal(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWriteCSV, err)
	}

	for _, rec := range records {
		row := []string{rec.Name, string(rec.UserID), string(rec.Secret), string(rec.URL), string(rec.Notes)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: account %q: %w", ErrWriteCSV, rec.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}
	return nil
}

// Unmarshal reads every account from r. Errors wrap ErrMalformedCSV and name
// the offending line.
func Unmarshal(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var records []models.Record
	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedCSV, parseErr.Line, parseErr.Err)
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		if len(row) != len(Header) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d", ErrMalformedCSV, line, len(Header), len(row))
		}
		if !utf8.ValidString(row[0]) {
			return nil, fmt.Errorf("%w: line %d: account name is not valid UTF-8", ErrMalformedCSV, line)
		}

		records = append(records, models.NewRecordFromStrings(row[0], row[1], row[2], row[3], row[4]))
	}
}

func isHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, col := range Header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), col) {
			return false
		}
	}
	return true
}
