// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import "errors"

// Sentinel errors returned by [Codec]. Callers should match them with
// [errors.Is]; the wrapped cause is kept for diagnostics.
var (
	// ErrNotADatabase is returned when a file is too short to hold the
	// version byte and the salt.
	ErrNotADatabase = errors.New("file does not appear to be a password database")

	// ErrUnsupportedVersion is returned when the version byte is not one
	// this codec can read.
	ErrUnsupportedVersion = errors.New("unsupported database version")

	// ErrInvalidPassword is returned when the ciphertext fails
	// authentication: the master password is wrong or the file was altered.
	// It is recoverable by asking for the password again.
	ErrInvalidPassword = errors.New("invalid master password")

	// ErrIO is returned when reading or writing the database file fails.
	ErrIO = errors.New("database i/o failure")

	// ErrCorruptRecordStream is returned when the container decrypted
	// successfully but the record stream inside it is malformed.
	ErrCorruptRecordStream = errors.New("corrupt record stream")
)
