// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing constants used by the passvault
// command line and terminal UI.
//
// All Msg* constants are human-readable message strings shown to the user
// when an operation fails. Keeping them in one place ensures consistent
// wording between the CLI and the TUI.
package app

const (
	// MsgInvalidPassword is shown when the master password does not open the
	// database, or the file was modified.
	MsgInvalidPassword = "incorrect password, or the database has been tampered with"

	// MsgNotADatabase is shown when the file is too short to be a database.
	MsgNotADatabase = "the file is not a password database"

	// MsgUnsupportedVersion is shown for a database written in a format this
	// build cannot read.
	MsgUnsupportedVersion = "the database format version is not supported"

	// MsgCorruptDatabase is shown when the decrypted contents are malformed.
	MsgCorruptDatabase = "the database is corrupt"

	// MsgIOError is shown when the database file cannot be read or written.
	MsgIOError = "the database file could not be read or written"

	// MsgNoOpenDatabase is shown when an operation needs an open database.
	MsgNoOpenDatabase = "no database is open"

	// MsgNoDatabaseConfigured is shown when no database path was given by
	// flag, environment or preferences.
	MsgNoDatabaseConfigured = "no database selected, use --db or set database_path with the config command"

	// MsgDatabaseExists is shown when init would replace an existing file.
	MsgDatabaseExists = "the database file already exists, use --force to replace it"

	// MsgAccountExists is shown when an account name is already taken.
	MsgAccountExists = "an account with this name already exists"

	// MsgAccountNotFound is shown when the named account does not exist.
	MsgAccountNotFound = "account not found"

	// MsgInvalidAccount is shown when account fields are rejected.
	MsgInvalidAccount = "invalid account"

	// MsgImportCanceled is shown when the user aborts an import.
	MsgImportCanceled = "import canceled, no accounts were changed"

	// MsgMalformedCSV is shown when an import file cannot be parsed.
	MsgMalformedCSV = "the CSV file is malformed"

	// MsgPasswordsDoNotMatch is shown when a new password and its
	// confirmation differ.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgEmptyPassword is shown when an empty master password is entered.
	MsgEmptyPassword = "the master password cannot be empty"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// used.
	MsgClipboardUnavailable = "the clipboard is not available"

	// MsgInvalidConfiguration is shown when flags, environment or the
	// preferences file contain an invalid value.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgInternalError is shown for failures the user cannot resolve.
	MsgInternalError = "internal error"
)
