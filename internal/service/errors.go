package service

import "errors"

var (
	ErrNoOpenVault     = errors.New("no database is open")
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrImportCanceled  = errors.New("import canceled")
	ErrInvalidResolve  = errors.New("unknown conflict resolution")
	ErrEmptyPath       = errors.New("database path is empty")
	ErrInvalidRecord   = errors.New("invalid account")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
