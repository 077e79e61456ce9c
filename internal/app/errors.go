package app

import "errors"

var (
	ErrPasswordsDoNotMatch  = errors.New(MsgPasswordsDoNotMatch)
	ErrNoDatabaseConfigured = errors.New(MsgNoDatabaseConfigured)
	ErrDatabaseExists       = errors.New(MsgDatabaseExists)
	ErrInvalidConfiguration = errors.New(MsgInvalidConfiguration)
	ErrClipboardUnavailable = errors.New(MsgClipboardUnavailable)
)
