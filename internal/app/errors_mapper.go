package app

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/container"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/exchange"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUsage           = 2
	ExitInvalidPassword = 3
	ExitNotFound        = 4
	ExitConflict        = 5
)

type errorMapping struct {
	target  error
	message string
	code    int
	// detail appends the error text, which names the account, field or line.
	detail bool
}

// Ordered: the first matching target wins.
var errorMappings = []errorMapping{
	{container.ErrInvalidPassword, MsgInvalidPassword, ExitInvalidPassword, false},
	{container.ErrNotADatabase, MsgNotADatabase, ExitFailure, false},
	{container.ErrUnsupportedVersion, MsgUnsupportedVersion, ExitFailure, false},
	{container.ErrCorruptRecordStream, MsgCorruptDatabase, ExitFailure, false},
	{container.ErrIO, MsgIOError, ExitFailure, false},
	{crypto.ErrEmptyPassword, MsgEmptyPassword, ExitUsage, false},

	{service.ErrNoOpenVault, MsgNoOpenDatabase, ExitFailure, false},
	{service.ErrAccountExists, MsgAccountExists, ExitConflict, true},
	{service.ErrAccountNotFound, MsgAccountNotFound, ExitNotFound, true},
	{service.ErrImportCanceled, MsgImportCanceled, ExitFailure, false},
	{service.ErrInvalidRecord, MsgInvalidAccount, ExitUsage, true},

	{exchange.ErrMalformedCSV, MsgMalformedCSV, ExitFailure, true},

	{ErrPasswordsDoNotMatch, MsgPasswordsDoNotMatch, ExitUsage, false},
	{ErrNoDatabaseConfigured, MsgNoDatabaseConfigured, ExitUsage, false},
	{ErrDatabaseExists, MsgDatabaseExists, ExitConflict, false},
	{ErrInvalidConfiguration, MsgInvalidConfiguration, ExitUsage, true},
	{ErrClipboardUnavailable, MsgClipboardUnavailable, ExitFailure, false},
}

// Message returns the user-facing message for err.
func Message(err error) string {
	if m, ok := lookup(err); ok {
		return m.message
	}
	return MsgInternalError
}

// Describe is Message for the command line: mapped messages that depend on
// which account, field or line failed carry the error text, and unknown
// errors are shown as they are.
func Describe(err error) string {
	m, ok := lookup(err)
	if !ok {
		return err.Error()
	}
	if m.detail {
		return m.message + " (" + err.Error() + ")"
	}
	return m.message
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if m, ok := lookup(err); ok {
		return m.code
	}
	return ExitFailure
}

func lookup(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}
