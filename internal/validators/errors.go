package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("account name is required")
	ErrBlankName       = errors.New("account name cannot be blank")
	ErrInvalidEncoding = errors.New("value is not valid UTF-8")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrEmptyRecords    = errors.New("record list cannot be empty")
	ErrDuplicateName   = errors.New("duplicate account name")
)
