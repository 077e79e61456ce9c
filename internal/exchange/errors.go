package exchange

import "errors"

var (
	ErrMalformedCSV = errors.New("malformed CSV")
	ErrWriteCSV     = errors.New("write CSV")
)
