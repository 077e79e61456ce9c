package vault

import "errors"

// ErrEmptyName is returned by [Store.Put] for a record without a name.
var ErrEmptyName = errors.New("record name is empty")
