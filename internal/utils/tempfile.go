// Package utils provides small helpers shared across the application.
package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// NewToken returns a unique token. Version 7 UUIDs are preferred so tokens
// created later sort later; a random one is used if the clock is unusable.
func NewToken() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// TempSibling returns the hidden temporary file used while replacing path:
// ".<base>.<token>.tmp" in the same directory, so the final rename never
// crosses a file system.
func TempSibling(path, token string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+token+".tmp")
}
