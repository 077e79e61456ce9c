// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// readFile reads the whole database file. Failures wrap [ErrIO].
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return data, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path. On every failure the temporary file is closed and removed, so
// the previous content of path is left untouched.
func writeFileAtomic(path string, data []byte, tempName string) (err error) {
	dir := filepath.Dir(path)
	tmpPath := utils.TempSibling(path, tempName)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrIO, err)
	}

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = f.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: write temp file: %w", ErrIO, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrIO, err)
	}
	closed = true
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrIO, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrIO, path, err)
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry of a rename. Not every platform
// supports fsync on directories, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
