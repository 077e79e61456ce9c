// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if msg := app.Message(err); msg != app.MsgInternalError {
		return msg
	}
	return err.Error()
}
