// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It decides whether the configured database has to be created or unlocked
// and hands control to the terminal UI until the user quits.
package client
