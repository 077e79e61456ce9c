// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"io"
)

const (
	// SaltLength is the fixed length of the per-vault KDF salt in bytes.
	SaltLength = 16

	// KeyLength is the length of the derived AES-256 key in bytes.
	KeyLength = 32
)

// Params holds the Argon2id tuning parameters.
//
// The parameters are bound to a container format version: a file written
// with one set can only be opened with the same set, so they are not exposed
// as user configuration.
type Params struct {
	// Time is the number of Argon2id passes over memory.
	Time uint32
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
}

// DefaultParams returns the parameters used by the current container format:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultParams() Params {
	return Params{
		Time:      3,
		MemoryKiB: 64 * 1024, // 64 MiB
		Threads:   4,
	}
}

type options struct {
	params Params
	random io.Reader
}

// Option customizes a [Cipher] at construction time.
type Option func(*options)

// WithParams overrides the Argon2id parameters.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithRandom replaces the source of salts and nonces. Intended for tests.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		o.random = r
	}
}

func newOptions(opts []Option) options {
	o := options{
		params: DefaultParams(),
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
