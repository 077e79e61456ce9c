// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package container reads and writes the encrypted on-disk vault format.
//
// Binary layout:
//
//	[1 byte]   format version (currently 4)
//	[16 bytes] KDF salt
//	[rest]     AES-256-GCM blob: nonce ‖ ciphertext ‖ tag
//
// The plaintext of the blob is the gzip-compressed record stream described
// in records.go. Compression always precedes encryption.
//
// Writes are whole-file and atomic (temp file + rename); reads are whole-file.
// Load either returns a fully populated store or no store at all.
package container

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

const (
	// FormatVersion is the version byte written by [Codec.Save].
	FormatVersion byte = 4

	// HeaderSize is the minimum size of a database file.
	HeaderSize = 1 + crypto.SaltLength
)

// Codec serializes a [vault.Store] to and from the container format.
type Codec struct {
	log        *logger.Logger
	cipherOpts []crypto.Option
	tempName   func() string
}

// Option customizes a [Codec].
type Option func(*Codec)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Codec) {
		c.log = l.WithComponent("container")
	}
}

// WithCipherOptions passes options to every cipher the codec creates.
func WithCipherOptions(opts ...crypto.Option) Option {
	return func(c *Codec) {
		c.cipherOpts = append(c.cipherOpts, opts...)
	}
}

// WithTempNamer overrides how the unique part of temp file names is chosen.
func WithTempNamer(fn func() string) Option {
	return func(c *Codec) {
		c.tempName = fn
	}
}

// NewCodec constructs a [Codec].
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		log:      logger.Nop(),
		tempName: utils.NewToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCipher creates a cipher with a fresh salt for a new vault, using the
// same cipher options the codec uses for Load.
func (c *Codec) NewCipher(password []byte) (*crypto.Cipher, error) {
	return crypto.NewForPassword(password, c.cipherOpts...)
}

// Save writes every record of store to path, encrypted with cipher.
func (c *Codec) Save(path string, store *vault.Store, cipher *crypto.Cipher) error {
	data, err := c.Encode(store, cipher)
	if err != nil {
		return err
	}

	if err = writeFileAtomic(path, data, c.tempName()); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("save vault")
		return err
	}

	c.log.Debug().Str("path", path).Int("records", store.Len()).Int("bytes", len(data)).Msg("vault saved")
	return nil
}

// Encode produces the complete container bytes for store.
func (c *Codec) Encode(store *vault.Store, cipher *crypto.Cipher) ([]byte, error) {
	records := store.List()
	defer func() {
		for i := range records {
			records[i].Wipe()
		}
	}()

	stream, err := encodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	compressed, err := compress(stream)
	crypto.Zero(stream)
	if err != nil {
		return nil, err
	}

	blob, err := cipher.Encrypt(compressed)
	crypto.Zero(compressed)
	if err != nil {
		return nil, fmt.Errorf("encrypt vault: %w", err)
	}

	salt := cipher.Salt()
	out := make([]byte, 0, HeaderSize+len(blob))
	out = append(out, FormatVersion)
	out = append(out, salt...)
	out = append(out, blob...)
	return out, nil
}

// Load reads path and decrypts it with password. On success it returns the
// populated store and the cipher that opened it, ready for the next Save.
func (c *Codec) Load(path string, password []byte) (*vault.Store, *crypto.Cipher, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	store, cipher, err := c.Decode(data, password)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("load vault")
		return nil, nil, err
	}

	c.log.Debug().Str("path", path).Int("records", store.Len()).Msg("vault loaded")
	return store, cipher, nil
}

// Verify reports whether password opens the vault at path. The decrypted
// contents are discarded.
func (c *Codec) Verify(path string, password []byte) error {
	store, cipher, err := c.Load(path, password)
	if err != nil {
		return err
	}
	store.Wipe()
	cipher.Wipe()
	return nil
}

// Decode parses complete container bytes.
func (c *Codec) Decode(data []byte, password []byte) (*vault.Store, *crypto.Cipher, error) {
	if len(data) < HeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrNotADatabase, len(data))
	}

	switch version := data[0]; version {
	case FormatVersion:
		return c.decodeV4(data[1:], password)
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
}

func (c *Codec) decodeV4(body []byte, password []byte) (*vault.Store, *crypto.Cipher, error) {
	salt, blob := body[:crypto.SaltLength], body[crypto.SaltLength:]

	cipher, err := crypto.ForPasswordAndSalt(password, salt, c.cipherOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("derive key: %w", err)
	}

	compressed, err := cipher.Decrypt(blob)
	if err != nil {
		cipher.Wipe()
		if errors.Is(err, crypto.ErrAuthenticationFailure) {
			return nil, nil, ErrInvalidPassword
		}
		return nil, nil, err
	}

	stream, err := decompress(compressed)
	crypto.Zero(compressed)
	if err != nil {
		cipher.Wipe()
		return nil, nil, err
	}
	defer crypto.Zero(stream)

	store, err := decodeStore(stream)
	if err != nil {
		cipher.Wipe()
		return nil, nil, err
	}
	return store, cipher, nil
}

func decodeStore(stream []byte) (*vault.Store, error) {
	store := vault.NewStore()
	dec := newRecordDecoder(stream)
	for {
		rec, err := dec.next()
		if errors.Is(err, io.EOF) {
			return store, nil
		}
		if err != nil {
			store.Wipe()
			return nil, err
		}
		if store.Has(rec.Name) {
			rec.Wipe()
			store.Wipe()
			return nil, fmt.Errorf("%w: duplicate record %q", ErrCorruptRecordStream, rec.Name)
		}
		putErr := store.Put(rec)
		rec.Wipe()
		if putErr != nil {
			store.Wipe()
			return nil, fmt.Errorf("%w: %w", ErrCorruptRecordStream, putErr)
		}
	}
}
