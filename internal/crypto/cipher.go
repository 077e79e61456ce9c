// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns a master password into a symmetric key and protects
// opaque payloads with authenticated encryption.
//
// Scheme:
//
//	Salt = 16 random bytes, generated once per vault
//	Key  = Argon2id(password, Salt)              (never persisted)
//	Blob = Nonce(12) ‖ AES-256-GCM(Key, Nonce, plaintext)
//
// A fresh nonce is drawn for every Encrypt call, so the whole vault can be
// re-encrypted on each save without ever reusing a (key, nonce) pair. The GCM
// tag makes a wrong password or an altered blob detectable: Decrypt fails with
// [ErrAuthenticationFailure] instead of producing garbage.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Cipher holds the salt and derived key of one open vault.
type Cipher struct {
	opts options
	salt []byte
	key  []byte
	aead cipher.AEAD
}

// NewForPassword generates a fresh random salt, derives a key from password
// and returns a ready-to-use Cipher. It is used when a new vault is created.
func NewForPassword(password []byte, opts ...Option) (*Cipher, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	o := newOptions(opts)
	salt, err := generateSalt(o.random)
	if err != nil {
		return nil, err
	}

	c := &Cipher{opts: o}
	if err = c.derive(password, salt); err != nil {
		return nil, err
	}
	return c, nil
}

// ForPasswordAndSalt re-derives the key of an existing vault from password
// and the salt read from its file. The derivation is deterministic.
func ForPasswordAndSalt(password, salt []byte, opts ...Option) (*Cipher, error) {
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltLength)
	}

	c := &Cipher{opts: newOptions(opts)}
	if err := c.derive(password, cloneBytes(salt)); err != nil {
		return nil, err
	}
	return c, nil
}

// Salt returns a copy of the salt in use.
func (c *Cipher) Salt() []byte {
	return cloneBytes(c.salt)
}

// Encrypt seals plaintext with a fresh random nonce and returns
// nonce ‖ ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if c.aead == nil {
		return nil, ErrWiped
	}

	nonceSize := c.aead.NonceSize()
	blob := make([]byte, nonceSize, nonceSize+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(c.opts.random, blob); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return c.aead.Seal(blob, blob[:nonceSize], plaintext, nil), nil
}

// Decrypt opens a blob produced by [Cipher.Encrypt]. Any integrity failure,
// including a blob too short to hold a nonce and a tag, is reported as
// [ErrAuthenticationFailure].
func (c *Cipher) Decrypt(blob []byte) ([]byte, error) {
	if c.aead == nil {
		return nil, ErrWiped
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrAuthenticationFailure)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}
	return plaintext, nil
}

// Rekey replaces the key with one derived from newPassword. When
// regenerateSalt is true a fresh salt is drawn as well. The previous key is
// wiped. Nothing is written to disk.
func (c *Cipher) Rekey(newPassword []byte, regenerateSalt bool) error {
	if len(newPassword) == 0 {
		return ErrEmptyPassword
	}

	salt := cloneBytes(c.salt)
	if regenerateSalt || len(salt) != SaltLength {
		fresh, err := generateSalt(c.opts.random)
		if err != nil {
			return err
		}
		salt = fresh
	}

	c.Wipe()
	return c.derive(newPassword, salt)
}

// Wipe zeroes the key material. The Cipher cannot be used afterwards until
// [Cipher.Rekey] is called.
func (c *Cipher) Wipe() {
	Zero(c.key)
	c.key = nil
	c.aead = nil
}

func (c *Cipher) derive(password, salt []byte) error {
	p := c.opts.params
	key := argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, KeyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		Zero(key)
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		Zero(key)
		return fmt.Errorf("create gcm: %w", err)
	}

	c.salt = salt
	c.key = key
	c.aead = gcm
	return nil
}

func generateSalt(r io.Reader) ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
