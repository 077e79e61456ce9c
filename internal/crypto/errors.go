package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned by [Cipher.Decrypt] when the
	// integrity check fails: the key is wrong (wrong master password) or the
	// ciphertext was altered.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidSalt is returned when a salt of the wrong length is supplied.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrEmptyPassword is returned when key derivation is requested for an
	// empty master password.
	ErrEmptyPassword = errors.New("empty master password")

	// ErrWiped is returned when a wiped cipher is used again.
	ErrWiped = errors.New("cipher key material was wiped")
)
