package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastParams keeps Argon2id cheap so the suite stays quick.
var fastParams = Params{Time: 1, MemoryKiB: 8, Threads: 1}

func newTestCipher(t *testing.T, password string) *Cipher {
	t.Helper()
	c, err := NewForPassword([]byte(password), WithParams(fastParams))
	require.NoError(t, err)
	return c
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, uint32(3), p.Time)
	assert.Equal(t, uint32(64*1024), p.MemoryKiB)
	assert.Equal(t, uint8(4), p.Threads)
}

func TestNewForPassword_SaltLengthAndRandomness(t *testing.T) {
	c1 := newTestCipher(t, "same password")
	c2 := newTestCipher(t, "same password")

	assert.Len(t, c1.Salt(), SaltLength)
	assert.Len(t, c2.Salt(), SaltLength)
	assert.NotEqual(t, c1.Salt(), c2.Salt(), "two vaults must get different salts")
	assert.NotEqual(t, c1.key, c2.key, "different salts must yield different keys")
}

func TestNewForPassword_EmptyPassword(t *testing.T) {
	_, err := NewForPassword(nil, WithParams(fastParams))
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestNewForPassword_RandomFailure(t *testing.T) {
	_, err := NewForPassword([]byte("pw"), WithParams(fastParams), WithRandom(failingReader{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
}

func TestForPasswordAndSalt_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltLength)

	c1, err := ForPasswordAndSalt([]byte("correct horse"), salt, WithParams(fastParams))
	require.NoError(t, err)
	c2, err := ForPasswordAndSalt([]byte("correct horse"), salt, WithParams(fastParams))
	require.NoError(t, err)

	assert.Equal(t, c1.key, c2.key)
	assert.Len(t, c1.key, KeyLength)
	assert.Equal(t, salt, c1.Salt())
}

func TestForPasswordAndSalt_InvalidSalt(t *testing.T) {
	_, err := ForPasswordAndSalt([]byte("pw"), []byte{1, 2, 3}, WithParams(fastParams))
	assert.ErrorIs(t, err, ErrInvalidSalt)
}

func TestForPasswordAndSalt_DecryptsWhatNewForPasswordEncrypted(t *testing.T) {
	c := newTestCipher(t, "master")
	blob, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err)

	reopened, err := ForPasswordAndSalt([]byte("master"), c.Salt(), WithParams(fastParams))
	require.NoError(t, err)

	plain, err := reopened.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), plain)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	c := newTestCipher(t, "pw")
	plaintext := []byte("identical plaintext")

	b1, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	b2, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, b1[:12], b2[:12], "nonces must differ")
	assert.NotEqual(t, b1, b2, "ciphertexts must differ")
}

func TestEncrypt_EmptyPlaintextRoundTrip(t *testing.T) {
	c := newTestCipher(t, "pw")

	blob, err := c.Encrypt(nil)
	require.NoError(t, err)

	plain, err := c.Decrypt(blob)
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestDecrypt_WrongPassword(t *testing.T) {
	c := newTestCipher(t, "right")
	blob, err := c.Encrypt([]byte("secret data"))
	require.NoError(t, err)

	wrong, err := ForPasswordAndSalt([]byte("wrong"), c.Salt(), WithParams(fastParams))
	require.NoError(t, err)

	plain, err := wrong.Decrypt(blob)
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
	assert.Nil(t, plain)
}

func TestDecrypt_TamperedBlob(t *testing.T) {
	c := newTestCipher(t, "pw")
	blob, err := c.Encrypt([]byte("some secret data"))
	require.NoError(t, err)

	for i := range blob {
		tampered := bytes.Clone(blob)
		tampered[i] ^= 0x01
		_, err := c.Decrypt(tampered)
		assert.ErrorIs(t, err, ErrAuthenticationFailure, "byte %d", i)
	}
}

func TestDecrypt_ShortBlob(t *testing.T) {
	c := newTestCipher(t, "pw")

	for _, n := range []int{0, 1, 12, 27} {
		_, err := c.Decrypt(make([]byte, n))
		assert.ErrorIs(t, err, ErrAuthenticationFailure, "len %d", n)
	}
}

func TestRekey_KeepSalt(t *testing.T) {
	c := newTestCipher(t, "old")
	salt := c.Salt()
	oldBlob, err := c.Encrypt([]byte("data"))
	require.NoError(t, err)

	require.NoError(t, c.Rekey([]byte("new"), false))
	assert.Equal(t, salt, c.Salt())

	_, err = c.Decrypt(oldBlob)
	assert.ErrorIs(t, err, ErrAuthenticationFailure, "old ciphertext must not open with the new key")

	expected, err := ForPasswordAndSalt([]byte("new"), salt, WithParams(fastParams))
	require.NoError(t, err)
	assert.Equal(t, expected.key, c.key)
}

func TestRekey_RegenerateSalt(t *testing.T) {
	c := newTestCipher(t, "old")
	salt := c.Salt()

	require.NoError(t, c.Rekey([]byte("new"), true))
	assert.NotEqual(t, salt, c.Salt())

	blob, err := c.Encrypt([]byte("data"))
	require.NoError(t, err)

	reopened, err := ForPasswordAndSalt([]byte("new"), c.Salt(), WithParams(fastParams))
	require.NoError(t, err)
	plain, err := reopened.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), plain)
}

func TestRekey_EmptyPassword(t *testing.T) {
	c := newTestCipher(t, "old")
	assert.ErrorIs(t, c.Rekey([]byte{}, false), ErrEmptyPassword)

	// the cipher stays usable
	_, err := c.Encrypt([]byte("x"))
	assert.NoError(t, err)
}

func TestWipe(t *testing.T) {
	c := newTestCipher(t, "pw")
	key := c.key

	c.Wipe()

	assert.Equal(t, make([]byte, KeyLength), key)
	_, err := c.Encrypt([]byte("x"))
	assert.ErrorIs(t, err, ErrWiped)
	_, err = c.Decrypt(make([]byte, 64))
	assert.ErrorIs(t, err, ErrWiped)
}

func TestSalt_ReturnsCopy(t *testing.T) {
	c := newTestCipher(t, "pw")
	s := c.Salt()
	s[0] ^= 0xFF
	assert.NotEqual(t, s, c.Salt())
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
	Zero(nil)
}
