package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultCodec reads and writes the encrypted database file.
// It is satisfied by *container.Codec.
type VaultCodec interface {
	NewCipher(password []byte) (*crypto.Cipher, error)
	Save(path string, store *vault.Store, cipher *crypto.Cipher) error
	Load(path string, password []byte) (*vault.Store, *crypto.Cipher, error)
	Verify(path string, password []byte) error
}

// VaultService is a single open database session. Every mutation is written
// to disk before it returns; a failed write leaves memory unchanged.
type VaultService interface {
	// Create makes a new empty database at path and opens it.
	Create(ctx context.Context, path string, password []byte) error
	// Open replaces the current session with the database at path.
	Open(ctx context.Context, path string, password []byte) error
	// Close wipes all decrypted state.
	Close()
	IsOpen() bool
	Path() string

	// Accounts returns account names containing filter (case-insensitive),
	// in display order.
	Accounts(filter string) ([]string, error)
	Account(name string) (models.Record, error)

	AddAccount(ctx context.Context, rec models.Record) error
	// UpdateAccount replaces oldName with rec. A different rec.Name renames
	// the account.
	UpdateAccount(ctx context.Context, oldName string, rec models.Record) error
	DeleteAccount(ctx context.Context, name string) error

	// ChangeMasterPassword re-encrypts the database under next with a fresh
	// salt after checking current against the file on disk.
	ChangeMasterPassword(ctx context.Context, current, next []byte) error

	// Import merges records, asking resolve what to do for each name that
	// already exists. The merge is saved once.
	Import(ctx context.Context, records []models.Record, resolve ConflictFunc) (ImportResult, error)
	Export() ([]models.Record, error)
}

// VaultServiceWrapper decorates a VaultService with additional behavior.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
