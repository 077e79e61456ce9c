package service

import (
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type Services struct {
	VaultService VaultService
}

// NewServices wires the vault session with record validation in front of it.
func NewServices(codec VaultCodec, locale language.Tag, logger *logger.Logger) *Services {
	core := NewVaultService(codec, locale, logger)
	return &Services{
		VaultService: NewVaultValidationService(validators.NewRecordValidator()).Wrap(core),
	}
}
