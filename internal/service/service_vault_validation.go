package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultValidationService rejects malformed accounts before they reach the
// wrapped service.
type VaultValidationService struct {
	VaultService
	validator validators.Validator
}

func NewVaultValidationService(validator validators.Validator) VaultServiceWrapper {
	return &VaultValidationService{validator: validator}
}

func (v *VaultValidationService) AddAccount(ctx context.Context, rec models.Record) error {
	if err := v.validator.Validate(ctx, rec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.VaultService.AddAccount(ctx, rec)
}

func (v *VaultValidationService) UpdateAccount(ctx context.Context, oldName string, rec models.Record) error {
	if err := v.validator.Validate(ctx, rec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.VaultService.UpdateAccount(ctx, oldName, rec)
}

func (v *VaultValidationService) Import(ctx context.Context, records []models.Record, resolve ConflictFunc) (ImportResult, error) {
	if len(records) == 0 {
		return ImportResult{}, nil
	}
	if err := v.validator.Validate(ctx, records, validators.FieldRecords); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.VaultService.Import(ctx, records, resolve)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.VaultService = inner
	return v
}
