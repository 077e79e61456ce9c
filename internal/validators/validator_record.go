package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/container"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to scope validation of a record.
const (
	FieldName    = "name"
	FieldUserID  = "user_id"
	FieldSecret  = "secret"
	FieldURL     = "url"
	FieldNotes   = "notes"
	FieldRecords = "records"
)

// RecordValidator checks that accounts can be stored and written to disk.
// It accepts models.Record, *models.Record and []models.Record.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case []models.Record:
		return v.validateRecords(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, rec models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUserID, FieldSecret, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if rec.Name == "" {
				return ErrEmptyName
			}
			if !utf8.ValidString(rec.Name) {
				return fmt.Errorf("%s: %w", FieldName, ErrInvalidEncoding)
			}
			if strings.TrimSpace(rec.Name) == "" {
				return ErrBlankName
			}
			if len(rec.Name) > container.MaxFieldLength {
				return fmt.Errorf("%s: %w", FieldName, ErrFieldTooLong)
			}
		case FieldUserID:
			if err := checkLength(FieldUserID, rec.UserID); err != nil {
				return err
			}
		case FieldSecret:
			if err := checkLength(FieldSecret, rec.Secret); err != nil {
				return err
			}
		case FieldURL:
			if err := checkLength(FieldURL, rec.URL); err != nil {
				return err
			}
		case FieldNotes:
			if err := checkLength(FieldNotes, rec.Notes); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRecords(ctx context.Context, records []models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldRecords:
			if len(records) == 0 {
				return ErrEmptyRecords
			}
			seen := make(map[string]struct{}, len(records))
			for i, rec := range records {
				if err := v.validateRecord(ctx, rec); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[rec.Name]; dup {
					return fmt.Errorf("validation error at index %d: %w: %q", i, ErrDuplicateName, rec.Name)
				}
				seen[rec.Name] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkLength(field string, value []byte) error {
	if len(value) > container.MaxFieldLength {
		return fmt.Errorf("%s: %w", field, ErrFieldTooLong)
	}
	return nil
}
