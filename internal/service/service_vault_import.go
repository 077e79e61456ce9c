package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Resolution is the answer to an import name clash.
type Resolution int

const (
	// ResolveOverwrite replaces the existing account with the imported one.
	ResolveOverwrite Resolution = iota
	// ResolveKeep keeps the existing account and skips the imported one.
	ResolveKeep
	// ResolveCancel aborts the whole import without changes.
	ResolveCancel
)

func (r Resolution) String() string {
	switch r {
	case ResolveOverwrite:
		return "overwrite"
	case ResolveKeep:
		return "keep"
	case ResolveCancel:
		return "cancel"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}

// ConflictFunc decides what happens when an imported account has the same
// name as an existing one.
type ConflictFunc func(existing, incoming models.Record) Resolution

// OverwriteAll resolves every clash in favor of the imported account.
func OverwriteAll(models.Record, models.Record) Resolution { return ResolveOverwrite }

// KeepAll resolves every clash in favor of the existing account.
func KeepAll(models.Record, models.Record) Resolution { return ResolveKeep }

// ImportResult counts what an import did.
type ImportResult struct {
	Added       int
	Overwritten int
	Skipped     int
}

func (s *vaultService) Import(ctx context.Context, records []models.Record, resolve ConflictFunc) (ImportResult, error) {
	var result ImportResult
	if !s.IsOpen() {
		return result, ErrNoOpenVault
	}
	if resolve == nil {
		resolve = KeepAll
	}

	// decide everything first so that cancel leaves the store untouched
	apply := make([]models.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, incoming := range records {
		if _, dup := seen[incoming.Name]; dup {
			return ImportResult{}, fmt.Errorf("%w: %q appears more than once", ErrInvalidRecord, incoming.Name)
		}
		seen[incoming.Name] = struct{}{}

		existing, ok := s.store.Get(incoming.Name)
		if !ok {
			apply = append(apply, incoming)
			result.Added++
			continue
		}

		decision := resolve(existing, incoming)
		existing.Wipe()
		switch decision {
		case ResolveOverwrite:
			apply = append(apply, incoming)
			result.Overwritten++
		case ResolveKeep:
			result.Skipped++
		case ResolveCancel:
			return ImportResult{}, ErrImportCanceled
		default:
			return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidResolve, decision)
		}
	}

	if len(apply) == 0 {
		return result, nil
	}

	previous := make(map[string]models.Record, result.Overwritten)
	defer func() {
		for _, rec := range previous {
			rec.Wipe()
		}
	}()

	rollback := func(applied []models.Record) {
		for _, rec := range applied {
			s.store.Delete(rec.Name)
			if old, ok := previous[rec.Name]; ok {
				_ = s.store.Put(old)
			}
		}
	}

	for i, rec := range apply {
		if old, ok := s.store.Get(rec.Name); ok {
			previous[rec.Name] = old
		}
		if err := s.store.Put(rec); err != nil {
			rollback(apply[:i])
			return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}

	if err := s.save(); err != nil {
		rollback(apply)
		return ImportResult{}, err
	}

	s.logger.Info().
		Int("added", result.Added).
		Int("overwritten", result.Overwritten).
		Int("skipped", result.Skipped).
		Msg("accounts imported")
	return result, nil
}
