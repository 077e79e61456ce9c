// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	codec  VaultCodec
	locale language.Tag
	logger *logger.Logger

	path   string
	store  *vault.Store
	cipher *crypto.Cipher
}

func NewVaultService(codec VaultCodec, locale language.Tag, logger *logger.Logger) VaultService {
	return &vaultService{
		codec:  codec,
		locale: locale,
		logger: logger.WithComponent("vault_service"),
	}
}

func (s *vaultService) Create(ctx context.Context, path string, password []byte) error {
	if path == "" {
		return ErrEmptyPath
	}

	cipher, err := s.codec.NewCipher(password)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	store := vault.NewStore()
	if err = s.codec.Save(path, store, cipher); err != nil {
		cipher.Wipe()
		return fmt.Errorf("save new database: %w", err)
	}

	s.replace(path, store, cipher)
	s.logger.Info().Str("path", path).Msg("database created")
	return nil
}

func (s *vaultService) Open(ctx context.Context, path string, password []byte) error {
	if path == "" {
		return ErrEmptyPath
	}

	store, cipher, err := s.codec.Load(path, password)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("open database failed")
		return fmt.Errorf("open database: %w", err)
	}

	s.replace(path, store, cipher)
	s.logger.Info().Str("path", path).Int("accounts", store.Len()).Msg("database opened")
	return nil
}

func (s *vaultService) replace(path string, store *vault.Store, cipher *crypto.Cipher) {
	s.Close()
	s.path, s.store, s.cipher = path, store, cipher
}

func (s *vaultService) Close() {
	if s.store != nil {
		s.store.Wipe()
	}
	if s.cipher != nil {
		s.cipher.Wipe()
	}
	s.path, s.store, s.cipher = "", nil, nil
}

func (s *vaultService) IsOpen() bool {
	return s.store != nil
}

func (s *vaultService) Path() string {
	return s.path
}

func (s *vaultService) Accounts(filter string) ([]string, error) {
	if !s.IsOpen() {
		return nil, ErrNoOpenVault
	}
	return s.store.Filter(filter, s.locale), nil
}

func (s *vaultService) Account(name string) (models.Record, error) {
	if !s.IsOpen() {
		return models.Record{}, ErrNoOpenVault
	}
	rec, ok := s.store.Get(name)
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	return rec, nil
}

func (s *vaultService) AddAccount(ctx context.Context, rec models.Record) error {
	if !s.IsOpen() {
		return ErrNoOpenVault
	}
	if s.store.Has(rec.Name) {
		return fmt.Errorf("%w: %q", ErrAccountExists, rec.Name)
	}

	if err := s.store.Put(rec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if err := s.save(); err != nil {
		s.store.Delete(rec.Name)
		return err
	}

	s.logger.Info().Object("account", rec).Msg("account added")
	return nil
}

func (s *vaultService) UpdateAccount(ctx context.Context, oldName string, rec models.Record) error {
	if !s.IsOpen() {
		return ErrNoOpenVault
	}
	previous, ok := s.store.Get(oldName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, oldName)
	}
	defer previous.Wipe()

	renamed := rec.Name != oldName
	if renamed && s.store.Has(rec.Name) {
		return fmt.Errorf("%w: %q", ErrAccountExists, rec.Name)
	}

	s.store.Delete(oldName)
	if err := s.store.Put(rec); err != nil {
		_ = s.store.Put(previous)
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if err := s.save(); err != nil {
		s.store.Delete(rec.Name)
		_ = s.store.Put(previous)
		return err
	}

	s.logger.Info().Str("old_name", oldName).Object("account", rec).Bool("renamed", renamed).Msg("account updated")
	return nil
}

func (s *vaultService) DeleteAccount(ctx context.Context, name string) error {
	if !s.IsOpen() {
		return ErrNoOpenVault
	}
	previous, ok := s.store.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	defer previous.Wipe()

	s.store.Delete(name)
	if err := s.save(); err != nil {
		_ = s.store.Put(previous)
		return err
	}

	s.logger.Info().Str("name", name).Msg("account deleted")
	return nil
}

func (s *vaultService) ChangeMasterPassword(ctx context.Context, current, next []byte) error {
	if !s.IsOpen() {
		return ErrNoOpenVault
	}

	if err := s.codec.Verify(s.path, current); err != nil {
		return fmt.Errorf("verify current password: %w", err)
	}

	// a fresh cipher keeps the old one usable if the write fails
	cipher, err := s.codec.NewCipher(next)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	if err = s.codec.Save(s.path, s.store, cipher); err != nil {
		cipher.Wipe()
		return fmt.Errorf("save database: %w", err)
	}

	s.cipher.Wipe()
	s.cipher = cipher
	s.logger.Info().Str("path", s.path).Msg("master password changed")
	return nil
}

func (s *vaultService) Export() ([]models.Record, error) {
	if !s.IsOpen() {
		return nil, ErrNoOpenVault
	}

	names := s.store.SortedNames(s.locale)
	records := make([]models.Record, 0, len(names))
	for _, name := range names {
		rec, _ := s.store.Get(name)
		records = append(records, rec)
	}
	return records, nil
}

func (s *vaultService) save() error {
	if err := s.codec.Save(s.path, s.store, s.cipher); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("save database")
		return fmt.Errorf("save database: %w", err)
	}
	return nil
}
