// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/container"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// newCodec builds the database codec. It is a package-level variable so
// tests can use cheap key derivation parameters.
var newCodec = func(log *logger.Logger) service.VaultCodec {
	return container.NewCodec(container.WithLogger(log))
}

// environment is what every command works with once the persistent pre-run
// has merged the configuration.
type environment struct {
	flags    *config.StructuredConfig
	cfg      *config.StructuredConfig
	log      *logger.Logger
	closeLog func() error
	services *service.Services
}

// NewRootCmd creates the root passvault command with all subcommands
// registered. Running it without a subcommand starts the terminal UI.
func NewRootCmd() *cobra.Command {
	env := &environment{}

	root := &cobra.Command{
		Use:           "passvault",
		Short:         "passvault - local encrypted password database",
		Long:          "passvault keeps account names, logins, passwords, URLs and notes in a single file encrypted with a master password.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.init()
		},
		RunE: env.run(func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, env)
		}),
	}

	env.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newInitCmd(env),
		newListCmd(env),
		newShowCmd(env),
		newAddCmd(env),
		newEditCmd(env),
		newDeleteCmd(env),
		newPasswdCmd(env),
		newImportCmd(env),
		newExportCmd(env),
		newCopyCmd(env),
		newConfigCmd(env),
		newVersionCmd(env),
		newTUICmd(env),
	)

	return root
}

func (e *environment) init() error {
	cfg, err := config.GetStructuredConfig(e.flags)
	if err != nil {
		return errors.Join(app.ErrInvalidConfiguration, err)
	}
	e.cfg = cfg

	e.log, e.closeLog = logger.NewFileLogger("cli", cfg.Log.File, cfg.Log.Level)
	e.services = service.NewServices(newCodec(e.log), cfg.Language(), e.log)
	return nil
}

// run wraps a command body so the session and the log file are closed
// whatever the body returns.
func (e *environment) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() { err = errors.Join(err, e.close()) }()
		return fn(cmd, args)
	}
}

func (e *environment) close() error {
	if e.services != nil {
		e.services.VaultService.Close()
	}
	if e.closeLog != nil {
		closeLog := e.closeLog
		e.closeLog = nil
		return closeLog()
	}
	return nil
}

// databasePath returns the configured database or ErrNoDatabaseConfigured.
func (e *environment) databasePath() (string, error) {
	if e.cfg.Vault.Path == "" {
		return "", app.ErrNoDatabaseConfigured
	}
	return e.cfg.Vault.Path, nil
}

// open asks for the master password and opens the configured database.
func (e *environment) open(cmd *cobra.Command) (service.VaultService, error) {
	path, err := e.databasePath()
	if err != nil {
		return nil, err
	}

	password, err := readPassword(cmd, "Master password: ")
	if err != nil {
		return nil, err
	}
	defer clear(password)

	vault := e.services.VaultService
	if err = vault.Open(ctxOf(cmd), path, password); err != nil {
		return nil, err
	}
	return vault, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
