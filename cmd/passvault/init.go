package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
)

func newInitCmd(env *environment) *cobra.Command {
	var (
		force   bool
		makeDefault bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new empty database",
		Long:  "Create a new empty database at the --db path, protected by a new master password.",
		Args:  cobra.NoArgs,
		RunE: env.run(func(cmd *cobra.Command, _ []string) error {
			path, err := env.databasePath()
			if err != nil {
				return err
			}

			if _, err = os.Stat(path); err == nil && !force {
				return app.ErrDatabaseExists
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat database: %w", err)
			}

			password, err := readNewPassword(cmd, "New master password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			if err = env.services.VaultService.Create(ctxOf(cmd), path, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)

			if makeDefault {
				return savePreference(env, func(p *config.Preferences) error {
					return p.Set(config.KeyDatabasePath, path)
				})
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing file")
	cmd.Flags().BoolVar(&makeDefault, "default", false, "open this database on startup from now on")
	return cmd
}
