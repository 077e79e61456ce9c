package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPasswdCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the master password",
		Long:  "Re-encrypt the database under a new master password and a fresh salt.",
		Args:  cobra.NoArgs,
		RunE: env.run(func(cmd *cobra.Command, _ []string) error {
			path, err := env.databasePath()
			if err != nil {
				return err
			}

			current, err := readPassword(cmd, "Current master password: ")
			if err != nil {
				return err
			}
			defer clear(current)

			vault := env.services.VaultService
			if err = vault.Open(ctxOf(cmd), path, current); err != nil {
				return err
			}

			next, err := readNewPassword(cmd, "New master password: ")
			if err != nil {
				return err
			}
			defer clear(next)

			if err = vault.ChangeMasterPassword(ctxOf(cmd), current, next); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Master password changed")
			return nil
		}),
	}
}
