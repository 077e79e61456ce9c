package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// newClipboard returns the system clipboard. It is a package-level variable
// so tests can record copies instead of touching the real clipboard.
var newClipboard = func(cfg *config.StructuredConfig, log *logger.Logger) (clipboard.Clipboard, error) {
	if clipboard.Unsupported() {
		return nil, app.ErrClipboardUnavailable
	}
	return clipboard.NewSystem(
		clipboard.WithClearAfter(cfg.Clipboard.ClearAfter),
		clipboard.WithLogger(log),
	), nil
}

func newCopyCmd(env *environment) *cobra.Command {
	var user bool

	cmd := &cobra.Command{
		Use:   "copy <name>",
		Short: "Copy an account password to the clipboard",
		Long: "Copy the password (or with --user the login) of an account to the clipboard. " +
			"When a clear delay is configured the command waits and then clears the clipboard.",
		Args: cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			clip, err := newClipboard(env.cfg, env.log)
			if err != nil {
				return err
			}

			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			rec, err := vault.Account(args[0])
			if err != nil {
				return err
			}
			defer rec.Wipe()

			what, value := "password", string(rec.Secret)
			if user {
				what, value = "user", string(rec.UserID)
			}
			if err = clip.Copy(value); err != nil {
				return fmt.Errorf("copy %s: %w", what, err)
			}

			out := cmd.ErrOrStderr()
			delay := env.cfg.Clipboard.ClearAfter
			if delay <= 0 {
				_, _ = fmt.Fprintf(out, "Copied %s of %s\n", what, rec.Name)
				return nil
			}

			_, _ = fmt.Fprintf(out, "Copied %s of %s, clearing the clipboard in %s\n", what, rec.Name, delay)
			if w, ok := clip.(interface{ Wait() }); ok {
				w.Wait()
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&user, "user", "u", false, "copy the login instead of the password")
	return cmd
}
