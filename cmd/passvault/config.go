package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
)

func newConfigCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change preferences",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: env.run(func(cmd *cobra.Command, _ []string) error {
				cfg := env.cfg
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintf(w, "config file\t%s\n", cfg.JSONFilePath)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", config.KeyDatabasePath, cfg.Vault.Path)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", config.KeyLocale, cfg.Vault.Locale)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", config.KeyClipboardClearAfter, cfg.Clipboard.ClearAfter)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", config.KeyLogLevel, cfg.Log.Level)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", config.KeyLogFile, cfg.Log.File)
				return w.Flush()
			}),
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Store a preference",
			Long:      "Store a preference in the preferences file. An empty value removes it.",
			Args:      cobra.ExactArgs(2),
			ValidArgs: config.PreferenceKeys,
			RunE: env.run(func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if err := savePreference(env, func(p *config.Preferences) error { return p.Set(key, value) }); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, value)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a stored preference",
			Args:  cobra.ExactArgs(1),
			RunE: env.run(func(cmd *cobra.Command, args []string) error {
				prefs, err := config.LoadPreferencesOrEmpty(env.cfg.JSONFilePath)
				if err != nil {
					return err
				}
				value, err := prefs.Get(args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}),
		},
	)

	return cmd
}

// savePreference applies change to the preferences file of the current
// configuration and writes it back.
func savePreference(env *environment, change func(p *config.Preferences) error) error {
	path := env.cfg.JSONFilePath
	prefs, err := config.LoadPreferencesOrEmpty(path)
	if err != nil {
		return err
	}
	if err = change(&prefs); err != nil {
		return err
	}
	if err = config.SavePreferences(path, prefs); err != nil {
		return err
	}
	env.log.Info().Str("path", path).Msg("preferences saved")
	return nil
}
