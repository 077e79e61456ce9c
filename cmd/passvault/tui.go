package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

func newTUICmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Long:  "Start the interactive terminal UI. Running passvault without a command does the same.",
		Args:  cobra.NoArgs,
		RunE: env.run(func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, env)
		}),
	}
}

func runTUI(cmd *cobra.Command, env *environment) error {
	path, err := env.databasePath()
	if err != nil {
		return err
	}

	clip, err := newClipboard(env.cfg, env.log)
	if err != nil {
		// copying reports the problem, everything else still works
		env.log.Warn().Err(err).Msg("clipboard unavailable")
		clip = unavailableClipboard{err: err}
	}

	ui := tui.New(env.services.VaultService, clip, buildInfo(), env.log)
	a, err := client.NewApp(ui, path, env.log)
	if err != nil {
		return err
	}
	return a.Run(ctxOf(cmd))
}

type unavailableClipboard struct {
	err error
}

func (c unavailableClipboard) Copy(string) error { return c.err }

var _ clipboard.Clipboard = unavailableClipboard{}
