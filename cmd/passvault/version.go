package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

func newVersionCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: env.run(func(cmd *cobra.Command, _ []string) error {
			info, err := service.NewAppInfoService(buildInfo(), env.log)
			if err != nil {
				return err
			}

			build := info.GetBuildInfo(ctxOf(cmd))
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Build version: %s\n", info.GetAppVersion(ctxOf(cmd)))
			_, _ = fmt.Fprintf(out, "Build date: %s\n", build.BuildDate())
			_, _ = fmt.Fprintf(out, "Build commit: %s\n", build.BuildCommit())
			return nil
		}),
	}
}
