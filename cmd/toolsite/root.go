package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toolsite/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "toolsite",
		Short: "Localized developer tool pages",
		Long: `toolsite renders the tool pages (Base64, JSON, QR, regex, references)
in every configured language. Configuration comes from the environment and
an optional .env file.

  toolsite serve     Run the HTTP server
  toolsite export    Write the whole site as static files
  toolsite check     Report missing translations`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading configuration")

	root.AddCommand(newServeCmd(), newExportCmd(), newCheckCmd())
	return root
}
