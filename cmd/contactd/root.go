package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contactkit/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "contactd",
	Short: "Contact form service with mail client fallback",
	Long: `contactd serves a contact page and call-to-action modals. Submissions are
delivered through the configured email provider. When delivery is not
configured or fails, the visitor's mail client is opened with a prefilled
message instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFiles(envFiles...)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading the environment")
}
