package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show how submissions will be delivered with the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		mode := "fallback only (mail client)"
		if s.Contact.Credentials().Configured() {
			mode = "automated via " + s.Email.Provider
		}
		store := "memory"
		if s.Redis.Enabled() {
			store = "redis"
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "destination:\t%s\n", s.Contact.Destination)
		fmt.Fprintf(w, "delivery:\t%s\n", mode)
		fmt.Fprintf(w, "guard and rate limit store:\t%s\n", store)
		fmt.Fprintf(w, "listen:\t%s\n", s.HTTP.Addr)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
