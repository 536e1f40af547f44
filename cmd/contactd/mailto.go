package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contactkit/pkg/contact"
)

var (
	mailtoValues = map[string]*string{}
	mailtoTo     string
	mailtoCTA    string
)

var mailtoCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Print the mail client link a submission would fall back to",
	Example: `  contactd mailto --name "Ada Lovelace" --email ada@example.com --message "Hello"
  contactd mailto --cta demo --name Ada --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := contact.ContactForm()
		if mailtoCTA != "" {
			f, err := contact.NewCTAForm(contact.CTAKind(mailtoCTA))
			if err != nil {
				return fmt.Errorf("cta %q: %w", mailtoCTA, err)
			}
			form = f
		}

		values := make(map[string]string, len(mailtoValues))
		for name, v := range mailtoValues {
			values[name] = *v
		}
		req, err := form.Validate(values)
		if err != nil {
			return err
		}

		to := mailtoTo
		if to == "" {
			var cfg contact.Config
			if s, err := loadSettings(); err == nil {
				cfg = s.Contact
			}
			to = cfg.Destination
		}
		if to == "" {
			return contact.ErrMissingDestination
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), req.Mailto(to))
		return err
	},
}

func init() {
	for _, f := range contact.DefaultSchema() {
		mailtoValues[f.Name] = mailtoCmd.Flags().String(f.Name, "", "form field "+f.Name)
	}
	mailtoCmd.Flags().StringVar(&mailtoTo, "to", "", "destination address (defaults to CONTACT_EMAIL)")
	mailtoCmd.Flags().StringVar(&mailtoCTA, "cta", "", "call-to-action form to use: demo or call")
	rootCmd.AddCommand(mailtoCmd)
}
