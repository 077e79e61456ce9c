package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newListCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "List account names",
		Long:  "List account names in sorted order. A filter keeps names that contain it, ignoring case.",
		Args:  cobra.MaximumNArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			names, err := vault.Accounts(filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		}),
	}
}

func newShowCmd(env *environment) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			rec, err := vault.Account(args[0])
			if err != nil {
				return err
			}
			defer rec.Wipe()

			secret := "********"
			if reveal {
				secret = string(rec.Secret)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Name:     %s\n", rec.Name)
			_, _ = fmt.Fprintf(out, "User:     %s\n", rec.UserID)
			_, _ = fmt.Fprintf(out, "Password: %s\n", secret)
			_, _ = fmt.Fprintf(out, "URL:      %s\n", rec.URL)
			if len(rec.Notes) > 0 {
				_, _ = fmt.Fprintf(out, "Notes:\n  %s\n", strings.ReplaceAll(string(rec.Notes), "\n", "\n  "))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the password in clear text")
	return cmd
}

// accountFlags are the optional field flags of add and edit.
type accountFlags struct {
	name  string
	user  string
	url   string
	notes string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.user, "user", "u", "", "login of the account")
	cmd.Flags().StringVar(&f.url, "url", "", "address of the service")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
}

func newAddCmd(env *environment) *cobra.Command {
	var fields accountFlags

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account",
		Long:  "Add an account. The account password is read from the terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			secret, err := readNewPassword(cmd, "Account password: ")
			if err != nil {
				return err
			}

			rec := models.NewRecordFromStrings(args[0], fields.user, "", fields.url, fields.notes)
			rec.Secret = secret
			defer rec.Wipe()

			if err = vault.AddAccount(ctxOf(cmd), rec); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", rec.Name)
			return nil
		}),
	}

	fields.register(cmd)
	return cmd
}

func newEditCmd(env *environment) *cobra.Command {
	var (
		fields      accountFlags
		newPassword bool
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Change or rename an account",
		Long:  "Change the fields given as flags. --name renames the account, --password asks for a new account password.",
		Args:  cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			rec, err := vault.Account(args[0])
			if err != nil {
				return err
			}
			defer rec.Wipe()

			flags := cmd.Flags()
			if flags.Changed("name") {
				rec.Name = fields.name
			}
			if flags.Changed("user") {
				rec.UserID = []byte(fields.user)
			}
			if flags.Changed("url") {
				rec.URL = []byte(fields.url)
			}
			if flags.Changed("notes") {
				rec.Notes = []byte(fields.notes)
			}
			if newPassword {
				secret, err := readNewPassword(cmd, "New account password: ")
				if err != nil {
					return err
				}
				rec.Wipe()
				rec.Secret = secret
			}

			if err = vault.UpdateAccount(ctxOf(cmd), args[0], rec); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", rec.Name)
			return nil
		}),
	}

	fields.register(cmd)
	cmd.Flags().StringVar(&fields.name, "name", "", "new account name")
	cmd.Flags().BoolVarP(&newPassword, "password", "p", false, "ask for a new account password")
	return cmd
}

func newDeleteCmd(env *environment) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			rec, err := vault.Account(name)
			if err != nil {
				return err
			}
			rec.Wipe()

			if !yes {
				ok, err := newLineReader(cmd).confirm(fmt.Sprintf("Delete account %q?", name))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
			}

			if err = vault.DeleteAccount(ctxOf(cmd), name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
