package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/exchange"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errUnknownConflictMode = errors.New("unknown --on-conflict value")

const (
	conflictAsk       = "ask"
	conflictKeep      = "keep"
	conflictOverwrite = "overwrite"
	conflictCancel    = "cancel"
)

func newImportCmd(env *environment) *cobra.Command {
	var onConflict string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import accounts from CSV",
		Long: "Import accounts from a CSV file with the columns name,username,password,url,notes. " +
			"Use - to read standard input. --on-conflict decides what happens when an account " +
			"with the same name exists: ask, keep, overwrite or cancel.",
		Args: cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			records, err := readCSV(cmd, args[0])
			if err != nil {
				return err
			}
			defer wipeRecords(records)

			resolve, err := conflictFunc(cmd, onConflict)
			if err != nil {
				return err
			}

			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			result, err := vault.Import(ctxOf(cmd), records, resolve)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported: %d added, %d overwritten, %d kept\n",
				result.Added, result.Overwritten, result.Skipped)
			return nil
		}),
	}

	cmd.Flags().StringVar(&onConflict, "on-conflict", conflictAsk, "ask, keep, overwrite or cancel")
	return cmd
}

func newExportCmd(env *environment) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export all accounts to CSV",
		Long:  "Export all accounts, passwords included, to an unencrypted CSV file. Use - for standard output.",
		Args:  cobra.ExactArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			vault, err := env.open(cmd)
			if err != nil {
				return err
			}

			records, err := vault.Export()
			if err != nil {
				return err
			}
			defer wipeRecords(records)

			if args[0] == "-" {
				return exchange.Marshal(cmd.OutOrStdout(), records)
			}

			flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(args[0], flag, 0o600)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err = exchange.Marshal(f, records); err != nil {
				_ = f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d accounts to %s\n", len(records), args[0])
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func readCSV(cmd *cobra.Command, name string) ([]models.Record, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return exchange.Unmarshal(r)
}

func conflictFunc(cmd *cobra.Command, mode string) (service.ConflictFunc, error) {
	switch strings.ToLower(mode) {
	case conflictKeep:
		return service.KeepAll, nil
	case conflictOverwrite:
		return service.OverwriteAll, nil
	case conflictCancel:
		return func(models.Record, models.Record) service.Resolution { return service.ResolveCancel }, nil
	case conflictAsk:
		return askConflict(newLineReader(cmd)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownConflictMode, mode)
	}
}

// askConflict asks once per clash. "all" answers apply to the remaining
// clashes of the same import.
func askConflict(lines *lineReader) service.ConflictFunc {
	var sticky *service.Resolution

	return func(existing, _ models.Record) service.Resolution {
		if sticky != nil {
			return *sticky
		}
		for {
			answer, err := lines.ask(fmt.Sprintf(
				"Account %q already exists. [o]verwrite, [k]eep, overwrite [a]ll, keep a[l]l, [c]ancel: ", existing.Name))
			if err != nil {
				return service.ResolveCancel
			}

			switch strings.ToLower(answer) {
			case "o", "overwrite":
				return service.ResolveOverwrite
			case "k", "keep":
				return service.ResolveKeep
			case "a", "overwrite all":
				r := service.ResolveOverwrite
				sticky = &r
				return r
			case "l", "keep all":
				r := service.ResolveKeep
				sticky = &r
				return r
			case "c", "cancel", "":
				return service.ResolveCancel
			}
		}
	}
}

func wipeRecords(records []models.Record) {
	for i := range records {
		records[i].Wipe()
	}
}
