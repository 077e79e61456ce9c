package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags binds the global configuration flags to fs and returns the
// config layer they fill once fs is parsed.
//
// Flags:
//
//	--db            database file path
//	-c/--config     JSON preferences file path
//	--locale        locale used to sort account names
//	--clear-after   clipboard clear delay (e.g. "30s"), 0 disables
//	--log-level     log level (debug, info, warn, error)
//	--log-file      log file path, "-" for stderr
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Vault.Path, "db", "", "Database file path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON preferences file path")
	fs.StringVar(&cfg.Vault.Locale, "locale", "", "Locale used to sort account names")
	fs.DurationVar(&cfg.Clipboard.ClearAfter, "clear-after", 0, "Clear the clipboard after this delay (0 disables)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", `Log file path, "-" for stderr`)

	return cfg
}
