package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/piiguard/internal/flagx"
)

// ValueFlags lists every flag that takes a value, including the JSON config
// flags. The CLI uses it to find the subcommand among the arguments.
var ValueFlags = []string{"-d", "-k", "-l", "-p", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   record store location
//	-k string   key file location
//	-l string   log level
//	-p string   transform failure policy (continue|abort)
//
// Arguments not handled here (the subcommand, -c) are filtered out with
// flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-k", "-l", "-p"})

	fs := flag.NewFlagSet("piiguard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "record store location (sqlite path or postgres DSN)")
	fs.StringVar(&cfg.KeyPath, "k", cfg.KeyPath, "key file location")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Policy, "p", cfg.Policy, "transform failure policy (continue|abort)")

	return fs.Parse(filtered)
}
