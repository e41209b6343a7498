package config

import (
	"flag"
	"os"
	"time"

	"github.com/konkrer/hack-or-snooze/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the story service API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path to the local state database (default from Config)
//	-v          verbose (debug) logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so it does not interfere with cobra's own
// argument parsing.
// StripArgs removes the flags owned by this package (including the
// -c/-config file flag) from args. The command layer parses what is left.
func StripArgs(args []string) []string {
	return flagx.StripArgs(args, []string{"-a", "-t", "-d", "-c", "-config"}, []string{"-v"})
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the story service API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local state database")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
