// Package flagx helps several packages share os.Args without stepping on
// each other's flag sets.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments matching allowedFlags, keeping each
// flag's value whether it was passed as "-f value" or "--flag=value".
// Everything else, including positionals, is dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// StripArgs is the complement of FilterArgs: it removes the given flags
// (and, for valueFlags, their values) from args, leaving everything else
// in order. Used to hide the early-parsed config flags from cobra.
func StripArgs(args []string, valueFlags, boolFlags []string) []string {
	takesValue := make(map[string]struct{}, len(valueFlags))
	for _, f := range valueFlags {
		takesValue[f] = struct{}{}
	}
	bare := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		bare[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := takesValue[name]; ok {
				continue
			}
			if _, ok := bare[name]; ok {
				continue
			}
			kept = append(kept, arg)
			continue
		}

		if _, ok := takesValue[arg]; ok {
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		if _, ok := bare[arg]; ok {
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Other arguments are ignored so the config package can parse early,
// before the rest of the flags are defined. Returns "" when absent.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
