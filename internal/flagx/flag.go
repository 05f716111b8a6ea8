// Package flagx helps several flag consumers share one command line.
//
// The config loader owns a handful of global flags (-c, -s, -db, ...)
// while the subcommand dispatcher owns everything else. SplitArgs
// separates the two groups so each side can parse with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// SplitArgs partitions args into the flags listed in known (with their
// values) and everything else, preserving order on both sides.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// A known flag followed by an argument that starts with "-" is treated
// as having no value.
func SplitArgs(args []string, known []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(known))
	for _, f := range known {
		allowed[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// FilterArgs returns only the allowed flags (and their values) from args.
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := SplitArgs(args, allowedFlags)
	return matched
}

// StripArgs returns args with the listed flags (and their values) removed.
func StripArgs(args []string, flags []string) []string {
	_, rest := SplitArgs(args, flags)
	return rest
}

// JsonConfigFlags returns the config file path given on the process
// command line with -c or -config, or "" when neither is present.
func JsonConfigFlags() string {
	return ConfigPath(os.Args[1:])
}

// ConfigPath is JsonConfigFlags over an explicit argument list.
func ConfigPath(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFileFlags))

	return config
}

// ConfigFileFlags lists the spellings of the config file flag.
var ConfigFileFlags = []string{"-c", "-config"}
