// Package flagx lets several independent parsers share os.Args: each one
// keeps only the flags it owns and hands them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnv names the config file when no -c/-config flag is given.
const ConfigEnv = "IMAGEKEEPER_CONFIG"

// FilterArgs keeps the flags named in allowed together with their values.
// Names are given with one dash ("-a", "-http"); the double-dash spelling
// that the flag package also accepts is matched as well.
//
// A value is taken from "-name=value" or from the next argument when that
// argument does not itself start with a dash. Everything else is dropped.
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[strings.TrimLeft(f, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name, hasValue := flagName(arg)
		if name == "" {
			continue
		}
		if _, ok := names[name]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// flagName returns the bare name of a flag argument and whether the value
// is inlined after '='. Non-flag arguments yield "".
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" || name[0] == '-' {
		return "", false
	}
	if before, _, found := strings.Cut(name, "="); found {
		return before, true
	}
	return name, false
}

// ConfigPath returns the JSON config path from -c/-config in args, falling
// back to $IMAGEKEEPER_CONFIG. Empty means no file.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
