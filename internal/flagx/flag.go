// Package flagx lets the JSON loader and the flag loader share os.Args.
// Each parses only the flags it owns and ignores the rest, so a flag set
// never fails on a flag that belongs to the other loader.
package flagx

import (
	"flag"
	"strings"
)

// flagName returns the name of a flag argument without its dashes and
// reports whether the value is joined with '='. Non-flags give "".
func flagName(arg string) (name string, joined bool) {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return "", false
	}
	name = strings.TrimPrefix(arg[1:], "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true
	}
	return name, false
}

// Owned returns the arguments that belong to the named flags, in their
// original order. Names are given without dashes; "-a", "--a" and "-a=x"
// all match "a". A value in the following argument is kept with its flag
// unless it starts with a dash.
func Owned(args []string, names ...string) []string {
	owned := make(map[string]struct{}, len(names))
	for _, n := range names {
		owned[n] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, joined := flagName(args[i])
		if _, ok := owned[name]; !ok || name == "" {
			continue
		}
		out = append(out, args[i])
		if !joined && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is set. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Owned(args, "c", "config"))

	return path
}
