package usagefmt

import (
	"fmt"

	"github.com/spf13/pflag"
)

// AppendFlagSet renders the flags of fs as a two-column table: the flag
// label (shorthand, long name, and value placeholder) on the left and the
// usage text with its default on the right. Hidden flags are skipped.
// Flags appear in lexical order, matching pflag's own help output.
func AppendFlagSet(f *Formatter, fs *pflag.FlagSet) error {
	cols, err := f.Columns(2)
	if err != nil {
		return err
	}
	fs.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden || err != nil {
			return
		}
		err = cols.Append(flagLabel(flag), flagUsage(flag))
	})
	if err != nil {
		return err
	}
	cols.Close()
	return nil
}

func flagLabel(flag *pflag.Flag) string {
	label := "--" + flag.Name
	if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
		label = fmt.Sprintf("-%s, %s", flag.Shorthand, label)
	}
	if varname, _ := pflag.UnquoteUsage(flag); varname != "" {
		label += "=" + varname
	}
	return label
}

func flagUsage(flag *pflag.Flag) string {
	_, usage := pflag.UnquoteUsage(flag)
	if defaultIsInteresting(flag) {
		usage += fmt.Sprintf(" (default %s)", flag.DefValue)
	}
	return usage
}

// defaultIsInteresting reports whether the default value is worth printing:
// zero values for bools, strings, and lists are noise.
func defaultIsInteresting(flag *pflag.Flag) bool {
	switch flag.DefValue {
	case "", "false", "[]", "0":
		return false
	}
	return true
}
