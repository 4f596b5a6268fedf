package skadoo

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Args returns the process token list: every invocation argument after the
// program name. The result is a copy, so callers may modify it without
// affecting later calls.
//
// All parsing functions in this package take an explicit token list rather
// than reading process state, which keeps them testable. Args is the
// convenience for the common case:
//
//	verbose, err := skadoo.Create("verbose", skadoo.Args(), &skadoo.Options{Empty: true})
func Args() []string {
	return slices.Clone(os.Args[1:])
}

// Tokens splits a raw command string into a token list using shell quoting
// rules. It is intended for invocations that arrive as a single string, for
// example from an environment variable or a configuration value, rather
// than from the process argument vector.
func Tokens(commandline string) ([]string, error) {
	tokens, err := shellquote.Split(commandline)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", commandline, err)
	}
	return tokens, nil
}

// nameParts splits a logical flag name into its lowercase word parts. Word
// order is preserved and repeated words are kept.
func nameParts(name string) []string {
	return strings.Fields(strings.ToLower(name))
}
