package skadoo

import (
	"fmt"
	"io"
	"strings"
)

// Flag is the parsed state of one named command-line flag. It is constructed
// once per flag per invocation via [Create] and never mutated afterwards;
// callers may freely copy and share it across goroutines.
type Flag struct {
	// Name is the flag's logical identifier. It is human-readable and may
	// contain spaces, e.g. "dry run".
	Name string

	// Long is the canonical long form, e.g. "--dry-run". Unless overridden,
	// it is derived from Name by joining the lowercase words with dashes.
	Long string

	// Short is the canonical short form, e.g. "-dr". Unless overridden, it is
	// derived from the first letter of each word in Name.
	Short string

	// Description is free-text help for the flag. It carries no semantic
	// constraint and is only used for display.
	Description string

	// Present reports whether either form was found among the tokens.
	Present bool

	// Empty marks the flag as a boolean switch that takes no value token.
	Empty bool

	// Value is the flag's parsed value. See [Value] for the rendering rules.
	Value Value
}

// String renders the flag as a fixed multi-line diagnostic block. The output
// is intended for human display and is not machine-parsed.
func (f Flag) String() string {
	return strings.Join([]string{
		fmt.Sprintf("Flag (%s)", f.Long),
		fmt.Sprintf("Short (%s)", f.Short),
		fmt.Sprintf("Name: %s", f.Name),
		fmt.Sprintf("Empty Arg: %t", f.Empty),
		fmt.Sprintf("Description: %s", f.Description),
	}, "\n ")
}

// Describe writes the flag's diagnostic block to w, followed by a newline.
func (f Flag) Describe(w io.Writer) {
	fmt.Fprintln(w, f.String())
}

// Value is the tagged result of parsing one flag from the token list. The
// zero value is absent. A value is in exactly one of three states: absent
// (the flag was not supplied and no default was given), boolean (a switch
// that takes no value token), or literal (the token that followed the
// matched flag, or a caller-supplied default for a flag that was not
// supplied).
//
// The string rendering is a presentation concern only: absent renders as
// "False", a boolean switch renders as "True" or "False", and a literal
// renders as itself. Use [Value.Get] to distinguish the states.
type Value struct {
	kind valueKind
	str  string
	b    bool
}

type valueKind int

const (
	kindAbsent valueKind = iota
	kindBool
	kindLiteral
)

func boolValue(b bool) Value {
	return Value{kind: kindBool, b: b}
}

func literalValue(s string) Value {
	return Value{kind: kindLiteral, str: s}
}

// Get returns the underlying value: nil when absent, a bool for a switch,
// or a string for a literal.
func (v Value) Get() any {
	switch v.kind {
	case kindBool:
		return v.b
	case kindLiteral:
		return v.str
	}
	return nil
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case kindBool:
		if v.b {
			return "True"
		}
		return "False"
	case kindLiteral:
		return v.str
	}
	return "False"
}
