package skadoo

import (
	"errors"
	"strings"
)

// Options specifies optional overrides for [Create].
type Options struct {
	// Long overrides the derived long form. Include the leading "--".
	Long string

	// Short overrides the derived short form. Include the leading "-".
	Short string

	// Description is free-text help for the flag.
	Description string

	// Default is the value the flag carries when it is not supplied on the
	// command line. It is overwritten by the extracted value when the flag
	// is present, and must be empty for an empty flag.
	Default string

	// Empty marks the flag as a boolean switch that takes no value token.
	Empty bool
}

// Create parses one flag from the given token list and returns its
// immutable [Flag] record.
//
// The name is required and may contain spaces; the canonical forms are
// derived from it unless overridden. The token list is typically
// [Args], the process invocation arguments, but any slice works:
//
//	dryRun, err := skadoo.Create("dry run", skadoo.Args(), &skadoo.Options{Empty: true})
//
// The options parameter may be nil, in which case defaults are used. See
// [Options] for more details.
//
// Create fails with a [ValidationError] when a non-empty Default is given
// for an empty flag, and with an [OutOfRangeError] when a value-expecting
// flag is the final token with no value after it.
func Create(name string, tokens []string, opts *Options) (Flag, error) {
	if strings.TrimSpace(name) == "" {
		return Flag{}, errors.New("flag name must not be empty")
	}
	if opts == nil {
		opts = &Options{}
	}

	parts := nameParts(name)
	long := opts.Long
	if long == "" {
		long = longForm(parts)
	}
	short := opts.Short
	if short == "" {
		short = shortForm(parts)
	}

	f := Flag{
		Name:        name,
		Long:        long,
		Short:       short,
		Description: opts.Description,
		Present:     isCalled(long, short, tokens),
		Empty:       opts.Empty,
	}
	if f.Present {
		value, err := parseValue(long, short, opts.Empty, tokens)
		if err != nil {
			return Flag{}, err
		}
		f.Value = value
	} else if opts.Default != "" {
		f.Value = literalValue(opts.Default)
	}
	if err := f.validate(); err != nil {
		return Flag{}, err
	}
	return f, nil
}

// validate checks the constructed record against the empty-flag contract.
// Extraction has already run by this point, so a called empty flag carries a
// boolean value and passes; the check fires only when a non-empty literal
// default was supplied for a flag declared to take no value.
func (f Flag) validate() error {
	if s, ok := f.Value.Get().(string); ok && f.Empty && s != "" {
		return &ValidationError{Form: f.Long, Value: s}
	}
	return nil
}
