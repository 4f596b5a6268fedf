package skadoo

import "fmt"

// ValidationError is returned by [Create] when a flag declared to take no
// value is constructed with a non-empty default. It carries the offending
// form and value so callers can present a usage error.
type ValidationError struct {
	// Form is the long form of the conflicting flag.
	Form string

	// Value is the caller-supplied value that conflicts with the empty
	// declaration.
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot set value %q for empty flag %s", e.Value, e.Form)
}

// OutOfRangeError is returned by [Create] when a flag that expects a value
// matches the final token, leaving no following token to take the value
// from.
type OutOfRangeError struct {
	// Form is the flag form that matched, long or short.
	Form string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("flag %s expects a value but none was supplied", e.Form)
}
