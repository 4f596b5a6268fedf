// Package skadoo parses individual command-line flags without a registry.
// Each call to [Create] derives a flag's canonical long and short forms from
// a human-readable name, inspects an explicit token list for either form,
// extracts the accompanying value if one is expected, and returns an
// immutable [Flag] record describing the result.
//
//	dryRun, err := skadoo.Create("dry run", skadoo.Args(), &skadoo.Options{Empty: true})
//	if err != nil {
//	    // usage error: report and exit non-zero
//	}
//	if dryRun.Present {
//	    // ...
//	}
//
// There is no multi-flag registry, no type coercion beyond strings, and no
// subcommand dispatch; those belong to the surrounding application. Because
// every operation is a pure computation over the token list it is given,
// flags may be created concurrently and in any order.
package skadoo
