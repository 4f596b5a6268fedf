package skadoo

import "slices"

// isCalled reports whether either form appears in the token list. Membership
// is exact string equality, never a prefix or fuzzy match, so "--output"
// does not match a "--output-dir" token.
func isCalled(long, short string, tokens []string) bool {
	return slices.Contains(tokens, long) || slices.Contains(tokens, short)
}

// parseValue locates the value associated with a called flag. The caller
// must have already confirmed presence with isCalled.
//
// An empty flag is a bare switch: presence alone yields a boolean true value
// and no lookahead into the tokens happens. Otherwise the value is the token
// immediately following the matched form. When both forms appear, the long
// form's position is authoritative.
func parseValue(long, short string, empty bool, tokens []string) (Value, error) {
	if empty {
		return boolValue(true), nil
	}
	index := slices.Index(tokens, long)
	if index == -1 {
		index = slices.Index(tokens, short)
	}
	if index+1 >= len(tokens) {
		return Value{}, &OutOfRangeError{Form: tokens[index]}
	}
	return literalValue(tokens[index+1]), nil
}
