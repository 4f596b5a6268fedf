package skadoo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/cnpryer/skadoo/pkg/textutil"
)

// Usage renders a help-text section for the given flags. Flags are sorted by
// long form, forms are padded to a common column, and descriptions are
// wrapped at 80 columns. A flag that is not present but carries a default
// value has the default appended to its description.
//
// The output is for human display (help or diagnostic text); it is not part
// of the data contract and is not machine-parsed.
func Usage(flags ...Flag) string {
	if len(flags) == 0 {
		return ""
	}
	sorted := slices.Clone(flags)
	slices.SortFunc(sorted, func(a, b Flag) int {
		return cmp.Compare(a.Long, b.Long)
	})

	maxNameLen := 0
	for _, f := range sorted {
		if n := len(usageName(f)); n > maxNameLen {
			maxNameLen = n
		}
	}

	nameWidth := maxNameLen + 4
	wrapWidth := 80 - nameWidth

	var b strings.Builder
	for _, f := range sorted {
		name := usageName(f)
		description := f.Description
		if v, ok := f.Value.Get().(string); ok && !f.Present && v != "" {
			description += fmt.Sprintf(" (default: %s)", v)
		}
		if description == "" {
			fmt.Fprintf(&b, "  %s\n", name)
			continue
		}

		lines := textutil.Wrap(description, wrapWidth)
		padding := strings.Repeat(" ", maxNameLen-len(name)+4)
		fmt.Fprintf(&b, "  %s%s%s\n", name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func usageName(f Flag) string {
	return f.Long + ", " + f.Short
}
