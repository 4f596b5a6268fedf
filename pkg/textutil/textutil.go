// Package textutil provides small text-formatting helpers for rendering
// help and diagnostic output.
package textutil

import "strings"

// Wrap breaks s into lines of at most width characters, splitting on word
// boundaries. A word longer than width gets a line of its own rather than
// being broken mid-word. The result always contains at least one line, so
// callers may index the first element unconditionally.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
