package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{""}, Wrap("", 10))
	})
	t.Run("fits on one line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello world"}, Wrap("hello world", 20))
	})
	t.Run("wraps at word boundary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello", "world"}, Wrap("hello world", 8))
	})
	t.Run("long word keeps its own line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "verylongword", "b"}, Wrap("a verylongword b", 5))
	})
	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a b c"}, Wrap("a \t b\n c", 10))
	})
}
