package style

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.Equal(t, "  Hello", Indent("Hello", 1))
	assert.Equal(t, "    Hello", Indent("Hello", 2))
	assert.Contains(t, Bold("Hello"), "Hello")
}

func TestPlainRenderer(t *testing.T) {
	r := NewPlainRenderer()

	t.Run("entries", func(t *testing.T) {
		got := r.RenderEntries([]types.Entry{{Key: "key1", Value: "value1"}, {Key: "key2", Value: "value2"}})
		assert.Equal(t, "key1: value1\nkey2: value2", got)
		assert.Equal(t, "", r.RenderEntries(nil))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, "foo: bar", r.RenderGet(&types.GetResult{Key: "foo", Value: "bar", Found: true}))
		assert.Equal(t, `key "bogus" not found`, r.RenderGet(&types.GetResult{Key: "bogus"}))
	})

	t.Run("set_is_silent", func(t *testing.T) {
		assert.Equal(t, "", r.RenderSet(&types.SetResult{Written: []types.Entry{{Key: "k", Value: "v"}}}))
	})

	t.Run("delete_reports_missing", func(t *testing.T) {
		got := r.RenderDelete(&types.DeleteResult{Removed: []string{"a"}, Missing: []string{"b", "c"}})
		assert.Equal(t, "key \"b\" not found\nkey \"c\" not found", got)
	})

	t.Run("error", func(t *testing.T) {
		err := errors.New(errors.ErrStoreWrite, "failed to write store.kv")
		assert.Equal(t, "Error: failed to write store.kv", r.RenderError(err))
		assert.Equal(t, "Error: boom", r.RenderError(fmt.Errorf("boom")))
		assert.Equal(t, "", r.RenderError(nil))
	})
}

func TestTerminalRenderer(t *testing.T) {
	r := NewTerminalRenderer()

	t.Run("entries", func(t *testing.T) {
		got := r.RenderEntries([]types.Entry{{Key: "key1", Value: "value1"}, {Key: "key2", Value: "value2"}})
		lines := strings.Split(got, "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], "key1")
		assert.Contains(t, lines[0], "value1")
		assert.Contains(t, r.RenderEntries(nil), "No entries")
	})

	t.Run("get_missing", func(t *testing.T) {
		got := r.RenderGet(&types.GetResult{Key: "bogus"})
		assert.Contains(t, got, "bogus")
		assert.Contains(t, got, "not found")
	})

	t.Run("set", func(t *testing.T) {
		got := r.RenderSet(&types.SetResult{
			Path:     "/tmp/store.kv",
			Written:  []types.Entry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
			Replaced: []string{"b"},
			Synced:   true,
		})
		assert.Contains(t, got, "(replaced)")
		assert.Equal(t, 1, strings.Count(got, "(replaced)"))
		assert.Contains(t, got, "/tmp/store.kv")
	})

	t.Run("delete", func(t *testing.T) {
		got := r.RenderDelete(&types.DeleteResult{Removed: []string{"a"}, Missing: []string{"b"}})
		assert.Contains(t, got, "removed")
		assert.Contains(t, got, "not found")
	})

	t.Run("error_with_code", func(t *testing.T) {
		got := r.RenderError(errors.New(errors.ErrStoreOpen, "failed to read store.kv"))
		assert.Contains(t, got, "STORE_OPEN")
		assert.Contains(t, got, "failed to read store.kv")
		assert.Equal(t, 1, strings.Count(got, "STORE_OPEN"))
	})
}
