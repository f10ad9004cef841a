package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func registryWith(entries ...TabEntry) *Registry {
	r := NewRegistry()
	for _, e := range entries {
		r.Register(e.ID, e.Disabled)
	}
	return r
}

func TestRegistryRegisterKeepsInsertionOrder(t *testing.T) {
	r := registryWith(TabEntry{ID: "c"}, TabEntry{ID: "a"}, TabEntry{ID: "b"})
	assert.Equal(t, []string{"c", "a", "b"}, r.EnabledIDs())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryReRegisterUpdatesInPlace(t *testing.T) {
	r := registryWith(TabEntry{ID: "a"}, TabEntry{ID: "b"}, TabEntry{ID: "c"})

	r.Register("a", true)
	assert.Equal(t, []TabEntry{
		{ID: "a", Disabled: true},
		{ID: "b"},
		{ID: "c"},
	}, r.Entries())

	r.Register("a", false)
	assert.Equal(t, []string{"a", "b", "c"}, r.EnabledIDs())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryUnregisterIsIdempotent(t *testing.T) {
	r := registryWith(TabEntry{ID: "a"}, TabEntry{ID: "b"}, TabEntry{ID: "c"})

	r.Unregister("b")
	once := r.Entries()

	r.Unregister("b")
	assert.Equal(t, once, r.Entries())

	r.Unregister("never-registered")
	assert.Equal(t, once, r.Entries())
}

func TestRegistryChurnAppendsReRegisteredID(t *testing.T) {
	r := NewRegistry()
	r.Register("tab1", false)
	r.Register("tab2", false)
	r.Unregister("tab1")
	r.Register("tab1", false)

	assert.Equal(t, []string{"tab2", "tab1"}, r.EnabledIDs())
}

func TestRegistryWrapAround(t *testing.T) {
	r := registryWith(TabEntry{ID: "A"}, TabEntry{ID: "B"}, TabEntry{ID: "C"})

	next, ok := r.NextEnabled("C")
	assert.True(t, ok)
	assert.Equal(t, "A", next)

	prev, ok := r.PreviousEnabled("A")
	assert.True(t, ok)
	assert.Equal(t, "C", prev)

	next, _ = r.NextEnabled("A")
	assert.Equal(t, "B", next)
	prev, _ = r.PreviousEnabled("C")
	assert.Equal(t, "B", prev)
}

func TestRegistrySkipsDisabled(t *testing.T) {
	r := registryWith(TabEntry{ID: "A"}, TabEntry{ID: "B", Disabled: true}, TabEntry{ID: "C"})

	next, ok := r.NextEnabled("A")
	assert.True(t, ok)
	assert.Equal(t, "C", next)

	prev, ok := r.PreviousEnabled("C")
	assert.True(t, ok)
	assert.Equal(t, "A", prev)

	assert.Equal(t, []string{"A", "C"}, r.EnabledIDs())
	assert.True(t, r.IsDisabled("B"))
	assert.False(t, r.IsDisabled("A"))
	assert.False(t, r.IsDisabled("missing"))
}

func TestRegistryUnknownOrDisabledCurrentFallsBack(t *testing.T) {
	r := registryWith(TabEntry{ID: "A"}, TabEntry{ID: "B", Disabled: true}, TabEntry{ID: "C"})

	next, _ := r.NextEnabled("missing")
	assert.Equal(t, "A", next)
	prev, _ := r.PreviousEnabled("missing")
	assert.Equal(t, "C", prev)

	next, _ = r.NextEnabled("B")
	assert.Equal(t, "A", next)
	prev, _ = r.PreviousEnabled("B")
	assert.Equal(t, "C", prev)
}

func TestRegistryAllDisabledYieldsNone(t *testing.T) {
	r := registryWith(TabEntry{ID: "A", Disabled: true}, TabEntry{ID: "B", Disabled: true})

	_, ok := r.FirstEnabled()
	assert.False(t, ok)
	_, ok = r.LastEnabled()
	assert.False(t, ok)
	_, ok = r.NextEnabled("A")
	assert.False(t, ok)
	_, ok = r.PreviousEnabled("B")
	assert.False(t, ok)
	assert.Empty(t, r.EnabledIDs())
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()

	id, ok := r.FirstEnabled()
	assert.False(t, ok)
	assert.Equal(t, "", id)
	_, ok = r.NextEnabled("")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("a"))
}

func TestRegistrySingleEnabledWrapsToItself(t *testing.T) {
	r := registryWith(TabEntry{ID: "A"}, TabEntry{ID: "B", Disabled: true})

	next, ok := r.NextEnabled("A")
	assert.True(t, ok)
	assert.Equal(t, "A", next)

	first, _ := r.FirstEnabled()
	last, _ := r.LastEnabled()
	assert.Equal(t, "A", first)
	assert.Equal(t, "A", last)
}

func TestRegistryEntriesReturnsCopy(t *testing.T) {
	r := registryWith(TabEntry{ID: "A"})
	entries := r.Entries()
	entries[0].Disabled = true

	assert.False(t, r.IsDisabled("A"))
}
