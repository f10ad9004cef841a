package tabs

// TabEntry is a single registered tab.
type TabEntry struct {
	ID       string
	Disabled bool
}

// Registry keeps tab entries in registration order.
//
// Order is the navigation order. Derived views are rebuilt on every call
// because tabs mount and unmount independently of each other.
type Registry struct {
	entries []TabEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends id, or updates its disabled flag in place when already known.
func (r *Registry) Register(id string, disabled bool) {
	if i := r.indexOf(id); i >= 0 {
		r.entries[i].Disabled = disabled
		return
	}
	r.entries = append(r.entries, TabEntry{ID: id, Disabled: disabled})
}

// Unregister removes id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	i := r.indexOf(id)
	if i < 0 {
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	return r.indexOf(id) >= 0
}

// IsDisabled reports whether id is registered and disabled.
func (r *Registry) IsDisabled(id string) bool {
	i := r.indexOf(id)
	return i >= 0 && r.entries[i].Disabled
}

// Len returns the number of registered tabs, enabled or not.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all entries in registration order.
func (r *Registry) Entries() []TabEntry {
	out := make([]TabEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// EnabledIDs returns enabled ids in registration order.
func (r *Registry) EnabledIDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.Disabled {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// FirstEnabled returns the first enabled id.
func (r *Registry) FirstEnabled() (string, bool) {
	for _, e := range r.entries {
		if !e.Disabled {
			return e.ID, true
		}
	}
	return "", false
}

// LastEnabled returns the last enabled id.
func (r *Registry) LastEnabled() (string, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if !r.entries[i].Disabled {
			return r.entries[i].ID, true
		}
	}
	return "", false
}

// NextEnabled returns the enabled id after current, wrapping to the first one.
// A current id that is unknown or disabled also falls back to the first.
func (r *Registry) NextEnabled(current string) (string, bool) {
	ids := r.EnabledIDs()
	if len(ids) == 0 {
		return "", false
	}
	for i, id := range ids {
		if id == current && i+1 < len(ids) {
			return ids[i+1], true
		}
	}
	return ids[0], true
}

// PreviousEnabled returns the enabled id before current, wrapping to the last one.
// A current id that is unknown or disabled also falls back to the last.
func (r *Registry) PreviousEnabled(current string) (string, bool) {
	ids := r.EnabledIDs()
	if len(ids) == 0 {
		return "", false
	}
	for i, id := range ids {
		if id == current && i > 0 {
			return ids[i-1], true
		}
	}
	return ids[len(ids)-1], true
}

func (r *Registry) indexOf(id string) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
