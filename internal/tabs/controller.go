package tabs

// DefaultGroupID scopes element ids when a group is created without one.
const DefaultGroupID = "tabs"

// Transition describes one SetActive call.
type Transition struct {
	Previous string
	Active   string
	Version  uint64
}

// Controller owns the selection state and registry of one tab group.
//
// A Controller belongs to exactly one composite. It is not safe for
// concurrent use; all calls are expected from a single event loop.
type Controller struct {
	groupID  string
	registry *Registry
	activeID string
	version  uint64

	pendingFocus string
	hasPending   bool

	subscribers map[int]func(Transition)
	nextSubID   int
}

// NewController creates a controller with defaultActive selected.
func NewController(groupID, defaultActive string) *Controller {
	if groupID == "" {
		groupID = DefaultGroupID
	}
	return &Controller{
		groupID:     groupID,
		registry:    NewRegistry(),
		activeID:    defaultActive,
		subscribers: map[int]func(Transition){},
	}
}

// GroupID returns the immutable group identity.
func (c *Controller) GroupID() string {
	return c.groupID
}

// Registry returns the group's registry.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Register adds or updates a tab entry.
func (c *Controller) Register(id string, disabled bool) {
	c.registry.Register(id, disabled)
}

// Unregister removes a tab entry.
func (c *Controller) Unregister(id string) {
	c.registry.Unregister(id)
}

// ActiveID returns the selected tab id.
func (c *Controller) ActiveID() string {
	return c.activeID
}

// IsSelected reports whether id is the active id.
func (c *Controller) IsSelected(id string) bool {
	return c.activeID == id
}

// Version counts SetActive calls.
func (c *Controller) Version() uint64 {
	return c.version
}

// SetActive selects id. The id is not checked against the registry: a tab may
// be selected before it registers.
func (c *Controller) SetActive(id string) {
	prev := c.activeID
	c.activeID = id
	c.version++
	t := Transition{Previous: prev, Active: id, Version: c.version}
	for i := 0; i < c.nextSubID; i++ {
		if fn, ok := c.subscribers[i]; ok {
			fn(t)
		}
	}
}

// Subscribe registers fn for every SetActive call. The returned func removes it.
func (c *Controller) Subscribe(fn func(Transition)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

// RequestFocus records id as the element to focus after the next render.
func (c *Controller) RequestFocus(id string) {
	c.pendingFocus = id
	c.hasPending = true
}

// PendingFocus returns the recorded focus target without clearing it.
func (c *Controller) PendingFocus() (string, bool) {
	return c.pendingFocus, c.hasPending
}

// ConsumeFocus clears the pending focus target and returns it when exists
// still reports it present. Calling it with nothing pending is a no-op.
func (c *Controller) ConsumeFocus(exists func(id string) bool) (string, bool) {
	if !c.hasPending {
		return "", false
	}
	id := c.pendingFocus
	c.pendingFocus = ""
	c.hasPending = false
	if exists != nil && !exists(id) {
		return "", false
	}
	return id, true
}
