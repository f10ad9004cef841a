package tabs

import "strconv"

// TabElementID returns the element id of tab id within groupID.
func TabElementID(groupID, id string) string {
	return groupID + "-tab-" + id
}

// PanelElementID returns the element id of the panel controlled by tab id.
func PanelElementID(groupID, id string) string {
	return groupID + "-panel-" + id
}

// TabIndex implements the roving tabindex: only a selected, enabled tab is
// reachable with the Tab key.
func TabIndex(selected, disabled bool) int {
	if selected && !disabled {
		return 0
	}
	return -1
}

// ListAttributes describes the tab list container.
type ListAttributes struct {
	Role        Role
	Orientation string
}

// Map returns the attributes keyed by their ARIA names.
func (a ListAttributes) Map() map[string]string {
	return map[string]string{
		"role":             string(a.Role),
		"aria-orientation": a.Orientation,
	}
}

// TabAttributes describes one tab element.
type TabAttributes struct {
	ID       string
	Controls string
	Selected bool
	Disabled bool
	TabIndex int
}

// Map returns the attributes keyed by their ARIA names. aria-disabled is only
// present for disabled tabs.
func (a TabAttributes) Map() map[string]string {
	m := map[string]string{
		"id":            a.ID,
		"role":          string(RoleTab),
		"aria-selected": strconv.FormatBool(a.Selected),
		"aria-controls": a.Controls,
		"tabindex":      strconv.Itoa(a.TabIndex),
	}
	if a.Disabled {
		m["aria-disabled"] = "true"
	}
	return m
}

// PanelAttributes describes one tab panel element.
type PanelAttributes struct {
	ID         string
	LabelledBy string
	Hidden     bool
}

// Map returns the attributes keyed by their ARIA names. hidden is only
// present for inactive panels.
func (a PanelAttributes) Map() map[string]string {
	m := map[string]string{
		"id":              a.ID,
		"role":            string(RoleTabPanel),
		"aria-labelledby": a.LabelledBy,
	}
	if a.Hidden {
		m["hidden"] = "true"
	}
	return m
}

// ListAttributes returns the container attributes.
func (c *Controller) ListAttributes() ListAttributes {
	return ListAttributes{Role: RoleTabList, Orientation: "horizontal"}
}

// TabAttributes derives the attributes of tab id from the current selection.
func (c *Controller) TabAttributes(id string, disabled bool) TabAttributes {
	selected := c.IsSelected(id)
	return TabAttributes{
		ID:       TabElementID(c.groupID, id),
		Controls: PanelElementID(c.groupID, id),
		Selected: selected,
		Disabled: disabled,
		TabIndex: TabIndex(selected, disabled),
	}
}

// PanelAttributes derives the attributes of the panel for tab id.
func (c *Controller) PanelAttributes(id string) PanelAttributes {
	return PanelAttributes{
		ID:         PanelElementID(c.groupID, id),
		LabelledBy: TabElementID(c.groupID, id),
		Hidden:     !c.IsSelected(id),
	}
}
