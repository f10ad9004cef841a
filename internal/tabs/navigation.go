package tabs

// Key names a keyboard key as seen by the navigation policy.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
)

// Role is the accessibility role of the element a key event came from.
type Role string

const (
	RoleNone     Role = ""
	RoleTab      Role = "tab"
	RoleTabList  Role = "tablist"
	RoleTabPanel Role = "tabpanel"
)

// KeyEvent is a key press with its origin.
type KeyEvent struct {
	Key Key
	// Role of the originating element.
	Role Role
	// TabID is the tab the event came from, when Role is RoleTab.
	TabID string
	// Target is the element id of the origin.
	Target string
}

// Decision is the outcome of the navigation policy for one key event.
type Decision struct {
	// Handled means the key was consumed and default handling is suppressed.
	Handled bool
	// Target is the tab id to select when Activate is set.
	Target string
	// Activate means SetActive(Target) must run.
	Activate bool
	// Focus means focus moves to FocusElementID once it is rendered.
	Focus          bool
	FocusElementID string
	// Fire means the tab's activation callback runs.
	Fire bool
	// Delegate means the caller-supplied key handler runs.
	Delegate bool
}

// ActivationEvent is passed to a tab's activation callback when it is
// activated from the keyboard.
type ActivationEvent struct {
	Type          string
	Key           Key
	Target        string
	CurrentTarget string
}

// DecideListKey maps a key event bubbling to the tab list onto a decision.
// Events not coming from a tab element are ignored.
func DecideListKey(reg *Registry, groupID, activeID string, ev KeyEvent) Decision {
	if ev.Role != RoleTab {
		return Decision{}
	}

	var (
		target string
		ok     bool
	)
	switch ev.Key {
	case KeyArrowRight:
		target, ok = reg.NextEnabled(activeID)
	case KeyArrowLeft:
		target, ok = reg.PreviousEnabled(activeID)
	case KeyHome:
		target, ok = reg.FirstEnabled()
	case KeyEnd:
		target, ok = reg.LastEnabled()
	default:
		return Decision{Delegate: true}
	}

	d := Decision{Handled: true}
	if !ok || target == activeID {
		return d
	}
	d.Target = target
	d.Activate = true
	d.Focus = true
	d.FocusElementID = TabElementID(groupID, target)
	return d
}

// DecideTabKey maps a key event received directly on tab tabID.
// Only Enter and Space have built-in behavior. List navigation keys are left
// to DecideListKey and never reach the caller's handler; a disabled tab
// ignores all keys.
func DecideTabKey(activeID, tabID string, disabled bool, ev KeyEvent) Decision {
	if disabled {
		return Decision{}
	}
	switch ev.Key {
	case KeyEnter, KeySpace:
	case KeyArrowLeft, KeyArrowRight, KeyHome, KeyEnd:
		return Decision{}
	default:
		return Decision{Delegate: true}
	}
	d := Decision{Handled: true, Fire: true, Target: tabID}
	if activeID != tabID {
		d.Activate = true
	}
	return d
}

// HandleListKey applies the list policy: it selects the target and records
// the pending focus.
func (c *Controller) HandleListKey(ev KeyEvent) Decision {
	d := DecideListKey(c.registry, c.groupID, c.activeID, ev)
	c.apply(d)
	return d
}

// HandleTabKey applies the Enter/Space policy for tabID. The returned event is
// non-nil when the tab's activation callback must run.
func (c *Controller) HandleTabKey(tabID string, disabled bool, ev KeyEvent) (Decision, *ActivationEvent) {
	d := DecideTabKey(c.activeID, tabID, disabled, ev)
	c.apply(d)
	if !d.Fire {
		return d, nil
	}
	current := TabElementID(c.groupID, tabID)
	target := ev.Target
	if target == "" {
		target = current
	}
	return d, &ActivationEvent{
		Type:          "click",
		Key:           ev.Key,
		Target:        target,
		CurrentTarget: current,
	}
}

// Click selects tabID unless it is disabled or already selected. It reports
// whether the tab's click callback should run.
func (c *Controller) Click(tabID string, disabled bool) bool {
	if disabled {
		return false
	}
	if !c.IsSelected(tabID) {
		c.SetActive(tabID)
	}
	return true
}

func (c *Controller) apply(d Decision) {
	if d.Activate {
		c.SetActive(d.Target)
	}
	if d.Focus {
		c.RequestFocus(d.Target)
	}
}
