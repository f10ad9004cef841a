package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTabs(active string) *Controller {
	c := NewController("test-tabs", active)
	c.Register("tab1", false)
	c.Register("tab2", false)
	c.Register("tab3", false)
	return c
}

func tabKey(k Key, tabID string) KeyEvent {
	return KeyEvent{Key: k, Role: RoleTab, TabID: tabID, Target: TabElementID("test-tabs", tabID)}
}

func TestNavigationLinearWithWrapAround(t *testing.T) {
	c := threeTabs("tab1")

	c.HandleListKey(tabKey(KeyArrowRight, c.ActiveID()))
	assert.Equal(t, "tab2", c.ActiveID())
	c.HandleListKey(tabKey(KeyArrowRight, c.ActiveID()))
	assert.Equal(t, "tab3", c.ActiveID())

	d := c.HandleListKey(tabKey(KeyArrowRight, c.ActiveID()))
	assert.Equal(t, "tab1", c.ActiveID())
	assert.True(t, d.Activate)
	assert.True(t, d.Focus)
	assert.Equal(t, "test-tabs-tab-tab1", d.FocusElementID)
}

func TestNavigationArrowLeftWrapsToLast(t *testing.T) {
	c := threeTabs("tab1")

	d := c.HandleListKey(tabKey(KeyArrowLeft, "tab1"))
	assert.True(t, d.Handled)
	assert.Equal(t, "tab3", c.ActiveID())

	pending, ok := c.PendingFocus()
	require.True(t, ok)
	assert.Equal(t, "tab3", pending)
}

func TestNavigationHomeEnd(t *testing.T) {
	c := threeTabs("tab2")

	c.HandleListKey(tabKey(KeyHome, "tab2"))
	assert.Equal(t, "tab1", c.ActiveID())

	c.HandleListKey(tabKey(KeyEnd, "tab1"))
	assert.Equal(t, "tab3", c.ActiveID())
}

func TestNavigationHomeOnFirstIsHandledWithoutTransition(t *testing.T) {
	c := threeTabs("tab1")

	d := c.HandleListKey(tabKey(KeyHome, "tab1"))
	assert.True(t, d.Handled)
	assert.False(t, d.Activate)
	assert.False(t, d.Focus)
	assert.Equal(t, uint64(0), c.Version())

	_, pending := c.PendingFocus()
	assert.False(t, pending)
}

func TestNavigationSkipsDisabledTabs(t *testing.T) {
	c := threeTabs("tab1")
	c.Register("tab2", true)

	c.HandleListKey(tabKey(KeyArrowRight, "tab1"))
	assert.Equal(t, "tab3", c.ActiveID())

	c.HandleListKey(tabKey(KeyArrowLeft, "tab3"))
	assert.Equal(t, "tab1", c.ActiveID())
}

func TestNavigationAllDisabledDoesNothing(t *testing.T) {
	c := NewController("g", "a")
	c.Register("a", true)
	c.Register("b", true)

	for _, k := range []Key{KeyArrowLeft, KeyArrowRight, KeyHome, KeyEnd} {
		d := c.HandleListKey(KeyEvent{Key: k, Role: RoleTab, TabID: "a"})
		assert.True(t, d.Handled)
		assert.False(t, d.Activate)
	}
	assert.Equal(t, "a", c.ActiveID())
	assert.Equal(t, uint64(0), c.Version())
}

func TestNavigationIgnoresNonTabOrigins(t *testing.T) {
	c := threeTabs("tab1")

	for _, role := range []Role{RoleNone, RoleTabList, RoleTabPanel} {
		d := c.HandleListKey(KeyEvent{Key: KeyArrowRight, Role: role})
		assert.Equal(t, Decision{}, d)
	}
	assert.Equal(t, "tab1", c.ActiveID())
}

func TestNavigationOtherKeysDelegate(t *testing.T) {
	c := threeTabs("tab1")

	d := c.HandleListKey(tabKey(Key("x"), "tab1"))
	assert.True(t, d.Delegate)
	assert.False(t, d.Handled)
	assert.Equal(t, "tab1", c.ActiveID())
}

func TestTabKeyEnterActivatesAndFiresOnce(t *testing.T) {
	c := threeTabs("tab1")
	fired := 0

	d, ev := c.HandleTabKey("tab2", false, tabKey(KeyEnter, "tab2"))
	if ev != nil {
		fired++
	}

	assert.Equal(t, 1, fired)
	assert.True(t, d.Handled)
	assert.Equal(t, "tab2", c.ActiveID())
	require.NotNil(t, ev)
	assert.Equal(t, "click", ev.Type)
	assert.Equal(t, KeyEnter, ev.Key)
	assert.Equal(t, "test-tabs-tab-tab2", ev.Target)
	assert.Equal(t, "test-tabs-tab-tab2", ev.CurrentTarget)
}

func TestTabKeySpaceOnSelectedStillFires(t *testing.T) {
	c := threeTabs("tab2")

	d, ev := c.HandleTabKey("tab2", false, tabKey(KeySpace, "tab2"))
	assert.False(t, d.Activate)
	assert.NotNil(t, ev)
	assert.Equal(t, uint64(0), c.Version())
}

func TestTabKeyDisabledIgnoresEverything(t *testing.T) {
	c := threeTabs("tab1")

	d, ev := c.HandleTabKey("tab2", true, tabKey(KeyEnter, "tab2"))
	assert.Equal(t, Decision{}, d)
	assert.Nil(t, ev)
	assert.Equal(t, "tab1", c.ActiveID())

	d, _ = c.HandleTabKey("tab2", true, tabKey(Key("x"), "tab2"))
	assert.False(t, d.Delegate)
}

func TestTabKeyOtherKeysDelegate(t *testing.T) {
	c := threeTabs("tab1")

	d, ev := c.HandleTabKey("tab1", false, tabKey(Key("x"), "tab1"))
	assert.True(t, d.Delegate)
	assert.Nil(t, ev)
}

func TestTabKeyLeavesListKeysToTheList(t *testing.T) {
	c := threeTabs("tab1")

	for _, k := range []Key{KeyArrowLeft, KeyArrowRight, KeyHome, KeyEnd} {
		d, ev := c.HandleTabKey("tab1", false, tabKey(k, "tab1"))
		assert.Equal(t, Decision{}, d, "key %q", k)
		assert.Nil(t, ev)
	}
	assert.Equal(t, "tab1", c.ActiveID())
}

func TestTabKeyEventTargetDefaultsToTabElement(t *testing.T) {
	c := threeTabs("tab1")

	_, ev := c.HandleTabKey("tab3", false, KeyEvent{Key: KeyEnter, Role: RoleTab, TabID: "tab3"})
	require.NotNil(t, ev)
	assert.Equal(t, "test-tabs-tab-tab3", ev.Target)
}

func TestClickSelectsEnabledTabs(t *testing.T) {
	c := threeTabs("tab1")

	assert.True(t, c.Click("tab2", false))
	assert.Equal(t, "tab2", c.ActiveID())

	assert.True(t, c.Click("tab2", false))
	assert.Equal(t, uint64(1), c.Version())

	assert.False(t, c.Click("tab3", true))
	assert.Equal(t, "tab2", c.ActiveID())
}
