package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/designkit/internal/logger"
	"github.com/gravitrone/designkit/internal/tabs"
	"github.com/gravitrone/designkit/internal/ui/components"
)

// --- Messages ---

// TabChangedMsg reports one selection transition of a tab group.
type TabChangedMsg struct {
	GroupID  string
	Previous string
	Active   string
}

// focusTabMsg arrives after the render that followed a keyboard selection,
// so the newly selected tab exists before focus moves to it.
type focusTabMsg struct {
	groupID string
}

type focusArea int

const (
	focusNone focusArea = iota
	focusStrip
	focusPanel
)

// TabItem is one tab and its panel.
type TabItem struct {
	ID       string
	Label    string
	Disabled bool
	// Variant overrides the group variant when set.
	Variant      components.TabVariant
	BadgeText    string
	BadgeVariant components.BadgeVariant
	Heading      string
	Body         string

	// OnClick runs after a click or an Enter/Space activation.
	OnClick func(tabs.ActivationEvent) tea.Cmd
	// OnKeyDown receives keys the tab does not handle itself.
	OnKeyDown func(tea.KeyMsg) tea.Cmd
}

// --- Tabs Model ---

// TabsModel hosts one tab group: a controller, the mounted tab items and the
// element that currently holds keyboard focus.
type TabsModel struct {
	ctrl    *tabs.Controller
	title   string
	variant components.TabVariant
	items   []TabItem
	keys    TabsKeyMap
	log     *logger.Logger

	focus   focusArea
	focused string
	width   int
}

// NewTabsModel creates a group and mounts items in order.
func NewTabsModel(groupID, defaultActive string, variant components.TabVariant, items []TabItem) TabsModel {
	m := TabsModel{
		ctrl:    tabs.NewController(groupID, defaultActive),
		variant: variant,
		keys:    DefaultTabsKeyMap(false),
		log:     logger.Discard(),
	}
	for _, item := range items {
		m.Mount(item)
	}
	return m
}

// WithKeys replaces the key map.
func (m TabsModel) WithKeys(keys TabsKeyMap) TabsModel {
	m.keys = keys
	return m
}

// WithTitle sets the heading rendered above the tab list.
func (m TabsModel) WithTitle(title string) TabsModel {
	m.title = title
	return m
}

// WithLogger logs registry churn and selection transitions to log.
func (m TabsModel) WithLogger(log *logger.Logger) TabsModel {
	if log == nil {
		return m
	}
	m.log = log
	groupID := m.ctrl.GroupID()
	m.ctrl.Subscribe(func(t tabs.Transition) {
		log.Debug("tab selected", "group", groupID, "previous", t.Previous, "active", t.Active, "version", t.Version)
	})
	return m
}

// Controller returns the group's controller.
func (m TabsModel) Controller() *tabs.Controller {
	return m.ctrl
}

// GroupID returns the group identity.
func (m TabsModel) GroupID() string {
	return m.ctrl.GroupID()
}

// Items returns the mounted items in registry order.
func (m TabsModel) Items() []TabItem {
	return m.items
}

// Focused returns the tab id holding focus, if the tab strip is focused.
func (m TabsModel) Focused() (string, bool) {
	if m.focus != focusStrip || m.focused == "" {
		return "", false
	}
	return m.focused, true
}

// PanelFocused reports whether focus is inside the active panel.
func (m TabsModel) PanelFocused() bool {
	return m.focus == focusPanel
}

// --- Lifecycle ---

// Mount registers item. Mounting a known id replaces its item and keeps its
// position, like re-registration.
func (m *TabsModel) Mount(item TabItem) {
	m.ctrl.Register(item.ID, item.Disabled)
	if i := m.indexOf(item.ID); i >= 0 {
		m.items[i] = item
	} else {
		m.items = append(m.items, item)
	}
	m.log.Debug("tab registered", "group", m.ctrl.GroupID(), "tab", item.ID, "disabled", item.Disabled)
}

// Unmount unregisters id. Unknown ids are ignored.
func (m *TabsModel) Unmount(id string) {
	m.ctrl.Unregister(id)
	i := m.indexOf(id)
	if i < 0 {
		return
	}
	items := make([]TabItem, 0, len(m.items)-1)
	items = append(items, m.items[:i]...)
	m.items = append(items, m.items[i+1:]...)
	if m.focused == id {
		m.focused = ""
		if m.focus == focusStrip {
			m.focus = focusNone
		}
	}
	m.log.Debug("tab unregistered", "group", m.ctrl.GroupID(), "tab", id)
}

// SetDisabled updates the disabled flag of a mounted tab.
func (m *TabsModel) SetDisabled(id string, disabled bool) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}
	m.items[i].Disabled = disabled
	m.ctrl.Register(id, disabled)
}

// Sync reconciles the mounted items with items: missing ids unmount, new ids
// mount at the end, known ids update in place.
func (m *TabsModel) Sync(items []TabItem) {
	keep := make(map[string]struct{}, len(items))
	for _, item := range items {
		keep[item.ID] = struct{}{}
	}
	for _, existing := range append([]TabItem(nil), m.items...) {
		if _, ok := keep[existing.ID]; !ok {
			m.Unmount(existing.ID)
		}
	}
	for _, item := range items {
		m.Mount(item)
	}
}

// --- Focus ---

// Focus moves keyboard focus onto the tab with tabindex 0. It reports false
// when the group has no such tab.
func (m *TabsModel) Focus() bool {
	for _, item := range m.items {
		if m.ctrl.TabAttributes(item.ID, item.Disabled).TabIndex == 0 {
			m.focus = focusStrip
			m.focused = item.ID
			return true
		}
	}
	return false
}

// Blur drops keyboard focus from the group, including a pending hand-off.
func (m *TabsModel) Blur() {
	m.focus = focusNone
	m.focused = ""
	m.dropPendingFocus()
}

func (m *TabsModel) dropPendingFocus() {
	m.ctrl.ConsumeFocus(func(string) bool { return false })
}

// --- Interaction ---

// Click selects id like a pointer press on its tab.
func (m *TabsModel) Click(id string) tea.Cmd {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}
	item := m.items[i]
	before := m.ctrl.ActiveID()
	version := m.ctrl.Version()
	if !m.ctrl.Click(id, item.Disabled) {
		return nil
	}
	m.focus = focusStrip
	m.focused = id

	cmds := []tea.Cmd{m.changedCmd(before, version)}
	if item.OnClick != nil {
		el := tabs.TabElementID(m.ctrl.GroupID(), id)
		cmds = append(cmds, item.OnClick(tabs.ActivationEvent{Type: "click", Target: el, CurrentTarget: el}))
	}
	return tea.Batch(cmds...)
}

// TabAt returns the tab rendered at column x of the tab list row.
func (m TabsModel) TabAt(x int) (string, bool) {
	if x < 0 {
		return "", false
	}
	offset := 0
	for _, seg := range m.segments() {
		w := lipgloss.Width(seg.text)
		if x < offset+w {
			return seg.id, true
		}
		offset += w
	}
	return "", false
}

// Update handles key events while the group is focused, and its own focus
// hand-off messages.
func (m TabsModel) Update(msg tea.Msg) (TabsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case focusTabMsg:
		if msg.groupID != m.ctrl.GroupID() || m.focus != focusStrip {
			return m, nil
		}
		if id, ok := m.ctrl.ConsumeFocus(m.mounted); ok {
			m.focus = focusStrip
			m.focused = id
		}
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusStrip:
			return m.handleStripKey(msg)
		case focusPanel:
			return m.handlePanelKey(msg)
		}
	}
	return m, nil
}

func (m TabsModel) handleStripKey(msg tea.KeyMsg) (TabsModel, tea.Cmd) {
	if key.Matches(msg, m.keys.IntoPanel) {
		if m.activeItem() != nil {
			m.focus = focusPanel
			m.dropPendingFocus()
		}
		return m, nil
	}

	i := m.indexOf(m.focused)
	if i < 0 {
		return m, nil
	}
	item := m.items[i]
	if item.Disabled {
		return m, nil
	}
	ev := tabs.KeyEvent{
		Key:    m.keys.navKey(msg),
		Role:   tabs.RoleTab,
		TabID:  item.ID,
		Target: tabs.TabElementID(m.ctrl.GroupID(), item.ID),
	}
	before := m.ctrl.ActiveID()
	version := m.ctrl.Version()

	var cmds []tea.Cmd

	// The tab sees the key first.
	d, activation := m.ctrl.HandleTabKey(item.ID, item.Disabled, ev)
	if activation != nil && item.OnClick != nil {
		cmds = append(cmds, item.OnClick(*activation))
	}
	if d.Delegate && item.OnKeyDown != nil {
		cmds = append(cmds, item.OnKeyDown(msg))
	}

	// Then it bubbles to the list.
	if !d.Handled {
		ld := m.ctrl.HandleListKey(ev)
		if ld.Focus {
			groupID := m.ctrl.GroupID()
			cmds = append(cmds, func() tea.Msg { return focusTabMsg{groupID: groupID} })
		}
	}

	cmds = append(cmds, m.changedCmd(before, version))
	return m, tea.Batch(cmds...)
}

func (m TabsModel) handlePanelKey(msg tea.KeyMsg) (TabsModel, tea.Cmd) {
	if key.Matches(msg, m.keys.OutPanel) {
		m.Focus()
		return m, nil
	}
	// The list ignores keys that come from inside the panel.
	m.ctrl.HandleListKey(tabs.KeyEvent{Key: m.keys.navKey(msg), Role: tabs.RoleTabPanel})

	if item := m.activeItem(); item != nil && item.OnKeyDown != nil {
		return m, item.OnKeyDown(msg)
	}
	return m, nil
}

func (m TabsModel) changedCmd(before string, version uint64) tea.Cmd {
	if m.ctrl.Version() == version {
		return nil
	}
	changed := TabChangedMsg{GroupID: m.ctrl.GroupID(), Previous: before, Active: m.ctrl.ActiveID()}
	return func() tea.Msg { return changed }
}

// --- Rendering ---

type tabSegment struct {
	id   string
	text string
}

func (m TabsModel) segments() []tabSegment {
	segs := make([]tabSegment, 0, len(m.items))
	for _, item := range m.items {
		attrs := m.ctrl.TabAttributes(item.ID, item.Disabled)
		variant := item.Variant
		if variant == "" {
			variant = m.variant
		}
		text := components.TabLabel(item.Label, components.TabState{
			Variant:  variant,
			Selected: attrs.Selected,
			Disabled: attrs.Disabled,
			Focused:  m.focus == focusStrip && m.focused == item.ID,
		})
		if item.BadgeText != "" {
			text += components.Badge(item.BadgeText, item.BadgeVariant) + " "
		}
		segs = append(segs, tabSegment{id: item.ID, text: text})
	}
	return segs
}

// StripRow returns the line of View holding the tab labels.
func (m TabsModel) StripRow() int {
	if m.title == "" {
		return 0
	}
	return 1
}

// View renders the title, the tab list and the active panel.
func (m TabsModel) View() string {
	segs := m.segments()
	labels := make([]string, 0, len(segs))
	for _, s := range segs {
		labels = append(labels, s.text)
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(components.Typography(m.title, components.TypographyOptions{Variant: components.Header3}))
		b.WriteString("\n")
	}
	b.WriteString(components.TabsList(labels, m.variant))

	for _, item := range m.items {
		if m.ctrl.PanelAttributes(item.ID).Hidden {
			continue
		}
		b.WriteString("\n")
		b.WriteString(m.renderPanel(item))
	}
	return b.String()
}

func (m TabsModel) renderPanel(item TabItem) string {
	parts := make([]string, 0, 2)
	if item.Heading != "" {
		parts = append(parts, components.Typography(item.Heading, components.TypographyOptions{Variant: components.Header2}))
	}
	if item.Body != "" {
		parts = append(parts, components.Typography(item.Body, components.TypographyOptions{Variant: components.BodyM}))
	}
	body := components.Stack(parts, components.StackColumn, components.SpacingS)
	if m.focus == focusPanel {
		return components.FocusedTabPanel(body, false, m.width)
	}
	return components.TabPanel(body, false, m.width)
}

// AccessibilityRows lists the ARIA attributes of the list, every tab and
// every panel, in that order.
func (m TabsModel) AccessibilityRows() [][]string {
	list := m.ctrl.ListAttributes()
	rows := [][]string{{m.ctrl.GroupID(), string(list.Role), "", "orientation=" + list.Orientation, ""}}
	for _, item := range m.items {
		a := m.ctrl.TabAttributes(item.ID, item.Disabled)
		state := ""
		if a.Selected {
			state = components.SelectedMark
		}
		if a.Disabled {
			state += " disabled"
		}
		rows = append(rows, []string{a.ID, string(tabs.RoleTab), strings.TrimSpace(state), "controls=" + a.Controls, strconv.Itoa(a.TabIndex)})
	}
	for _, item := range m.items {
		p := m.ctrl.PanelAttributes(item.ID)
		state := ""
		if p.Hidden {
			state = "hidden"
		}
		rows = append(rows, []string{p.ID, string(tabs.RoleTabPanel), state, "labelledby=" + p.LabelledBy, ""})
	}
	return rows
}

// AccessibilityView renders AccessibilityRows as a grid.
func (m TabsModel) AccessibilityView(width int) string {
	cols := []components.GridColumn{
		{Header: "Element", Width: 28},
		{Header: "Role", Width: 9},
		{Header: "State", Width: 12},
		{Header: "Relation", Width: 30},
		{Header: "Tabindex", Width: 8, Align: lipgloss.Right},
	}
	return components.Grid(cols, m.AccessibilityRows(), width)
}

// --- Helpers ---

func (m TabsModel) indexOf(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (m TabsModel) mounted(id string) bool {
	return m.indexOf(id) >= 0
}

func (m TabsModel) activeItem() *TabItem {
	i := m.indexOf(m.ctrl.ActiveID())
	if i < 0 {
		return nil
	}
	return &m.items[i]
}
