package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/designkit/internal/config"
	"github.com/gravitrone/designkit/internal/layout"
	"github.com/gravitrone/designkit/internal/logger"
	"github.com/gravitrone/designkit/internal/tabs"
	"github.com/gravitrone/designkit/internal/ui/components"
)

// --- Messages ---

type reloadedMsg struct {
	layout *layout.Layout
	err    error
}

// TabActivatedMsg is emitted when a tab is clicked or activated with
// Enter/Space.
type TabActivatedMsg struct {
	GroupID string
	TabID   string
	Event   tabs.ActivationEvent
}

// --- App Model ---

// App is the root preview model. It stacks every tab group of a layout and
// moves keyboard focus between them.
type App struct {
	config     *config.Config
	layout     *layout.Layout
	layoutPath string
	log        *logger.Logger

	groups []TabsModel
	active int

	keys    AppKeyMap
	tabKeys TabsKeyMap

	width     int
	height    int
	helpOpen  bool
	err       string
	lastEvent string
}

// NewApp creates the preview for l. A nil config uses defaults, a nil logger
// discards.
func NewApp(cfg *config.Config, l *layout.Layout, log *logger.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if l == nil {
		l = layout.Default()
	}
	if log == nil {
		log = logger.Discard()
	}
	a := App{
		config:  cfg,
		layout:  l,
		log:     log,
		keys:    DefaultAppKeyMap(),
		tabKeys: DefaultTabsKeyMap(cfg.VimKeys),
		active:  -1,
	}
	a.keys.Reload.SetEnabled(false)
	for _, g := range l.Groups {
		a.groups = append(a.groups, a.newGroup(g))
	}
	a.focusGroup(0, 1)
	return a
}

// WithLayoutPath enables reloading the layout from path.
func (a App) WithLayoutPath(path string) App {
	a.layoutPath = path
	a.keys.Reload.SetEnabled(path != "")
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) newGroup(g layout.Group) TabsModel {
	return NewTabsModel(g.ID, g.Default, g.VariantOr(a.config.TabVariant), ItemsFromGroup(g)).
		WithTitle(g.Title).
		WithKeys(a.tabKeys).
		WithLogger(a.log)
}

// ItemsFromGroup converts a layout group into mountable tab items. Activating
// an item emits TabActivatedMsg.
func ItemsFromGroup(g layout.Group) []TabItem {
	items := make([]TabItem, 0, len(g.Tabs))
	for _, t := range g.Tabs {
		item := TabItem{
			ID:       t.ID,
			Label:    t.Label,
			Disabled: t.Disabled,
			Variant:  t.Variant,
			Heading:  t.Heading,
			Body:     t.Body,
		}
		if t.Badge != nil {
			item.BadgeText = t.Badge.Text
			item.BadgeVariant = t.Badge.Variant
		}
		groupID, tabID := g.ID, t.ID
		item.OnClick = func(ev tabs.ActivationEvent) tea.Cmd {
			return func() tea.Msg {
				return TabActivatedMsg{GroupID: groupID, TabID: tabID, Event: ev}
			}
		}
		items = append(items, item)
	}
	return items
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for i := range a.groups {
			a.groups[i], _ = a.groups[i].Update(msg)
		}
		return a, nil

	case reloadedMsg:
		if msg.err != nil {
			a.err = msg.err.Error()
			a.log.Warn("layout reload failed", "path", a.layoutPath, "err", msg.err)
			return a, nil
		}
		a.err = ""
		a.applyLayout(msg.layout)
		a.log.Info("layout reloaded", "path", a.layoutPath, "groups", len(a.groups))
		return a, nil

	case TabChangedMsg:
		a.lastEvent = fmt.Sprintf("%s: %s → %s", msg.GroupID, orDash(msg.Previous), orDash(msg.Active))
		return a, nil

	case TabActivatedMsg:
		a.lastEvent = fmt.Sprintf("%s: activated %s (%s)", msg.GroupID, msg.TabID, msg.Event.Type)
		return a, nil

	case focusTabMsg:
		for i := range a.groups {
			if a.groups[i].GroupID() == msg.groupID {
				a.groups[i], _ = a.groups[i].Update(msg)
			}
		}
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.helpOpen {
			if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Back) {
				a.helpOpen = false
			}
			return a, nil
		}
		a.err = ""

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.helpOpen = true
			return a, nil
		case key.Matches(msg, a.keys.NextGroup):
			a.focusGroup(a.active+1, 1)
			return a, nil
		case key.Matches(msg, a.keys.PrevGroup):
			a.focusGroup(a.active-1, -1)
			return a, nil
		case key.Matches(msg, a.keys.Reload):
			return a, a.reloadCmd()
		}

		if a.active < 0 || a.active >= len(a.groups) {
			return a, nil
		}
		var cmd tea.Cmd
		a.groups[a.active], cmd = a.groups[a.active].Update(msg)
		return a, cmd
	}
	return a, nil
}

// focusGroup moves focus to the first group at or after start (walking in
// step direction, wrapping) that has a focusable tab. Groups whose tabs are
// all disabled are skipped.
func (a *App) focusGroup(start, step int) {
	n := len(a.groups)
	if n == 0 {
		a.active = -1
		return
	}
	for i := range a.groups {
		a.groups[i].Blur()
	}
	for tried := 0; tried < n; tried++ {
		idx := ((start+tried*step)%n + n) % n
		if a.groups[idx].Focus() {
			a.active = idx
			return
		}
	}
	a.active = -1
}

// applyLayout reconciles the mounted groups with l, keeping selection state
// of groups that survive.
func (a *App) applyLayout(l *layout.Layout) {
	existing := make(map[string]TabsModel, len(a.groups))
	for _, g := range a.groups {
		existing[g.GroupID()] = g
	}
	focusedID := ""
	if a.active >= 0 && a.active < len(a.groups) {
		focusedID = a.groups[a.active].GroupID()
	}

	groups := make([]TabsModel, 0, len(l.Groups))
	for _, g := range l.Groups {
		m, ok := existing[g.ID]
		if !ok {
			m = a.newGroup(g)
		} else {
			m.Sync(ItemsFromGroup(g))
			m = m.WithTitle(g.Title)
		}
		m, _ = m.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		groups = append(groups, m)
	}
	a.layout = l
	a.groups = groups

	start := 0
	for i, g := range a.groups {
		if g.GroupID() == focusedID {
			start = i
		}
	}
	a.focusGroup(start, 1)
}

func (a App) reloadCmd() tea.Cmd {
	path := a.layoutPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		l, err := layout.Load(path)
		return reloadedMsg{layout: l, err: err}
	}
}

// --- Mouse ---

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.helpOpen || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	for i, row := range a.stripRows() {
		if msg.Y != row {
			continue
		}
		id, ok := a.groups[i].TabAt(msg.X)
		if !ok {
			return a, nil
		}
		cmd := a.groups[i].Click(id)
		if _, focused := a.groups[i].Focused(); focused && a.active != i {
			if a.active >= 0 && a.active < len(a.groups) {
				a.groups[a.active].Blur()
			}
			a.active = i
		}
		return a, cmd
	}
	return a, nil
}

// stripRows returns the screen row of each group's tab list.
func (a App) stripRows() []int {
	rows := make([]int, len(a.groups))
	y := lipgloss.Height(a.renderHeader()) + 1
	for i, g := range a.groups {
		rows[i] = y + g.StripRow()
		y += lipgloss.Height(g.View()) + components.StackLineGap(groupSpacing)
	}
	return rows
}

// --- View ---

const groupSpacing = components.SpacingM

func (a App) View() string {
	header := a.renderHeader()
	if a.helpOpen {
		return header + "\n\n" + a.renderHelp()
	}

	views := make([]string, 0, len(a.groups))
	for _, g := range a.groups {
		views = append(views, g.View())
	}
	body := components.Stack(views, components.StackColumn, groupSpacing)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)
	if a.lastEvent != "" {
		b.WriteString("\n\n")
		b.WriteString(MetaKeyStyle.Render("last ") + MetaValueStyle.Render(components.SanitizeOneLine(a.lastEvent)))
	}
	b.WriteString("\n\n")
	b.WriteString(components.StatusBar(a.statusHints(), a.width))
	if a.err != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", a.err, a.width))
	}
	return b.String()
}

func (a App) renderHeader() string {
	return RenderBanner(a.layout.Title)
}

func (a App) statusHints() []string {
	hints := components.BindingHints(a.tabKeys.Left, a.tabKeys.Right, a.tabKeys.Enter)
	if a.active >= 0 && a.active < len(a.groups) && a.groups[a.active].PanelFocused() {
		hints = append(hints, components.BindingHints(a.tabKeys.OutPanel)...)
	} else {
		hints = append(hints, components.BindingHints(a.tabKeys.IntoPanel)...)
	}
	return append(hints, components.BindingHints(a.keys.NextGroup, a.keys.Reload, a.keys.Help, a.keys.Quit)...)
}

func (a App) renderHelp() string {
	tabHints := components.BindingHints(
		a.tabKeys.Left, a.tabKeys.Right, a.tabKeys.Home, a.tabKeys.End,
		a.tabKeys.Enter, a.tabKeys.Space, a.tabKeys.IntoPanel, a.tabKeys.OutPanel,
	)
	appHints := components.BindingHints(
		a.keys.NextGroup, a.keys.PrevGroup, a.keys.Reload, a.keys.Help, a.keys.Quit,
	)
	lines := []string{MutedStyle.Render("esc to close"), ""}
	for _, hint := range tabHints {
		lines = append(lines, "  "+hint)
	}
	lines = append(lines, "")
	for _, hint := range appHints {
		lines = append(lines, "  "+hint)
	}
	return components.TitledBox("Help", strings.Join(lines, "\n"), a.width)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
