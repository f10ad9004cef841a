package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/designkit/internal/ui/components"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid layout")

// Layout is a set of independent tab groups shown on one screen.
type Layout struct {
	Title  string  `yaml:"title,omitempty"`
	Groups []Group `yaml:"groups"`
}

// Group describes one tabs composite.
type Group struct {
	ID      string                `yaml:"id,omitempty"`
	Title   string                `yaml:"title,omitempty"`
	Variant components.TabVariant `yaml:"variant,omitempty"`
	Default string                `yaml:"default,omitempty"`
	Tabs    []Tab                 `yaml:"tabs"`
}

// Tab describes one tab and its panel.
type Tab struct {
	ID       string                `yaml:"id,omitempty"`
	Label    string                `yaml:"label"`
	Disabled bool                  `yaml:"disabled,omitempty"`
	Variant  components.TabVariant `yaml:"variant,omitempty"`
	Badge    *Badge                `yaml:"badge,omitempty"`
	Heading  string                `yaml:"heading,omitempty"`
	Body     string                `yaml:"body,omitempty"`
}

// Badge is an optional marker shown next to a tab label.
type Badge struct {
	Text    string                  `yaml:"text"`
	Variant components.BadgeVariant `yaml:"variant,omitempty"`
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a YAML layout, fills in generated ids and validates it.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.normalize(); err != nil {
		return nil, err
	}
	return &l, nil
}

var groupIDSpace = uuid.MustParse("6f1c52a4-3d0e-4b8a-9a57-2f4b8c7e1d30")

// GroupID derives the id of a group that omits one from its title and how
// many earlier id-less groups share that title. The result is stable across
// parses of the same file.
func GroupID(title string, occurrence int) string {
	name := fmt.Sprintf("%s#%d", strings.TrimSpace(title), occurrence)
	return "tabs-" + strings.ReplaceAll(uuid.NewSHA1(groupIDSpace, []byte(name)).String(), "-", "")[:8]
}

// TabID derives a tab id from a label.
func TabID(label string) string {
	return slug.Make(label)
}

func (l *Layout) normalize() error {
	if len(l.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalid)
	}
	groupIDs := map[string]struct{}{}
	unnamed := map[string]int{}
	for gi := range l.Groups {
		g := &l.Groups[gi]
		if g.ID == "" {
			title := strings.TrimSpace(g.Title)
			g.ID = GroupID(title, unnamed[title])
			unnamed[title]++
		}
		if _, dup := groupIDs[g.ID]; dup {
			return fmt.Errorf("%w: group %d: duplicate id %q", ErrInvalid, gi+1, g.ID)
		}
		groupIDs[g.ID] = struct{}{}

		if g.Variant != "" {
			variant, ok := components.ParseTabVariant(string(g.Variant))
			if !ok {
				return fmt.Errorf("%w: group %q: unknown variant %q", ErrInvalid, g.ID, g.Variant)
			}
			g.Variant = variant
		}

		if len(g.Tabs) == 0 {
			return fmt.Errorf("%w: group %q: no tabs", ErrInvalid, g.ID)
		}
		if err := g.normalizeTabs(); err != nil {
			return err
		}
		if g.Default == "" {
			g.Default = g.Tabs[0].ID
		}
	}
	return nil
}

func (g *Group) normalizeTabs() error {
	seen := map[string]struct{}{}
	for ti := range g.Tabs {
		t := &g.Tabs[ti]
		if strings.TrimSpace(t.Label) == "" && t.ID == "" {
			return fmt.Errorf("%w: group %q: tab %d: label or id required", ErrInvalid, g.ID, ti+1)
		}
		if t.ID == "" {
			t.ID = TabID(t.Label)
			if t.ID == "" {
				return fmt.Errorf("%w: group %q: tab %d: label %q yields no id; set id", ErrInvalid, g.ID, ti+1, t.Label)
			}
		}
		if t.Label == "" {
			t.Label = t.ID
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: group %q: duplicate tab id %q", ErrInvalid, g.ID, t.ID)
		}
		seen[t.ID] = struct{}{}

		if t.Variant != "" {
			v, ok := components.ParseTabVariant(string(t.Variant))
			if !ok {
				return fmt.Errorf("%w: tab %q: unknown variant %q", ErrInvalid, t.ID, t.Variant)
			}
			t.Variant = v
		}
		if t.Badge != nil {
			v, ok := components.ParseBadgeVariant(string(t.Badge.Variant))
			if !ok {
				return fmt.Errorf("%w: tab %q: unknown badge variant %q", ErrInvalid, t.ID, t.Badge.Variant)
			}
			t.Badge.Variant = v
		}
	}
	return nil
}

// VariantOr returns the group variant, or fallback when the file left it out.
func (g Group) VariantOr(fallback components.TabVariant) components.TabVariant {
	if g.Variant != "" {
		return g.Variant
	}
	if fallback == "" {
		return components.TabPill
	}
	return fallback
}

// Encode writes the layout back to YAML.
func (l *Layout) Encode() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}
