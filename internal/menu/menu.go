// Package menu builds the application's main menu from a declarative
// tree and routes selections to named application events.
//
// The tree is constructed once at startup, validated as a whole, and
// converted to a fyne.MainMenu. Every actionable item carries a stable
// identifier that is the join key with the dispatch table; duplicate or
// missing identifiers are construction-time failures, never runtime
// ones.
package menu

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Item is one entry in a menu group: an actionable command, a
// separator, or a submenu header. Exactly one of the three shapes is
// valid; Build rejects anything else.
type Item struct {
	ID          string
	Label       string
	Accelerator string
	IsSeparator bool
	Submenu     []Item
}

// NewItem returns an actionable item. The accelerator may be empty;
// otherwise it uses the CmdOrCtrl+Shift+K syntax.
func NewItem(id, label, accelerator string) Item {
	return Item{ID: id, Label: label, Accelerator: accelerator}
}

// NewSeparator returns a visual divider. Separators carry no
// identifier and produce no selections.
func NewSeparator() Item {
	return Item{IsSeparator: true}
}

// NewSubmenu returns a submenu header containing the given items.
func NewSubmenu(label string, items ...Item) Item {
	return Item{Label: label, Submenu: items}
}

// Group is a top-level menu. Item order dictates on-screen placement.
type Group struct {
	Label string
	Items []Item
}

func NewGroup(label string, items ...Item) Group {
	return Group{Label: label, Items: items}
}

// Tree is the root of the menu model: an ordered sequence of groups.
// Built once per launch and immutable afterwards.
type Tree struct {
	Groups []Group
}

func NewTree(groups ...Group) Tree {
	return Tree{Groups: groups}
}

// ActionableIDs returns every actionable identifier in the tree, in
// display order, including items nested in submenus.
func (t Tree) ActionableIDs() []string {
	var ids []string
	for _, group := range t.Groups {
		ids = appendItemIDs(ids, group.Items)
	}
	return ids
}

func appendItemIDs(ids []string, items []Item) []string {
	for _, item := range items {
		switch {
		case item.IsSeparator:
		case item.Submenu != nil:
			ids = appendItemIDs(ids, item.Submenu)
		default:
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// BuildError reports why menu construction failed. Construction is
// all-or-nothing: on error no menu is produced and nothing is
// installed.
type BuildError struct {
	Label  string
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("menu build failed at %q: %s", e.Label, e.Reason)
}

// Build validates the whole tree and converts it to a fyne main menu.
// Selecting an actionable item invokes onSelect with its identifier on
// the UI event thread.
func Build(tree Tree, onSelect func(id string)) (*fyne.MainMenu, error) {
	if err := validate(tree); err != nil {
		return nil, err
	}

	menus := make([]*fyne.Menu, 0, len(tree.Groups))
	for _, group := range tree.Groups {
		menus = append(menus, fyne.NewMenu(group.Label, convertItems(group.Items, onSelect)...))
	}
	return fyne.NewMainMenu(menus...), nil
}

// Install replaces the window's active menu with m. The tree is an
// explicitly owned value; there is no ambient menu registry.
func Install(window fyne.Window, m *fyne.MainMenu) {
	window.SetMainMenu(m)
}

func validate(tree Tree) error {
	seen := make(map[string]string)
	for _, group := range tree.Groups {
		if err := validateItems(group.Label, group.Items, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateItems(label string, items []Item, seen map[string]string) error {
	for _, item := range items {
		switch {
		case item.IsSeparator:
			if item.ID != "" || item.Accelerator != "" || item.Submenu != nil {
				return &BuildError{Label: label, Reason: "separator must not carry an identifier, accelerator or submenu"}
			}
		case item.Submenu != nil:
			if item.ID != "" {
				return &BuildError{Label: item.Label, Reason: "submenu header must not carry an identifier"}
			}
			if err := validateItems(item.Label, item.Submenu, seen); err != nil {
				return err
			}
		default:
			if item.ID == "" {
				return &BuildError{Label: item.Label, Reason: "actionable item requires an identifier"}
			}
			if prev, dup := seen[item.ID]; dup {
				return &BuildError{
					Label:  item.Label,
					Reason: fmt.Sprintf("identifier %q already used by %q", item.ID, prev),
				}
			}
			seen[item.ID] = item.Label
			if item.Accelerator != "" {
				if _, err := parseAccelerator(item.Accelerator); err != nil {
					return &BuildError{
						Label:  item.Label,
						Reason: fmt.Sprintf("invalid accelerator %q: %v", item.Accelerator, err),
					}
				}
			}
		}
	}
	return nil
}

func convertItems(items []Item, onSelect func(id string)) []*fyne.MenuItem {
	converted := make([]*fyne.MenuItem, 0, len(items))
	for _, item := range items {
		switch {
		case item.IsSeparator:
			converted = append(converted, fyne.NewMenuItemSeparator())
		case item.Submenu != nil:
			header := fyne.NewMenuItem(item.Label, nil)
			header.ChildMenu = fyne.NewMenu(item.Label, convertItems(item.Submenu, onSelect)...)
			converted = append(converted, header)
		default:
			id := item.ID
			entry := fyne.NewMenuItem(item.Label, func() { onSelect(id) })
			if item.Accelerator != "" {
				// Validated above; parse cannot fail here.
				shortcut, _ := parseAccelerator(item.Accelerator)
				entry.Shortcut = shortcut
			}
			converted = append(converted, entry)
		}
	}
	return converted
}
