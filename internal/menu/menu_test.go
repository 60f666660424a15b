package menu

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTreeBuilds(t *testing.T) {
	mainMenu, err := Build(DefaultTree(), func(string) {})
	require.NoError(t, err)
	require.NotNil(t, mainMenu)

	labels := make([]string, 0, len(mainMenu.Items))
	for _, m := range mainMenu.Items {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"Documents", "Categories", "File", "Edit", "View", "Help"}, labels)
}

func TestDefaultTreeIdentifiersAreUnique(t *testing.T) {
	ids := DefaultTree().ActionableIDs()
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "identifier %q appears twice", id)
		seen[id] = true
	}
}

func TestBuildRejectsDuplicateIdentifier(t *testing.T) {
	tree := NewTree(
		NewGroup("File",
			NewItem("open", "Open", ""),
			NewItem("open", "Open Recent", ""),
		),
	)

	_, err := Build(tree, func(string) {})
	require.Error(t, err)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, buildErr.Reason, `"open"`)
}

func TestBuildRejectsDuplicateAcrossGroups(t *testing.T) {
	tree := NewTree(
		NewGroup("File", NewItem("open", "Open", "")),
		NewGroup("Edit", NewItem("open", "Open Selection", "")),
	)

	_, err := Build(tree, func(string) {})
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
}

func TestBuildRejectsMissingIdentifier(t *testing.T) {
	tree := NewTree(NewGroup("File", NewItem("", "Open", "")))

	_, err := Build(tree, func(string) {})
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, buildErr.Reason, "requires an identifier")
}

func TestBuildRejectsMalformedAccelerator(t *testing.T) {
	tree := NewTree(NewGroup("File", NewItem("open", "Open", "CmdOrCtrl+Banana")))

	_, err := Build(tree, func(string) {})
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, buildErr.Reason, "invalid accelerator")
}

func TestBuildRejectsSeparatorWithIdentifier(t *testing.T) {
	tree := NewTree(NewGroup("File", Item{ID: "sep", IsSeparator: true}))

	_, err := Build(tree, func(string) {})
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
}

func TestBuildRejectsSubmenuHeaderWithIdentifier(t *testing.T) {
	sub := NewSubmenu("Recent", NewItem("recent_1", "First", ""))
	sub.ID = "recent"
	tree := NewTree(NewGroup("File", sub))

	_, err := Build(tree, func(string) {})
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
}

func TestBuildSupportsNestedSubmenus(t *testing.T) {
	tree := NewTree(
		NewGroup("File",
			NewSubmenu("Recent",
				NewItem("recent_1", "First", ""),
				NewItem("recent_2", "Second", ""),
			),
		),
	)

	mainMenu, err := Build(tree, func(string) {})
	require.NoError(t, err)

	header := mainMenu.Items[0].Items[0]
	require.NotNil(t, header.ChildMenu)
	assert.Len(t, header.ChildMenu.Items, 2)
	assert.Equal(t, []string{"recent_1", "recent_2"}, tree.ActionableIDs())
}

func TestBuildWiresSelectionCallback(t *testing.T) {
	var selected []string
	mainMenu, err := Build(DefaultTree(), func(id string) {
		selected = append(selected, id)
	})
	require.NoError(t, err)

	newDocument := findItem(t, mainMenu, "Documents", "New Document")
	newDocument.Action()
	assert.Equal(t, []string{IDNewDocument}, selected)
}

func TestSearchItemIdentifierAndAccelerator(t *testing.T) {
	mainMenu, err := Build(DefaultTree(), func(string) {})
	require.NoError(t, err)

	search := findItem(t, mainMenu, "Documents", "Search Documents")
	shortcut, ok := search.Shortcut.(*desktop.CustomShortcut)
	require.True(t, ok, "search item should carry a custom shortcut")
	assert.Equal(t, fyne.KeyF, shortcut.KeyName)
	assert.Equal(t, fyne.KeyModifierShortcutDefault, shortcut.Modifier)
}

func TestInstallReplacesWindowMenu(t *testing.T) {
	_ = test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	mainMenu, err := Build(DefaultTree(), func(string) {})
	require.NoError(t, err)

	Install(window, mainMenu)
	assert.Same(t, mainMenu, window.MainMenu())
}

func TestNothingInstalledOnBuildFailure(t *testing.T) {
	_ = test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	tree := NewTree(
		NewGroup("File",
			NewItem("open", "Open", ""),
			NewItem("open", "Duplicate", ""),
		),
	)

	mainMenu, err := Build(tree, func(string) {})
	require.Error(t, err)
	require.Nil(t, mainMenu)
	assert.Nil(t, window.MainMenu())
}

func findItem(t *testing.T, mainMenu *fyne.MainMenu, group, label string) *fyne.MenuItem {
	t.Helper()
	for _, m := range mainMenu.Items {
		if m.Label != group {
			continue
		}
		for _, item := range m.Items {
			if item.Label == label {
				return item
			}
		}
	}
	t.Fatalf("item %q not found under %q", label, group)
	return nil
}
