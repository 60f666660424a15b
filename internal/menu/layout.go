package menu

import "ando-archive/internal/events"

// Menu item identifiers. These are the stable join keys between the
// built tree and the dispatch table; renaming one is a breaking change
// for the front end.
const (
	IDNewDocument      = "new_document"
	IDSearch           = "search"
	IDNewCategory      = "new_category"
	IDManageCategories = "manage_categories"
	IDExportArchive    = "export_archive"
	IDImportArchive    = "import_archive"
	IDSettings         = "settings"
	IDQuit             = "quit"
	IDUndo             = "undo"
	IDRedo             = "redo"
	IDCut              = "cut"
	IDCopy             = "copy"
	IDPaste            = "paste"
	IDToggleSidebar    = "toggle_sidebar"
	IDReload           = "reload"
	IDAbout            = "about"
)

// DefaultTree returns the Ando Archive menu layout: Documents and
// Categories as their own top-level menus, File holding archive and
// application operations, then Edit, View and Help.
func DefaultTree() Tree {
	documents := NewGroup("Documents",
		NewItem(IDNewDocument, "New Document", "CmdOrCtrl+N"),
		NewSeparator(),
		NewItem(IDSearch, "Search Documents", "CmdOrCtrl+F"),
	)

	categories := NewGroup("Categories",
		NewItem(IDNewCategory, "New Category", "CmdOrCtrl+Shift+N"),
		NewItem(IDManageCategories, "Manage Categories", "CmdOrCtrl+Shift+M"),
	)

	file := NewGroup("File",
		NewItem(IDExportArchive, "Export Archive", "CmdOrCtrl+E"),
		NewItem(IDImportArchive, "Import Archive", "CmdOrCtrl+I"),
		NewSeparator(),
		NewItem(IDSettings, "Settings", ""),
		NewSeparator(),
		NewItem(IDQuit, "Quit", ""),
	)

	edit := NewGroup("Edit",
		NewItem(IDUndo, "Undo", "CmdOrCtrl+Z"),
		NewItem(IDRedo, "Redo", "CmdOrCtrl+Shift+Z"),
		NewSeparator(),
		NewItem(IDCut, "Cut", "CmdOrCtrl+X"),
		NewItem(IDCopy, "Copy", "CmdOrCtrl+C"),
		NewItem(IDPaste, "Paste", "CmdOrCtrl+V"),
	)

	view := NewGroup("View",
		NewItem(IDToggleSidebar, "Toggle Sidebar", "CmdOrCtrl+B"),
		NewSeparator(),
		NewItem(IDReload, "Reload", "CmdOrCtrl+R"),
	)

	help := NewGroup("Help",
		NewItem(IDAbout, "About Ando Archive", ""),
	)

	return NewTree(documents, categories, file, edit, view, help)
}

// DefaultTable maps every actionable identifier in DefaultTree to its
// action. Edit-menu items map to Noop: the toolkit handles text
// editing natively and the application owns no behavior for them.
func DefaultTable() map[string]Action {
	return map[string]Action{
		IDNewDocument:      Emit(events.NewDocument),
		IDSearch:           Emit(events.Search),
		IDNewCategory:      Emit(events.NewCategory),
		IDManageCategories: Emit(events.ManageCategories),
		IDExportArchive:    Emit(events.ExportArchive),
		IDImportArchive:    Emit(events.ImportArchive),
		IDSettings:         Emit(events.Settings),
		IDQuit:             Exit,
		IDUndo:             Noop,
		IDRedo:             Noop,
		IDCut:              Noop,
		IDCopy:             Noop,
		IDPaste:            Noop,
		IDToggleSidebar:    Emit(events.ToggleSidebar),
		IDReload:           Emit(events.Reload),
		IDAbout:            Emit(events.About),
	}
}
