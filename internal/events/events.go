// Package events carries menu selections to the front-end layer as
// named, payload-less notifications over a publish/subscribe bus.
package events

// Event names for front-end communication. A subscriber registered for
// a name receives every emission of that name; nothing else is
// guaranteed.
const (
	NewDocument      = "menu_new_document"
	Search           = "menu_search"
	NewCategory      = "menu_new_category"
	ManageCategories = "menu_manage_categories"
	ExportArchive    = "menu_export_archive"
	ImportArchive    = "menu_import_archive"
	Settings         = "menu_settings"
	ToggleSidebar    = "menu_toggle_sidebar"
	Reload           = "menu_reload"
	About            = "menu_about"
)
