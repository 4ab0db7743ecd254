// Package native abstracts the Windows common item dialog surface that the
// dialog package drives. The real binding lives in the shell32 subpackage;
// nativetest provides an instrumented in-memory runtime for tests.
//
// Every handle returned by these interfaces must be released exactly once.
// Release is best-effort cleanup and never reports an error.
package native

// Kind selects which dialog class an Environment instantiates.
type Kind int

const (
	KindOpen Kind = iota
	KindSave
)

// FilterSpec is one entry of the File Type dropdown: a human-readable
// description and a glob pattern, with multiple patterns separated by a
// semi-colon, e.g. ("Executable Files", "*.exe;*.com;*.scr").
type FilterSpec struct {
	Description string
	Pattern     string `validate:"required,filter_pattern"`
}

// Runtime produces dialog environments. One environment is acquired per
// dialog session and released when the session ends.
type Runtime interface {
	Init() (Environment, error)
}

// Environment is the per-session view of the native dialog subsystem. It is
// tied to the thread that acquired it and is not safe for concurrent use.
type Environment interface {
	// NewDialog instantiates a dialog of the given kind.
	NewDialog(kind Kind) (Dialog, error)
	// ParseItem resolves a filesystem path to a native item handle.
	ParseItem(path string) (Item, error)
	Release()
}

// Dialog wraps a single native dialog instance. Setters correspond one to one
// with the native configuration calls; each returns a *CallError naming the
// failing call when the native layer rejects it.
type Dialog interface {
	SetDefaultExtension(ext string) error
	SetDefaultFolder(folder Item) error
	SetFolder(folder Item) error
	SetFileName(name string) error
	SetFileNameLabel(label string) error
	SetFileTypes(filters []FilterSpec) error
	SetFileTypeIndex(index uint32) error
	SetOkButtonLabel(label string) error
	SetTitle(title string) error
	Options() (uint32, error)
	SetOptions(options uint32) error
	SetSaveAsItem(item Item) error

	// Show displays the dialog modally, blocking until the user confirms or
	// cancels. A zero owner shows an independent top-level window.
	Show(owner uintptr) error

	// Result returns the single confirmed item of a save dialog.
	Result() (Item, error)
	// Results returns the confirmed items of an open dialog.
	Results() (ItemList, error)

	// FileTypeIndex reports the 1-based index of the filter that was active
	// when the user confirmed.
	FileTypeIndex() (uint32, error)

	Release()
}

// ItemList wraps a native shell item collection.
type ItemList interface {
	Count() (uint32, error)
	Item(i uint32) (Item, error)
	Release()
}

// Item wraps a native shell item, which may represent a filesystem location
// or a virtual one such as "This PC" or a portable device folder.
type Item interface {
	// Attributes queries the item attributes selected by mask.
	Attributes(mask uint32) (uint32, error)
	// Path resolves the item's filesystem display path. Fails for items that
	// are not filesystem-backed.
	Path() (string, error)
	Release()
}
