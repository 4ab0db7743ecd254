package dialog

// OpenResult holds the outcome of a confirmed Open dialog.
type OpenResult struct {
	// Path is the first selected path, a convenience for dialogs without
	// FOS_ALLOWMULTISELECT.
	Path string
	// Paths are all selected paths in native selection order. Never empty:
	// a selection with no filesystem-backed item fails with
	// ErrUnsupportedFilepath instead.
	Paths []string
	// FileTypeIndex is the 1-based File Type dropdown index that was active
	// when the user confirmed.
	FileTypeIndex uint32
}

// SaveResult holds the outcome of a confirmed Save dialog.
type SaveResult struct {
	Path          string
	FileTypeIndex uint32
}
