package dialog

import "github.com/elee1766/windlg/src/native"

// FilterSpec is one (description, glob pattern) entry of the File Type
// dropdown.
type FilterSpec = native.FilterSpec

// Params configures a dialog session. Every field is optional; the zero
// value of a string field means "do not set". Params is read-only to the
// session, the caller's value is never mutated.
type Params struct {
	// DefaultExtension is appended to a typed-in file name that has no
	// extension. Without it no extension is ever appended, even when a
	// specific file type filter is selected.
	DefaultExtension string

	// DefaultFolder is where the dialog navigates on first use. Later uses
	// remember the folder of the last selection.
	DefaultFolder string

	// Folder is always selected when the dialog opens, regardless of
	// previous user action. Prefer DefaultFolder for general use.
	Folder string

	// FileName pre-populates the file name edit box.
	FileName string

	// FileNameLabel replaces the label next to the file name edit box.
	FileNameLabel string

	// FileTypes populates the File Type dropdown. When FileTypes is set,
	// FileTypeIndex selects the 1-based default entry; an index of zero
	// leaves the native default in place.
	FileTypes     []FilterSpec `validate:"dive"`
	FileTypeIndex uint32

	// OkButtonLabel replaces the default "Open" or "Save" button text.
	OkButtonLabel string

	// Options is a combination of native.FOS_* flags. The flags are OR-ed
	// into the dialog's existing options, never overwritten, so class
	// defaults are preserved. Invalid combinations make the dialog fail with
	// a *native.CallError.
	Options uint32

	// Owner is the HWND of the window that owns the dialog. Zero shows an
	// independent top-level window.
	Owner uintptr

	// SaveAsItem is the path of an existing file to seed a Save As dialog,
	// selecting both the containing folder and the file name. Ignored by
	// Open.
	SaveAsItem string

	// Title is the dialog window title.
	Title string
}

// DefaultParams returns the conventional baseline configuration: a single
// catch-all filter with index 1. A zero Params value configures no filters
// at all and leaves the File Type dropdown to the shell.
func DefaultParams() Params {
	return Params{
		FileTypes:     []FilterSpec{{Description: "All types (*.*)", Pattern: "*.*"}},
		FileTypeIndex: 1,
	}
}
