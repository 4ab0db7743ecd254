// Package dialog shows native Windows Open and Save file dialogs from plain
// Go configuration, without any manual COM bookkeeping.
//
// Every call to Open or Save runs an independent, self-contained session: the
// native environment is acquired at the start and released on every exit
// path, success or failure. Show blocks the calling goroutine until the user
// confirms or cancels.
//
//	result, err := dialog.Open(dialog.Params{
//		Title:     "Select an image to open",
//		FileTypes: []dialog.FilterSpec{{Description: "PNG Files", Pattern: "*.png"}},
//	})
//
// A cancelled dialog is reported as ErrCancelled, a selection without any
// filesystem-backed item as ErrUnsupportedFilepath, and any other native
// failure as a *native.CallError naming the failing call and its HRESULT.
package dialog
