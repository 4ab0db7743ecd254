//go:build windows

package dialog

import (
	"runtime"

	"github.com/elee1766/windlg/src/native/shell32"
)

// Open displays a native Open dialog and blocks until the user confirms or
// cancels. The calling goroutine is pinned to its OS thread for the duration
// because the COM apartment is tied to the initializing thread. Independent
// goroutines may each run their own sessions.
func Open(p Params) (*OpenResult, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return runOpen(shell32.Runtime{}, p)
}

// Save displays a native Save dialog and blocks until the user confirms or
// cancels.
func Save(p Params) (*SaveResult, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return runSave(shell32.Runtime{}, p)
}
