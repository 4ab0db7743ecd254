package dialog

import (
	"errors"

	"github.com/elee1766/windlg/src/native"
)

var (
	// ErrCancelled is returned when the user dismisses the dialog without
	// confirming a selection. It is not a configuration failure.
	ErrCancelled = errors.New("dialog cancelled by user")

	// ErrUnsupportedFilepath is returned when a confirmed selection yields
	// no filesystem-backed item, such as "This PC" or a folder on a portable
	// device. The native call nominally succeeded.
	ErrUnsupportedFilepath = errors.New("selected item has no filesystem path")

	// ErrUnavailable is returned by Open and Save on platforms without the
	// native dialog subsystem.
	ErrUnavailable = errors.New("native file dialogs are not available on this platform")
)

// IsCallError reports the failing native call, if err wraps one. Callers use
// it to tell a bad combination of options apart from unrelated failures.
func IsCallError(err error) (*native.CallError, bool) {
	var callErr *native.CallError
	if errors.As(err, &callErr) {
		return callErr, true
	}
	return nil, false
}
