package native

import "fmt"

// HResult is a Windows HRESULT status code. The high bit set means failure.
type HResult uint32

const (
	// HResultCancelled is HRESULT_FROM_WIN32(ERROR_CANCELLED), returned by
	// IModalWindow::Show when the user dismisses the dialog.
	HResultCancelled HResult = 0x800704C7
	// HResultInvalidArg is E_INVALIDARG.
	HResultInvalidArg HResult = 0x80070057
	// HResultFail is E_FAIL, used when a failure carries no specific code.
	HResultFail HResult = 0x80004005
)

// SFGAOFileSystem is the shell item attribute flag indicating the item has a
// real filesystem path rather than a virtual or device location.
const SFGAOFileSystem uint32 = 0x40000000

// Succeeded reports whether the code is a success status (S_OK, S_FALSE, ...).
func (hr HResult) Succeeded() bool {
	return int32(hr) >= 0
}

// CallError reports a native call that returned a failing status. Op names
// the call as documented, e.g. "IFileDialog::SetTitle", so callers can tell a
// bad option combination apart from an unrelated system failure.
type CallError struct {
	Op      string
	HResult HResult
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s failed with HRESULT 0x%08X", e.Op, uint32(e.HResult))
}

// Check converts a failing status into a *CallError tagged with op.
func Check(hr HResult, op string) error {
	if hr.Succeeded() {
		return nil
	}
	return &CallError{Op: op, HResult: hr}
}
