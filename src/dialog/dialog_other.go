//go:build !windows

package dialog

// Open is only supported on Windows.
func Open(p Params) (*OpenResult, error) {
	return nil, ErrUnavailable
}

// Save is only supported on Windows.
func Save(p Params) (*SaveResult, error) {
	return nil, ErrUnavailable
}
