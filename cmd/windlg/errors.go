package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/elee1766/windlg/src/dialog"
)

// reportDialogError maps the dialog error taxonomy to CLI behavior: a user
// cancel is a normal outcome, everything else surfaces as a command error.
func reportDialogError(logger *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dialog.ErrCancelled):
		logger.Info("dialog cancelled by user")
		return nil
	case errors.Is(err, dialog.ErrUnsupportedFilepath):
		return errors.New("the selection has no usable filesystem path")
	case errors.Is(err, dialog.ErrUnavailable):
		return errors.New("native file dialogs require Windows")
	}
	if callErr, ok := dialog.IsCallError(err); ok {
		return fmt.Errorf("%s failed (HRESULT 0x%08X)", callErr.Op, uint32(callErr.HResult))
	}
	return err
}
