package main

import (
	"fmt"

	"github.com/elee1766/windlg/src/dialog"
	"github.com/elee1766/windlg/src/native"
)

// FolderCmd shows a folder picker (an Open dialog with FOS_PICKFOLDERS) and
// prints the selected directory to stdout.
type FolderCmd struct {
	Title string `help:"Dialog window title"`
	Owner uint64 `help:"Owner window handle (HWND)"`
}

func (c *FolderCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	result, err := dialog.Open(dialog.Params{
		Title:   c.Title,
		Owner:   uintptr(c.Owner),
		Options: native.FOS_PICKFOLDERS,
	})
	if err != nil {
		return reportDialogError(logger, err)
	}

	logger.Debug("folder picker confirmed", "path", result.Path)
	fmt.Println(result.Path)
	return nil
}
