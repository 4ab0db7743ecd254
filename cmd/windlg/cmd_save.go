package main

import (
	"fmt"

	"github.com/elee1766/windlg/src/dialog"
	"github.com/elee1766/windlg/src/native"
)

// SaveCmd shows a Save file dialog and prints the chosen path to stdout.
type SaveCmd struct {
	dialogFlags
	SaveAs          string `help:"Existing file to seed the dialog with, selecting both folder and file name"`
	OverwritePrompt bool   `help:"Prompt before overwriting an existing file"`
}

func (c *SaveCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	params, err := c.params()
	if err != nil {
		return err
	}
	params.SaveAsItem = c.SaveAs
	if c.OverwritePrompt {
		params.Options |= native.FOS_OVERWRITEPROMPT
	}

	result, err := dialog.Save(params)
	if err != nil {
		return reportDialogError(logger, err)
	}

	logger.Debug("save dialog confirmed",
		"path", result.Path,
		"filter_index", result.FileTypeIndex,
	)
	fmt.Println(result.Path)
	return nil
}
