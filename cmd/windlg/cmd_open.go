package main

import (
	"fmt"

	"github.com/elee1766/windlg/src/dialog"
	"github.com/elee1766/windlg/src/native"
)

// OpenCmd shows an Open file dialog and prints the selected paths, one per
// line, to stdout.
type OpenCmd struct {
	dialogFlags
	Multi bool `help:"Allow selecting multiple files"`
}

func (c *OpenCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)

	params, err := c.params()
	if err != nil {
		return err
	}
	if c.Multi {
		params.Options |= native.FOS_ALLOWMULTISELECT
	}

	result, err := dialog.Open(params)
	if err != nil {
		return reportDialogError(logger, err)
	}

	logger.Debug("open dialog confirmed",
		"paths", len(result.Paths),
		"filter_index", result.FileTypeIndex,
	)
	for _, path := range result.Paths {
		fmt.Println(path)
	}
	return nil
}
