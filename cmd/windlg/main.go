package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the main CLI structure
type CLI struct {
	LogLevel string `default:"warn" help:"Log level"`

	Open   OpenCmd   `cmd:"" help:"Show a native Open file dialog"`
	Save   SaveCmd   `cmd:"" help:"Show a native Save file dialog"`
	Folder FolderCmd `cmd:"" help:"Show a native folder picker"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("windlg"),
		kong.Description("Native Windows file dialog demos"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
