package main

import (
	"fmt"
	"strings"

	"github.com/elee1766/windlg/src/dialog"
)

// dialogFlags are the configuration flags shared by every dialog command.
type dialogFlags struct {
	Title            string   `help:"Dialog window title"`
	Filter           []string `help:"File type filter as 'Description=pattern', repeatable. Patterns may hold several globs separated by ';'"`
	FilterIndex      uint32   `help:"1-based index of the filter selected by default"`
	DefaultExtension string   `help:"Extension appended to a typed-in name without one"`
	DefaultFolder    string   `help:"Folder the dialog navigates to on first use"`
	Folder           string   `help:"Folder that is always selected when the dialog opens"`
	FileName         string   `help:"Pre-populated file name"`
	FileNameLabel    string   `help:"Label shown next to the file name box"`
	OkLabel          string   `help:"Replacement text for the OK button"`
	Owner            uint64   `help:"Owner window handle (HWND)"`
}

func (f dialogFlags) params() (dialog.Params, error) {
	filters, err := parseFilters(f.Filter)
	if err != nil {
		return dialog.Params{}, err
	}
	return dialog.Params{
		Title:            f.Title,
		FileTypes:        filters,
		FileTypeIndex:    f.FilterIndex,
		DefaultExtension: f.DefaultExtension,
		DefaultFolder:    f.DefaultFolder,
		Folder:           f.Folder,
		FileName:         f.FileName,
		FileNameLabel:    f.FileNameLabel,
		OkButtonLabel:    f.OkLabel,
		Owner:            uintptr(f.Owner),
	}, nil
}

// parseFilters converts repeated 'Description=pattern' flags into filter
// specs, e.g. 'JPG Files=*.jpg;*.jpeg'.
func parseFilters(specs []string) ([]dialog.FilterSpec, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	filters := make([]dialog.FilterSpec, 0, len(specs))
	for _, s := range specs {
		desc, pattern, found := strings.Cut(s, "=")
		desc = strings.TrimSpace(desc)
		pattern = strings.TrimSpace(pattern)
		if !found || desc == "" || pattern == "" {
			return nil, fmt.Errorf("invalid filter %q: expected 'Description=pattern'", s)
		}
		filters = append(filters, dialog.FilterSpec{Description: desc, Pattern: pattern})
	}
	return filters, nil
}
