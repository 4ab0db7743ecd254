// Package nativetest provides an instrumented in-memory native.Runtime for
// testing dialog sessions without a Windows shell: scripted selections,
// per-call failure injection, and an acquire/release ledger for every handle
// the session obtains.
package nativetest

import (
	"github.com/elee1766/windlg/src/native"
)

// Item describes one entry of the simulated user selection.
type Item struct {
	Path string
	// FileSystem controls the SFGAO_FILESYSTEM attribute of the item.
	FileSystem bool
}

// Fake implements native.Runtime. Configure the public fields before running
// a session, then inspect Calls, Dialog, and the ledger afterwards.
type Fake struct {
	// Fail maps a call name (e.g. "IFileDialog::SetTitle") to the failing
	// status it should return.
	Fail map[string]native.HResult
	// Selection is what the simulated user confirms in the dialog.
	Selection []Item
	// CancelShow makes IModalWindow::Show return the cancel status.
	CancelShow bool
	// FileTypeIndex overrides the filter index reported after confirmation.
	// Zero means "whatever the dialog was configured with", defaulting to 1.
	FileTypeIndex uint32
	// BaseOptions seeds the option flags the dialog reports before any
	// SetOptions call, standing in for the dialog class defaults.
	BaseOptions uint32

	// Calls records every native call name in invocation order.
	Calls []string
	// Dialog is the most recently instantiated dialog.
	Dialog *Dialog

	acquired int
	released int
}

func New() *Fake {
	return &Fake{Fail: map[string]native.HResult{}}
}

// Acquired reports how many native handles the session obtained.
func (f *Fake) Acquired() int { return f.acquired }

// Released reports how many native handles the session released.
func (f *Fake) Released() int { return f.released }

// Called reports whether op was invoked at any point.
func (f *Fake) Called(op string) bool {
	for _, c := range f.Calls {
		if c == op {
			return true
		}
	}
	return false
}

// step records a call and returns its scripted failure, if any.
func (f *Fake) step(op string) error {
	f.Calls = append(f.Calls, op)
	if hr, ok := f.Fail[op]; ok {
		return &native.CallError{Op: op, HResult: hr}
	}
	return nil
}

// Init implements native.Runtime.
func (f *Fake) Init() (native.Environment, error) {
	if err := f.step("CoInitializeEx"); err != nil {
		return nil, err
	}
	f.acquired++
	return &environment{f: f}, nil
}

type environment struct {
	f *Fake
}

func (e *environment) NewDialog(kind native.Kind) (native.Dialog, error) {
	op := "CoCreateInstance - IFileOpenDialog"
	if kind == native.KindSave {
		op = "CoCreateInstance - IFileSaveDialog"
	}
	if err := e.f.step(op); err != nil {
		return nil, err
	}
	e.f.acquired++
	d := &Dialog{f: e.f, Kind: kind, Flags: e.f.BaseOptions}
	e.f.Dialog = d
	return d, nil
}

func (e *environment) ParseItem(path string) (native.Item, error) {
	if err := e.f.step("SHCreateItemFromParsingName"); err != nil {
		return nil, err
	}
	e.f.acquired++
	return &item{f: e.f, path: path, fileSystem: true}, nil
}

func (e *environment) Release() {
	e.f.released++
}

// Dialog records every configuration call applied to the fake dialog.
type Dialog struct {
	f    *Fake
	Kind native.Kind

	DefaultExtension string
	DefaultFolder    string
	Folder           string
	FileName         string
	FileNameLabel    string
	FileTypes        []native.FilterSpec
	FileTypeIndexSet uint32
	OkButtonLabel    string
	Flags            uint32
	Title            string
	SaveAsItem       string
	Owner            uintptr
	Shown            bool
}

func (d *Dialog) SetDefaultExtension(ext string) error {
	if err := d.f.step("IFileDialog::SetDefaultExtension"); err != nil {
		return err
	}
	d.DefaultExtension = ext
	return nil
}

func (d *Dialog) SetDefaultFolder(folder native.Item) error {
	if err := d.f.step("IFileDialog::SetDefaultFolder"); err != nil {
		return err
	}
	d.DefaultFolder = fakePath(folder)
	return nil
}

func (d *Dialog) SetFolder(folder native.Item) error {
	if err := d.f.step("IFileDialog::SetFolder"); err != nil {
		return err
	}
	d.Folder = fakePath(folder)
	return nil
}

func (d *Dialog) SetFileName(name string) error {
	if err := d.f.step("IFileDialog::SetFileName"); err != nil {
		return err
	}
	d.FileName = name
	return nil
}

func (d *Dialog) SetFileNameLabel(label string) error {
	if err := d.f.step("IFileDialog::SetFileNameLabel"); err != nil {
		return err
	}
	d.FileNameLabel = label
	return nil
}

func (d *Dialog) SetFileTypes(filters []native.FilterSpec) error {
	if err := d.f.step("IFileDialog::SetFileTypes"); err != nil {
		return err
	}
	d.FileTypes = append([]native.FilterSpec(nil), filters...)
	return nil
}

func (d *Dialog) SetFileTypeIndex(index uint32) error {
	if err := d.f.step("IFileDialog::SetFileTypeIndex"); err != nil {
		return err
	}
	d.FileTypeIndexSet = index
	return nil
}

func (d *Dialog) SetOkButtonLabel(label string) error {
	if err := d.f.step("IFileDialog::SetOkButtonLabel"); err != nil {
		return err
	}
	d.OkButtonLabel = label
	return nil
}

func (d *Dialog) SetTitle(title string) error {
	if err := d.f.step("IFileDialog::SetTitle"); err != nil {
		return err
	}
	d.Title = title
	return nil
}

func (d *Dialog) Options() (uint32, error) {
	if err := d.f.step("IFileDialog::GetOptions"); err != nil {
		return 0, err
	}
	return d.Flags, nil
}

func (d *Dialog) SetOptions(options uint32) error {
	if err := d.f.step("IFileDialog::SetOptions"); err != nil {
		return err
	}
	d.Flags = options
	return nil
}

func (d *Dialog) SetSaveAsItem(it native.Item) error {
	if err := d.f.step("IFileDialog::SetSaveAsItem"); err != nil {
		return err
	}
	d.SaveAsItem = fakePath(it)
	return nil
}

func (d *Dialog) Show(owner uintptr) error {
	if err := d.f.step("IModalWindow::Show"); err != nil {
		return err
	}
	// A cancelled dialog was still displayed with the given owner.
	d.Owner = owner
	d.Shown = true
	if d.f.CancelShow {
		return &native.CallError{Op: "IModalWindow::Show", HResult: native.HResultCancelled}
	}
	return nil
}

func (d *Dialog) Result() (native.Item, error) {
	if err := d.f.step("IFileDialog::GetResult"); err != nil {
		return nil, err
	}
	if len(d.f.Selection) == 0 {
		return nil, &native.CallError{Op: "IFileDialog::GetResult", HResult: native.HResultFail}
	}
	d.f.acquired++
	sel := d.f.Selection[0]
	return &item{f: d.f, path: sel.Path, fileSystem: sel.FileSystem}, nil
}

func (d *Dialog) Results() (native.ItemList, error) {
	if err := d.f.step("IFileOpenDialog::GetResults"); err != nil {
		return nil, err
	}
	d.f.acquired++
	return &itemList{f: d.f, items: d.f.Selection}, nil
}

func (d *Dialog) FileTypeIndex() (uint32, error) {
	if err := d.f.step("IFileDialog::GetFileTypeIndex"); err != nil {
		return 0, err
	}
	if d.f.FileTypeIndex != 0 {
		return d.f.FileTypeIndex, nil
	}
	if d.FileTypeIndexSet != 0 {
		return d.FileTypeIndexSet, nil
	}
	return 1, nil
}

func (d *Dialog) Release() {
	d.f.released++
}

type itemList struct {
	f     *Fake
	items []Item
}

func (l *itemList) Count() (uint32, error) {
	if err := l.f.step("IShellItemArray::GetCount"); err != nil {
		return 0, err
	}
	return uint32(len(l.items)), nil
}

func (l *itemList) Item(i uint32) (native.Item, error) {
	if err := l.f.step("IShellItemArray::GetItemAt"); err != nil {
		return nil, err
	}
	if i >= uint32(len(l.items)) {
		return nil, &native.CallError{Op: "IShellItemArray::GetItemAt", HResult: native.HResultInvalidArg}
	}
	l.f.acquired++
	sel := l.items[i]
	return &item{f: l.f, path: sel.Path, fileSystem: sel.FileSystem}, nil
}

func (l *itemList) Release() {
	l.f.released++
}

type item struct {
	f          *Fake
	path       string
	fileSystem bool
}

func (it *item) Attributes(mask uint32) (uint32, error) {
	if err := it.f.step("IShellItem::GetAttributes"); err != nil {
		return 0, err
	}
	if it.fileSystem {
		return mask & native.SFGAOFileSystem, nil
	}
	return 0, nil
}

func (it *item) Path() (string, error) {
	if err := it.f.step("IShellItem::GetDisplayName"); err != nil {
		return "", err
	}
	return it.path, nil
}

func (it *item) Release() {
	it.f.released++
}

func fakePath(it native.Item) string {
	if fi, ok := it.(*item); ok {
		return fi.path
	}
	return ""
}
