//go:build windows

package shell32

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/elee1766/windlg/src/native"
)

type dialogHandle struct {
	unk  *ole.IUnknown
	kind native.Kind
}

func (d *dialogHandle) vtbl() *iFileDialogVtbl {
	return (*iFileDialogVtbl)(unsafe.Pointer(d.unk.RawVTable))
}

// setString invokes a single-PWSTR setter slot.
func (d *dialogHandle) setString(slot uintptr, s, op string) error {
	p, err := utf16Arg(s, op)
	if err != nil {
		return err
	}
	hr, _, _ := syscall.SyscallN(slot, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(p)))
	return native.Check(native.HResult(hr), op)
}

// setItem invokes a single-IShellItem setter slot.
func (d *dialogHandle) setItem(slot uintptr, item native.Item, op string) error {
	it, ok := item.(*itemHandle)
	if !ok {
		return &native.CallError{Op: op, HResult: native.HResultInvalidArg}
	}
	hr, _, _ := syscall.SyscallN(slot, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(it.unk)))
	return native.Check(native.HResult(hr), op)
}

func (d *dialogHandle) SetDefaultExtension(ext string) error {
	return d.setString(d.vtbl().SetDefaultExtension, ext, "IFileDialog::SetDefaultExtension")
}

func (d *dialogHandle) SetDefaultFolder(folder native.Item) error {
	return d.setItem(d.vtbl().SetDefaultFolder, folder, "IFileDialog::SetDefaultFolder")
}

func (d *dialogHandle) SetFolder(folder native.Item) error {
	return d.setItem(d.vtbl().SetFolder, folder, "IFileDialog::SetFolder")
}

func (d *dialogHandle) SetFileName(name string) error {
	return d.setString(d.vtbl().SetFileName, name, "IFileDialog::SetFileName")
}

func (d *dialogHandle) SetFileNameLabel(label string) error {
	return d.setString(d.vtbl().SetFileNameLabel, label, "IFileDialog::SetFileNameLabel")
}

// SetFileTypes builds the COMDLG_FILTERSPEC array and makes the native call
// inside a single scope: the spec array holds the only references to the
// UTF-16 buffers, so both must stay live until SetFileTypes returns.
func (d *dialogHandle) SetFileTypes(filters []native.FilterSpec) error {
	const op = "IFileDialog::SetFileTypes"
	if len(filters) == 0 {
		return nil
	}
	specs := make([]comdlgFilterSpec, 0, len(filters))
	for _, f := range filters {
		name, err := utf16Arg(f.Description, op)
		if err != nil {
			return err
		}
		pattern, err := utf16Arg(f.Pattern, op)
		if err != nil {
			return err
		}
		specs = append(specs, comdlgFilterSpec{pszName: name, pszSpec: pattern})
	}
	hr, _, _ := syscall.SyscallN(d.vtbl().SetFileTypes,
		uintptr(unsafe.Pointer(d.unk)),
		uintptr(len(specs)),
		uintptr(unsafe.Pointer(&specs[0])),
	)
	runtime.KeepAlive(specs)
	return native.Check(native.HResult(hr), op)
}

func (d *dialogHandle) SetFileTypeIndex(index uint32) error {
	hr, _, _ := syscall.SyscallN(d.vtbl().SetFileTypeIndex, uintptr(unsafe.Pointer(d.unk)), uintptr(index))
	return native.Check(native.HResult(hr), "IFileDialog::SetFileTypeIndex")
}

func (d *dialogHandle) SetOkButtonLabel(label string) error {
	return d.setString(d.vtbl().SetOkButtonLabel, label, "IFileDialog::SetOkButtonLabel")
}

func (d *dialogHandle) SetTitle(title string) error {
	return d.setString(d.vtbl().SetTitle, title, "IFileDialog::SetTitle")
}

func (d *dialogHandle) Options() (uint32, error) {
	var options uint32
	hr, _, _ := syscall.SyscallN(d.vtbl().GetOptions, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(&options)))
	if err := native.Check(native.HResult(hr), "IFileDialog::GetOptions"); err != nil {
		return 0, err
	}
	return options, nil
}

func (d *dialogHandle) SetOptions(options uint32) error {
	hr, _, _ := syscall.SyscallN(d.vtbl().SetOptions, uintptr(unsafe.Pointer(d.unk)), uintptr(options))
	return native.Check(native.HResult(hr), "IFileDialog::SetOptions")
}

// SetSaveAsItem is an IFileSaveDialog slot; the vtable cast is only valid
// when the handle wraps the save dialog class.
func (d *dialogHandle) SetSaveAsItem(item native.Item) error {
	const op = "IFileDialog::SetSaveAsItem"
	if d.kind != native.KindSave {
		return &native.CallError{Op: op, HResult: native.HResultInvalidArg}
	}
	vt := (*iFileSaveDialogVtbl)(unsafe.Pointer(d.unk.RawVTable))
	return d.setItem(vt.SetSaveAsItem, item, op)
}

func (d *dialogHandle) Show(owner uintptr) error {
	hr, _, _ := syscall.SyscallN(d.vtbl().Show, uintptr(unsafe.Pointer(d.unk)), owner)
	return native.Check(native.HResult(hr), "IModalWindow::Show")
}

func (d *dialogHandle) Result() (native.Item, error) {
	var raw *ole.IUnknown
	hr, _, _ := syscall.SyscallN(d.vtbl().GetResult, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(&raw)))
	if err := native.Check(native.HResult(hr), "IFileDialog::GetResult"); err != nil {
		return nil, err
	}
	return &itemHandle{unk: raw}, nil
}

// Results is an IFileOpenDialog slot; the vtable cast is only valid when the
// handle wraps the open dialog class.
func (d *dialogHandle) Results() (native.ItemList, error) {
	const op = "IFileOpenDialog::GetResults"
	if d.kind != native.KindOpen {
		return nil, &native.CallError{Op: op, HResult: native.HResultInvalidArg}
	}
	vt := (*iFileOpenDialogVtbl)(unsafe.Pointer(d.unk.RawVTable))
	var raw *ole.IUnknown
	hr, _, _ := syscall.SyscallN(vt.GetResults, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(&raw)))
	if err := native.Check(native.HResult(hr), op); err != nil {
		return nil, err
	}
	return &itemListHandle{unk: raw}, nil
}

func (d *dialogHandle) FileTypeIndex() (uint32, error) {
	var index uint32
	hr, _, _ := syscall.SyscallN(d.vtbl().GetFileTypeIndex, uintptr(unsafe.Pointer(d.unk)), uintptr(unsafe.Pointer(&index)))
	if err := native.Check(native.HResult(hr), "IFileDialog::GetFileTypeIndex"); err != nil {
		return 0, err
	}
	return index, nil
}

func (d *dialogHandle) Release() {
	d.unk.Release()
}

func utf16Arg(s, op string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, &native.CallError{Op: op, HResult: native.HResultInvalidArg}
	}
	return p, nil
}
