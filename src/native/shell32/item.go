//go:build windows

package shell32

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/elee1766/windlg/src/native"
)

type itemHandle struct {
	unk *ole.IUnknown
}

func (it *itemHandle) vtbl() *iShellItemVtbl {
	return (*iShellItemVtbl)(unsafe.Pointer(it.unk.RawVTable))
}

func (it *itemHandle) Attributes(mask uint32) (uint32, error) {
	// GetAttributes returns S_FALSE when not every requested attribute is
	// present; that is still a success status.
	var attrs uint32
	hr, _, _ := syscall.SyscallN(it.vtbl().GetAttributes,
		uintptr(unsafe.Pointer(it.unk)),
		uintptr(mask),
		uintptr(unsafe.Pointer(&attrs)),
	)
	if err := native.Check(native.HResult(hr), "IShellItem::GetAttributes"); err != nil {
		return 0, err
	}
	return attrs, nil
}

func (it *itemHandle) Path() (string, error) {
	var buf *uint16
	hr, _, _ := syscall.SyscallN(it.vtbl().GetDisplayName,
		uintptr(unsafe.Pointer(it.unk)),
		uintptr(sigdnFileSysPath),
		uintptr(unsafe.Pointer(&buf)),
	)
	if err := native.Check(native.HResult(hr), "IShellItem::GetDisplayName"); err != nil {
		return "", err
	}
	defer ole.CoTaskMemFree(uintptr(unsafe.Pointer(buf)))
	return windows.UTF16PtrToString(buf), nil
}

func (it *itemHandle) Release() {
	it.unk.Release()
}

type itemListHandle struct {
	unk *ole.IUnknown
}

func (l *itemListHandle) vtbl() *iShellItemArrayVtbl {
	return (*iShellItemArrayVtbl)(unsafe.Pointer(l.unk.RawVTable))
}

func (l *itemListHandle) Count() (uint32, error) {
	var count uint32
	hr, _, _ := syscall.SyscallN(l.vtbl().GetCount, uintptr(unsafe.Pointer(l.unk)), uintptr(unsafe.Pointer(&count)))
	if err := native.Check(native.HResult(hr), "IShellItemArray::GetCount"); err != nil {
		return 0, err
	}
	return count, nil
}

func (l *itemListHandle) Item(i uint32) (native.Item, error) {
	var raw *ole.IUnknown
	hr, _, _ := syscall.SyscallN(l.vtbl().GetItemAt,
		uintptr(unsafe.Pointer(l.unk)),
		uintptr(i),
		uintptr(unsafe.Pointer(&raw)),
	)
	if err := native.Check(native.HResult(hr), "IShellItemArray::GetItemAt"); err != nil {
		return nil, err
	}
	return &itemHandle{unk: raw}, nil
}

func (l *itemListHandle) Release() {
	l.unk.Release()
}
