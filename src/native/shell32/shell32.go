//go:build windows

// Package shell32 binds the native abstraction to the Windows common item
// dialog COM interfaces (IFileOpenDialog, IFileSaveDialog, IShellItem). COM
// is initialized apartment-threaded per session, so the environment handle is
// only valid on the thread that acquired it.
package shell32

import (
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/elee1766/windlg/src/native"
)

var (
	modshell32                      = windows.NewLazySystemDLL("shell32.dll")
	procSHCreateItemFromParsingName = modshell32.NewProc("SHCreateItemFromParsingName")
)

// Runtime is the production native.Runtime backed by the Windows shell.
type Runtime struct{}

// Init initializes COM for the calling thread and returns the session
// environment. The environment must be released on the same thread.
func (Runtime) Init() (native.Environment, error) {
	if err := initStatus(ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_DISABLE_OLE1DDE)); err != nil {
		return nil, err
	}
	return &environment{}, nil
}

// initStatus maps a go-ole CoInitializeEx result to the session outcome.
// go-ole reports any nonzero HRESULT as an error, including S_FALSE when the
// thread already runs an apartment; the per-thread init count is incremented
// on every success status, so those must return an environment whose Release
// pairs the CoUninitialize. Only a real failure aborts the session.
func initStatus(err error) error {
	if err == nil {
		return nil
	}
	if hr := oleHResult(err); !hr.Succeeded() {
		return &native.CallError{Op: "CoInitializeEx", HResult: hr}
	}
	return nil
}

type environment struct{}

func (*environment) NewDialog(kind native.Kind) (native.Dialog, error) {
	clsid, iid, op := clsidFileOpenDialog, iidFileOpenDialog, "CoCreateInstance - IFileOpenDialog"
	if kind == native.KindSave {
		clsid, iid, op = clsidFileSaveDialog, iidFileSaveDialog, "CoCreateInstance - IFileSaveDialog"
	}
	unk, err := ole.CreateInstance(clsid, iid)
	if err != nil {
		return nil, &native.CallError{Op: op, HResult: oleHResult(err)}
	}
	return &dialogHandle{unk: unk, kind: kind}, nil
}

func (*environment) ParseItem(path string) (native.Item, error) {
	const op = "SHCreateItemFromParsingName"
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &native.CallError{Op: op, HResult: native.HResultInvalidArg}
	}
	var raw *ole.IUnknown
	hr, _, _ := procSHCreateItemFromParsingName.Call(
		uintptr(unsafe.Pointer(p)),
		0,
		uintptr(unsafe.Pointer(iidShellItem)),
		uintptr(unsafe.Pointer(&raw)),
	)
	if err := native.Check(native.HResult(hr), op); err != nil {
		return nil, err
	}
	return &itemHandle{unk: raw}, nil
}

func (*environment) Release() {
	ole.CoUninitialize()
}
