//go:build windows

package shell32

import (
	"errors"

	"github.com/go-ole/go-ole"

	"github.com/elee1766/windlg/src/native"
)

var (
	clsidFileOpenDialog = ole.NewGUID("{DC1C5A9C-E88A-4DDE-A5A1-60F82A20AEF7}")
	clsidFileSaveDialog = ole.NewGUID("{C0B4E2F3-BA21-4773-8DBA-335EC946EB8B}")
	iidFileOpenDialog   = ole.NewGUID("{D57C7288-D4AD-4768-BE02-9D969532D960}")
	iidFileSaveDialog   = ole.NewGUID("{84BCCD23-5FDE-4CDB-AEA4-AF64B83D78AB}")
	iidShellItem        = ole.NewGUID("{43826D1E-E718-42EE-BC55-A1E261C37BFE}")
)

// SIGDN_FILESYSPATH: resolve an item to its filesystem display path.
const sigdnFileSysPath = 0x80058000

// Vtable layouts for the interfaces this package calls through. Slot order
// must match the declaration order in shobjidl_core.h exactly.

type iFileDialogVtbl struct {
	ole.IUnknownVtbl
	Show                uintptr
	SetFileTypes        uintptr
	SetFileTypeIndex    uintptr
	GetFileTypeIndex    uintptr
	Advise              uintptr
	Unadvise            uintptr
	SetOptions          uintptr
	GetOptions          uintptr
	SetDefaultFolder    uintptr
	SetFolder           uintptr
	GetFolder           uintptr
	GetCurrentSelection uintptr
	SetFileName         uintptr
	GetFileName         uintptr
	SetTitle            uintptr
	SetOkButtonLabel    uintptr
	SetFileNameLabel    uintptr
	GetResult           uintptr
	AddPlace            uintptr
	SetDefaultExtension uintptr
	Close               uintptr
	SetClientGuid       uintptr
	ClearClientData     uintptr
	SetFilter           uintptr
}

type iFileOpenDialogVtbl struct {
	iFileDialogVtbl
	GetResults       uintptr
	GetSelectedItems uintptr
}

type iFileSaveDialogVtbl struct {
	iFileDialogVtbl
	SetSaveAsItem          uintptr
	SetProperties          uintptr
	SetCollectedProperties uintptr
	GetProperties          uintptr
	ApplyProperties        uintptr
}

type iShellItemVtbl struct {
	ole.IUnknownVtbl
	BindToHandler  uintptr
	GetParent      uintptr
	GetDisplayName uintptr
	GetAttributes  uintptr
	Compare        uintptr
}

type iShellItemArrayVtbl struct {
	ole.IUnknownVtbl
	BindToHandler              uintptr
	GetPropertyStore           uintptr
	GetPropertyDescriptionList uintptr
	GetAttributes              uintptr
	GetCount                   uintptr
	GetItemAt                  uintptr
	EnumItems                  uintptr
}

// comdlgFilterSpec mirrors COMDLG_FILTERSPEC from shtypes.h.
type comdlgFilterSpec struct {
	pszName *uint16
	pszSpec *uint16
}

// oleHResult extracts the raw HRESULT from a go-ole error.
func oleHResult(err error) native.HResult {
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return native.HResult(oleErr.Code())
	}
	return native.HResultFail
}
