package dialog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elee1766/windlg/src/native"
	"github.com/elee1766/windlg/src/native/nativetest"
)

func TestOpenSession(t *testing.T) {
	tests := []struct {
		name        string
		setupFake   func(f *nativetest.Fake)
		params      func() Params
		expectedErr error
		checkResult func(t *testing.T, result *OpenResult)
		checkFake   func(t *testing.T, f *nativetest.Fake)
	}{
		{
			name: "default params apply catch-all filter with index 1",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\Users\me\notes.txt`, FileSystem: true}}
			},
			params: DefaultParams,
			checkResult: func(t *testing.T, result *OpenResult) {
				assert.Equal(t, `C:\Users\me\notes.txt`, result.Path)
				assert.Equal(t, []string{`C:\Users\me\notes.txt`}, result.Paths)
				assert.Equal(t, uint32(1), result.FileTypeIndex)
			},
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				require.Len(t, f.Dialog.FileTypes, 1)
				assert.Equal(t, "*.*", f.Dialog.FileTypes[0].Pattern)
				assert.Equal(t, uint32(1), f.Dialog.FileTypeIndexSet)
			},
		},
		{
			name: "zero params set nothing on the dialog",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\data.bin`, FileSystem: true}}
			},
			params: func() Params { return Params{} },
			checkResult: func(t *testing.T, result *OpenResult) {
				assert.Len(t, result.Paths, 1)
			},
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.False(t, f.Called("IFileDialog::SetFileTypes"))
				assert.False(t, f.Called("IFileDialog::SetTitle"))
				assert.False(t, f.Called("IFileDialog::GetOptions"))
				assert.False(t, f.Called("SHCreateItemFromParsingName"))
			},
		},
		{
			name: "single selection without multi-select flag",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\only.txt`, FileSystem: true}}
			},
			params: func() Params { return Params{Title: "pick one"} },
			checkResult: func(t *testing.T, result *OpenResult) {
				assert.Len(t, result.Paths, 1)
				assert.Equal(t, result.Path, result.Paths[0])
			},
		},
		{
			name: "multi-select keeps native selection order",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{
					{Path: `C:\b.dll`, FileSystem: true},
					{Path: `C:\a.dll`, FileSystem: true},
					{Path: `C:\c.dll`, FileSystem: true},
				}
			},
			params: func() Params { return Params{Options: native.FOS_ALLOWMULTISELECT} },
			checkResult: func(t *testing.T, result *OpenResult) {
				assert.Equal(t, []string{`C:\b.dll`, `C:\a.dll`, `C:\c.dll`}, result.Paths)
				assert.Equal(t, `C:\b.dll`, result.Path)
			},
		},
		{
			name: "non-filesystem items are silently dropped",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{
					{Path: "::{this-pc}", FileSystem: false},
					{Path: `C:\real.txt`, FileSystem: true},
					{Path: "::{phone}/DCIM", FileSystem: false},
				}
			},
			params: func() Params { return Params{Options: native.FOS_ALLOWMULTISELECT} },
			checkResult: func(t *testing.T, result *OpenResult) {
				assert.Equal(t, []string{`C:\real.txt`}, result.Paths)
			},
		},
		{
			name: "selection with no filesystem item fails instead of succeeding empty",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{
					{Path: "::{this-pc}", FileSystem: false},
					{Path: "::{control-panel}", FileSystem: false},
				}
			},
			params:      func() Params { return Params{Options: native.FOS_ALLOWMULTISELECT} },
			expectedErr: ErrUnsupportedFilepath,
		},
		{
			name: "cancel status maps to ErrCancelled regardless of configuration",
			setupFake: func(f *nativetest.Fake) {
				f.CancelShow = true
			},
			params: func() Params {
				p := DefaultParams()
				p.Title = "will be cancelled"
				p.DefaultFolder = `C:\Windows`
				return p
			},
			expectedErr: ErrCancelled,
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.False(t, f.Called("IFileOpenDialog::GetResults"))
			},
		},
		{
			name: "options are merged into existing flags, not overwritten",
			setupFake: func(f *nativetest.Fake) {
				f.BaseOptions = native.FOS_PATHMUSTEXIST | native.FOS_FILEMUSTEXIST
				f.Selection = []nativetest.Item{{Path: `C:\x`, FileSystem: true}}
			},
			params: func() Params { return Params{Options: native.FOS_ALLOWMULTISELECT} },
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				want := native.FOS_PATHMUSTEXIST | native.FOS_FILEMUSTEXIST | native.FOS_ALLOWMULTISELECT
				assert.Equal(t, want, f.Dialog.Flags)
			},
		},
		{
			name: "owner handle is forwarded to Show",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\x`, FileSystem: true}}
			},
			params: func() Params { return Params{Owner: 0xdeadbeef} },
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.Equal(t, uintptr(0xdeadbeef), f.Dialog.Owner)
			},
		},
		{
			name: "owner handle is forwarded even when the dialog is cancelled",
			setupFake: func(f *nativetest.Fake) {
				f.CancelShow = true
			},
			params:      func() Params { return Params{Owner: 0xdeadbeef} },
			expectedErr: ErrCancelled,
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.Equal(t, uintptr(0xdeadbeef), f.Dialog.Owner)
				assert.True(t, f.Dialog.Shown)
			},
		},
		{
			name: "both default folder and forced folder are resolved and applied",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\x`, FileSystem: true}}
			},
			params: func() Params {
				return Params{DefaultFolder: `C:\Users\me`, Folder: `C:\Windows\System32`}
			},
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.Equal(t, `C:\Users\me`, f.Dialog.DefaultFolder)
				assert.Equal(t, `C:\Windows\System32`, f.Dialog.Folder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nativetest.New()
			if tt.setupFake != nil {
				tt.setupFake(f)
			}

			result, err := runOpen(f, tt.params())

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				require.NotEmpty(t, result.Paths)
			}
			if tt.checkResult != nil && result != nil {
				tt.checkResult(t, result)
			}
			if tt.checkFake != nil {
				tt.checkFake(t, f)
			}

			assert.Equal(t, f.Acquired(), f.Released(), "native handle leak: %d acquired, %d released", f.Acquired(), f.Released())
		})
	}
}

func TestOpenConfigurationOrder(t *testing.T) {
	f := nativetest.New()
	f.Selection = []nativetest.Item{{Path: `C:\Windows\System32\win32k.sys`, FileSystem: true}}

	_, err := runOpen(f, Params{
		DefaultExtension: "dll",
		DefaultFolder:    `C:\Windows\System32`,
		Folder:           `C:\Windows`,
		FileName:         "win32k.sys",
		FileNameLabel:    "Select some files!",
		FileTypes: []FilterSpec{
			{Description: "DLL Files", Pattern: "*.dll"},
			{Description: "Executable Files", Pattern: "*.exe;*.com;*.scr"},
		},
		FileTypeIndex: 1,
		OkButtonLabel: "Custom OK",
		Options:       native.FOS_ALLOWMULTISELECT,
		Title:         "Test open file dialog",
	})
	require.NoError(t, err)

	want := []string{
		"CoInitializeEx",
		"CoCreateInstance - IFileOpenDialog",
		"IFileDialog::SetDefaultExtension",
		"SHCreateItemFromParsingName",
		"IFileDialog::SetDefaultFolder",
		"SHCreateItemFromParsingName",
		"IFileDialog::SetFolder",
		"IFileDialog::SetFileName",
		"IFileDialog::SetFileNameLabel",
		"IFileDialog::SetFileTypes",
		"IFileDialog::SetFileTypeIndex",
		"IFileDialog::SetOkButtonLabel",
		"IFileDialog::GetOptions",
		"IFileDialog::SetOptions",
		"IFileDialog::SetTitle",
		"IModalWindow::Show",
		"IFileOpenDialog::GetResults",
		"IShellItemArray::GetCount",
		"IShellItemArray::GetItemAt",
		"IShellItem::GetAttributes",
		"IShellItem::GetDisplayName",
		"IFileDialog::GetFileTypeIndex",
	}
	assert.Equal(t, want, f.Calls)
	assert.Equal(t, f.Acquired(), f.Released())
}

func TestOpenStepFailureShortCircuits(t *testing.T) {
	// Each failing call must surface its exact operation name and status,
	// and nothing after it may run.
	tests := []struct {
		name    string
		failOp  string
		neverOp string
	}{
		{"environment init", "CoInitializeEx", "CoCreateInstance - IFileOpenDialog"},
		{"instance creation", "CoCreateInstance - IFileOpenDialog", "IFileDialog::SetDefaultExtension"},
		{"default extension", "IFileDialog::SetDefaultExtension", "SHCreateItemFromParsingName"},
		{"folder resolution", "SHCreateItemFromParsingName", "IFileDialog::SetDefaultFolder"},
		{"filter array", "IFileDialog::SetFileTypes", "IFileDialog::SetFileTypeIndex"},
		{"existing options read", "IFileDialog::GetOptions", "IFileDialog::SetOptions"},
		{"title", "IFileDialog::SetTitle", "IModalWindow::Show"},
		{"result retrieval", "IFileOpenDialog::GetResults", "IShellItemArray::GetCount"},
		{"filter index query", "IFileDialog::GetFileTypeIndex", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nativetest.New()
			f.Fail[tt.failOp] = native.HResultFail
			f.Selection = []nativetest.Item{{Path: `C:\x`, FileSystem: true}}

			p := DefaultParams()
			p.DefaultExtension = "txt"
			p.DefaultFolder = `C:\Users`
			p.Options = native.FOS_ALLOWMULTISELECT
			p.Title = "never shown"

			result, err := runOpen(f, p)
			require.Error(t, err)
			assert.Nil(t, result)

			callErr, ok := IsCallError(err)
			require.True(t, ok, "expected a native call error, got %v", err)
			assert.Equal(t, tt.failOp, callErr.Op)
			assert.Equal(t, native.HResultFail, callErr.HResult)

			if tt.neverOp != "" {
				assert.False(t, f.Called(tt.neverOp), "%s ran after %s failed", tt.neverOp, tt.failOp)
			}
			assert.Equal(t, f.Acquired(), f.Released(), "native handle leak after failing %s", tt.failOp)
		})
	}
}

func TestOpenMidIterationFailureReleasesHandles(t *testing.T) {
	f := nativetest.New()
	f.Fail["IShellItem::GetDisplayName"] = native.HResultFail
	f.Selection = []nativetest.Item{
		{Path: `C:\a`, FileSystem: true},
		{Path: `C:\b`, FileSystem: true},
		{Path: `C:\c`, FileSystem: true},
	}

	_, err := runOpen(f, Params{Options: native.FOS_ALLOWMULTISELECT})
	callErr, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, "IShellItem::GetDisplayName", callErr.Op)

	assert.Equal(t, f.Acquired(), f.Released())
}

func TestFilterRoundTrip(t *testing.T) {
	filters := []FilterSpec{
		{Description: "JPG Files", Pattern: "*.jpg;*.jpeg"},
		{Description: "PNG Files", Pattern: "*.png"},
		{Description: "Bitmap Files", Pattern: "*.bmp"},
	}

	for _, k := range []uint32{1, 2, 3} {
		f := nativetest.New()
		f.Selection = []nativetest.Item{{Path: `C:\img`, FileSystem: true}}

		result, err := runOpen(f, Params{FileTypes: filters, FileTypeIndex: k})
		require.NoError(t, err)
		assert.Equal(t, k, result.FileTypeIndex, "configured index %d must survive an unchanged confirmation", k)
		assert.Equal(t, f.Acquired(), f.Released())
	}
}

func TestSaveSession(t *testing.T) {
	tests := []struct {
		name        string
		setupFake   func(f *nativetest.Fake)
		params      func() Params
		expectedErr error
		checkResult func(t *testing.T, result *SaveResult)
		checkFake   func(t *testing.T, f *nativetest.Fake)
	}{
		{
			name: "plain save",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\out\report.pdf`, FileSystem: true}}
			},
			params: func() Params {
				p := DefaultParams()
				p.Title = "Save report"
				return p
			},
			checkResult: func(t *testing.T, result *SaveResult) {
				assert.Equal(t, `C:\out\report.pdf`, result.Path)
				assert.Equal(t, uint32(1), result.FileTypeIndex)
			},
		},
		{
			name: "save-as seed item binds before shared configuration",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\docs\old.txt`, FileSystem: true}}
			},
			params: func() Params {
				return Params{SaveAsItem: `C:\docs\old.txt`, Title: "Save As"}
			},
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.Equal(t, `C:\docs\old.txt`, f.Dialog.SaveAsItem)
				seedAt, titleAt := -1, -1
				for i, op := range f.Calls {
					switch op {
					case "IFileDialog::SetSaveAsItem":
						seedAt = i
					case "IFileDialog::SetTitle":
						titleAt = i
					}
				}
				require.GreaterOrEqual(t, seedAt, 0)
				require.GreaterOrEqual(t, titleAt, 0)
				assert.Less(t, seedAt, titleAt, "seed item must bind before shared configuration")
			},
		},
		{
			name: "save result skips the filesystem attribute check",
			setupFake: func(f *nativetest.Fake) {
				f.Selection = []nativetest.Item{{Path: `C:\target.bin`, FileSystem: false}}
			},
			params: func() Params { return Params{} },
			checkResult: func(t *testing.T, result *SaveResult) {
				assert.Equal(t, `C:\target.bin`, result.Path)
			},
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.False(t, f.Called("IShellItem::GetAttributes"))
			},
		},
		{
			name: "cancelled save",
			setupFake: func(f *nativetest.Fake) {
				f.CancelShow = true
			},
			params:      DefaultParams,
			expectedErr: ErrCancelled,
		},
		{
			name: "seed resolution failure aborts the session",
			setupFake: func(f *nativetest.Fake) {
				f.Fail["SHCreateItemFromParsingName"] = native.HResultInvalidArg
			},
			params: func() Params {
				return Params{SaveAsItem: `Z:\does\not\exist`}
			},
			expectedErr: nil, // checked below via IsCallError
			checkFake: func(t *testing.T, f *nativetest.Fake) {
				assert.False(t, f.Called("IFileDialog::SetSaveAsItem"))
				assert.False(t, f.Called("IModalWindow::Show"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nativetest.New()
			if tt.setupFake != nil {
				tt.setupFake(f)
			}

			result, err := runSave(f, tt.params())

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.name == "seed resolution failure aborts the session":
				callErr, ok := IsCallError(err)
				require.True(t, ok)
				assert.Equal(t, "SHCreateItemFromParsingName", callErr.Op)
				assert.Equal(t, native.HResultInvalidArg, callErr.HResult)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
			}
			if tt.checkResult != nil && result != nil {
				tt.checkResult(t, result)
			}
			if tt.checkFake != nil {
				tt.checkFake(t, f)
			}

			assert.Equal(t, f.Acquired(), f.Released(), "native handle leak: %d acquired, %d released", f.Acquired(), f.Released())
		})
	}
}

func TestSaveUsesSaveDialogClass(t *testing.T) {
	f := nativetest.New()
	f.Selection = []nativetest.Item{{Path: `C:\x`, FileSystem: true}}

	_, err := runSave(f, Params{})
	require.NoError(t, err)
	assert.True(t, f.Called("CoCreateInstance - IFileSaveDialog"))
	assert.False(t, f.Called("CoCreateInstance - IFileOpenDialog"))
	assert.True(t, f.Called("IFileDialog::GetResult"))
	assert.False(t, f.Called("IFileOpenDialog::GetResults"))
}

func TestValidationRunsBeforeAnyNativeCall(t *testing.T) {
	f := nativetest.New()

	_, err := runOpen(f, Params{
		FileTypes:     []FilterSpec{{Description: "Text", Pattern: "*.txt"}},
		FileTypeIndex: 5,
	})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "FileTypeIndex", validationErr.Field)
	assert.Empty(t, f.Calls, "invalid params must never reach the native layer")
}
