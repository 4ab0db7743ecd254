package dialog

import (
	"errors"

	"github.com/elee1766/windlg/src/native"
)

// runOpen drives one open-dialog session against rt. Every handle is
// released by defer so no exit path, including mid-iteration failures,
// leaks a native reference.
func runOpen(rt native.Runtime, p Params) (*OpenResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	env, err := rt.Init()
	if err != nil {
		return nil, err
	}
	defer env.Release()

	dlg, err := env.NewDialog(native.KindOpen)
	if err != nil {
		return nil, err
	}
	defer dlg.Release()

	if err := configure(env, dlg, p); err != nil {
		return nil, err
	}
	if err := show(dlg, p.Owner); err != nil {
		return nil, err
	}

	list, err := dlg.Results()
	if err != nil {
		return nil, err
	}
	defer list.Release()

	count, err := list.Count()
	if err != nil {
		return nil, err
	}

	var paths []string
	for i := uint32(0); i < count; i++ {
		path, ok, err := itemPath(list, i)
		if err != nil {
			return nil, err
		}
		// Items without a real filesystem path, such as "This PC" or a
		// folder on a portable device, are dropped from the result.
		if !ok {
			continue
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, ErrUnsupportedFilepath
	}

	index, err := dlg.FileTypeIndex()
	if err != nil {
		return nil, err
	}

	return &OpenResult{
		Path:          paths[0],
		Paths:         paths,
		FileTypeIndex: index,
	}, nil
}

// runSave drives one save-dialog session against rt. Save targets are
// assumed to be filesystem paths, so the filesystem attribute of the result
// item is not checked.
func runSave(rt native.Runtime, p Params) (*SaveResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	env, err := rt.Init()
	if err != nil {
		return nil, err
	}
	defer env.Release()

	dlg, err := env.NewDialog(native.KindSave)
	if err != nil {
		return nil, err
	}
	defer dlg.Release()

	if p.SaveAsItem != "" {
		if err := seedSaveAsItem(env, dlg, p.SaveAsItem); err != nil {
			return nil, err
		}
	}
	if err := configure(env, dlg, p); err != nil {
		return nil, err
	}
	if err := show(dlg, p.Owner); err != nil {
		return nil, err
	}

	item, err := dlg.Result()
	if err != nil {
		return nil, err
	}
	defer item.Release()

	path, err := item.Path()
	if err != nil {
		return nil, err
	}

	index, err := dlg.FileTypeIndex()
	if err != nil {
		return nil, err
	}

	return &SaveResult{Path: path, FileTypeIndex: index}, nil
}

// configure applies the shared configuration calls in a fixed order, each
// only when its field is set. The first failing call aborts the session.
func configure(env native.Environment, dlg native.Dialog, p Params) error {
	if p.DefaultExtension != "" {
		if err := dlg.SetDefaultExtension(p.DefaultExtension); err != nil {
			return err
		}
	}
	if p.DefaultFolder != "" {
		if err := setFolderItem(env, p.DefaultFolder, dlg.SetDefaultFolder); err != nil {
			return err
		}
	}
	if p.Folder != "" {
		if err := setFolderItem(env, p.Folder, dlg.SetFolder); err != nil {
			return err
		}
	}
	if p.FileName != "" {
		if err := dlg.SetFileName(p.FileName); err != nil {
			return err
		}
	}
	if p.FileNameLabel != "" {
		if err := dlg.SetFileNameLabel(p.FileNameLabel); err != nil {
			return err
		}
	}
	if len(p.FileTypes) > 0 {
		if err := dlg.SetFileTypes(p.FileTypes); err != nil {
			return err
		}
		if p.FileTypeIndex > 0 {
			if err := dlg.SetFileTypeIndex(p.FileTypeIndex); err != nil {
				return err
			}
		}
	}
	if p.OkButtonLabel != "" {
		if err := dlg.SetOkButtonLabel(p.OkButtonLabel); err != nil {
			return err
		}
	}
	if p.Options != 0 {
		// Merge into the dialog's existing flags so class defaults survive.
		existing, err := dlg.Options()
		if err != nil {
			return err
		}
		if err := dlg.SetOptions(existing | p.Options); err != nil {
			return err
		}
	}
	if p.Title != "" {
		if err := dlg.SetTitle(p.Title); err != nil {
			return err
		}
	}
	return nil
}

// setFolderItem resolves path to a native item and hands it to set. A
// resolution failure is a failure of the session, never silently skipped.
func setFolderItem(env native.Environment, path string, set func(native.Item) error) error {
	item, err := env.ParseItem(path)
	if err != nil {
		return err
	}
	defer item.Release()
	return set(item)
}

// seedSaveAsItem binds an existing file to a Save As dialog, seeding both the
// containing folder and the file name edit box.
func seedSaveAsItem(env native.Environment, dlg native.Dialog, path string) error {
	item, err := env.ParseItem(path)
	if err != nil {
		return err
	}
	defer item.Release()
	return dlg.SetSaveAsItem(item)
}

// show displays the dialog modally and folds the native cancel status into
// ErrCancelled.
func show(dlg native.Dialog, owner uintptr) error {
	err := dlg.Show(owner)
	var callErr *native.CallError
	if errors.As(err, &callErr) && callErr.HResult == native.HResultCancelled {
		return ErrCancelled
	}
	return err
}

// itemPath resolves the i-th selected item to its filesystem path. ok is
// false when the item is not filesystem-backed.
func itemPath(list native.ItemList, i uint32) (path string, ok bool, err error) {
	item, err := list.Item(i)
	if err != nil {
		return "", false, err
	}
	defer item.Release()

	attrs, err := item.Attributes(native.SFGAOFileSystem)
	if err != nil {
		return "", false, err
	}
	if attrs&native.SFGAOFileSystem == 0 {
		return "", false, nil
	}

	path, err = item.Path()
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}
