//go:build windows

package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"
)

// pickImage shows the native Windows open dialog. The dialog is modal and blocks its
// goroutine, so it runs off the UI goroutine.
func pickImage(parent fyne.Window, startDir string, onPicked func(path string), onErr func(error)) {
	patterns := make([]string, 0, len(imageExtensions))
	for _, ext := range imageExtensions {
		patterns = append(patterns, "*"+ext)
	}

	go func() {
		result, err := cfdutil.ShowOpenFileDialog(cfd.DialogConfig{
			Title: "Add Image",
			Role:  "WallpaperdAddImage",
			FileFilters: []cfd.FileFilter{
				{DisplayName: "Images", Pattern: strings.Join(patterns, ";")},
				{DisplayName: "All Files (*.*)", Pattern: "*.*"},
			},
			SelectedFileFilterIndex: 0,
			Folder:                  startDir,
		})
		fyne.Do(func() {
			switch {
			case errors.Is(err, cfd.ErrorCancelled):
			case err != nil:
				onErr(err)
			default:
				onPicked(result)
			}
		})
	}()
}
