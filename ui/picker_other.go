//go:build !windows

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/dixieflatline76/wallpaperd/util/log"
)

// pickImage shows the fyne open dialog filtered to image files.
func pickImage(parent fyne.Window, startDir string, onPicked func(path string), onErr func(error)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			onErr(err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked(path)
	}, parent)

	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if startDir != "" {
		lister, err := storage.ListerForURI(storage.NewFileURI(startDir))
		if err != nil {
			log.Debugf("Cannot open %s in file dialog: %v", startDir, err)
		} else {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(800, 600))
	d.Show()
}
