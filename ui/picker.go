package ui

import "fyne.io/fyne/v2"

// picker asks the user for one image file. onPicked runs on the UI goroutine and is not
// called when the user cancels.
type picker func(parent fyne.Window, startDir string, onPicked func(path string), onErr func(error))
