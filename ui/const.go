package ui

import "fyne.io/fyne/v2"

// mainWindowSize is the initial size of the main window
var mainWindowSize = fyne.NewSize(900, 560)

// previewSize bounds the thumbnail shown for the selected image
const previewSize = 360

// aboutSplashTime is the time in seconds the about screen is shown
const aboutSplashTime = 3 // seconds

// noSelection marks the list as having no selected row
const noSelection = -1

// imageExtensions are the files offered by the Add Image dialog
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".webp"}
