package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/wallpaperd/config"
)

// ShowFatal tells the user why the application cannot start and blocks until the
// notice is dismissed.
func ShowFatal(a fyne.App, err error) {
	w := a.NewWindow(config.AppName)
	w.SetContent(fatalContent(err, a.Quit))
	w.Resize(fyne.NewSize(520, 200))
	w.CenterOnScreen()
	w.SetMaster()
	w.ShowAndRun()
}

func fatalContent(err error, quit func()) fyne.CanvasObject {
	msg := widget.NewLabel(fmt.Sprintf("%s cannot start because the image registry could not be opened:\n\n%v", config.AppName, err))
	msg.Wrapping = fyne.TextWrapWord
	quitButton := widget.NewButton("Quit", quit)
	return container.NewBorder(createSectionTitleLabel("Startup failed"), container.NewHBox(layout.NewSpacer(), quitButton), nil, nil, msg)
}
