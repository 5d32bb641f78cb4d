package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/pkg/wallpaper"
)

// createMainWindow builds the image list, the preview pane and the controls.
func (wa *WallpaperdApp) createMainWindow() {
	wa.window = wa.app.NewWindow(config.AppName)
	wa.window.Resize(mainWindowSize)
	wa.window.CenterOnScreen()

	wa.list = widget.NewList(
		func() int {
			return len(wa.paths)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Placeholder")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(wa.paths[i])
		},
	)
	wa.list.OnSelected = func(id widget.ListItemID) {
		wa.selected = id
		path := wa.selectedPath()
		wa.previewPath.SetText(path)
		wa.showPreview(path)
	}
	wa.list.OnUnselected = func(id widget.ListItemID) {
		wa.selected = noSelection
		wa.previewPath.SetText("")
		wa.clearPreview()
	}

	wa.preview = newPreview()
	wa.previewPath = widget.NewLabel("")
	wa.previewPath.Wrapping = fyne.TextWrapBreak
	previewPane := container.NewBorder(createSettingTitleLabel("Preview"), wa.previewPath, nil, nil, wa.preview)

	wa.addButton = widget.NewButtonWithIcon("Add Image", theme.ContentAddIcon(), func() {
		wa.pick(wa.window, wa.cfg.GetLastBrowseDir(), wa.addImage, func(err error) {
			dialog.ShowError(err, wa.window)
		})
	})
	wa.removeButton = widget.NewButtonWithIcon("Remove Selected", theme.ContentRemoveIcon(), wa.removeSelected)
	wa.nextButton = widget.NewButtonWithIcon("Next Now", theme.MediaSkipNextIcon(), wa.svc.Next)
	buttons := container.NewHBox(wa.addButton, wa.removeButton, layout.NewSpacer(), wa.nextButton)

	wa.intervalEntry = widget.NewEntry()
	wa.intervalEntry.SetText(wallpaper.FormatInterval(config.DefaultInterval))
	wa.intervalEntry.OnSubmitted = wa.applyInterval
	applyButton := widget.NewButton("Apply", func() {
		wa.applyInterval(wa.intervalEntry.Text)
	})
	intervalRow := newSplitRow(
		createSettingTitleLabel("Change every (minutes):"),
		container.NewBorder(nil, nil, nil, applyButton, wa.intervalEntry),
		0.3, alignLeft,
	)

	notifyCheck := widget.NewCheck("Notify when a wallpaper cannot be set", wa.cfg.SetNotificationsEnabled)
	notifyCheck.SetChecked(wa.cfg.GetNotificationsEnabled())
	hotkeyCheck := widget.NewCheck("Ctrl+Alt+Right shows the next wallpaper (applies after restart)", wa.cfg.SetHotkeysEnabled)
	hotkeyCheck.SetChecked(wa.cfg.GetHotkeysEnabled())

	wa.status = createStatusLabel()

	footer := container.NewVBox(
		buttons,
		widget.NewSeparator(),
		intervalRow,
		notifyCheck,
		hotkeyCheck,
		widget.NewSeparator(),
		wa.status,
	)
	header := createSectionTitleLabel("Wallpaper Rotation")

	split := container.NewHSplit(wa.list, previewPane)
	split.Offset = 0.55

	wa.window.SetContent(container.NewBorder(header, footer, nil, nil, split))
}
