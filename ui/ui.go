// Package ui is the fyne presentation shell: the main window, the tray menu and the
// dialogs around a wallpaper.Service.
package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/wallpaperd/asset"
	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/pkg/wallpaper"
	"github.com/dixieflatline76/wallpaperd/util/log"
)

// WallpaperdApp represents the application shell
type WallpaperdApp struct {
	app      fyne.App
	svc      *wallpaper.Service
	cfg      *config.AppConfig
	assetMgr *asset.Manager
	os       OS
	pick     picker

	paths    []string
	selected int

	window        fyne.Window
	list          *widget.List
	preview       *canvas.Image
	previewPath   *widget.Label
	status        *widget.Label
	intervalEntry *widget.Entry
	addButton     *widget.Button
	removeButton  *widget.Button
	nextButton    *widget.Button
	trayMenu      *fyne.Menu
}

// FyneDispatcher delivers timer ticks on the fyne UI goroutine.
func FyneDispatcher() wallpaper.Dispatcher {
	return wallpaper.DispatcherFunc(fyne.Do)
}

// NewApp builds the shell around svc. The service must already be loaded; its change and
// error handlers are taken over by the shell.
func NewApp(a fyne.App, svc *wallpaper.Service, cfg *config.AppConfig) *WallpaperdApp {
	wa := &WallpaperdApp{
		app:      a,
		svc:      svc,
		cfg:      cfg,
		assetMgr: asset.NewManager(),
		os:       getOS(),
		pick:     pickImage,
		paths:    svc.Paths(),
		selected: noSelection,
	}
	wa.createMainWindow()

	if desk, ok := a.(desktop.App); ok {
		wa.createTrayMenu(desk)
		// With a tray to come back to, closing only hides the window.
		wa.window.SetCloseIntercept(wa.hideMainWindow)
	} else {
		log.Println("Tray icon not supported on this platform")
		wa.window.SetMaster()
	}

	svc.SetChangeHandler(wa.refresh)
	svc.SetErrorHandler(wa.notifyError)
	wa.refresh()
	return wa
}

// refresh re-reads the mirror and redraws everything derived from it.
func (wa *WallpaperdApp) refresh() {
	wa.paths = wa.svc.Paths()
	if wa.selected >= len(wa.paths) {
		wa.list.UnselectAll()
	}
	wa.list.Refresh()
	wa.updateStatus()
}

// updateStatus renders the status line.
func (wa *WallpaperdApp) updateStatus() {
	current := wa.svc.Current()
	if current == "" {
		current = "(none yet)"
	}
	timer := "stopped"
	if wa.svc.Running() {
		timer = fmt.Sprintf("every %s min", wallpaper.FormatInterval(wa.svc.Interval()))
	}
	wa.status.SetText(fmt.Sprintf("Current: %s | Rotation: %s | Images: %d", current, timer, len(wa.paths)))
}

// selectedPath returns the path of the selected row, or "" if none.
func (wa *WallpaperdApp) selectedPath() string {
	if wa.selected < 0 || wa.selected >= len(wa.paths) {
		return ""
	}
	return wa.paths[wa.selected]
}

// addImage registers path and remembers its directory for the next Add.
func (wa *WallpaperdApp) addImage(path string) {
	if _, err := wa.svc.Add(context.Background(), path); err != nil {
		log.Printf("Failed to add %s: %v", path, err)
		dialog.ShowError(err, wa.window)
		return
	}
	wa.cfg.SetLastBrowseDir(filepath.Dir(path))
}

// removeSelected removes the selected image from the registry.
func (wa *WallpaperdApp) removeSelected() {
	path := wa.selectedPath()
	if path == "" {
		dialog.ShowInformation("Remove Selected", "Select an image in the list first.", wa.window)
		return
	}

	removed, err := wa.svc.Remove(context.Background(), path)
	if err != nil {
		log.Printf("Failed to remove %s: %v", path, err)
		dialog.ShowError(err, wa.window)
		return
	}
	if removed {
		wa.list.UnselectAll()
	}
}

// applyInterval parses text as minutes and restarts the timer. Bad input keeps the old period.
func (wa *WallpaperdApp) applyInterval(text string) {
	period, err := wallpaper.ParseInterval(text)
	if err == nil {
		err = wa.svc.SetInterval(period)
	}
	if err != nil {
		log.Printf("Rejected interval %q: %v", text, err)
		dialog.ShowError(err, wa.window)
		wa.intervalEntry.SetText(wallpaper.FormatInterval(wa.svc.Interval()))
		return
	}
	wa.updateStatus()
}

// notifyError reports a failed rotation tick. The service has already logged it.
func (wa *WallpaperdApp) notifyError(err error) {
	wa.status.SetText(fmt.Sprintf("Last rotation failed: %v", err))
	if wa.cfg.GetNotificationsEnabled() {
		wa.app.SendNotification(fyne.NewNotification(config.AppName, err.Error()))
	}
}

// ShowMainWindow brings the main window back from the tray.
func (wa *WallpaperdApp) ShowMainWindow() {
	wa.os.TransformToForeground()
	wa.window.Show()
	wa.window.RequestFocus()
}

func (wa *WallpaperdApp) hideMainWindow() {
	wa.window.Hide()
	wa.os.TransformToBackground()
}

// Run shows the main window and runs the fyne event loop until Quit.
func (wa *WallpaperdApp) Run() {
	wa.window.Show()
	wa.app.Run()
}
