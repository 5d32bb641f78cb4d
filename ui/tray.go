package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/util/log"
)

// createTrayMenu creates the tray menu for the application
func (wa *WallpaperdApp) createTrayMenu(desk desktop.App) {
	trayIcon := theme.MediaPhotoIcon()
	trayMenu := fyne.NewMenu(
		config.AppName,
		createMenuItem("Next Wallpaper", wa.svc.Next, theme.MediaSkipNextIcon()),
		fyne.NewMenuItemSeparator(), // Divider line
		createMenuItem("Show "+config.AppName, wa.ShowMainWindow, theme.ListIcon()),
		createMenuItem("About "+config.AppName, wa.showAbout, theme.InfoIcon()),
		fyne.NewMenuItemSeparator(), // Divider line
		createMenuItem("Quit", wa.quit, theme.LogoutIcon()),
	)
	// Quit is ours, not the one fyne appends.
	trayMenu.Items[len(trayMenu.Items)-1].IsQuit = true

	desk.SetSystemTrayMenu(trayMenu)
	desk.SetSystemTrayIcon(trayIcon)
	wa.app.SetIcon(trayIcon)
	wa.trayMenu = trayMenu
}

func createMenuItem(label string, action func(), icon fyne.Resource) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	mi.Icon = icon
	return mi
}

// quit stops the timer and leaves the event loop; the caller of Run closes the registry.
func (wa *WallpaperdApp) quit() {
	wa.svc.Stop()
	wa.app.Quit()
}

// showAbout shows the about text in a splash window that closes itself.
func (wa *WallpaperdApp) showAbout() {
	version := config.AppVersion
	if version == "" {
		version = "dev"
	}
	about := wa.assetMgr.About(config.AppName, version)

	drv, ok := wa.app.Driver().(desktop.Driver)
	if !ok {
		log.Println("Splash screen not supported")
		dialog.ShowInformation("About "+config.AppName, about, wa.window)
		return
	}

	label := widget.NewLabel(about)
	label.Wrapping = fyne.TextWrapWord

	splashWindow := drv.CreateSplashWindow()
	splashWindow.SetContent(container.NewPadded(label))
	splashWindow.Resize(fyne.NewSize(480, 260))
	splashWindow.CenterOnScreen()
	splashWindow.Show()

	time.AfterFunc(aboutSplashTime*time.Second, func() {
		fyne.Do(splashWindow.Close)
	})
}
