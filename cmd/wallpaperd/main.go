package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/pkg/hotkey"
	"github.com/dixieflatline76/wallpaperd/pkg/registry"
	"github.com/dixieflatline76/wallpaperd/pkg/wallpaper"
	"github.com/dixieflatline76/wallpaperd/ui"
	"github.com/dixieflatline76/wallpaperd/util/log"
	"github.com/jonboulle/clockwork"
)

func main() {
	lock, ok, err := acquireLock(config.AppName)
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	os.Exit(run(lock))
}

// run owns everything between taking the lock and leaving the process, so that the
// deferred cleanup happens before os.Exit.
func run(lock *instanceLock) int {
	defer lock.release()

	a := app.NewWithID(config.AppID)

	reg, err := registry.Open(config.DBFileName, nil)
	if err != nil {
		log.Printf("Failed to open image registry %s: %v", config.DBFileName, err)
		ui.ShowFatal(a, err)
		return 1
	}

	svc := wallpaper.NewService(reg, wallpaper.GetOS(), clockwork.NewRealClock(), ui.FyneDispatcher())
	defer func() {
		if err := svc.Close(); err != nil {
			log.Printf("Error closing image registry: %v", err)
		}
	}()

	if err := svc.Load(context.Background()); err != nil {
		log.Printf("Failed to read image registry: %v", err)
		ui.ShowFatal(a, err)
		return 1
	}
	log.Printf("Loaded %d images from %s", len(svc.Paths()), config.DBFileName)

	cfg := config.NewAppConfig(a.Preferences())
	shell := ui.NewApp(a, svc, cfg)

	if err := svc.Start(config.DefaultInterval); err != nil {
		log.Printf("Failed to start rotation: %v", err)
		return 1
	}

	if cfg.GetHotkeysEnabled() {
		// Deferred after svc.Close, so shortcuts are gone before the store closes.
		stopHotkeys := hotkey.StartListeners(svc.Next)
		defer stopHotkeys()
	}

	shell.Run()
	return 0
}
