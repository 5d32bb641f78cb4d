// Package hotkey registers the global keyboard shortcuts.
package hotkey

import (
	"sync"
	"time"

	"github.com/dixieflatline76/wallpaperd/util/log"
	"golang.design/x/hotkey"
)

// Binding is one global shortcut and the action it triggers.
type Binding struct {
	Name   string
	Mods   []hotkey.Modifier
	Key    hotkey.Key
	Action func()
}

// NextBinding returns the Ctrl+Alt+Right shortcut (Cmd+Option+Right on macOS).
func NextBinding(next func()) Binding {
	return Binding{
		Name:   "Next Wallpaper",
		Mods:   []hotkey.Modifier{modCtrl, modAlt},
		Key:    keyRight,
		Action: next,
	}
}

// StartListeners registers the shortcuts and starts one listener goroutine per shortcut.
// Actions run on the listener goroutine, so they must be safe to call from anywhere.
// The returned stop func unregisters every shortcut and waits for in-flight actions to
// finish; call it before tearing down whatever the actions touch. It is safe to call
// more than once.
func StartListeners(next func()) (stop func()) {
	if !supported {
		log.Print("Global hotkeys are not supported on this platform")
		return func() {}
	}
	if !HasAccessibility() {
		log.Print("Accessibility permission missing; global hotkeys may not fire")
	}

	var listeners []*listener
	for _, b := range []Binding{NextBinding(next)} {
		if l := registerAndListen(b); l != nil {
			listeners = append(listeners, l)
		}
	}
	return stopAll(listeners)
}

func stopAll(listeners []*listener) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, l := range listeners {
				l.stop()
			}
		})
	}
}

// listener is one registered shortcut and its goroutine.
type listener struct {
	name       string
	unregister func() error
	quit       chan struct{}
	done       chan struct{}
}

func registerAndListen(b Binding) *listener {
	hk := hotkey.New(b.Mods, b.Key)
	if err := hk.Register(); err != nil {
		log.Printf("Failed to register hotkey %s: %v", b.Name, err)
		return nil
	}
	log.Printf("Registered hotkey: %s", b.Name)

	l := newListener(b.Name, hk.Unregister)
	go l.run(hk.Keydown(), b.Action)
	return l
}

func newListener(name string, unregister func() error) *listener {
	return &listener{
		name:       name,
		unregister: unregister,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (l *listener) run(keydown <-chan hotkey.Event, action func()) {
	defer close(l.done)
	for {
		select {
		case <-l.quit:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			log.Debugf("Hotkey pressed: %s", l.name)
			action()
			// Key repeat would otherwise skip through several images.
			select {
			case <-l.quit:
				return
			case <-time.After(200 * time.Millisecond):
			}
		}
	}
}

// stop unregisters the shortcut and waits for the goroutine to exit.
func (l *listener) stop() {
	close(l.quit)
	if err := l.unregister(); err != nil {
		log.Printf("Failed to unregister hotkey %s: %v", l.name, err)
	} else {
		log.Printf("Unregistered hotkey: %s", l.name)
	}
	<-l.done
}
