//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// X11 grabs conflict with most desktop environments' own bindings, so they stay off.
const supported = false

const (
	modCtrl  = hotkey.Modifier(0) // Dummy for default
	modAlt   = hotkey.Modifier(0)
	keyRight = hotkey.Key(0)
)

func HasAccessibility() bool {
	return true
}
