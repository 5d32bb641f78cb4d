//go:build !darwin && !windows

package ui

// linuxOS implements the OS interface for Linux and the BSDs.
type linuxOS struct{}

// TransformToForeground is a no-op; X11 and Wayland desktops have no Dock to join.
func (l *linuxOS) TransformToForeground() {}

// TransformToBackground is a no-op; the tray icon stays either way.
func (l *linuxOS) TransformToBackground() {}

// getOS returns a new instance of the linuxOS struct.
func getOS() OS {
	return &linuxOS{}
}
