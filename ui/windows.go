//go:build windows

package ui

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// TransformToForeground is a no-op; Windows has no Dock.
func (w *windowsOS) TransformToForeground() {}

// TransformToBackground is a no-op; Windows has no Dock.
func (w *windowsOS) TransformToBackground() {}

// getOS returns a new instance of the windowsOS struct.
func getOS() OS {
	return &windowsOS{}
}
