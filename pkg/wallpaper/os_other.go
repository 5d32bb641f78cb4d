//go:build !windows && !darwin && !linux

package wallpaper

import (
	"fmt"
	"runtime"
)

// unsupportedOS reports ErrUnsupportedDesktop for every call.
type unsupportedOS struct{}

func (unsupportedOS) SetWallpaper(string) error {
	return fmt.Errorf("%w on %s", ErrUnsupportedDesktop, runtime.GOOS)
}

// GetOS returns a setter that always fails on this platform.
func GetOS() OS {
	return unsupportedOS{}
}
