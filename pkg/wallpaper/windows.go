//go:build windows

package wallpaper

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Windows API constants (defined manually)
const (
	SPISetDeskWallpaper = 0x0014
	SPIFUpdateIniFile   = 0x01
	SPIFSendChange      = 0x02
)

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// SetWallpaper persists the wallpaper to the user profile and broadcasts the change.
func (w *windowsOS) SetWallpaper(imagePath string) error {
	imagePathUTF16, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return err
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		uintptr(SPISetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(imagePathUTF16)),
		uintptr(SPIFUpdateIniFile|SPIFSendChange),
	)
	if ret == 0 {
		if callErr == nil || errors.Is(callErr, windows.ERROR_SUCCESS) {
			return errors.New("SystemParametersInfoW returned FALSE")
		}
		return callErr
	}
	return nil
}

// GetOS returns the wallpaper setter for Windows.
func GetOS() OS {
	return &windowsOS{}
}
