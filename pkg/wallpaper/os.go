package wallpaper

import (
	"errors"
	"fmt"
)

// OS applies an image file as the desktop wallpaper.
type OS interface {
	SetWallpaper(path string) error
}

// ErrUnsupportedDesktop is returned when no wallpaper setter exists for the running desktop.
var ErrUnsupportedDesktop = errors.New("unsupported desktop environment")

// SetWallpaperError reports that the platform call refused to apply an image.
type SetWallpaperError struct {
	Path string
	Err  error
}

func (e *SetWallpaperError) Error() string {
	return fmt.Sprintf("failed to set wallpaper %q: %v", e.Path, e.Err)
}

func (e *SetWallpaperError) Unwrap() error {
	return e.Err
}
