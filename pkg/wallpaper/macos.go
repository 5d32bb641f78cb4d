//go:build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strings"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// SetWallpaper sets the desktop picture through AppleScript.
func (m *macOSOS) SetWallpaper(imagePath string) error {
	script := fmt.Sprintf(`
                tell application "Finder"
                        set desktop picture to POSIX file "%s"
                end tell
        `, strings.ReplaceAll(imagePath, `"`, `\"`))

	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// GetOS returns the wallpaper setter for macOS.
func GetOS() OS {
	return &macOSOS{}
}
