//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Supported Linux desktops.
const (
	desktopGNOME = "gnome"
	desktopKDE   = "kde"
	desktopXFCE  = "xfce"
	desktopSway  = "sway"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct {
	getenv func(string) string
	run    func(name string, args ...string) error
}

// GetOS returns the wallpaper setter for Linux.
func GetOS() OS {
	return &linuxOS{
		getenv: os.Getenv,
		run: func(name string, args ...string) error {
			out, err := exec.Command(name, args...).CombinedOutput()
			if err != nil {
				return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
			}
			return nil
		},
	}
}

// detectDesktop maps the session environment onto one of the supported desktops.
func detectDesktop(getenv func(string) string) (string, error) {
	desktopEnv := getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	if getenv("WAYLAND_DISPLAY") != "" {
		switch {
		case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "mutter"):
			return desktopGNOME, nil
		case strings.Contains(desktopEnv, "sway"):
			return desktopSway, nil
		default:
			return "", fmt.Errorf("%w: wayland compositor %q", ErrUnsupportedDesktop, desktopEnv)
		}
	}

	switch {
	case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "unity") || strings.Contains(desktopEnv, "cinnamon"):
		return desktopGNOME, nil
	case strings.Contains(desktopEnv, "kde"):
		return desktopKDE, nil
	case strings.Contains(desktopEnv, "xfce"):
		return desktopXFCE, nil
	default:
		return "", fmt.Errorf("%w: X11 desktop %q", ErrUnsupportedDesktop, desktopEnv)
	}
}

// SetWallpaper sets the desktop wallpaper on the detected Linux desktop.
func (l *linuxOS) SetWallpaper(imagePath string) error {
	desktop, err := detectDesktop(l.getenv)
	if err != nil {
		return err
	}

	switch desktop {
	case desktopGNOME:
		uri := "file://" + imagePath
		if err := l.run("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri); err != nil {
			return err
		}
		// Newer GNOME reads a separate key in dark mode.
		return l.run("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri)
	case desktopKDE:
		return l.run("plasma-apply-wallpaperimage", imagePath)
	case desktopXFCE:
		return l.run("xfconf-query",
			"--channel", "xfce4-desktop",
			"--property", "/backdrop/screen0/monitor0/workspace0/last-image",
			"--set", imagePath)
	case desktopSway:
		return l.run("swaymsg", "output", "*", "bg", imagePath, "fill")
	}
	return ErrUnsupportedDesktop
}
