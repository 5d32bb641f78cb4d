//go:build linux

package wallpaper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDetectDesktop(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{name: "GNOME X11", env: map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"}, want: desktopGNOME},
		{name: "Cinnamon", env: map[string]string{"XDG_CURRENT_DESKTOP": "X-Cinnamon"}, want: desktopGNOME},
		{name: "KDE X11", env: map[string]string{"XDG_CURRENT_DESKTOP": "KDE"}, want: desktopKDE},
		{name: "XFCE via session", env: map[string]string{"DESKTOP_SESSION": "xfce"}, want: desktopXFCE},
		{name: "GNOME Wayland", env: map[string]string{"XDG_CURRENT_DESKTOP": "GNOME", "WAYLAND_DISPLAY": "wayland-0"}, want: desktopGNOME},
		{name: "Sway", env: map[string]string{"XDG_CURRENT_DESKTOP": "sway", "WAYLAND_DISPLAY": "wayland-1"}, want: desktopSway},
		{name: "KDE Wayland unsupported", env: map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "WAYLAND_DISPLAY": "wayland-0"}, wantErr: true},
		{name: "Unknown", env: map[string]string{"XDG_CURRENT_DESKTOP": "i3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectDesktop(envFrom(tt.env))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDesktop)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinuxSetWallpaper_GNOMESetsBothKeys(t *testing.T) {
	var calls []string
	l := &linuxOS{
		getenv: envFrom(map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}),
		run: func(name string, args ...string) error {
			calls = append(calls, name+" "+strings.Join(args, " "))
			return nil
		},
	}

	require.NoError(t, l.SetWallpaper("/pics/a.jpg"))
	assert.Equal(t, []string{
		"gsettings set org.gnome.desktop.background picture-uri file:///pics/a.jpg",
		"gsettings set org.gnome.desktop.background picture-uri-dark file:///pics/a.jpg",
	}, calls)
}

func TestLinuxSetWallpaper_CommandFailure(t *testing.T) {
	l := &linuxOS{
		getenv: envFrom(map[string]string{"XDG_CURRENT_DESKTOP": "XFCE"}),
		run: func(name string, args ...string) error {
			return errors.New("exit status 1")
		},
	}

	assert.Error(t, l.SetWallpaper("/pics/a.jpg"))
}

func TestLinuxSetWallpaper_Unsupported(t *testing.T) {
	l := &linuxOS{
		getenv: envFrom(map[string]string{}),
		run: func(name string, args ...string) error {
			t.Fatalf("unexpected command %s", name)
			return nil
		},
	}

	assert.ErrorIs(t, l.SetWallpaper("/pics/a.jpg"), ErrUnsupportedDesktop)
}
