package config

import "fyne.io/fyne/v2"

// NotificationsEnabledKey is the key for the desktop notifications preference
const NotificationsEnabledKey = "notifications_enabled"

// AppConfig holds the user preferences of the application. The rotation period is
// intentionally not stored here; every start uses DefaultInterval.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetNotificationsEnabled returns whether rotation failures raise a desktop notification
func (c *AppConfig) GetNotificationsEnabled() bool {
	return c.prefs.BoolWithFallback(NotificationsEnabledKey, true)
}

// SetNotificationsEnabled sets whether rotation failures raise a desktop notification
func (c *AppConfig) SetNotificationsEnabled(enabled bool) {
	c.prefs.SetBool(NotificationsEnabledKey, enabled)
}

// HotkeysEnabledKey is the key for the global hotkey preference
const HotkeysEnabledKey = "hotkeys_enabled"

// GetHotkeysEnabled returns whether the global "next wallpaper" hotkey is registered
func (c *AppConfig) GetHotkeysEnabled() bool {
	return c.prefs.BoolWithFallback(HotkeysEnabledKey, true)
}

// SetHotkeysEnabled sets whether the global "next wallpaper" hotkey is registered
func (c *AppConfig) SetHotkeysEnabled(enabled bool) {
	c.prefs.SetBool(HotkeysEnabledKey, enabled)
}

// LastBrowseDirKey is the key for the directory the Add dialog opens in
const LastBrowseDirKey = "last_browse_dir"

// GetLastBrowseDir returns the directory of the last image added, or "" if none
func (c *AppConfig) GetLastBrowseDir() string {
	return c.prefs.StringWithFallback(LastBrowseDirKey, "")
}

// SetLastBrowseDir remembers the directory of the last image added
func (c *AppConfig) SetLastBrowseDir(dir string) {
	c.prefs.SetString(LastBrowseDirKey, dir)
}
