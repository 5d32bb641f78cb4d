// Package asset serves the text resources embedded in the binary.
package asset

import (
	"embed"
	"fmt"
	"strings"

	"github.com/dixieflatline76/wallpaperd/util/log"
)

//go:embed text/*
var assets embed.FS

// Manager manages the loading of UI assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("text name is empty")
	}
	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(textBytes), nil
}

// About returns the about text with the version line prepended.
func (am *Manager) About(appName, version string) string {
	text, err := am.GetText("about.txt")
	if err != nil {
		text = ""
	}
	return fmt.Sprintf("%s %s\n\n%s", appName, version, strings.TrimSpace(text))
}
