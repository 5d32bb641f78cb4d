package ui

// OS hides the platform differences of running as a tray application.
type OS interface {
	// TransformToForeground makes the application a regular app with a Dock icon.
	TransformToForeground()
	// TransformToBackground makes the application background-only.
	TransformToBackground()
}
