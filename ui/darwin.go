//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

const NSApplicationActivationPolicy Regular = 0;
const NSApplicationActivationPolicy Accessory = 1;

// The policy only takes effect once the app is activated.
void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToForeground shows the Dock icon while the main window is open.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.Regular)
}

// TransformToBackground hides the Dock icon once the window goes to the tray.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.Accessory)
}

// getOS returns a new instance of the darwinOS struct.
func getOS() OS {
	return &darwinOS{}
}
