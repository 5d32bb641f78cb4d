// Command wallpaperctl maintains the wallpaper registry from the command line and can
// run the rotation without the GUI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
