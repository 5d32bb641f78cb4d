package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the application.
var AppVersion string // Set with -ldflags during release builds

// AppName is the name of the application.
const AppName = "Wallpaperd"

// AppID is the unique fyne application ID, also used for the preferences store.
const AppID = "com.dixieflatline76.wallpaperd"

// DBFileName is the image registry database, resolved against the working directory.
const DBFileName = "wallpapers.db"

// DefaultInterval is the rotation period used at every process start.
const DefaultInterval = 10 * time.Minute

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
