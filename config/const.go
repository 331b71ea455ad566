package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion string

// AppName is the name of the application and the title of its main window.
const AppName = "Application"

// AppID is the unique fyne application identifier.
const AppID = "com.github.mzilenas.hundview"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = "hundview"

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(LogWinSubDir)

// LogExt is the extension for the log files.
var LogExt = ".log"

// SurfaceWidth and SurfaceHeight are the fixed picture area dimensions in pixels.
const (
	SurfaceWidth  = 500
	SurfaceHeight = 500
)

// ImageDir is the directory the pictures are read from, relative to the working directory.
const ImageDir = "img"

// PicturePattern names the picture file for a given index.
const PicturePattern = "hund%d.png"

// Inset is the gap in pixels kept around every widget of the main panel.
const Inset = 10
