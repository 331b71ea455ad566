package ui

import "github.com/mzilenas/hundview/pkg/action"

// defaultButtonTitle is the label of a factory button created without one.
const defaultButtonTitle = "Button"

// Main panel labels.
const (
	loadImageLabel = "Load image from disk."
	button2Label   = "Button 2"
	button3Label   = "Button 3"
	button4Label   = "Button 4"
	radio1Label    = "Load picture 1 from disk."
	radio2Label    = "Load picture 2 from disk."
)

// radioCommands binds each radio option to the command it triggers.
var radioCommands = map[string]action.Command{
	radio1Label: action.LoadFromDisk1,
	radio2Label: action.LoadFromDisk2,
}

// pictureMessageFormat is the popup text for a click on the picture area.
const pictureMessageFormat = "You clicked on a picture area (x,y): (%d,%d)"
