// Package ui builds the main window: a picture area next to a column of
// buttons and radio buttons.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mzilenas/hundview/config"
	"github.com/mzilenas/hundview/pkg/action"
	"github.com/mzilenas/hundview/pkg/picture"
	"github.com/mzilenas/hundview/util/log"
)

// WindowState is the lifecycle state of the main window.
type WindowState int

const (
	// WindowClosed is the state before the main window has been shown.
	WindowClosed WindowState = iota
	// WindowOpen is the state once the main window is visible. Closing the
	// window quits the application, so there is no way back.
	WindowOpen
)

func (s WindowState) String() string {
	switch s {
	case WindowClosed:
		return "closed"
	case WindowOpen:
		return "open"
	}
	return fmt.Sprintf("WindowState(%d)", int(s))
}

// Application owns the main window and everything it displays.
type Application struct {
	app    fyne.App
	cfg    *config.Config
	window fyne.Window
	state  WindowState

	surface *picture.Surface
	loader  *picture.Loader
	router  *action.Router
	buttons *ButtonFactory
	notify  action.Notifier

	picture      *pictureArea
	loadButton   *widget.Button
	plainButtons []*widget.Button
	radio        *radioGroup
}

// NewApplication creates the application state. The display surface is
// allocated here and lives as long as the application.
func NewApplication(a fyne.App, cfg *config.Config, src picture.ImageSource) *Application {
	surface := picture.NewSurface(cfg.SurfaceWidth, cfg.SurfaceHeight)
	sa := &Application{
		app:     a,
		cfg:     cfg,
		state:   WindowClosed,
		surface: surface,
		loader:  picture.NewLoader(src, surface, cfg),
	}

	sa.router = action.NewRouter(action.DefaultHandler(sa.showInfo))
	sa.router.Handle(action.LoadFromDisk1, action.LoadHandler(sa.loadPicture, 1))
	sa.router.Handle(action.LoadFromDisk2, action.LoadHandler(sa.loadPicture, 2))
	sa.buttons = NewButtonFactory(sa.router)
	return sa
}

// RegisterNotifier replaces the dialog used for informational messages.
func (sa *Application) RegisterNotifier(n action.Notifier) {
	sa.notify = n
}

// State returns the main window state.
func (sa *Application) State() WindowState {
	return sa.state
}

// Window returns the main window, nil until it has been shown.
func (sa *Application) Window() fyne.Window {
	return sa.window
}

// Surface returns the display surface.
func (sa *Application) Surface() *picture.Surface {
	return sa.surface
}

// CreateAndShowMainFrame builds the main window and shows it. Closing the
// window quits the application. Only the first call has any effect.
func (sa *Application) CreateAndShowMainFrame() {
	if sa.state == WindowOpen {
		log.Println("Main window is already open")
		return
	}

	w := sa.app.NewWindow(sa.cfg.Title)
	w.SetMaster()
	sa.window = w
	w.SetContent(sa.makeMainPanel())
	w.Show()

	sa.state = WindowOpen
	log.Debugf("Main window %q is %s", sa.cfg.Title, sa.state)
}

// makeMainPanel creates a panel with the picture area and the buttons.
func (sa *Application) makeMainPanel() *fyne.Container {
	sa.loadButton = sa.buttons.CreateButton(loadImageLabel, action.LoadFromDisk1)

	sa.plainButtons = []*widget.Button{
		sa.buttons.CreateTitledButton(button2Label),
		sa.buttons.CreateTitledButton(button3Label),
		sa.buttons.CreateTitledButton(button4Label),
	}

	sa.radio = newRadioGroup([]string{radio1Label, radio2Label}, sa.onRadioTapped)

	size := sa.surface.Size()
	sa.picture = newPictureArea(sa.surface.Image(), fyne.NewSize(float32(size.X), float32(size.Y)), sa.onPictureTapped)

	return newPanel(sa.cfg.Inset, sa.picture,
		sa.loadButton,
		sa.plainButtons[0],
		sa.plainButtons[1],
		sa.plainButtons[2],
		sa.radio,
	)
}

// onRadioTapped runs on every tap, so re-tapping the selected option
// reloads its picture.
func (sa *Application) onRadioTapped(selected string) {
	cmd, ok := radioCommands[selected]
	if !ok {
		return
	}
	sa.router.Dispatch(action.Event{Command: cmd, Source: selected})
}

func (sa *Application) onPictureTapped(x, y int) {
	sa.showInfo(action.InfoTitle, fmt.Sprintf(pictureMessageFormat, x, y))
}

// loadPicture loads picture i onto the surface and repaints it.
func (sa *Application) loadPicture(i int) error {
	if err := sa.loader.Load(i); err != nil {
		return err
	}
	if sa.picture != nil {
		sa.picture.Repaint()
	}
	return nil
}

// showInfo shows an informational message to the user.
func (sa *Application) showInfo(title, message string) {
	if sa.notify != nil {
		sa.notify(title, message)
		return
	}
	if sa.window == nil {
		log.Printf("%s: %s", title, message)
		return
	}
	dialog.ShowInformation(title, message, sa.window)
}
