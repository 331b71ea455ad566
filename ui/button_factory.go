package ui

import (
	"fyne.io/fyne/v2/widget"

	"github.com/mzilenas/hundview/pkg/action"
)

// ButtonFactory creates buttons that dispatch their command to a router.
type ButtonFactory struct {
	title   string
	command action.Command
	router  *action.Router
}

// NewButtonFactory creates a factory bound to router, using the default
// title and command.
func NewButtonFactory(router *action.Router) *ButtonFactory {
	return &ButtonFactory{
		title:   defaultButtonTitle,
		command: action.DefaultAction,
		router:  router,
	}
}

// SetTitle sets the label used by CreateDefaultButton.
func (f *ButtonFactory) SetTitle(title string) {
	f.title = title
}

// Title returns the label used by CreateDefaultButton.
func (f *ButtonFactory) Title() string {
	return f.title
}

// CreateButton creates a button labelled title that dispatches cmd.
func (f *ButtonFactory) CreateButton(title string, cmd action.Command) *widget.Button {
	var b *widget.Button
	b = widget.NewButton(title, func() {
		f.router.Dispatch(action.Event{Command: cmd, Source: b.Text})
	})
	return b
}

// CreateTitledButton creates a button with the default command.
func (f *ButtonFactory) CreateTitledButton(title string) *widget.Button {
	return f.CreateButton(title, f.command)
}

// CreateDefaultButton creates a button with the default title and command.
func (f *ButtonFactory) CreateDefaultButton() *widget.Button {
	return f.CreateButton(f.title, f.command)
}
