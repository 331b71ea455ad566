// Package action routes widget commands to their handlers.
package action

import (
	"fmt"

	"github.com/mzilenas/hundview/util/log"
)

// Command identifies the action a widget triggers.
type Command string

// Commands bound to the main panel widgets.
const (
	LoadFromDisk1 Command = "load_from_disk1"
	LoadFromDisk2 Command = "load_from_disk2"
	DefaultAction Command = "default_action_command"
)

// InfoTitle is the title of every informational popup.
const InfoTitle = "Info"

// Event is a single widget activation.
type Event struct {
	Command Command
	Source  string // Label text of the triggering widget
}

// Handler reacts to an Event.
type Handler func(Event) error

// Notifier is a function that notifies the user.
type Notifier func(title, message string)

// Router maps commands to handlers. Commands without a handler go to the
// fallback. Dispatch is synchronous and never fails.
type Router struct {
	handlers map[Command]Handler
	fallback Handler
}

// NewRouter creates a router that sends unknown commands to fallback.
func NewRouter(fallback Handler) *Router {
	return &Router{
		handlers: make(map[Command]Handler),
		fallback: fallback,
	}
}

// Handle registers h for cmd, replacing any previous handler.
func (r *Router) Handle(cmd Command, h Handler) {
	r.handlers[cmd] = h
}

// Handles reports whether cmd has its own handler.
func (r *Router) Handles(cmd Command) bool {
	_, ok := r.handlers[cmd]
	return ok
}

// Dispatch runs the handler for ev. Handler errors are logged and dropped.
func (r *Router) Dispatch(ev Event) {
	h := r.handlers[ev.Command]
	if !r.Handles(ev.Command) {
		log.Debugf("Command %q from %q has no handler, using fallback", ev.Command, ev.Source)
		h = r.fallback
	}
	if h == nil {
		log.Printf("No handler for command %q from %q", ev.Command, ev.Source)
		return
	}
	if err := h(ev); err != nil {
		log.Printf("Command %q from %q failed: %v", ev.Command, ev.Source, err)
	}
}

// DefaultHandler names the pressed widget in an informational popup.
func DefaultHandler(notify Notifier) Handler {
	return func(ev Event) error {
		notify(InfoTitle, ButtonMessage(ev.Source))
		return nil
	}
}

// ButtonMessage is the popup text for a widget without a dedicated handler.
func ButtonMessage(label string) string {
	return fmt.Sprintf("You just pressed a button \"%s\"", label)
}

// LoadHandler loads picture i through load.
func LoadHandler(load func(int) error, i int) Handler {
	return func(Event) error {
		return load(i)
	}
}
