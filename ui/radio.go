package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// radioGroup is a set of mutually exclusive options. Unlike
// widget.RadioGroup it reports every tap, including a tap on the option
// that is already selected, and the selection can never be cleared.
type radioGroup struct {
	widget.BaseWidget

	options  []*radioOption
	selected string
	onTapped func(option string)
}

// newRadioGroup creates a group with nothing selected.
func newRadioGroup(labels []string, onTapped func(option string)) *radioGroup {
	g := &radioGroup{onTapped: onTapped}
	for _, l := range labels {
		g.options = append(g.options, newRadioOption(l, g))
	}
	g.ExtendBaseWidget(g)
	return g
}

// CreateRenderer implements fyne.Widget.
func (g *radioGroup) CreateRenderer() fyne.WidgetRenderer {
	box := container.NewVBox()
	for _, o := range g.options {
		box.Add(o)
	}
	return widget.NewSimpleRenderer(box)
}

// Selected returns the label of the selected option, empty if none.
func (g *radioGroup) Selected() string {
	return g.selected
}

// SetSelected checks option and unchecks the others without reporting a tap.
func (g *radioGroup) SetSelected(option string) {
	g.selected = option
	for _, o := range g.options {
		o.setChecked(o.label == option)
	}
}

// option returns the option with the given label, nil if there is none.
func (g *radioGroup) option(label string) *radioOption {
	for _, o := range g.options {
		if o.label == label {
			return o
		}
	}
	return nil
}

func (g *radioGroup) tapped(o *radioOption) {
	g.SetSelected(o.label)
	if g.onTapped != nil {
		g.onTapped(o.label)
	}
}

// radioOption is a single tappable option of a radioGroup.
type radioOption struct {
	widget.BaseWidget

	label   string
	checked bool
	group   *radioGroup
	icon    *widget.Icon
	text    *widget.Label
}

func newRadioOption(label string, group *radioGroup) *radioOption {
	o := &radioOption{
		label: label,
		group: group,
		icon:  widget.NewIcon(theme.RadioButtonIcon()),
		text:  widget.NewLabel(label),
	}
	o.ExtendBaseWidget(o)
	return o
}

// CreateRenderer implements fyne.Widget.
func (o *radioOption) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(o.icon, o.text))
}

// Tapped handles left-click events.
func (o *radioOption) Tapped(_ *fyne.PointEvent) {
	o.group.tapped(o)
}

func (o *radioOption) setChecked(checked bool) {
	if o.checked == checked {
		return
	}
	o.checked = checked
	if checked {
		o.icon.SetResource(theme.RadioButtonCheckedIcon())
	} else {
		o.icon.SetResource(theme.RadioButtonIcon())
	}
}
