package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// panelLayout places the first object on the left and stacks the rest in a
// single column to its right. Every cell keeps inset pixels on all sides
// and controls are centred in the column. Objects are kept at their
// minimum size, so positions do not depend on the window size.
type panelLayout struct {
	inset float32
}

// columnWidth returns the widest minimum width among the controls.
func (p *panelLayout) columnWidth(controls []fyne.CanvasObject) float32 {
	var w float32
	for _, o := range controls {
		w = fyne.Max(w, o.MinSize().Width)
	}
	return w
}

// MinSize calculates the minimum size.
func (p *panelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	picture := objects[0].MinSize()
	controls := objects[1:]

	var columnHeight float32
	for _, o := range controls {
		columnHeight += o.MinSize().Height + 2*p.inset
	}

	width := picture.Width + 2*p.inset
	if len(controls) > 0 {
		width += p.columnWidth(controls) + 2*p.inset
	}
	height := fyne.Max(picture.Height+2*p.inset, columnHeight)
	return fyne.NewSize(width, height)
}

// Layout arranges the objects.
func (p *panelLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	if len(objects) == 0 {
		return
	}
	picture := objects[0]
	picture.Resize(picture.MinSize())
	picture.Move(fyne.NewPos(p.inset, p.inset))

	controls := objects[1:]
	columnX := picture.MinSize().Width + 3*p.inset
	columnW := p.columnWidth(controls)

	y := p.inset
	for _, o := range controls {
		size := o.MinSize()
		o.Resize(size)
		o.Move(fyne.NewPos(columnX+(columnW-size.Width)/2, y))
		y += size.Height + 2*p.inset
	}
}

// newPanel creates a container with picture on the left and controls
// stacked on the right.
func newPanel(inset float32, picture fyne.CanvasObject, controls ...fyne.CanvasObject) *fyne.Container {
	objects := append([]fyne.CanvasObject{picture}, controls...)
	return container.New(&panelLayout{inset: inset}, objects...)
}
