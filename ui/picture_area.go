package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// pictureArea shows the display surface and reports taps in pixel
// coordinates relative to its top-left corner.
type pictureArea struct {
	widget.BaseWidget

	image    *canvas.Image
	onTapped func(x, y int)
}

// newPictureArea creates a picture area of a fixed size drawing img.
func newPictureArea(img image.Image, size fyne.Size, onTapped func(x, y int)) *pictureArea {
	p := &pictureArea{
		image:    canvas.NewImageFromImage(img),
		onTapped: onTapped,
	}
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScalePixels
	p.image.SetMinSize(size)
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *pictureArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.image)
}

// Tapped handles left-click events.
func (p *pictureArea) Tapped(ev *fyne.PointEvent) {
	if p.onTapped != nil {
		p.onTapped(int(ev.Position.X), int(ev.Position.Y))
	}
}

// Repaint redraws the surface after its pixels changed.
func (p *pictureArea) Repaint() {
	p.image.Refresh()
}
