package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// pickerOverlay covers the whole canvas with a dimmed backdrop and centers
// the picker card on it. Tapping the backdrop calls onDismiss.
type pickerOverlay struct {
	widget.BaseWidget

	card      *pickerCard
	target    fyne.Canvas
	onDismiss func()
	shown     bool
}

func newPickerOverlay(content fyne.CanvasObject, target fyne.Canvas, onDismiss func()) *pickerOverlay {
	o := &pickerOverlay{card: newPickerCard(content), target: target, onDismiss: onDismiss}
	o.ExtendBaseWidget(o)
	o.BaseWidget.Hide()
	return o
}

func (o *pickerOverlay) CreateRenderer() fyne.WidgetRenderer {
	backdrop := canvas.NewRectangle(theme.Color(theme.ColorNameShadow))
	return widget.NewSimpleRenderer(container.NewStack(backdrop, container.NewCenter(o.card)))
}

// Tapped fires for taps outside the card.
func (o *pickerOverlay) Tapped(*fyne.PointEvent) {
	if o.onDismiss != nil {
		o.onDismiss()
	}
}

// Show adds the overlay to the canvas. Repeated calls only refresh it.
func (o *pickerOverlay) Show() {
	if !o.shown {
		o.target.Overlays().Add(o)
		o.shown = true
	}
	o.Resize(o.target.Size())
	o.BaseWidget.Show()
}

// Hide removes the overlay from the canvas.
func (o *pickerOverlay) Hide() {
	if o.shown {
		o.target.Overlays().Remove(o)
		o.shown = false
	}
	o.BaseWidget.Hide()
}

// pickerCard swallows taps on its background so they do not reach the
// backdrop.
type pickerCard struct {
	widget.BaseWidget

	content fyne.CanvasObject
}

func newPickerCard(content fyne.CanvasObject) *pickerCard {
	c := &pickerCard{content: content}
	c.ExtendBaseWidget(c)
	return c
}

func (c *pickerCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.CornerRadius = theme.InputRadiusSize()
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(c.content)))
}

func (c *pickerCard) Tapped(*fyne.PointEvent) {}
