package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

// wheelItem is a Label that reacts to taps, used for one row of a wheel.
// It embeds widget.Label to inherit text rendering.
type wheelItem struct {
	widget.Label

	item     engine.Item
	onTapped func(engine.Item)
}

// newWheelItem creates the row for item.
func newWheelItem(item engine.Item, onTapped func(engine.Item)) *wheelItem {
	w := &wheelItem{item: item, onTapped: onTapped}
	w.Text = item.Label
	w.Alignment = fyne.TextAlignCenter
	w.ExtendBaseWidget(w)
	return w
}

// Tapped selects the row.
func (w *wheelItem) Tapped(*fyne.PointEvent) {
	if w.onTapped != nil {
		w.onTapped(w.item)
	}
}

// SetHighlighted renders the row as the current selection of its wheel.
func (w *wheelItem) SetHighlighted(on bool) {
	if w.TextStyle.Bold == on {
		return
	}
	w.TextStyle.Bold = on
	if on {
		w.Importance = widget.HighImportance
	} else {
		w.Importance = widget.MediumImportance
	}
	w.Refresh()
}

// Highlighted reports whether the row is the current selection.
func (w *wheelItem) Highlighted() bool {
	return w.TextStyle.Bold
}

// wheelLayout stacks rows of a fixed height between two blank spacers,
// so that the first and last rows can both reach the viewport center.
type wheelLayout struct {
	itemHeight float32
	padding    float32
}

// Layout places every row at padding + i*itemHeight.
func (l *wheelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for i, o := range objects {
		o.Resize(fyne.NewSize(size.Width, l.itemHeight))
		o.Move(fyne.NewPos(0, l.padding+float32(i)*l.itemHeight))
	}
}

// MinSize is the widest row by the full padded height.
func (l *wheelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width float32
	for _, o := range objects {
		width = fyne.Max(width, o.MinSize().Width)
	}
	return fyne.NewSize(width, 2*l.padding+float32(len(objects))*l.itemHeight)
}
