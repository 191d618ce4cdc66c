package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DateField is a read-only Entry that shows the confirmed date and opens
// the picker when tapped. It embeds widget.Entry to inherit rendering.
type DateField struct {
	widget.Entry

	// OnTapped is called when the field is tapped.
	OnTapped func()
}

// NewDateField creates a new instance of DateField.
func NewDateField(onTapped func()) *DateField {
	f := &DateField{OnTapped: onTapped}
	f.ExtendBaseWidget(f)
	return f
}

// Tapped opens the picker instead of placing a cursor.
func (f *DateField) Tapped(*fyne.PointEvent) {
	if f.OnTapped != nil {
		f.OnTapped()
	}
}

// TappedSecondary suppresses the cut/paste context menu.
func (f *DateField) TappedSecondary(*fyne.PointEvent) {}

// TypedRune drops text input; the value only changes through the picker.
func (f *DateField) TypedRune(rune) {}

// TypedKey drops editing keys such as Backspace and Delete.
func (f *DateField) TypedKey(*fyne.KeyEvent) {}

// TypedShortcut allows copying but ignores paste and cut.
func (f *DateField) TypedShortcut(s fyne.Shortcut) {
	if _, ok := s.(*fyne.ShortcutCopy); ok {
		f.Entry.TypedShortcut(s)
	}
}
