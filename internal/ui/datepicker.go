package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

// WheelDatePicker is a window-wide overlay with three scrollable wheels (day,
// month, year) kept in sync with a single logical date. Confirming writes
// "<MonthName> <Day>, <Year>" into the target entry.
//
// All methods must be called on the Fyne main goroutine.
type WheelDatePicker struct {
	// OnConfirmed is called after a successful Confirm with the clamped date.
	OnConfirmed func(engine.Date)

	env    Env
	canvas fyne.Canvas
	target *widget.Entry

	date         engine.Date
	confirmed    engine.Date
	hasConfirmed bool

	columns [len(engine.Columns)]*wheelColumn
	summary *widget.Label
	overlay *pickerOverlay
	open    bool

	keysHooked     bool
	prevKeyHandler func(*fyne.KeyEvent)

	log *slog.Logger
}

// NewWheelDatePicker builds the picker overlay on canvas. The overlay stays
// hidden until Open is called.
func NewWheelDatePicker(canvas fyne.Canvas, target *widget.Entry, env Env) *WheelDatePicker {
	env = env.withDefaults()
	p := &WheelDatePicker{
		env:    env,
		canvas: canvas,
		target: target,
		date:   engine.DefaultDate(),
		log:    slog.With(config.LogKeyComponent, config.CompPicker),
	}

	currentYear := env.Clock.Now().Year()
	widths := [len(engine.Columns)]float32{
		engine.ColumnDay:   config.WheelColumnWidthDay,
		engine.ColumnMonth: config.WheelColumnWidthMonth,
		engine.ColumnYear:  config.WheelColumnWidthYear,
	}

	views := make([]fyne.CanvasObject, 0, len(engine.Columns))
	for _, c := range engine.Columns {
		w := engine.NewWheel(c, currentYear, config.WheelItemHeight)
		p.columns[c] = newWheelColumn(w, widths[c], p.onScroll, func(c engine.Column, it engine.Item) {
			p.SelectValue(c, it.Value)
		})
		views = append(views, p.columns[c].view)
	}

	p.summary = widget.NewLabelWithStyle(p.date.Format(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	title := widget.NewLabelWithStyle(env.text(config.TKeyPickerTitle, config.FallbackPickerTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), p.Close)
	closeBtn.Importance = widget.LowImportance

	cancelBtn := widget.NewButton(env.text(config.TKeyBtnCancel, config.FallbackBtnCancel), p.Close)
	confirmBtn := widget.NewButtonWithIcon(env.text(config.TKeyBtnConfirm, config.FallbackBtnConfirm), theme.ConfirmIcon(), p.Confirm)
	confirmBtn.Importance = widget.HighImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, closeBtn, title),
		p.summary,
		container.NewCenter(container.NewHBox(views...)),
		container.NewGridWithColumns(config.LayoutColumnsDouble, cancelBtn, confirmBtn),
	)
	p.overlay = newPickerOverlay(content, canvas, p.Close)
	return p
}

// Open shows the overlay and schedules re-centering of every wheel on the
// stored date. Calling it while already open only re-centers.
func (p *WheelDatePicker) Open() {
	p.hookKeys()
	p.overlay.Show()
	p.open = true
	p.log.Debug(config.MsgPickerOpen, config.LogKeyDate, p.date.Format())

	// Offsets assigned before the overlay is laid out are unreliable.
	p.env.Scheduler.AfterFunc(config.CenterDelay, p.centerWheels)
}

// Close hides the overlay. It also runs when the backdrop is tapped.
// The selected date is kept.
func (p *WheelDatePicker) Close() {
	p.unhookKeys()
	p.overlay.Hide()
	p.open = false
	p.log.Debug(config.MsgPickerClose)
}

// Visible reports whether the overlay is shown.
func (p *WheelDatePicker) Visible() bool {
	return p.open
}

// SelectValue sets one field of the date and smoothly scrolls its wheel to
// the matching item. Values outside the wheel snap to its nearest end.
func (p *WheelDatePicker) SelectValue(c engine.Column, value int) {
	col := p.columns[c]
	value = p.clampField(c, value)
	p.date = p.date.WithField(c, value)
	p.refreshSummary()
	col.scrollTo(col.wheel.IndexOf(value), p.env.Animator)
}

// Confirm clamps the day to the length of the selected month, writes the
// formatted date into the target entry and closes the overlay.
func (p *WheelDatePicker) Confirm() {
	normalized, clamped := p.date.Normalize()
	if clamped {
		p.log.Debug(config.MsgPickerClamped,
			config.LogKeyFromDay, p.date.Day,
			config.LogKeyToDay, normalized.Day)
	}
	p.date = normalized
	p.confirmed = normalized
	p.hasConfirmed = true

	p.refreshSummary()
	if p.target != nil {
		p.target.SetText(normalized.Format())
	}
	p.Close()

	p.log.Info(config.MsgPickerConfirm, config.LogKeyDate, normalized.Format())
	if p.OnConfirmed != nil {
		p.OnConfirmed(normalized)
	}
}

// TypedKey handles keyboard input while the overlay is open:
// Escape closes, Return or Enter confirms.
func (p *WheelDatePicker) TypedKey(ev *fyne.KeyEvent) {
	if !p.Visible() {
		return
	}
	switch ev.Name {
	case fyne.KeyEscape:
		p.Close()
	case fyne.KeyReturn, fyne.KeyEnter:
		p.Confirm()
	}
}

// Date returns the current logical date, which may not be valid yet.
func (p *WheelDatePicker) Date() engine.Date {
	return p.date
}

// SetDate replaces the logical date. Fields the wheels do not carry snap to
// the nearest item, so every field stays reachable. Wheels follow on the
// next Open.
func (p *WheelDatePicker) SetDate(d engine.Date) {
	for _, c := range engine.Columns {
		d = d.WithField(c, p.clampField(c, d.Field(c)))
	}
	p.date = d
	p.refreshSummary()
}

// Confirmed returns the last confirmed date.
func (p *WheelDatePicker) Confirmed() (engine.Date, bool) {
	return p.confirmed, p.hasConfirmed
}

// Summary returns the live summary text.
func (p *WheelDatePicker) Summary() string {
	return p.summary.Text
}

// Offset returns the scroll offset of a wheel.
func (p *WheelDatePicker) Offset(c engine.Column) float32 {
	return p.columns[c].wheel.Offset()
}

// CenterIndex returns the index of the item under a wheel's center line.
func (p *WheelDatePicker) CenterIndex(c engine.Column) int {
	return p.columns[c].wheel.Index()
}

// onScroll is the single selection-update path for user scrolling,
// animation frames and programmatic centering.
func (p *WheelDatePicker) onScroll(c engine.Column, offset float32) {
	col := p.columns[c]
	item, ok := col.wheel.Scroll(offset)
	col.highlight(col.wheel.Index())
	if !ok {
		return
	}
	if p.date.Field(c) != item.Value {
		p.date = p.date.WithField(c, item.Value)
		p.refreshSummary()
	}
}

// centerWheels snaps every wheel onto the stored date without animation.
func (p *WheelDatePicker) centerWheels() {
	for _, c := range engine.Columns {
		col := p.columns[c]
		if idx := col.wheel.IndexOf(p.date.Field(c)); idx >= 0 {
			col.jumpTo(idx)
		}
	}
	p.refreshSummary()
	p.log.Debug(config.MsgPickerCentered,
		config.LogKeyDate, p.date.Format(),
		config.LogKeyOffset, []float32{
			p.Offset(engine.ColumnDay),
			p.Offset(engine.ColumnMonth),
			p.Offset(engine.ColumnYear),
		})
}

func (p *WheelDatePicker) clampField(c engine.Column, value int) int {
	clamped := p.columns[c].wheel.Clamp(value)
	if clamped != value {
		p.log.Debug(config.MsgPickerOutOfRange,
			config.LogKeyColumn, c.String(),
			config.LogKeyValue, value,
			config.LogKeyClamped, clamped)
	}
	return clamped
}

func (p *WheelDatePicker) refreshSummary() {
	p.summary.SetText(p.date.Format())
}

func (p *WheelDatePicker) hookKeys() {
	if p.keysHooked || p.canvas == nil {
		return
	}
	p.prevKeyHandler = p.canvas.OnTypedKey()
	p.canvas.SetOnTypedKey(p.TypedKey)
	p.keysHooked = true
}

func (p *WheelDatePicker) unhookKeys() {
	if !p.keysHooked {
		return
	}
	p.canvas.SetOnTypedKey(p.prevKeyHandler)
	p.prevKeyHandler = nil
	p.keysHooked = false
}
