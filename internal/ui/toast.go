package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
)

// Kind categorizes a toast. Its icon, accent color, title and message are
// fully determined by the kind.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
	KindWarning
	KindInfo
)

// Kinds lists every toast kind in menu order.
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo}

// kindStyle is the display metadata attached to a Kind.
type kindStyle struct {
	name          string
	icon          fyne.Resource
	accent        fyne.ThemeColorName
	titleKey      string
	titleFallback string
	msgKey        string
	msgFallback   string
	menuKey       string
}

// style returns the metadata for k. Out-of-range values render as info.
func (k Kind) style() kindStyle {
	switch k {
	case KindSuccess:
		return kindStyle{
			name:          "success",
			icon:          theme.ConfirmIcon(),
			accent:        theme.ColorNameSuccess,
			titleKey:      config.TKeyToastSuccessTitle,
			titleFallback: config.FallbackSuccessTitle,
			msgKey:        config.TKeyToastSuccessMsg,
			msgFallback:   config.FallbackSuccessMsg,
			menuKey:       config.TKeyMenuShowSuccess,
		}
	case KindError:
		return kindStyle{
			name:          "error",
			icon:          theme.ErrorIcon(),
			accent:        theme.ColorNameError,
			titleKey:      config.TKeyToastErrorTitle,
			titleFallback: config.FallbackErrorTitle,
			msgKey:        config.TKeyToastErrorMsg,
			msgFallback:   config.FallbackErrorMsg,
			menuKey:       config.TKeyMenuShowError,
		}
	case KindWarning:
		return kindStyle{
			name:          "warning",
			icon:          theme.WarningIcon(),
			accent:        theme.ColorNameWarning,
			titleKey:      config.TKeyToastWarningTitle,
			titleFallback: config.FallbackWarningTitle,
			msgKey:        config.TKeyToastWarningMsg,
			msgFallback:   config.FallbackWarningMsg,
			menuKey:       config.TKeyMenuShowWarning,
		}
	default:
		return kindStyle{
			name:          "info",
			icon:          theme.InfoIcon(),
			accent:        theme.ColorNamePrimary,
			titleKey:      config.TKeyToastInfoTitle,
			titleFallback: config.FallbackInfoTitle,
			msgKey:        config.TKeyToastInfoMsg,
			msgFallback:   config.FallbackInfoMsg,
			menuKey:       config.TKeyMenuShowInfo,
		}
	}
}

// String returns the kind name used in log records.
func (k Kind) String() string {
	if k < KindSuccess || k > KindInfo {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return k.style().name
}

// Icon returns the theme icon shown on toasts of this kind.
func (k Kind) Icon() fyne.Resource {
	return k.style().icon
}

// Toast is one notification card.
type Toast struct {
	widget.BaseWidget

	ID      string
	Kind    Kind
	Title   string
	Message string

	background *canvas.Rectangle
	accent     *canvas.Rectangle
	closeBtn   *widget.Button
	content    fyne.CanvasObject

	dismissing bool
}

func newToast(kind Kind, title, message string, onClose func()) *Toast {
	st := kind.style()
	t := &Toast{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   title,
		Message: message,
	}

	t.background = canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	t.background.CornerRadius = theme.InputRadiusSize()
	t.background.StrokeColor = theme.Color(st.accent)
	t.background.StrokeWidth = 1

	t.accent = canvas.NewRectangle(theme.Color(st.accent))
	t.accent.SetMinSize(fyne.NewSize(theme.Padding(), 0))

	t.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), onClose)
	t.closeBtn.Importance = widget.LowImportance

	titleLbl := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	msgLbl := widget.NewLabel(message)
	msgLbl.Wrapping = fyne.TextWrapWord

	body := container.NewBorder(nil, nil,
		container.NewHBox(t.accent, widget.NewIcon(st.icon)),
		container.NewVBox(t.closeBtn),
		container.NewVBox(titleLbl, msgLbl),
	)
	t.content = container.NewStack(t.background, container.NewPadded(body))

	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (t *Toast) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// MinSize keeps every card at least ToastWidth wide.
func (t *Toast) MinSize() fyne.Size {
	size := t.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, config.ToastWidth), size.Height)
}

// Dismissing reports whether the exit transition has started.
func (t *Toast) Dismissing() bool {
	return t.dismissing
}

// fade applies the exit transition at progress in [0, 1].
func (t *Toast) fade(progress float32) {
	alpha := 1 - progress
	t.background.FillColor = withAlpha(t.background.FillColor, alpha)
	t.background.StrokeColor = withAlpha(t.background.StrokeColor, alpha)
	t.accent.FillColor = withAlpha(t.accent.FillColor, alpha)
	t.background.Refresh()
	t.accent.Refresh()
}

func withAlpha(c color.Color, alpha float32) color.Color {
	if c == nil {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	n.A = uint16(alpha * 0xffff)
	return n
}

// Notifier appends auto-dismissing toasts to a container, in call order.
//
// All methods must be called on the Fyne main goroutine.
type Notifier struct {
	env Env
	box *fyne.Container
	log *slog.Logger
}

// NewNotifier attaches a notifier to box. Toasts are appended to
// box.Objects, so box should use a vertical layout.
func NewNotifier(box *fyne.Container, env Env) *Notifier {
	return &Notifier{
		env: env.withDefaults(),
		box: box,
		log: slog.With(config.LogKeyComponent, config.CompToast),
	}
}

// Show appends a toast of the given kind and schedules its removal after
// ToastLifetime.
func (n *Notifier) Show(kind Kind) *Toast {
	st := kind.style()

	var t *Toast
	t = newToast(kind,
		n.env.text(st.titleKey, st.titleFallback),
		n.env.text(st.msgKey, st.msgFallback),
		func() { n.Dismiss(t) },
	)

	n.box.Add(t)
	n.log.Debug(config.MsgToastShown,
		config.LogKeyToastID, t.ID,
		config.LogKeyKind, kind.String())

	n.env.Scheduler.AfterFunc(config.ToastLifetime, func() {
		n.Dismiss(t)
	})
	return t
}

// Dismiss starts the exit transition of t and removes it from the
// container when the transition completes. It is a no-op for toasts that
// are already dismissing or no longer attached.
func (n *Notifier) Dismiss(t *Toast) {
	if t == nil || t.dismissing || !n.attached(t) {
		return
	}
	t.dismissing = true
	n.log.Debug(config.MsgToastDismiss, config.LogKeyToastID, t.ID)

	n.env.Animator.Animate(config.ToastExitDuration, func(progress float32) {
		t.fade(progress)
		if progress >= 1 {
			n.remove(t)
		}
	})
}

// Toasts returns the toasts currently attached, oldest first.
func (n *Notifier) Toasts() []*Toast {
	var out []*Toast
	for _, o := range n.box.Objects {
		if t, ok := o.(*Toast); ok {
			out = append(out, t)
		}
	}
	return out
}

func (n *Notifier) remove(t *Toast) {
	if !n.attached(t) {
		n.log.Debug(config.MsgToastDetached, config.LogKeyToastID, t.ID)
		return
	}
	n.box.Remove(t)
	n.log.Debug(config.MsgToastRemoved,
		config.LogKeyToastID, t.ID,
		config.LogKeyKind, t.Kind.String())
}

func (n *Notifier) attached(t *Toast) bool {
	for _, o := range n.box.Objects {
		if o == t {
			return true
		}
	}
	return false
}
