package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

// Scheduler runs f once after d. Callbacks execute on the UI goroutine and
// are never cancelled, so they must tolerate widgets that were closed or
// removed in the meantime.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Animator drives tick with progress in [0, 1] over d. The final call
// always passes exactly 1 and marks completion. stop aborts the animation
// without a final tick.
type Animator interface {
	Animate(d time.Duration, tick func(progress float32)) (stop func())
}

// Env holds the collaborators shared by the widgets of this package.
// Zero fields are replaced with production implementations.
type Env struct {
	Clock     engine.Clock
	Scheduler Scheduler
	Animator  Animator

	// Translate maps a translation key to display text. It returns the key
	// itself when no translation exists.
	Translate func(key string) string
}

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = engine.RealClock{}
	}
	if e.Scheduler == nil {
		e.Scheduler = FyneScheduler{}
	}
	if e.Animator == nil {
		e.Animator = FyneAnimator{}
	}
	if e.Translate == nil {
		e.Translate = func(key string) string { return key }
	}
	return e
}

// text translates key, falling back when the catalog has no entry.
func (e Env) text(key, fallback string) string {
	if msg := e.Translate(key); msg != "" && msg != key {
		return msg
	}
	return fallback
}

// FyneScheduler defers work with a timer and hops back onto the Fyne
// main goroutine before running it.
type FyneScheduler struct{}

// AfterFunc implements Scheduler.
func (FyneScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

// FyneAnimator runs ticks through the Fyne animation loop with an ease-out curve.
type FyneAnimator struct{}

// Animate implements Animator.
func (FyneAnimator) Animate(d time.Duration, tick func(progress float32)) func() {
	a := fyne.NewAnimation(d, tick)
	a.Curve = fyne.AnimationEaseOut
	a.Start()
	return a.Stop
}
