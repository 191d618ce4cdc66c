package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

// GoBirthdayWheelApp encapsulates the main window, the date picker and the
// toast area.
type GoBirthdayWheelApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context
	Settings   config.Settings

	// Injected for testability; zero values use production implementations.
	Clock     engine.Clock
	Scheduler Scheduler
	Animator  Animator

	SupportedLanguages []string

	Picker   *WheelDatePicker
	Notifier *Notifier

	NameEntry *widget.Entry
	DOBEntry  *DateField
	AgeLabel  *widget.Label
	ToastArea *fyne.Container
	MainMenu  *fyne.MainMenu
}

// NewGoBirthdayWheelApp constructs the controller. Call Build before
// touching any widget.
func NewGoBirthdayWheelApp(a fyne.App, ctx context.Context, settings config.Settings) *GoBirthdayWheelApp {
	return &GoBirthdayWheelApp{
		App:      a,
		Ctx:      ctx,
		Settings: settings,
		Clock:    engine.RealClock{},
	}
}

// Env returns the collaborators handed to the widgets.
func (app *GoBirthdayWheelApp) Env() Env {
	return Env{
		Clock:     app.Clock,
		Scheduler: app.Scheduler,
		Animator:  app.Animator,
		Translate: app.GetMsg,
	}.withDefaults()
}

// Build loads the catalogs and creates the main window with its widgets
// and menus.
func (app *GoBirthdayWheelApp) Build() {
	app.SetupI18n()
	env := app.Env()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))

	app.NameEntry = widget.NewEntry()
	app.NameEntry.SetPlaceHolder(app.GetMsg(config.TKeyPlaceholderName))
	app.NameEntry.SetText(app.Settings.Name)

	app.DOBEntry = NewDateField(nil)
	app.DOBEntry.SetPlaceHolder(app.GetMsg(config.TKeyPlaceholderDOB))

	app.AgeLabel = widget.NewLabel("")
	app.AgeLabel.Wrapping = fyne.TextWrapWord

	app.Picker = NewWheelDatePicker(app.Window.Canvas(), &app.DOBEntry.Entry, env)
	app.DOBEntry.OnTapped = app.Picker.Open
	if initial, err := app.Settings.ParsedInitialDate(env.Clock.Now()); err == nil {
		app.Picker.SetDate(engine.DateFromTime(initial))
	}
	app.Picker.OnConfirmed = app.onDateConfirmed

	app.ToastArea = container.NewVBox()
	app.Notifier = NewNotifier(app.ToastArea, env)

	pickBtn := widget.NewButtonWithIcon("", theme.CalendarIcon(), app.Picker.Open)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel(app.GetMsg(config.TKeyLblName)), app.NameEntry,
		widget.NewLabel(app.GetMsg(config.TKeyLblDOB)), container.NewBorder(nil, nil, nil, pickBtn, app.DOBEntry),
	)
	content := container.NewPadded(container.NewVBox(form, widget.NewSeparator(), app.AgeLabel))

	// Toasts stack from the top of a right-hand column drawn above the form.
	toasts := container.NewBorder(nil, nil, nil, app.ToastArea)
	app.Window.SetContent(container.NewStack(content, toasts))

	app.MainMenu = app.buildMainMenu()
	app.Window.SetMainMenu(app.MainMenu)
}

// Run builds the window and blocks in the Fyne event loop until the
// window is closed or the context is cancelled.
func (app *GoBirthdayWheelApp) Run() {
	app.Build()

	go func() {
		<-app.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		fyne.Do(app.App.Quit)
	}()

	app.Window.ShowAndRun()
}

func (app *GoBirthdayWheelApp) buildMainMenu() *fyne.MainMenu {
	birthday := fyne.NewMenu(app.GetMsg(config.TKeyMenuBirthday),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuPick), app.Picker.Open),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuCopyVCard), func() {
			_ = app.CopyExport(engine.FormatVCard)
		}),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuCopyICal), func() {
			_ = app.CopyExport(engine.FormatICal)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuPasteVCard), func() {
			_ = app.PasteVCard()
		}),
	)

	items := make([]*fyne.MenuItem, 0, len(Kinds))
	for _, k := range Kinds {
		items = append(items, fyne.NewMenuItem(app.GetMsg(k.style().menuKey), func() {
			app.Notifier.Show(k)
		}))
	}
	notify := fyne.NewMenu(app.GetMsg(config.TKeyMenuNotify), items...)

	return fyne.NewMainMenu(birthday, notify)
}

// onDateConfirmed refreshes the age summary and acknowledges the choice.
func (app *GoBirthdayWheelApp) onDateConfirmed(d engine.Date) {
	now := app.Clock.Now()
	app.AgeLabel.SetText(app.AgeSummary(engine.Age(now, d), engine.DaysUntil(now, d)))
	app.Notifier.Show(KindInfo)
}

// CopyExport serializes the confirmed birthday and places it on the
// clipboard. The outcome is reported with a toast.
func (app *GoBirthdayWheelApp) CopyExport(f engine.ExportFormat) error {
	log := slog.With(config.LogKeyComponent, config.CompUI, config.LogKeyFormat, f.String())

	dob, ok := app.Picker.Confirmed()
	if !ok {
		log.Warn(config.MsgExportFailed, config.LogKeyError, config.ErrNoConfirmedDate)
		app.Notifier.Show(KindWarning)
		return errors.New(config.ErrNoConfirmedDate)
	}

	data, err := engine.Export(f, app.NameEntry.Text, dob, app.Clock.Now())
	if err != nil {
		log.Error(config.MsgExportFailed, config.LogKeyError, err)
		app.Notifier.Show(KindError)
		return err
	}

	app.App.Clipboard().SetContent(string(data))
	log.Info(config.MsgExportCopied,
		config.LogKeyDate, dob.Format(),
		config.LogKeySizeBytes, len(data))
	app.Notifier.Show(KindSuccess)
	return nil
}

// PasteVCard reads vCard text from the clipboard, loads the first contact
// with a full date of birth and opens the picker on it for confirmation.
func (app *GoBirthdayWheelApp) PasteVCard() error {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	contacts, err := engine.ImportVCards(app.Ctx, strings.NewReader(app.App.Clipboard().Content()), app.Env().Clock.Now())
	if err != nil {
		log.Error(config.MsgImportFailed, config.LogKeyError, err)
		app.Notifier.Show(KindError)
		return err
	}
	if len(contacts) == 0 {
		log.Warn(config.MsgImportFailed, config.LogKeyError, config.ErrNoBirthday)
		app.Notifier.Show(KindWarning)
		return errors.New(config.ErrNoBirthday)
	}

	c := contacts[0]
	log.Debug(config.MsgImportDone,
		config.LogKeyName, c.Name,
		config.LogKeyDate, c.DateOfBirth.Format())

	app.NameEntry.SetText(c.Name)
	app.Picker.SetDate(c.DateOfBirth)
	app.Picker.Open()
	return nil
}
