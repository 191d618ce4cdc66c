package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads the embedded message catalogs.
func (app *GoBirthdayWheelApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer(config.DefaultLanguage)
}

// UpdateLocalizer switches the translator to lang, falling back to the
// bundle's default language for missing messages.
func (app *GoBirthdayWheelApp) UpdateLocalizer(lang string) {
	if app.I18nBundle == nil {
		return
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *GoBirthdayWheelApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// AgeSummary describes the age at now and the wait until the next birthday.
func (app *GoBirthdayWheelApp) AgeSummary(age, days int) string {
	var msg string
	var err error

	if app.Localizer != nil {
		if days == 0 {
			msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyAgeSummaryToday,
				TemplateData: map[string]interface{}{"Age": age},
			})
		} else {
			msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyAgeSummary,
				TemplateData: map[string]interface{}{"Age": age, "Days": days},
				PluralCount:  days,
			})
		}
	} else {
		err = errors.New(config.ErrLocNotInit)
	}

	if err != nil || msg == "" {
		if days == 0 {
			return fmt.Sprintf(config.FallbackAgeToday, age)
		}
		return fmt.Sprintf(config.FallbackAgeSummary, age, days)
	}
	return msg
}
