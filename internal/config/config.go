package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Birthday Wheel"
	AppID       = "com.github.tartampluch.go-birthday-wheel"
	AppCommand  = "go-birthday-wheel"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags, Settings & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug           = "debug"
	FlagInitialDate     = "initial-date"
	FlagName            = "name"
	FlagDescDebug       = "Enable debug logging to stdout"
	FlagDescInitialDate = "Date preselected in the picker (YYYY-MM-DD)"
	FlagDescName        = "Contact name used when exporting the birthday"
	CmdShort            = "Pick a date of birth with scrollable wheels"
	MsgVersionOutput    = "%s version %s (%s/%s)\n"

	// Setting keys (viper). Env overrides use EnvPrefix, e.g. GOBIRTHDAYWHEEL_DEBUG.
	SettingDebug       = "debug"
	SettingInitialDate = "initial_date"
	SettingName        = "name"
	EnvPrefix          = "GOBIRTHDAYWHEEL"
	EnvConfigPath      = "GOBIRTHDAYWHEEL_CONFIG"
	ConfigDirName      = "go-birthday-wheel"
	ConfigFileName     = "config"
	ConfigFileType     = "toml"

	DefaultInitialDate = "2000-01-01"
	DefaultName        = ""
)

// -----------------------------------------------------------------------------
// Date Picker
// -----------------------------------------------------------------------------

const (
	// WheelItemHeight is shared by every item of every column.
	WheelItemHeight float32 = 40

	// WheelVisibleItems is the number of rows shown in a column viewport.
	// Must be odd so that one row sits exactly on the center line.
	WheelVisibleItems = 5

	WheelColumnWidthDay   float32 = 70
	WheelColumnWidthMonth float32 = 140
	WheelColumnWidthYear  float32 = 90

	// MinYear is the last (oldest) entry of the year wheel.
	MinYear = 1900

	DefaultDay   = 1
	DefaultMonth = 1
	DefaultYear  = 2000

	// CenterDelay defers wheel centering until the overlay has been laid out.
	CenterDelay = 100 * time.Millisecond

	// SmoothScrollDuration is the length of an animated wheel scroll.
	SmoothScrollDuration = 300 * time.Millisecond

	// FormatDayLabel zero-pads day labels inside the day wheel only.
	FormatDayLabel = "%02d"

	// FormatConfirmedDate renders "<MonthName> <Day>, <Year>".
	FormatConfirmedDate = "%s %d, %d"
)

// MonthNames is the fixed month list used by the month wheel and all date output.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// -----------------------------------------------------------------------------
// Toast Notifications
// -----------------------------------------------------------------------------

const (
	// ToastLifetime is the delay before a toast dismisses itself.
	ToastLifetime = 5 * time.Second

	// ToastExitDuration is the length of the exit transition before removal.
	ToastExitDuration = 500 * time.Millisecond

	ToastWidth float32 = 320
)

// -----------------------------------------------------------------------------
// Main Window
// -----------------------------------------------------------------------------

const (
	MainWinWidth  = 520
	MainWinHeight = 360
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyLblName         = "lbl_name"
	TKeyLblDOB          = "lbl_dob"
	TKeyPlaceholderDOB  = "placeholder_dob"
	TKeyPlaceholderName = "placeholder_name"
	TKeyAgeSummary      = "age_summary" // Requires Age, Days; pluralized on Days
	TKeyAgeSummaryToday = "age_summary_today"

	TKeyPickerTitle = "picker_title"
	TKeyBtnCancel   = "btn_cancel"
	TKeyBtnConfirm  = "btn_confirm"

	TKeyMenuBirthday    = "menu_birthday"
	TKeyMenuPick        = "menu_pick"
	TKeyMenuCopyVCard   = "menu_copy_vcard"
	TKeyMenuCopyICal    = "menu_copy_ical"
	TKeyMenuPasteVCard  = "menu_paste_vcard"
	TKeyMenuNotify      = "menu_notifications"
	TKeyMenuShowSuccess = "menu_show_success"
	TKeyMenuShowError   = "menu_show_error"
	TKeyMenuShowWarning = "menu_show_warning"
	TKeyMenuShowInfo    = "menu_show_info"

	TKeyToastSuccessTitle = "toast_success_title"
	TKeyToastSuccessMsg   = "toast_success_message"
	TKeyToastErrorTitle   = "toast_error_title"
	TKeyToastErrorMsg     = "toast_error_message"
	TKeyToastWarningTitle = "toast_warning_title"
	TKeyToastWarningMsg   = "toast_warning_message"
	TKeyToastInfoTitle    = "toast_info_title"
	TKeyToastInfoMsg      = "toast_info_message"
)

// DefaultLanguage is the only catalog shipped; month names are not translated.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Birthday Wheel//Engine//EN"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalRRule   = "FREQ=YEARLY"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTStamp  = "DTSTAMP"
	PropRRule    = "RRULE"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"
	PropMethod   = "METHOD"

	VCardVersion = "4.0"
	UIDDomain    = "gobirthdaywheel"
	UIDSalt      = "go-birthday-wheel-v1-"
	FormatUID    = "%s@%s"

	DateFormatISO   = "2006-01-02"
	DateFormatBasic = "20060102"
	DateFormatStamp = "20060102T150405Z"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocNotInit      = "localizer not initialized"
	ErrConfigRead      = "failed to read configuration file"
	ErrConfigUnmarshal = "failed to decode configuration"
	ErrInitialDate     = "invalid initial date"
	ErrYearRange       = "year out of range"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrDateParse       = "unrecognized birthday format"
	ErrNoBirthday      = "no contact with a full date of birth"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrNoConfirmedDate = "no date of birth has been confirmed"
	ErrExportFormat    = "unsupported export format"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackName         = "Unknown"
	FallbackSummary      = "Birthday: %s"
	FallbackAgeSummary   = "You are %d · next birthday in %d days"
	FallbackAgeToday     = "Happy birthday! You are %d today"
	FallbackPickerTitle  = "Date of birth"
	FallbackBtnCancel    = "Cancel"
	FallbackBtnConfirm   = "Confirm"
	FallbackSuccessTitle = "Success!"
	FallbackSuccessMsg   = "Your action was completed successfully."
	FallbackErrorTitle   = "Error!"
	FallbackErrorMsg     = "Something went wrong. Please try again."
	FallbackWarningTitle = "Warning!"
	FallbackWarningMsg   = "This action requires your attention."
	FallbackInfoTitle    = "Information"
	FallbackInfoMsg      = "Here is some information for you."
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop          = "Application stopped gracefully"
	MsgCtxCancel        = "Context cancelled, shutting down UI"
	MsgAppStarting      = "Starting application"
	MsgLocaleSkip       = "Skipping non-locale file"
	MsgLocaleBadName    = "Skipping malformed locale filename"
	MsgLocaleLoaded     = "Locale loaded successfully"
	MsgTransMissing     = "Missing translation key"
	MsgLogWarning       = "Warning: %s: %v\n"
	MsgConfigMissing    = "No configuration file found, using defaults"
	MsgConfigLoaded     = "Configuration file loaded"
	MsgPickerOpen       = "Date picker opened"
	MsgPickerClose      = "Date picker closed"
	MsgPickerCentered   = "Wheels centered"
	MsgPickerConfirm    = "Date confirmed"
	MsgPickerClamped    = "Day clamped to month length"
	MsgPickerOutOfRange = "Value outside wheel snapped to nearest item"
	MsgWheelSettled     = "Wheel settled"
	MsgToastShown       = "Toast shown"
	MsgToastDismiss     = "Toast dismissing"
	MsgToastRemoved     = "Toast removed"
	MsgToastDetached    = "Toast already detached, skipping removal"
	MsgExportCopied     = "Birthday export copied to clipboard"
	MsgExportFailed     = "Birthday export failed"
	MsgImportDone       = "vCard import finished"
	MsgImportFailed     = "vCard import failed"
	MsgSkippedCard      = "Skipping malformed vCard"
	MsgSkippedDate      = "Skipping unusable birthday"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyColumn    = "column"
	LogKeyIndex     = "index"
	LogKeyOffset    = "offset"
	LogKeyDate      = "date"
	LogKeyFromDay   = "from_day"
	LogKeyToDay     = "to_day"
	LogKeyToastID   = "toast_id"
	LogKeyKind      = "kind"
	LogKeyFormat    = "format"
	LogKeySizeBytes = "size_bytes"
	LogKeyPath      = "path"
	LogKeyValue     = "value"
	LogKeyClamped   = "clamped"
	LogKeyName      = "name"
	LogKeyProcessed = "processed"
	LogKeyImported  = "imported"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"

	// Startup Settings Keys
	LogKeySettings = "settings"
	LogKeyDebug    = "debug"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompPicker = "date_picker"
	CompToast  = "toast"
	CompEngine = "engine"
	CompConfig = "config"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
