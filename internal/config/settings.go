package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds the runtime options read at start-up.
// They are never written back; the application keeps no state between sessions.
type Settings struct {
	Debug       bool   `mapstructure:"debug"`
	InitialDate string `mapstructure:"initial_date"`
	Name        string `mapstructure:"name"`
}

// Load merges defaults, an optional TOML file, GOBIRTHDAYWHEEL_* environment
// variables and the given command-line flags (highest precedence).
// flags may be nil.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault(SettingDebug, false)
	v.SetDefault(SettingInitialDate, DefaultInitialDate)
	v.SetDefault(SettingName, DefaultName)

	v.SetConfigType(ConfigFileType)
	if cfgPath := os.Getenv(EnvConfigPath); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigDirName))
		}
		v.SetConfigName(ConfigFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			SettingDebug:       FlagDebug,
			SettingInitialDate: FlagInitialDate,
			SettingName:        FlagName,
		}
		for key, flagName := range bindings {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("%s: %w", ErrConfigRead, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%s: %w", ErrConfigRead, err)
		}
		slog.Debug(MsgConfigMissing, LogKeyComponent, CompConfig)
	} else {
		slog.Debug(MsgConfigLoaded,
			LogKeyComponent, CompConfig,
			LogKeyPath, v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrConfigUnmarshal, err)
	}

	if _, err := s.ParsedInitialDate(time.Now()); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParsedInitialDate returns InitialDate as a calendar date. The year must
// lie on the year wheel, between MinYear and the year of now.
func (s Settings) ParsedInitialDate(now time.Time) (time.Time, error) {
	t, err := time.Parse(DateFormatISO, s.InitialDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", ErrInitialDate, err)
	}
	if t.Year() < MinYear || t.Year() > now.Year() {
		return time.Time{}, fmt.Errorf("%s: %s: %d", ErrInitialDate, ErrYearRange, t.Year())
	}
	return t, nil
}
