package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
	"github.com/tartampluch/go-birthday-wheel/internal/ui"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (like closing
// log files) run before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain parses the command line and maps the outcome to an exit code.
func runMain(args []string) int {
	cmd := newRootCmd(run)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		// Cobra already printed the error.
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// newRootCmd builds the CLI. launch receives the merged settings and a
// context cancelled on SIGINT or SIGTERM.
func newRootCmd(launch func(context.Context, config.Settings) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.AppCommand,
		Short:   config.CmdShort,
		Version: config.Version,
		Args:    cobra.NoArgs,
		// Errors are reported by us; usage text would only add noise.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logCloser, logPath := setupLogging(settings.Debug)
			if logCloser != nil {
				defer func() {
					_ = logCloser.Close() // Best effort close
				}()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logStartupInfo(settings, logPath)

			if err := launch(ctx, settings); err != nil {
				slog.Error(config.ErrAppFailed,
					config.LogKeyComponent, config.CompMain,
					config.LogKeyError, err,
				)
				return err
			}

			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}

	cmd.SetVersionTemplate(versionString())

	flags := cmd.Flags()
	flags.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flags.String(config.FlagInitialDate, config.DefaultInitialDate, config.FlagDescInitialDate)
	flags.String(config.FlagName, config.DefaultName, config.FlagDescName)

	return cmd
}

// run initializes the Fyne application and blocks in the UI loop.
func run(ctx context.Context, settings config.Settings) error {
	a := app.NewWithID(config.AppID)

	gui := ui.NewGoBirthdayWheelApp(a, ctx, settings)
	gui.Run()

	return nil
}

// versionString renders the build information printed by --version.
func versionString() string {
	return fmt.Sprintf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo records the build, the host and the merged settings, so a
// single log line is enough to reproduce a session.
func logStartupInfo(settings config.Settings, logPath string) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyBuilt, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
			slog.String(config.LogKeyPath, logPath),
		),
		slog.Group(config.LogKeySettings,
			slog.Bool(config.LogKeyDebug, settings.Debug),
			slog.String(config.LogKeyDate, settings.InitialDate),
		),
	)
}

// setupLogging installs a JSON slog handler writing to stdout and, when the
// cache directory is usable, to a session log file. It returns the file to
// close on exit and its path, both empty when only stdout is used.
func setupLogging(debugMode bool) (io.Closer, string) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: debugMode}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, err)
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
		return nil, ""
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(os.Stdout, logFile), opts)))
	return logFile, logFile.Name()
}

// openLogFile creates <cache>/<app id>/<log name>, truncating the previous
// session's records.
func openLogFile() (*os.File, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	dir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return os.OpenFile(filepath.Join(dir, config.LogFileName), os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
}
