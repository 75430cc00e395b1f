package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     App
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// App describes user-provided application options.
type App struct {
	DataDir    string
	Locale     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Behavior   Behavior
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Behavior collects the static picker constants. These have defaults and no
// runtime override path; they are carried on the config so components receive
// them by injection rather than reading process-wide state.
type Behavior struct {
	MaxRecents          int
	MinPanelWidth       int
	MinPanelHeight      int
	DefaultPanelWidth   int
	DefaultPanelHeight  int
	ResizeEdgeThreshold int
	ClipboardCommand    string
	NotificationCommand string
	ClipboardTimeout    time.Duration
	NotificationTimeout time.Duration
	AutoCloseOnCopy     bool
	ShowNotifications   bool
	CloseOnFocusLoss    bool
}

const (
	envDataDir    = "KAOMOJI_POPUP_DATA_DIR"
	envLocale     = "KAOMOJI_POPUP_LOCALE"
	envWidth      = "KAOMOJI_POPUP_WIDTH"
	envHeight     = "KAOMOJI_POPUP_HEIGHT"
	envShowFooter = "KAOMOJI_POPUP_FOOTER"
	envVerbose    = "KAOMOJI_POPUP_VERBOSE"
	envTrace      = "KAOMOJI_POPUP_TRACE"
	envLogFile    = "KAOMOJI_POPUP_LOG_FILE"
)

// DefaultBehavior returns the static picker constants.
func DefaultBehavior() Behavior {
	return Behavior{
		MaxRecents:          15,
		MinPanelWidth:       28,
		MinPanelHeight:      10,
		DefaultPanelWidth:   44,
		DefaultPanelHeight:  16,
		ResizeEdgeThreshold: 2,
		ClipboardCommand:    "wl-copy",
		NotificationCommand: "notify-send",
		ClipboardTimeout:    time.Second,
		NotificationTimeout: time.Second,
		AutoCloseOnCopy:     true,
		ShowNotifications:   true,
		CloseOnFocusLoss:    true,
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("kaomoji-popup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory holding the catalog, settings, and locale files")
	locale := fs.String("locale", envOrDefault(env, envLocale, "en"), "translation locale")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	resolvedDataDir, err := resolveDataDir(*dataDir)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: App{
			DataDir:    resolvedDataDir,
			Locale:     *locale,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Behavior:   DefaultBehavior(),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataDir": resolvedDataDir,
			"locale":  *locale,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// resolveDataDir expands the default data directory under the user config
// path when none was supplied. The directory is created lazily by the
// components that write into it.
func resolveDataDir(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "kaomoji-popup"), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	b := cfg.App.Behavior
	if b.MaxRecents <= 0 {
		return fmt.Errorf("max recents must be positive (got %d)", b.MaxRecents)
	}
	if b.MinPanelWidth <= 2*b.ResizeEdgeThreshold || b.MinPanelHeight <= 2*b.ResizeEdgeThreshold {
		return fmt.Errorf("minimum panel size must exceed twice the resize threshold")
	}
	return nil
}
