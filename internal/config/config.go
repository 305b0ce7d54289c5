package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/gitmoji-picker/internal/app"
)

// DefaultWindowSize is the number of rows the picker shows at once.
const DefaultWindowSize = 6

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWindow    = "GITMOJI_PICKER_WINDOW"
	envQuery     = "GITMOJI_PICKER_QUERY"
	envDir       = "GITMOJI_PICKER_DIR"
	envDryRun    = "GITMOJI_PICKER_DRY_RUN"
	envAltScreen = "GITMOJI_PICKER_ALT_SCREEN"
	envFooter    = "GITMOJI_PICKER_FOOTER"
	envWidth     = "GITMOJI_PICKER_WIDTH"
	envTrace     = "GITMOJI_PICKER_TRACE"
	envLogFile   = "GITMOJI_PICKER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gitmoji-picker", flag.ContinueOnError)
	var usage strings.Builder
	fs.SetOutput(&usage)

	window := fs.Int("window", envOrInt(env, envWindow, DefaultWindowSize), "number of gitmoji rows shown at once")
	query := fs.String("query", envOrDefault(env, envQuery, ""), "initial filter text")
	dir := fs.String("dir", envOrDefault(env, envDir, ""), "repository to commit in (defaults to the working directory)")
	dryRun := fs.Bool("dry-run", envOrBool(env, envDryRun, false), "print the commit message instead of running git")
	list := fs.Bool("list", false, "print the gitmoji catalog and exit")
	altScreen := fs.Bool("alt-screen", envOrBool(env, envAltScreen, false), "draw on the alternate screen instead of inline")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "show a key hint row below the list")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "truncate rows to this many cells (0 uses terminal width)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, helpError{usage: usage.String()}
		}
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			WindowSize: *window,
			Query:      *query,
			Dir:        *dir,
			DryRun:     *dryRun,
			List:       *list,
			AltScreen:  *altScreen,
			ShowFooter: *footer,
			Width:      *width,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"window":    strconv.Itoa(*window),
			"query":     *query,
			"dir":       *dir,
			"dryRun":    strconv.FormatBool(*dryRun),
			"list":      strconv.FormatBool(*list),
			"altScreen": strconv.FormatBool(*altScreen),
			"footer":    strconv.FormatBool(*footer),
			"width":     strconv.Itoa(*width),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// helpError carries the flag usage text for -h.
type helpError struct {
	usage string
}

func (e helpError) Error() string { return e.usage }

func (helpError) Unwrap() error { return flag.ErrHelp }

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
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
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
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
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the picker cannot run with.
func Validate(cfg Config) error {
	if cfg.App.WindowSize < 1 {
		return fmt.Errorf("window must be >= 1 (got %d)", cfg.App.WindowSize)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	return nil
}
