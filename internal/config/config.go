package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/atomicstack/tabdeck/internal/logging"
	"github.com/atomicstack/tabdeck/internal/ui"
)

const (
	minPollInterval = 10 * time.Millisecond
	maxPollInterval = 5 * time.Second
)

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

// Load parses configuration from CLI arguments.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs allows tests to supply specific args.
func LoadArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("tabdeck", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	logFile := fs.String("log-file", logging.DefaultFile, "path to the log file")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	poll := fs.Duration("poll", ui.DefaultPollInterval, "how long each loop iteration waits for input")
	tab := fs.String("tab", "", "initial tab, matched fuzzily against tab labels")
	footer := fs.Bool("footer", false, "show key hints under the content region")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			PollInterval: *poll,
			InitialTab:   *tab,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"logFile": *logFile,
			"trace":   strconv.FormatBool(*trace),
			"poll":    poll.String(),
			"tab":     *tab,
			"footer":  strconv.FormatBool(*footer),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// Validate rejects values the dashboard cannot run with.
func Validate(cfg Config) error {
	poll := cfg.App.PollInterval
	if poll < minPollInterval || poll > maxPollInterval {
		return fmt.Errorf("poll must be between %s and %s (got %s)", minPollInterval, maxPollInterval, poll)
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return fmt.Errorf("log-file must not be empty")
	}
	return nil
}
