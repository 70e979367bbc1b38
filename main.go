package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/atomicstack/tabdeck/internal/config"
	"github.com/atomicstack/tabdeck/internal/logging"
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/session"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
	}
	_ = logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		os.Exit(1)
	}
}

// exitMessage formats a run failure for stderr. The terminal has already been
// released when this is printed.
func exitMessage(err error) string {
	if errors.Is(err, session.ErrNotTerminal) {
		return fmt.Sprintf("Error: %v\ntabdeck needs an interactive terminal on stdin and stdout", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg, session.SystemTerminal()))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, t session.Terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"poll":   cfg.App.PollInterval.String(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails(t)
	return payload
}

// ttyDetails summarises the startup probes. Ready is true when both stdin and
// stdout are terminals, which is what acquiring a session needs.
type ttyDetails struct {
	Detected *ttyDetected          `json:"detected,omitempty"`
	Probes   []session.ProbeResult `json:"probes"`
	Ready    bool                  `json:"ready"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func collectTTYDetails(t session.Terminal) ttyDetails {
	probes := session.Probe(t,
		session.Descriptor{Name: "stdin", File: os.Stdin},
		session.Descriptor{Name: "stdout", File: os.Stdout},
		session.Descriptor{Name: "stderr", File: os.Stderr},
	)
	details := ttyDetails{Probes: probes}
	for _, p := range probes {
		if p.Usable() {
			details.Detected = &ttyDetected{Source: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	details.Ready = probes[0].IsTerminal && probes[1].IsTerminal
	return details
}
