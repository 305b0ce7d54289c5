// Command gitmoji-picker lets the user pick a gitmoji from a filtered list,
// prompts for a commit title and runs git commit with the result.
package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/gitmoji-picker/internal/app"
	"github.com/atomicstack/gitmoji-picker/internal/config"
	"github.com/atomicstack/gitmoji-picker/internal/logging"
	"github.com/atomicstack/gitmoji-picker/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal()
	events.App.Start(startupTracePayload(runtimeCfg, tty))
	runtimeCfg.App.TermWidth = startWidth(runtimeCfg.App, tty)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startWidth is the row width to draw with before the first resize event
// arrives. An explicit -width wins and needs no seed.
func startWidth(cfg app.Config, tty terminalInfo) int {
	if cfg.Width > 0 || tty.Detected == nil {
		return 0
	}
	return tty.Detected.Width
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type terminalInfo struct {
	Detected *terminalSize `json:"detected,omitempty"`
	Streams  []streamProbe `json:"streams"`
}

type terminalSize struct {
	Stream string `json:"stream"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type streamProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the standard streams in order. The first one that is
// a terminal with a readable size becomes the detected terminal; stdout
// usually wins when stdin is piped.
func probeTerminal() terminalInfo {
	streams := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	info := terminalInfo{Streams: make([]streamProbe, 0, len(streams))}
	for i, f := range streams {
		probe := probeStream(names[i], int(f.Fd()))
		if info.Detected == nil && probe.IsTerminal && probe.Error == "" {
			info.Detected = &terminalSize{Stream: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		info.Streams = append(info.Streams, probe)
	}
	return info
}

func probeStream(name string, fd int) streamProbe {
	probe := streamProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
