package main

import (
	"testing"

	"github.com/atomicstack/gitmoji-picker/internal/app"
	"github.com/atomicstack/gitmoji-picker/internal/config"
)

func TestProbeTerminalCoversStandardStreams(t *testing.T) {
	info := probeTerminal()
	if len(info.Streams) != 3 {
		t.Fatalf("expected 3 stream probes, got %d", len(info.Streams))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Streams[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Streams[i].Name)
		}
	}
	if info.Detected != nil && !info.Streams[0].IsTerminal && !info.Streams[1].IsTerminal && !info.Streams[2].IsTerminal {
		t.Fatalf("detected a terminal with no terminal stream: %+v", info)
	}
}

func TestProbeStreamRejectsBadDescriptor(t *testing.T) {
	probe := probeStream("bogus", -1)
	if probe.IsTerminal || probe.Width != 0 {
		t.Fatalf("expected no terminal for fd -1, got %+v", probe)
	}
}

func TestStartWidth(t *testing.T) {
	detected := terminalInfo{Detected: &terminalSize{Stream: "stdout", Width: 120, Height: 40}}
	if got := startWidth(app.Config{}, detected); got != 120 {
		t.Fatalf("expected detected width 120, got %d", got)
	}
	if got := startWidth(app.Config{Width: 60}, detected); got != 0 {
		t.Fatalf("expected no seed with an explicit width, got %d", got)
	}
	if got := startWidth(app.Config{}, terminalInfo{}); got != 0 {
		t.Fatalf("expected no seed without a terminal, got %d", got)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			WindowSize: 4,
			Query:      "bug",
			DryRun:     true,
			ShowFooter: true,
			Width:      80,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"window": "4",
			"query":  "bug",
			"dryRun": "true",
			"footer": "true",
			"width":  "80",
		},
		Args: []string{"-window", "4", "-query", "bug", "-dry-run"},
	}

	tty := terminalInfo{Detected: &terminalSize{Stream: "stdout", Width: 80, Height: 24}}
	payload := startupTracePayload(cfg, tty)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["window"] != "4" {
		t.Fatalf("expected window 4, got %v", flagsValue["window"])
	}
	if flagsValue["query"] != "bug" {
		t.Fatalf("expected query bug, got %v", flagsValue["query"])
	}
	if flagsValue["dryRun"] != "true" {
		t.Fatalf("expected dryRun true, got %v", flagsValue["dryRun"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if argv, ok := payload["argv"].([]string); !ok || len(argv) != 5 {
		t.Fatalf("expected argv passthrough, got %#v", payload["argv"])
	}

	if got, ok := payload["tty"].(terminalInfo); !ok || got.Detected == nil || got.Detected.Width != 80 {
		t.Fatalf("expected terminal info in payload, got %#v", payload["tty"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
