package main

import (
	"testing"

	"github.com/atomicstack/servarr-dash/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		Radarr: []config.Servarr{{Host: "media.lan", Port: 7878, APIToken: "secret"}},
		Logging: config.Logging{
			File:  "trace.log",
			Trace: true,
		},
		Flags: map[string]string{
			"config":  "servarr.yml",
			"workers": "3",
			"timeout": "30s",
		},
		Args: []string{"--config", "servarr.yml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "servarr.yml" {
		t.Fatalf("expected config flag %q, got %v", "servarr.yml", flagsValue["config"])
	}
	if flagsValue["workers"] != "3" {
		t.Fatalf("expected workers 3, got %v", flagsValue["workers"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if got := cfgValue.Radarr[0]; got.Host != "media.lan" || got.APIToken != "***" {
		t.Fatalf("expected masked radarr entry, got %#v", got)
	}
	if cfg.Radarr[0].APIToken != "secret" {
		t.Fatalf("expected the input config to keep its token")
	}
}
