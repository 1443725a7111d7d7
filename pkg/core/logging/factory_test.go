package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("combilex")

	if cfg.Name != "combilex" {
		t.Errorf("Name = %v, want combilex", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	app := config.Default()
	app.General.LogLevel = "info"
	app.General.LogFormat = "json"

	tests := []struct {
		name       string
		cfg        *config.Config
		verbose    bool
		wantLevel  string
		wantFormat string
	}{
		{"nil config", nil, false, "warn", "text"},
		{"from config", app, false, "info", "json"},
		{"verbose overrides level", app, true, "debug", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := FromConfig("combilex", tt.cfg, tt.verbose)
			if lc.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", lc.Level, tt.wantLevel)
			}
			if lc.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", lc.Format, tt.wantFormat)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{" DEBUG ", mdwlog.LevelDebug},
		{"", mdwlog.LevelInfo},
		{"unknown", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  mdwlog.Format
	}{
		{"json", mdwlog.FormatJSON},
		{"text", mdwlog.FormatText},
		{"console", mdwlog.FormatConsole},
		{"logfmt", mdwlog.FormatLogfmt},
		{"", mdwlog.FormatText},
		{"xml", mdwlog.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormat(tt.input); got != tt.want {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:   "lexer",
		Level:  "debug",
		Format: "json",
		RunID:  "0f8fad5b-d9cb-469f-a165-70867728950e",
		Output: &buf,
	})

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}

	logger.Debug("lexed input", KeyValues("tokens", 9))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "lexed input" {
		t.Errorf("message = %v, want lexed input", entry["message"])
	}
	if entry["run_id"] != "0f8fad5b-d9cb-469f-a165-70867728950e" {
		t.Errorf("run_id = %v", entry["run_id"])
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("both")

	if primary.Len() == 0 || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestKeyValues(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want int
	}{
		{"empty", nil, 0},
		{"pairs", []interface{}{"a", 1, "b", "x"}, 2},
		{"odd count", []interface{}{"a", 1, "b"}, 1},
		{"non-string key", []interface{}{1, 2, "c", 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyValues(tt.args...); len(got) != tt.want {
				t.Errorf("len(KeyValues()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}
