package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if !cfg.ColorEnabled() {
		t.Error("ColorEnabled() = false, want true")
	}
	if cfg.Batch.Workers != 0 {
		t.Errorf("Batch.Workers = %v, want 0", cfg.Batch.Workers)
	}
	if cfg.REPL.Prompt != "combilex> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "combilex> ")
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "combilex.toml", `
[general]
log_level = "debug"
log_format = "json"

[output]
format = "yaml"
color = false

[batch]
workers = 4

[repl]
prompt = "> "
history_file = "/tmp/combilex_history"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.ColorEnabled() {
		t.Error("ColorEnabled() = true, want false")
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Batch.Workers = %v, want 4", cfg.Batch.Workers)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "> ")
	}
	if cfg.REPL.HistoryFile != "/tmp/combilex_history" {
		t.Errorf("REPL.HistoryFile = %v", cfg.REPL.HistoryFile)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "combilex.yaml", `
general:
  log_level: info
output:
  format: json
batch:
  workers: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Batch.Workers != 2 {
		t.Errorf("Batch.Workers = %v, want 2", cfg.Batch.Workers)
	}
	// defaults still apply to missing keys
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("COMBILEX_TEST_HOME", "/home/tester")
	path := writeFile(t, "combilex.toml", `
[repl]
history_file = "$COMBILEX_TEST_HOME/.combilex_history"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.REPL.HistoryFile != "/home/tester/.combilex_history" {
		t.Errorf("REPL.HistoryFile = %v", cfg.REPL.HistoryFile)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode mdwerror.Code
	}{
		{"invalid toml", "bad.toml", "[general\nlog_level = ", mdwerror.CodeConfigError},
		{"invalid yaml", "bad.yaml", "general: [unclosed", mdwerror.CodeConfigError},
		{"unknown output format", "fmt.toml", "[output]\nformat = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"unknown log level", "lvl.toml", "[general]\nlog_level = \"loud\"\n", mdwerror.CodeInvalidConfig},
		{"unknown log format", "lf.toml", "[general]\nlog_format = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"negative workers", "w.toml", "[batch]\nworkers = -1\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeNotFound)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[output]\nformat = \"debug\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Format != FormatDebug {
		t.Errorf("Output.Format = %v, want debug", cfg.Output.Format)
	}
}

func TestLoadFromEnv_FallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want defaults", cfg.Path())
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", true},
		{"debug", true},
		{"xml", false},
		{"", false},
		{"JSON", false},
	}

	for _, tt := range tests {
		if got := IsValidFormat(tt.format); got != tt.want {
			t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}
