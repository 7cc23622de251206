package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/debugx"
)

// isolate points every lookup of LoadFromEnv at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(ConfigEnvVar, "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func sameOptions(a, b debugx.Options) bool {
	return a.Header == b.Header && a.Separator == b.Separator && a.Length == b.Length
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "helperx" {
		t.Errorf("General.Name = %v, want helperx", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Calendar.Timezone != "Local" {
		t.Errorf("Calendar.Timezone = %v, want Local", cfg.Calendar.Timezone)
	}
	if cfg.Calendar.Pattern != "Y-m-d H:i:s" {
		t.Errorf("Calendar.Pattern = %v, want Y-m-d H:i:s", cfg.Calendar.Pattern)
	}
	if !sameOptions(cfg.Debug.Options(), debugx.DefaultOptions()) {
		t.Errorf("Debug.Options() = %+v, want %+v", cfg.Debug.Options(), debugx.DefaultOptions())
	}
	if cfg.Debug.Color {
		t.Error("Debug.Color should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "config.toml", `
[general]
name = "converter"
log_level = "debug"
log_format = "json"

[calendar]
timezone = "UTC"
pattern = "Y/m/d"

[debug]
header = "dump"
separator = "-"
length = 30
color = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "converter" {
		t.Errorf("General.Name = %v, want converter", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want default development", cfg.General.Environment)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General log settings = %v/%v, want debug/json", cfg.General.LogLevel, cfg.General.LogFormat)
	}
	if cfg.Calendar.Pattern != "Y/m/d" {
		t.Errorf("Calendar.Pattern = %v, want Y/m/d", cfg.Calendar.Pattern)
	}
	want := debugx.Options{Header: "dump", Separator: "-", Length: 30}
	if !sameOptions(cfg.Debug.Options(), want) {
		t.Errorf("Debug.Options() = %+v, want %+v", cfg.Debug.Options(), want)
	}
	if !cfg.Debug.Color {
		t.Error("Debug.Color = false, want true")
	}

	loc, err := cfg.Calendar.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Calendar.Location() = %v, %v, want UTC", loc, err)
	}
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, name, `
general:
  name: yaml-app
calendar:
  timezone: UTC
debug:
  length: 20
`)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.General.Name != "yaml-app" {
				t.Errorf("General.Name = %v, want yaml-app", cfg.General.Name)
			}
			if cfg.Debug.Length != 20 {
				t.Errorf("Debug.Length = %v, want 20", cfg.Debug.Length)
			}
			if cfg.Debug.Separator != "=" {
				t.Errorf("Debug.Separator = %v, want default =", cfg.Debug.Separator)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing file", filepath.Join(dir, "absent.toml"), mdwerror.CodeMissingConfig},
		{"unsupported format", writeFile(t, dir, "config.ini", "a=b"), mdwerror.CodeInvalidConfig},
		{"malformed toml", writeFile(t, dir, "bad.toml", "[general\nname ="), mdwerror.CodeInvalidConfig},
		{"malformed yaml", writeFile(t, dir, "bad.yaml", "general: [unclosed"), mdwerror.CodeInvalidConfig},
		{"invalid level", writeFile(t, dir, "level.toml", "[general]\nlog_level = \"loud\""), mdwerror.CodeInvalidConfig},
		{"invalid timezone", writeFile(t, dir, "tz.toml", "[calendar]\ntimezone = \"Mars/Olympus\""), mdwerror.CodeInvalidConfig},
		{"negative length", writeFile(t, dir, "len.toml", "[debug]\nlength = -3"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[debug]\nlength = 30\nheader = \"file\"")

	t.Setenv("HELPERX_DEBUG_LENGTH", "40")
	t.Setenv("HELPERX_DEBUG_COLOR", "true")
	t.Setenv("HELPERX_CALENDAR_TIMEZONE", "UTC")
	t.Setenv("HELPERX_GENERAL_ENVIRONMENT", "production")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Debug.Length != 40 {
		t.Errorf("Debug.Length = %v, want 40 from environment", cfg.Debug.Length)
	}
	if cfg.Debug.Header != "file" {
		t.Errorf("Debug.Header = %v, want file", cfg.Debug.Header)
	}
	if !cfg.Debug.Color {
		t.Error("Debug.Color = false, want true from environment")
	}
	if cfg.Calendar.Timezone != "UTC" {
		t.Errorf("Calendar.Timezone = %v, want UTC", cfg.Calendar.Timezone)
	}
	if cfg.General.Environment != "production" {
		t.Errorf("General.Environment = %v, want production", cfg.General.Environment)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "config.toml", "")
	t.Setenv("HELPERX_DEBUG_LENGTH", "long")

	_, err := Load(path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[general]\nname = \"file\"")
	writeFile(t, dir, ".env", "HELPERX_GENERAL_NAME=dotenv\n")

	// registered for restore, then removed so .env can set it
	t.Setenv("HELPERX_GENERAL_NAME", "")
	os.Unsetenv("HELPERX_GENERAL_NAME")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Name != "dotenv" {
		t.Errorf("General.Name = %v, want dotenv", cfg.General.Name)
	}
}

func TestLoad_InvalidDotEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[general]\nname = \"file\"")
	writeFile(t, dir, ".env", "BAD-KEY=1\n")

	var buf bytes.Buffer
	previous := mdwlog.GetDefault()
	mdwlog.SetDefault(mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	}))
	t.Cleanup(func() { mdwlog.SetDefault(previous) })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Name != "file" {
		t.Errorf("General.Name = %v, want file", cfg.General.Name)
	}

	out := buf.String()
	if !strings.Contains(out, "skipping unreadable .env file") {
		t.Errorf("expected .env failure to be logged, got %q", out)
	}
	if !strings.Contains(out, filepath.Join(dir, ".env")) {
		t.Errorf("expected log to name the .env path, got %q", out)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, t.TempDir(), "custom.toml", "[general]\nname = \"explicit\"")
		t.Setenv(ConfigEnvVar, path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "explicit" {
			t.Errorf("General.Name = %v, want explicit", cfg.General.Name)
		}
	})

	t.Run("default location", func(t *testing.T) {
		dir := isolate(t)
		if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, "configs"), "config.toml", "[general]\nname = \"found\"")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "found" {
			t.Errorf("General.Name = %v, want found", cfg.General.Name)
		}
	})

	t.Run("home directory", func(t *testing.T) {
		dir := isolate(t)
		home := filepath.Join(dir, ".config", "helperx")
		if err := os.MkdirAll(home, 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, home, "config.toml", "[general]\nname = \"home\"")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "home" {
			t.Errorf("General.Name = %v, want home", cfg.General.Name)
		}
	})

	t.Run("tilde path", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, dir, "tilde.yaml", "general:\n  name: tilde\n")
		t.Setenv(ConfigEnvVar, "~/tilde.yaml")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "tilde" {
			t.Errorf("General.Name = %v, want tilde", cfg.General.Name)
		}
	})

	t.Run("no file uses defaults", func(t *testing.T) {
		isolate(t)
		t.Setenv("HELPERX_DEBUG_HEADER", "env")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "helperx" {
			t.Errorf("General.Name = %v, want helperx", cfg.General.Name)
		}
		if cfg.Debug.Header != "env" {
			t.Errorf("Debug.Header = %v, want env", cfg.Debug.Header)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "nope.toml"))

		_, err := LoadFromEnv()
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty separator", func(c *Config) { c.Debug.Separator = "" }},
		{"zero length", func(c *Config) { c.Debug.Length = 0 }},
		{"unknown format", func(c *Config) { c.General.LogFormat = "xml" }},
		{"unknown level", func(c *Config) { c.General.LogLevel = "chatty" }},
		{"unknown timezone", func(c *Config) { c.Calendar.Timezone = "Nowhere/Land" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
