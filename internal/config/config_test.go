package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ttbl"
	"ttbl/internal/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ttbl.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Options() != ttbl.DefaultOptions() {
		t.Errorf("Options() = %+v, want defaults", cfg.Options())
	}

	s := cfg.Settings()
	if s != render.DefaultSettings() {
		t.Errorf("Settings() = %+v, want %+v", s, render.DefaultSettings())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[syntax]
fold_operators = true
short_literals = true

[table]
max_variables = 8
headers = "canonical"

[output]
format = "json"
true_symbol = "1"
false_symbol = "0"
border = "ascii"
color = false

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := ttbl.Options{FoldOperators: true, ShortLiterals: true, MaxVariables: 8}
	if cfg.Options() != want {
		t.Errorf("Options() = %+v, want %+v", cfg.Options(), want)
	}

	s := cfg.Settings()
	if s.Format != render.FormatJSON || s.Headers != ttbl.HeaderCanonical || s.TrueSymbol != "1" ||
		s.FalseSymbol != "0" || s.Border != "ascii" || s.Color {
		t.Errorf("Settings() = %+v", s)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if len(cfg.Undecoded) != 0 {
		t.Errorf("Undecoded = %v, want none", cfg.Undecoded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\ntrue_symbol = \"yes\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.TrueSymbol != "yes" || cfg.Output.FalseSymbol != "F" || !*cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Table.MaxVariables != ttbl.DefaultMaxVariables {
		t.Errorf("Table.MaxVariables = %d, want %d", cfg.Table.MaxVariables, ttbl.DefaultMaxVariables)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadUndecoded(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\nwidth = 80\n[extra]\nname = \"x\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := strings.Join(cfg.Undecoded, ",")
	if got != "output.width,extra,extra.name" && got != "output.width,extra.name" {
		t.Errorf("Undecoded = %v", cfg.Undecoded)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[output\n", "failed to parse config"},
		{"format", "[output]\nformat = \"csv\"\n", "output.format"},
		{"symbols", "[output]\ntrue_symbol = \"x\"\nfalse_symbol = \"x\"\n", "both"},
		{"border", "[output]\nborder = \"dotted\"\n", "output.border"},
		{"headers", "[table]\nheaders = \"short\"\n", "table.headers"},
		{"limit", "[table]\nmax_variables = -1\n", "table.max_variables"},
		{"limit over ceiling", "[table]\nmax_variables = 62\n", "table.max_variables"},
		{"level", "[log]\nlevel = \"trace\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() returned no error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	explicit := writeConfig(t, "")

	path, err := Locate(explicit)
	if err != nil || path != explicit {
		t.Errorf("Locate(explicit) = %q, %v", path, err)
	}

	if _, err := Locate(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Locate(missing) returned no error")
	}

	fromEnv := writeConfig(t, "")
	t.Setenv(EnvConfig, fromEnv)

	path, err = Locate("")
	if err != nil || path != fromEnv {
		t.Errorf("Locate(\"\") with %s = %q, %v", EnvConfig, path, err)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, path, err := LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want table", cfg.Output.Format)
	}
}

func TestExampleConfig(t *testing.T) {
	cfg, err := Load("../../ttbl.example.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Undecoded) != 0 {
		t.Errorf("Undecoded = %v", cfg.Undecoded)
	}
	if cfg.Settings() != render.DefaultSettings() || cfg.Options() != ttbl.DefaultOptions() {
		t.Error("example config differs from the defaults")
	}
}
