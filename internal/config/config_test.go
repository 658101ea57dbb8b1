package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "simple short flags",
			args: []string{"-u", "pattern"},
			want: []string{"-u", "pattern"},
		},
		{
			name: "combined mode flags",
			args: []string{"-uc", "pattern"},
			want: []string{"-u", "-c", "pattern"},
		},
		{
			name: "long flags untouched",
			args: []string{"--machine", "pattern"},
			want: []string{"--machine", "pattern"},
		},
		{
			name: "value flag untouched",
			args: []string{"-config", "defaults.yaml", "pattern"},
			want: []string{"-config", "defaults.yaml", "pattern"},
		},
		{
			name: "positionals untouched",
			args: []string{"pattern", "a.log", "b.log"},
			want: []string{"pattern", "a.log", "b.log"},
		},
		{
			name: "terminator stops expansion",
			args: []string{"-u", "--", "-ucm"},
			want: []string{"-u", "--", "-ucm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandArgs(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseArgsDefaultsToPlain(t *testing.T) {
	cfg, err := ParseArgs([]string{"mypattern", "a.log"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Mode != ModePlain {
		t.Errorf("Mode = %v, want plain", cfg.Mode)
	}
	if cfg.Pattern != "mypattern" {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, "mypattern")
	}
	if !reflect.DeepEqual(cfg.Files, []string{"a.log"}) {
		t.Errorf("Files = %v, want [a.log]", cfg.Files)
	}
	if cfg.StdinLabel != "stdin" {
		t.Errorf("StdinLabel = %q, want %q", cfg.StdinLabel, "stdin")
	}
}

func TestParseArgsModeFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want RenderMode
	}{
		{"underscore short", []string{"-u", "p"}, ModeUnderscore},
		{"underscore long", []string{"--underscore", "p"}, ModeUnderscore},
		{"color short", []string{"-c", "p"}, ModeColor},
		{"machine short", []string{"-m", "p"}, ModeMachine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("ParseArgs() error = %v", err)
			}
			if cfg.Mode != tt.want {
				t.Errorf("Mode = %v, want %v", cfg.Mode, tt.want)
			}
		})
	}
}

// режимы взаимоисключающие и отклоняются до запуска поиска
func TestParseArgsRejectsTwoModes(t *testing.T) {
	if _, err := ParseArgs([]string{"-u", "-c", "p"}); err == nil {
		t.Error("Expected an error for -u -c")
	}
	if _, err := ParseArgs([]string{"-uc", "p"}); err == nil {
		t.Error("Expected an error for combined -uc")
	}
	if _, err := ParseArgs([]string{"-ucm", "p"}); err == nil {
		t.Error("Expected an error for combined -ucm")
	}
}

func TestParseArgsRequiresPattern(t *testing.T) {
	if _, err := ParseArgs([]string{"-u"}); err == nil {
		t.Error("Expected an error when pattern is missing")
	}
}

func TestParseArgsNoFilesMeansStdin(t *testing.T) {
	cfg, err := ParseArgs([]string{"p"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if len(cfg.Files) != 0 {
		t.Errorf("Files = %v, want none", cfg.Files)
	}
}

func TestParseArgsDefaultsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	data := "env: prod\nlog_file: /tmp/g.log\nstdin_label: '-'\ndefault_mode: machine\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}

	cfg, err := ParseArgs([]string{"-config", path, "p"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want prod", cfg.Env)
	}
	if cfg.LogFile != "/tmp/g.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.StdinLabel != "-" {
		t.Errorf("StdinLabel = %q, want -", cfg.StdinLabel)
	}
	if cfg.Mode != ModeMachine {
		t.Errorf("Mode = %v, want machine", cfg.Mode)
	}
}

// явный флаг режима сильнее default_mode из файла
func TestParseArgsFlagOverridesDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	if err := os.WriteFile(path, []byte("default_mode: machine\n"), 0644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}

	cfg, err := ParseArgs([]string{"-u", "-config", path, "p"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Mode != ModeUnderscore {
		t.Errorf("Mode = %v, want underscore", cfg.Mode)
	}
}

func TestParseArgsBadDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	if err := os.WriteFile(path, []byte("default_mode: rainbow\n"), 0644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}

	if _, err := ParseArgs([]string{"-config", path, "p"}); err == nil {
		t.Error("Expected an error for unknown default_mode")
	}
}

func TestParseArgsMissingExplicitDefaultsFile(t *testing.T) {
	if _, err := ParseArgs([]string{"-config", "/nonexistent/defaults.yaml", "p"}); err == nil {
		t.Error("Expected an error for a missing explicit defaults file")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RenderMode
		wantErr bool
	}{
		{"", ModePlain, false},
		{"plain", ModePlain, false},
		{"underscore", ModeUnderscore, false},
		{"Color", ModeColor, false},
		{"machine", ModeMachine, false},
		{"rainbow", ModePlain, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
