package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

// --- DefaultConfig ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Server.ListenAddr = %q; want %q", cfg.Server.ListenAddr, ":8080")
	}

	if cfg.Server.Workers != 2 {
		t.Errorf("Server.Workers = %d; want 2", cfg.Server.Workers)
	}

	if cfg.Server.MaxTextBytes != 4096 {
		t.Errorf("Server.MaxTextBytes = %d; want 4096", cfg.Server.MaxTextBytes)
	}

	if cfg.TTS.Engine != EngineLunarlistONNX {
		t.Errorf("TTS.Engine = %q; want %q", cfg.TTS.Engine, EngineLunarlistONNX)
	}

	if cfg.TTS.Language != "th-th" {
		t.Errorf("TTS.Language = %q; want %q", cfg.TTS.Language, "th-th")
	}

	if !cfg.TTS.Quiet {
		t.Error("TTS.Quiet = false; want true")
	}

	if !cfg.Preprocess.ExpandNumbers {
		t.Error("Preprocess.ExpandNumbers = false; want true")
	}

	if !cfg.Preprocess.ExpandMaiYamok {
		t.Error("Preprocess.ExpandMaiYamok = false; want true")
	}
}

// --- NormalizeEngine ---

func TestNormalizeEngine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lunarlist onnx canonical", "lunarlist-onnx", "lunarlist-onnx", false},
		{"underscore spelling", "lunarlist_onnx", "lunarlist-onnx", false},
		{"khanomtan", "khanomtan", "khanomtan", false},
		{"lunarlist", "lunarlist", "lunarlist", false},
		{"vachana", "vachana", "vachana", false},
		{"uppercase", "VACHANA", "vachana", false},
		{"with spaces", "  khanomtan  ", "khanomtan", false},
		{"empty defaults to lunarlist-onnx", "", "lunarlist-onnx", false},
		{"whitespace defaults to lunarlist-onnx", "   ", "lunarlist-onnx", false},
		{"invalid value", "tacotron", "", true},
		{"invalid with spaces", "  bad  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEngine(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeEngine(%q) = %q, nil; want error", tt.input, got)
				}

				return
			}

			if err != nil {
				t.Errorf("NormalizeEngine(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("NormalizeEngine(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

// --- RegisterFlags ---

func TestRegisterFlags(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	// Spot-check a few flags are registered with correct defaults.
	checks := []struct {
		flag string
		want string
	}{
		{"log-level", "info"},
		{"server-listen-addr", ":8080"},
		{"tts-engine", "lunarlist-onnx"},
		{"tts-language", "th-th"},
		{"preprocess-expand-numbers", "true"},
		{"preprocess-expand-mai-yamok", "true"},
	}

	for _, c := range checks {
		f := fs.Lookup(c.flag)
		if f == nil {
			t.Errorf("flag %q not registered", c.flag)
			continue
		}

		if f.DefValue != c.want {
			t.Errorf("flag %q default = %q; want %q", c.flag, f.DefValue, c.want)
		}
	}
}

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	cfg, err := Load(LoadOptions{
		Cmd:      &fakeBinder{fs: fs},
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TTS.Engine != defaults.TTS.Engine {
		t.Errorf("TTS.Engine = %q; want %q", cfg.TTS.Engine, defaults.TTS.Engine)
	}

	if cfg.Server.Workers != defaults.Server.Workers {
		t.Errorf("Server.Workers = %d; want %d", cfg.Server.Workers, defaults.Server.Workers)
	}

	if cfg.Preprocess.ExpandNumbers != defaults.Preprocess.ExpandNumbers {
		t.Errorf("Preprocess.ExpandNumbers = %v; want %v",
			cfg.Preprocess.ExpandNumbers, defaults.Preprocess.ExpandNumbers)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	err := fs.Parse([]string{
		"--tts-engine=vachana",
		"--tts-voice=th_m_1",
		"--preprocess-expand-numbers=false",
		"--log-level=debug",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(LoadOptions{
		Cmd:      &fakeBinder{fs: fs},
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TTS.Engine != "vachana" {
		t.Errorf("TTS.Engine = %q; want %q", cfg.TTS.Engine, "vachana")
	}

	if cfg.TTS.Voice != "th_m_1" {
		t.Errorf("TTS.Voice = %q; want %q", cfg.TTS.Voice, "th_m_1")
	}

	if cfg.Preprocess.ExpandNumbers {
		t.Error("Preprocess.ExpandNumbers = true; want false")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("THAITTS_LOG_LEVEL", "warn")
	t.Setenv("THAITTS_SERVER_LISTEN_ADDR", ":9999")

	cfg, err := Load(LoadOptions{
		Defaults: DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "warn")
	}

	if cfg.Server.ListenAddr != ":9999" {
		t.Errorf("Server.ListenAddr = %q; want %q", cfg.Server.ListenAddr, ":9999")
	}
}

func TestLoad_ConfigFileExists_NoError(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "thaitts.yaml")

	err := os.WriteFile(cfgFile, []byte("log_level: warn\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Load(LoadOptions{
		ConfigFile: cfgFile,
		Defaults:   DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "bad.yaml")

	err := os.WriteFile(cfgFile, []byte(":\t:bad yaml:::"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Load(LoadOptions{
		ConfigFile: cfgFile,
		Defaults:   DefaultConfig(),
	})
	if err == nil {
		t.Error("Load() = nil; want error for invalid config file")
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: "/nonexistent/path/thaitts.yaml",
		Defaults:   DefaultConfig(),
	})
	if err == nil {
		t.Error("Load() = nil; want error for missing explicit config file")
	}
}
