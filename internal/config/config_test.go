package config

import (
	"os"
	"testing"
)

var envKeys = []string{"HOST", "PORT", "DEBUG", "FLASK_DEBUG", "GEMINI_API_KEY", "GEMINI_MODEL", "INSTRUCTIONS_PATH"}

func clearEnv(t *testing.T) {
	t.Helper()
	// godotenv never overrides variables that are already set, so run from an
	// empty directory to keep a developer .env out of the way
	t.Chdir(t.TempDir())
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "5000")
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "models/gemini-flash-latest" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.InstructionsPath != "inavora.json" {
		t.Errorf("InstructionsPath = %q", cfg.InstructionsPath)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("INSTRUCTIONS_PATH", "/etc/inavora.json")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "secret")
	}
	if cfg.InstructionsPath != "/etc/inavora.json" {
		t.Errorf("InstructionsPath = %q", cfg.InstructionsPath)
	}
}

func TestDebugFlag(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "unset", env: nil, want: false},
		{name: "true", env: map[string]string{"DEBUG": "true"}, want: true},
		{name: "mixed case", env: map[string]string{"DEBUG": "True"}, want: true},
		{name: "one is not true", env: map[string]string{"DEBUG": "1"}, want: false},
		{name: "flask fallback", env: map[string]string{"FLASK_DEBUG": "TRUE"}, want: true},
		{name: "debug wins over flask", env: map[string]string{"DEBUG": "false", "FLASK_DEBUG": "true"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := Load().Debug; got != tt.want {
				t.Errorf("Debug = %v, want %v", got, tt.want)
			}
		})
	}
}
