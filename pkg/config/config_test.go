package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			BodyLimitMB:  10,
		},
		Data: DataConfig{Source: "data/transactions.csv", SampleFallback: true},
		LLM: LLMConfig{
			Provider: ProviderNone,
			Timeout:  time.Minute,
		},
		Analysis: AnalysisConfig{
			MarkerTag:           "kellogg",
			FallbackCategory:    "tuition",
			TopMerchants:        10,
			ContextTransactions: 50,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errorString string
	}{
		{name: "valid offline config", mutate: func(*Config) {}},
		{
			name:   "valid gcs source",
			mutate: func(c *Config) { c.Data.Source = "gs://ledgers/me/transactions.csv" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Server.Port = "abc" },
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Server.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown provider",
			mutate:      func(c *Config) { c.LLM.Provider = "openai" },
			errorString: "invalid LLM provider 'openai'",
		},
		{
			name:        "gigachat without key",
			mutate:      func(c *Config) { c.LLM.Provider = ProviderGigaChat },
			errorString: "GIGACHAT_API_KEY is required",
		},
		{
			name:        "gemini without key",
			mutate:      func(c *Config) { c.LLM.Provider = ProviderGemini },
			errorString: "GEMINI_API_KEY is required",
		},
		{
			name:        "bad gcs uri",
			mutate:      func(c *Config) { c.Data.Source = "gs://bucket-only" },
			errorString: "invalid GCS data source",
		},
		{
			name: "missing credentials file",
			mutate: func(c *Config) {
				c.Data.GCSCredentialsFile = filepath.Join(t.TempDir(), "nope.json")
			},
			errorString: "GCS credentials file does not exist",
		},
		{
			name:        "zero top merchants",
			mutate:      func(c *Config) { c.Analysis.TopMerchants = 0 },
			errorString: "invalid top merchants limit 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.errorString == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.errorString)
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = "nope"
	cfg.Data.Source = ""
	cfg.Analysis.MarkerTag = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 3 {
		t.Errorf("got %d problems, want 3: %v", n, err)
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LLM_TIMEOUT", "15")
	t.Setenv("DATA_SAMPLE_FALLBACK", "false")
	t.Setenv("ANALYSIS_MARKER_TAG", "Wharton")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %s", cfg.Server.Port)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.Data.SampleFallback {
		t.Error("sample fallback should be disabled")
	}
	if cfg.Analysis.MarkerTag != "wharton" || cfg.Analysis.TopMerchants != 10 {
		t.Errorf("analysis = %+v", cfg.Analysis)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANALYSIS_TOP_MERCHANTS", "ten")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ANALYSIS_TOP_MERCHANTS") {
		t.Errorf("Load() error = %v", err)
	}
}
