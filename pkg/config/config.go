package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGigaChat = "gigachat"
	ProviderGemini   = "gemini"
	ProviderNone     = "none"
)

var providers = []string{ProviderGigaChat, ProviderGemini, ProviderNone}

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	LLM      LLMConfig
	Analysis AnalysisConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	BodyLimitMB      int
	CORSAllowOrigins string
}

type DataConfig struct {
	// Source is a local CSV path or a gs://bucket/object URI.
	Source             string
	SampleFallback     bool
	GCSCredentialsFile string
}

type LLMConfig struct {
	Provider string
	Timeout  time.Duration
	GigaChat GigaChatConfig
	Gemini   GeminiConfig
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
	Model              string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AnalysisConfig struct {
	MarkerTag           string
	FallbackCategory    string
	TopMerchants        int
	ContextTransactions int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, err := getEnvInt("SERVER_READ_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	bodyLimit, err := getEnvInt("SERVER_BODY_LIMIT_MB", 10)
	if err != nil {
		return nil, err
	}
	llmTimeout, err := getEnvInt("LLM_TIMEOUT", 60)
	if err != nil {
		return nil, err
	}
	topMerchants, err := getEnvInt("ANALYSIS_TOP_MERCHANTS", 10)
	if err != nil {
		return nil, err
	}
	contextTransactions, err := getEnvInt("ANALYSIS_CONTEXT_TRANSACTIONS", 50)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			ReadTimeout:      time.Duration(readTimeout) * time.Second,
			WriteTimeout:     time.Duration(writeTimeout) * time.Second,
			BodyLimitMB:      bodyLimit,
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Data: DataConfig{
			Source:             getEnv("DATA_SOURCE", "data/transactions.csv"),
			SampleFallback:     getEnv("DATA_SAMPLE_FALLBACK", "true") == "true",
			GCSCredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderGigaChat)),
			Timeout:  time.Duration(llmTimeout) * time.Second,
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true",
				Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			},
			Gemini: GeminiConfig{
				APIKey: getEnv("GEMINI_API_KEY", ""),
				Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			},
		},
		Analysis: AnalysisConfig{
			MarkerTag:           strings.ToLower(getEnv("ANALYSIS_MARKER_TAG", "kellogg")),
			FallbackCategory:    strings.ToLower(getEnv("ANALYSIS_FALLBACK_CATEGORY", "tuition")),
			TopMerchants:        topMerchants,
			ContextTransactions: contextTransactions,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if c.Server.BodyLimitMB < 1 {
		problems = append(problems, fmt.Sprintf("invalid body limit %d MB: must be at least 1", c.Server.BodyLimitMB))
	}

	if c.Data.Source == "" {
		problems = append(problems, "data source cannot be empty")
	} else if rest, ok := strings.CutPrefix(c.Data.Source, "gs://"); ok {
		if bucket, object, _ := strings.Cut(rest, "/"); bucket == "" || object == "" {
			problems = append(problems, fmt.Sprintf("invalid GCS data source '%s': expected gs://bucket/object", c.Data.Source))
		}
	}
	if c.Data.GCSCredentialsFile != "" {
		if _, err := os.Stat(c.Data.GCSCredentialsFile); os.IsNotExist(err) {
			problems = append(problems, fmt.Sprintf("GCS credentials file does not exist: %s", c.Data.GCSCredentialsFile))
		}
	}

	if !slices.Contains(providers, c.LLM.Provider) {
		problems = append(problems, fmt.Sprintf("invalid LLM provider '%s': must be one of %v", c.LLM.Provider, providers))
	}
	if c.LLM.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid LLM timeout %v: must be positive", c.LLM.Timeout))
	}
	switch c.LLM.Provider {
	case ProviderGigaChat:
		if c.LLM.GigaChat.APIKey == "" {
			problems = append(problems, "GIGACHAT_API_KEY is required when LLM_PROVIDER is gigachat")
		}
	case ProviderGemini:
		if c.LLM.Gemini.APIKey == "" {
			problems = append(problems, "GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
		}
	}

	if c.Analysis.MarkerTag == "" {
		problems = append(problems, "analysis marker tag cannot be empty")
	}
	if c.Analysis.TopMerchants < 1 {
		problems = append(problems, fmt.Sprintf("invalid top merchants limit %d: must be at least 1", c.Analysis.TopMerchants))
	}
	if c.Analysis.ContextTransactions < 0 {
		problems = append(problems, fmt.Sprintf("invalid context transaction count %d: must not be negative", c.Analysis.ContextTransactions))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a number", key, value)
	}
	return i, nil
}
