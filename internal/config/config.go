// Package config loads application settings from defaults, an optional
// YAML file and WISDOMQUEST_* environment variables, in increasing order of
// precedence. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/llm"
)

// EnvPrefix prefixes every environment override, e.g. WISDOMQUEST_LOG_LEVEL.
const EnvPrefix = "WISDOMQUEST"

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	// DBPath is the SQLite file. Empty means the default data path.
	DBPath string

	Storage StorageConfig
	LLM     llm.Config
	Content content.Config
	Log     LogConfig
	UI      UIConfig

	// Strict makes session misuse panic. Meant for development.
	Strict bool
}

// StorageConfig selects where progress is saved. LLM request events always
// go to SQLite.
type StorageConfig struct {
	Backend     string
	RedisURL    string
	RedisPrefix string
}

type LogConfig struct {
	Level  string
	Format string // console or json
	File   string // empty means <data dir>/wisdomquest.log
}

type UIConfig struct {
	// Phonetics shows zhuyin readings above annotated characters.
	Phonetics bool
}

// LoadOptions locates the config file.
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string

	// Dirs are searched for config.yaml when File is empty. A missing file
	// is not an error.
	Dirs []string
}

func setDefaults(v *viper.Viper) {
	lc := llm.DefaultConfig()
	cc := content.DefaultConfig()

	v.SetDefault("db.path", "")
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.redis_prefix", "wisdomquest:")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", lc.Timeout)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", lc.Gemini.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", lc.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", lc.Anthropic.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", lc.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", lc.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", lc.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", lc.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", lc.Retry.Multiplier)

	v.SetDefault("content.questions", cc.Questions)
	v.SetDefault("content.max_tokens", cc.MaxTokens)
	v.SetDefault("content.temperature", cc.Temperature)
	v.SetDefault("content.timeout", cc.Timeout)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")

	v.SetDefault("ui.phonetics", true)
	v.SetDefault("strict", false)
}

// Load reads the configuration and discovers the LLM provider from the
// well-known API key variables when none is configured.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else if len(opts.Dirs) > 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, d := range opts.Dirs {
			v.AddConfigPath(d)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		DBPath: v.GetString("db.path"),
		Storage: StorageConfig{
			Backend:     strings.ToLower(v.GetString("storage.backend")),
			RedisURL:    v.GetString("storage.redis_url"),
			RedisPrefix: v.GetString("storage.redis_prefix"),
		},
		LLM: llm.Config{
			Provider: strings.ToLower(v.GetString("llm.provider")),
			Gemini: llm.GeminiConfig{
				APIKey: v.GetString("llm.gemini.api_key"),
				Model:  v.GetString("llm.gemini.model"),
			},
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("llm.openai.api_key"),
				Model:   v.GetString("llm.openai.model"),
				BaseURL: v.GetString("llm.openai.base_url"),
			},
			Anthropic: llm.AnthropicConfig{
				APIKey: v.GetString("llm.anthropic.api_key"),
				Model:  v.GetString("llm.anthropic.model"),
			},
			OpenRouter: llm.OpenRouterConfig{
				APIKey:  v.GetString("llm.openrouter.api_key"),
				Model:   v.GetString("llm.openrouter.model"),
				BaseURL: v.GetString("llm.openrouter.base_url"),
			},
			Retry: llm.RetryConfig{
				MaxAttempts: v.GetInt("llm.retry.max_attempts"),
				InitialWait: v.GetDuration("llm.retry.initial_wait"),
				MaxWait:     v.GetDuration("llm.retry.max_wait"),
				Multiplier:  v.GetFloat64("llm.retry.multiplier"),
			},
			Timeout: v.GetDuration("llm.timeout"),
		},
		Content: content.Config{
			Questions:   v.GetInt("content.questions"),
			MaxTokens:   v.GetInt("content.max_tokens"),
			Temperature: v.GetFloat64("content.temperature"),
			Timeout:     v.GetDuration("content.timeout"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
			File:   v.GetString("log.file"),
		},
		UI: UIConfig{
			Phonetics: v.GetBool("ui.phonetics"),
		},
		Strict: v.GetBool("strict"),
	}
	cfg.LLM.Discover(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected silently. Provider
// credentials are checked when the provider is built.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
	case BackendRedis:
		if c.Storage.RedisURL == "" {
			return errors.New("config: storage.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}

	if c.Content.Questions < 1 {
		return fmt.Errorf("config: content.questions must be positive, got %d", c.Content.Questions)
	}
	if c.Content.Timeout < 0 || c.LLM.Timeout < 0 {
		return errors.New("config: timeouts must not be negative")
	}
	return nil
}

// Default returns the built-in configuration without reading files or the
// environment.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendSQLite, RedisPrefix: "wisdomquest:"},
		LLM:     llm.DefaultConfig(),
		Content: content.DefaultConfig(),
		Log:     LogConfig{Level: "info", Format: "console"},
		UI:      UIConfig{Phonetics: true},
	}
}
