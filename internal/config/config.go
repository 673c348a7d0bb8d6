package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type LLMConfig struct {
	Primary    BackendConfig
	Enrichment BackendConfig
}

// BackendConfig describes one generative backend. Source selects the
// concrete client ("openrouter" or "ollama", empty disables the backend);
// the nested blocks carry source-specific settings.
type BackendConfig struct {
	Source      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	OpenRouter  OpenRouterConfig
	Ollama      OllamaConfig
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Referer string
	Title   string
}

type OllamaConfig struct {
	ServerURL string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is supported; defaults plus
		// environment variables cover every setting.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			StaticDir:    viper.GetString("server.static_dir"),
			AllowOrigins: viper.GetString("server.allow_origins"),
		},
		LLM: LLMConfig{
			Primary:    loadBackendConfig("llm.primary"),
			Enrichment: loadBackendConfig("llm.enrichment"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		config.LLM.Primary.OpenRouter.APIKey = key
		if config.LLM.Enrichment.OpenRouter.APIKey == "" {
			config.LLM.Enrichment.OpenRouter.APIKey = key
		}
	}
	if url := os.Getenv("OLLAMA_SERVER_URL"); url != "" {
		config.LLM.Primary.Ollama.ServerURL = url
		config.LLM.Enrichment.Ollama.ServerURL = url
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}

func loadBackendConfig(prefix string) BackendConfig {
	return BackendConfig{
		Source:      viper.GetString(prefix + ".source"),
		Model:       viper.GetString(prefix + ".model"),
		Temperature: viper.GetFloat64(prefix + ".temperature"),
		Timeout:     viper.GetDuration(prefix+".timeout") * time.Second,
		OpenRouter: OpenRouterConfig{
			APIKey:  viper.GetString(prefix + ".openrouter.api_key"),
			BaseURL: viper.GetString(prefix + ".openrouter.base_url"),
			Referer: viper.GetString(prefix + ".openrouter.referer"),
			Title:   viper.GetString(prefix + ".openrouter.title"),
		},
		Ollama: OllamaConfig{
			ServerURL: viper.GetString(prefix + ".ollama.server_url"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.read_timeout", 15)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("server.static_dir", "./web")
	viper.SetDefault("server.allow_origins", "*")

	viper.SetDefault("llm.primary.source", "openrouter")
	viper.SetDefault("llm.primary.model", "deepseek/deepseek-chat")
	viper.SetDefault("llm.primary.temperature", 0.4)
	viper.SetDefault("llm.primary.timeout", 45)
	viper.SetDefault("llm.primary.openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("llm.primary.openrouter.referer", "http://localhost")
	viper.SetDefault("llm.primary.openrouter.title", "Explainify")
	viper.SetDefault("llm.primary.ollama.server_url", "http://localhost:11434")

	viper.SetDefault("llm.enrichment.source", "openrouter")
	viper.SetDefault("llm.enrichment.model", "deepseek/deepseek-chat")
	viper.SetDefault("llm.enrichment.temperature", 0.7)
	viper.SetDefault("llm.enrichment.timeout", 45)
	viper.SetDefault("llm.enrichment.openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("llm.enrichment.openrouter.referer", "http://localhost")
	viper.SetDefault("llm.enrichment.openrouter.title", "Explainify")
	viper.SetDefault("llm.enrichment.ollama.server_url", "http://localhost:11434")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}
