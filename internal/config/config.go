package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	LLM    LLMConfig
	Quiz   QuizConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig selects and configures the text-generation backend.
// Provider is one of "ollama" or "openai".
type LLMConfig struct {
	Provider string
	Ollama   OllamaConfig
	OpenAI   OpenAIConfig
	Timeout  time.Duration
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// QuizConfig controls quiz session behavior.
// Source is "llm" for generated scenarios or "catalog" for the built-in pool.
type QuizConfig struct {
	Source       string
	DefaultCount int
	MaxSteps     int
	SessionTTL   time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.ollama.model", "qwen3:0.6b")
	viper.SetDefault("llm.openai.model", "gpt-4o-mini")
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("quiz.source", "llm")
	viper.SetDefault("quiz.default_count", 8)
	viper.SetDefault("quiz.max_steps", 8)
	viper.SetDefault("quiz.session_ttl", 3600)
	viper.SetDefault("logger.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine; defaults plus env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  secondsDuration("server.read_timeout"),
			WriteTimeout: secondsDuration("server.write_timeout"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider: viper.GetString("llm.provider"),
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey: viper.GetString("llm.openai.api_key"),
				Model:  viper.GetString("llm.openai.model"),
			},
			Timeout: secondsDuration("llm.timeout"),
		},
		Quiz: QuizConfig{
			Source:       viper.GetString("quiz.source"),
			DefaultCount: viper.GetInt("quiz.default_count"),
			MaxSteps:     viper.GetInt("quiz.max_steps"),
			SessionTTL:   secondsDuration("quiz.session_ttl"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   os.Getenv("ENV"),
		},
	}

	// Override with environment variables if set
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.Ollama.ServerURL = llmServer
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.OpenAI.APIKey = openAIKey
	}

	return config, nil
}

// secondsDuration reads a timeout or TTL configured as a whole number
// of seconds.
func secondsDuration(key string) time.Duration {
	return time.Duration(viper.GetInt(key)) * time.Second
}
