package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App    App    `mapstructure:"app"`
	AI     AI     `mapstructure:"ai"`
	Images Images `mapstructure:"images"`
	Output Output `mapstructure:"output"`
}

// App holds general application configuration
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// AI holds text-model configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Images holds image-model configuration
type Images struct {
	OpenAI OpenAIImageConfig `mapstructure:"openai"`
}

// OpenAIImageConfig holds OpenAI image generation configuration
type OpenAIImageConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"`
}

// Output holds output configuration
type Output struct {
	ArtifactsDir string `mapstructure:"artifacts_dir"` // Root for per-session image artifacts
}

// Load reads configuration from file, environment, and defaults.
// Priority: environment > config file > defaults.
func Load(configFile string) (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".craft")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".craft-cache")

	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.max_tokens", 8192)
	viper.SetDefault("ai.gemini.temperature", 0.7)

	viper.SetDefault("images.openai.model", "gpt-image-1")
	viper.SetDefault("images.openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("images.openai.timeout", "60s")

	viper.SetDefault("output.artifacts_dir", "artifacts")
}

// bindEnvironmentVariables maps well-known environment variables onto viper
// keys so that GEMINI_API_KEY / OPENAI_API_KEY work without a config file.
func bindEnvironmentVariables() {
	bindEnvKeys("ai.gemini.api_key", []string{"GEMINI_API_KEY", "GOOGLE_AI_API_KEY"})
	bindEnvKeys("ai.gemini.model", []string{"GEMINI_MODEL"})
	bindEnvKeys("images.openai.api_key", []string{"OPENAI_API_KEY"})
	bindEnvKeys("app.data_dir", []string{"CRAFT_DATA_DIR"})
	bindEnvKeys("app.log_level", []string{"CRAFT_LOG_LEVEL"})
}

// bindEnvKeys binds multiple environment variable names to a single viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if err := viper.BindEnv(viperKey, envKey); err != nil {
			// Binding only fails on an empty key; nothing actionable here
			continue
		}
	}
}
