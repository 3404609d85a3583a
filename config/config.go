package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no model API key is configured. The
// server must refuse to start in that case rather than fail on the first
// generation request.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey   string  `mapstructure:"OPENAI_API_KEY"`     // API key for OpenAI
	Model       string  `mapstructure:"OPENAI_MODEL"`       // e.g., "gpt-4o"
	Temperature float32 `mapstructure:"OPENAI_TEMPERATURE"` // sampling temperature for generation
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	// Registered with an empty default so AutomaticEnv can see it even
	// when no config file declares the key.
	viper.SetDefault("OPENAI_API_KEY", "")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// Config file is optional; env vars alone are a valid setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return
}
