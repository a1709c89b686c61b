package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Auth struct {
		// APISecret gates every /api/v1 request. Supplied at deploy time.
		APISecret string `mapstructure:"api_secret"`
	} `mapstructure:"auth"`

	Classifier struct {
		Provider     string `mapstructure:"provider"` // "openai" or "gemini"
		Model        string `mapstructure:"model"`
		OpenaiApiKey string `mapstructure:"openai_api_key"`
		GoogleApiKey string `mapstructure:"google_api_key"`
	} `mapstructure:"classifier"`

	Shopify struct {
		ShopDomain     string `mapstructure:"shop_domain"`
		APIVersion     string `mapstructure:"api_version"`
		AdminToken     string `mapstructure:"admin_token"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"shopify"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// Bind the well-known env vars without requiring a prefix.
	viper.BindEnv("auth.api_secret", "API_SECRET")
	viper.BindEnv("classifier.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("classifier.google_api_key", "GEMINI_API_KEY")
	viper.BindEnv("shopify.admin_token", "SHOPIFY_ADMIN_TOKEN")

	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("classifier.provider", "openai")
	viper.SetDefault("classifier.model", "gpt-3.5-turbo")
	viper.SetDefault("shopify.api_version", "2024-04")
	viper.SetDefault("shopify.timeout_seconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults may be
		// enough on their own.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
