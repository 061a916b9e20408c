package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Router struct {
		// ExtraKeywords appends terms to the built-in keyword sets, keyed by
		// set name ("audio", "image", "code", "reasoning", "quick-edit").
		// The built-in tables themselves are never replaced.
		ExtraKeywords map[string][]string `mapstructure:"extra_keywords"`
	} `mapstructure:"router"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")

	// Allow overrides like PROMPTROUTER_LOG_LEVEL without a config file.
	viper.SetEnvPrefix("PROMPTROUTER")
	viper.AutomaticEnv()
	viper.BindEnv("log.level", "PROMPTROUTER_LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env vars carry the day.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}
