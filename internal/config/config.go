package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	API    API    `mapstructure:"api"`
	Engine Engine `mapstructure:"engine"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Engine struct {
	// InputPath is the transactions CSV loaded by the API at startup.
	// The batch CLI takes its input path as an argument instead.
	InputPath string `mapstructure:"input_path"`
}

func Load() (cfg *Config, err error) {
	viper.SetDefault("api.port", "8080")
	viper.SetDefault("engine.input_path", "transactions.csv")

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
