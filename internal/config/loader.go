package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram Telegram `mapstructure:"telegram"`
	Market   Market   `mapstructure:"market"`
}

type Telegram struct {
	Token string `mapstructure:"token"`
}

type Market struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (m Market) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

var App Config

// Load reads config/<path>.yaml if present, then the environment either way
// ("telegram.token" becomes TELEGRAM_TOKEN). Known keys need defaults so
// viper picks them up from the environment alone. The token is required.
func Load(path string) {
	viper.SetConfigName(path)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("telegram.token", "")
	viper.SetDefault("market.timeout_seconds", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file loaded, relying on environment: %v", err)
	}

	if err := viper.Unmarshal(&App); err != nil {
		log.Fatalf("Config unmarshal error: %v", err)
	}

	if App.Telegram.Token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}
}
