package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	DirectoryPath string `mapstructure:"DIRECTORY_PATH"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

var AppConfig Config

// Load reads config.yaml if present and overlays environment variables.
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("DIRECTORY_PATH", "data/phones.json")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func IsProduction() bool {
	return AppConfig.Env == "production"
}
