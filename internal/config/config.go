package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	DataFile     string
	UpcomingDays int
	Environment  string
}

// Load reads configuration from environment variables and an optional
// .env file.
func Load() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SCHEDULER_DATA_FILE", "schedule.json")
	viper.SetDefault("SCHEDULER_UPCOMING_DAYS", 7)
	viper.SetDefault("ENVIRONMENT", "development")

	return &Config{
		DataFile:     viper.GetString("SCHEDULER_DATA_FILE"),
		UpcomingDays: viper.GetInt("SCHEDULER_UPCOMING_DAYS"),
		Environment:  viper.GetString("ENVIRONMENT"),
	}
}
