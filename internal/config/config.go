package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	MongoDB     MongoDBConfig
	JWT         JWTConfig
	Collections CollectionsConfig
	Probe       ProbeConfig
	LogLevel    string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// CollectionsConfig names the non-prize collections. Winner collections are
// fixed by the prize table and intentionally not configurable.
type CollectionsConfig struct {
	Submissions string
	ActivityLog string
}

// ProbeConfig configures the connectivity check performed before remote calls.
type ProbeConfig struct {
	Address string
	Timeout time.Duration
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; environment variables cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{"http://localhost:5173"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "discovery-raffle")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Collections.Submissions", "raffle-entries")
	viper.SetDefault("Collections.ActivityLog", "activity_log")
	viper.SetDefault("Probe.Address", "1.1.1.1:443")
	viper.SetDefault("Probe.Timeout", 2*time.Second)
	viper.SetDefault("LogLevel", "info")
}
