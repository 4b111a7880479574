package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App    AppConfig
	Source SourceConfig
	Redis  RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type SourceConfig struct {
	URL          string
	FetchTimeout time.Duration
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// Enabled reports whether a Redis host was configured. The snapshot cache is
// optional; without it the doctor list is fetched from the source on startup.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCTORS_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("REDIS_PORT", "6379")

	// .env is optional, everything can come from the environment.
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("DOCTORS_FETCH_TIMEOUT"))
	if err != nil {
		fetchTimeout = 10 * time.Second
	}

	snapshotTTL, err := time.ParseDuration(v.GetString("SNAPSHOT_TTL"))
	if err != nil {
		snapshotTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Source: SourceConfig{
			URL:          v.GetString("DOCTORS_SOURCE_URL"),
			FetchTimeout: fetchTimeout,
		},
		Redis: RedisConfig{
			Host:        v.GetString("REDIS_HOST"),
			Port:        v.GetString("REDIS_PORT"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			SnapshotTTL: snapshotTTL,
		},
	}

	return config, nil
}
