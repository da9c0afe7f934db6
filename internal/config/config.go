package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
	Redis    RedisConfig
	Events   EventsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type SnapshotConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type EventsConfig struct {
	Stream string
	MaxLen int64
}

type LogConfig struct {
	Level string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom - то же, что Load, но с явным путём к .env файлу
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Snapshot: SnapshotConfig{
			Path: v.GetString("SNAPSHOT_PATH"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Events: EventsConfig{
			Stream: v.GetString("EVENTS_STREAM"),
			MaxLen: v.GetInt64("EVENTS_MAX_LEN"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "")
	v.SetDefault("API_PORT", 3001)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SNAPSHOT_PATH", "./data.json")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("EVENTS_STREAM", "stream:vendor:events")
	v.SetDefault("EVENTS_MAX_LEN", 10000)
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Snapshot.Path) == "" {
		return fmt.Errorf("SNAPSHOT_PATH must not be empty")
	}
	if c.Redis.Enabled && c.Events.Stream == "" {
		return fmt.Errorf("EVENTS_STREAM must not be empty when redis is enabled")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
