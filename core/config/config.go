package config

import (
	"fmt"
	"sync"

	"engagement-scheduler/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	// BaseURL is the collection endpoint of the external JSON store,
	// e.g. https://example.mockapi.io/engagements
	BaseURL        string
	TimeoutSeconds int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type StoreDevConfig struct {
	Enabled bool
}

type ScheduleConfig struct {
	BufferMinutes int
}

type LogConfig struct {
	Level string
}

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	StoreDev StoreDevConfig
	Schedule ScheduleConfig
	Log      LogConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables into the
// process-wide configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("config: no .env file found, using environment only")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("STORE_BASE_URL", "http://localhost:7070/collection")
	v.SetDefault("STORE_TIMEOUT_SECONDS", 10)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "engagements")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("STOREDEV_ENABLED", false)
	v.SetDefault("SCHEDULE_BUFFER_MINUTES", 30)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Store: StoreConfig{
			BaseURL:        v.GetString("STORE_BASE_URL"),
			TimeoutSeconds: v.GetInt("STORE_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		StoreDev: StoreDevConfig{
			Enabled: v.GetBool("STOREDEV_ENABLED"),
		},
		Schedule: ScheduleConfig{
			BufferMinutes: v.GetInt("SCHEDULE_BUFFER_MINUTES"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Store.BaseURL == "" {
		return nil, fmt.Errorf("STORE_BASE_URL must not be empty")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded configuration. Panics if Load was never called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the configuration and whether it has been initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
