package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Upload UploadConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

// StoreConfig selects the entity store backend
type StoreConfig struct {
	Driver     string
	SeedSample bool
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type CacheConfig struct {
	DashboardTTL time.Duration
}

type UploadConfig struct {
	BaseURL  string
	MaxBytes int64
}

// Loader reads configuration from an optional .env file and the environment
type Loader struct {
	v *viper.Viper
}

func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DASHBOARD_CACHE_TTL", "30s")
	v.SetDefault("UPLOAD_BASE_URL", "https://storage.mothergrid.com")
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)

	return &Loader{v: v}
}

// Load reads the config file if it exists. A missing file is not an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(l.v.GetString("DASHBOARD_CACHE_TTL"))
	if err != nil {
		cacheTTL = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: l.v.GetString("APP_PORT"),
			Env:  l.v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: l.v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Driver:     l.v.GetString("STORE_DRIVER"),
			SeedSample: l.v.GetBool("SEED_SAMPLE_DATA"),
		},
		DB: DBConfig{
			Host:     l.v.GetString("DB_HOST"),
			Port:     l.v.GetString("DB_PORT"),
			User:     l.v.GetString("DB_USER"),
			Password: l.v.GetString("DB_PASSWORD"),
			Name:     l.v.GetString("DB_NAME"),
			TimeZone: l.v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     l.v.GetString("REDIS_HOST"),
			Port:     l.v.GetString("REDIS_PORT"),
			Password: l.v.GetString("REDIS_PASSWORD"),
			DB:       l.v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DashboardTTL: cacheTTL,
		},
		Upload: UploadConfig{
			BaseURL:  l.v.GetString("UPLOAD_BASE_URL"),
			MaxBytes: l.v.GetInt64("UPLOAD_MAX_BYTES"),
		},
	}

	if config.Store.Driver != StoreDriverMemory && config.Store.Driver != StoreDriverPostgres {
		return nil, errors.New("STORE_DRIVER must be memory or postgres")
	}

	return config, nil
}

// WatchLogLevel re-applies LOG_LEVEL to log whenever the config file changes
func (l *Loader) WatchLogLevel(log *logrus.Logger) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		level, err := logrus.ParseLevel(l.v.GetString("LOG_LEVEL"))
		if err != nil {
			log.Warnf("Ignoring invalid LOG_LEVEL after %s: %v", e.Name, err)
			return
		}
		log.SetLevel(level)
		log.Infof("Log level set to %s", level)
	})
	l.v.WatchConfig()
}
