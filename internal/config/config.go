package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Catalog CatalogConfig `toml:"catalog"`
	Mail    MailConfig    `toml:"mail"`
	Seed    SeedConfig    `toml:"seed"`
	Booking BookingConfig `toml:"booking"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// StorageConfig настройки key-value хранилища
// driver: "postgres", "redis" или "memory" (демо-режим без внешнего хранилища)
type StorageConfig struct {
	Driver   string         `toml:"driver"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

// PostgresConfig настройки подключения к PostgreSQL
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CatalogConfig настройки источника каталога услуг
type CatalogConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// TimeoutDuration возвращает таймаут как time.Duration
func (c *CatalogConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// MailConfig настройки отправки писем (best-effort, через SendGrid)
type MailConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	SalonName string `toml:"salon_name"`
}

// SeedConfig настройки одноразового посева демо-данных
type SeedConfig struct {
	LookaheadDays           int  `toml:"lookahead_days"`
	FallbackDurationMinutes int  `toml:"fallback_duration_minutes"`
	DemoWaitlist            bool `toml:"demo_waitlist"`
}

// BookingConfig настройки флоу бронирования
type BookingConfig struct {
	ThanksURL      string `toml:"thanks_url"`
	ClosedWeekdays []int  `toml:"closed_weekdays"` // 0=воскресенье ... 6=суббота
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Catalog: CatalogConfig{
			Timeout: 10,
		},
		Seed: SeedConfig{
			LookaheadDays:           5,
			FallbackDurationMinutes: 30,
		},
		Booking: BookingConfig{
			ThanksURL: "/thanks.html",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "redis", "memory":
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Catalog.URL == "" {
		return fmt.Errorf("config: catalog.url is required")
	}

	for _, d := range c.Booking.ClosedWeekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("config: booking.closed_weekdays values must be in 0..6, got %d", d)
		}
	}

	if c.Seed.LookaheadDays < 0 {
		return fmt.Errorf("config: seed.lookahead_days must not be negative")
	}

	return nil
}
