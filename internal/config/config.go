package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила бронирования салона
type BookingConfig struct {
	OpenTime             string `toml:"open_time"`
	CloseTime            string `toml:"close_time"`
	SlotStepMinutes      int    `toml:"slot_step_minutes"`
	CouplesMaxAttempts   int    `toml:"couples_max_attempts"`
	CouplesBackoffStepMs int    `toml:"couples_backoff_step_ms"`
}

// BusinessHours рабочие часы салона
func (b BookingConfig) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		Open:  types.TimeString(b.OpenTime),
		Close: types.TimeString(b.CloseTime),
	}
}

// CouplesBackoffStep шаг линейной задержки между попытками парного бронирования
func (b BookingConfig) CouplesBackoffStep() time.Duration {
	return time.Duration(b.CouplesBackoffStepMs) * time.Millisecond
}

// CatalogConfig путь к каталогу услуг, комнат и мастеров
type CatalogConfig struct {
	Path string `toml:"path"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию, подставляет значения по умолчанию и проверяет ее
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "spa-booking"
	}

	if c.Booking.OpenTime == "" {
		c.Booking.OpenTime = domain.DefaultOpenTime
	}
	if c.Booking.CloseTime == "" {
		c.Booking.CloseTime = domain.DefaultCloseTime
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.GridStepMinutes
	}
	if c.Booking.CouplesMaxAttempts == 0 {
		c.Booking.CouplesMaxAttempts = domain.DefaultCouplesMaxAttempts
	}
	if c.Booking.CouplesBackoffStepMs == 0 {
		c.Booking.CouplesBackoffStepMs = int(domain.DefaultCouplesBackoffStep / time.Millisecond)
	}

	if c.Catalog.Path == "" {
		c.Catalog.Path = "configs/catalog.toml"
	}
}

// Validate проверяет значения после подстановки умолчаний
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if err := c.Booking.BusinessHours().Validate(); err != nil {
		return fmt.Errorf("%w: booking hours: %v", ErrInvalidConfig, err)
	}

	// Свободные слоты предлагаются по 15-минутной сетке
	if c.Booking.SlotStepMinutes <= 0 || c.Booking.SlotStepMinutes%domain.GridStepMinutes != 0 {
		return fmt.Errorf("%w: booking.slot_step_minutes must be a multiple of %d, got %d",
			ErrInvalidConfig, domain.GridStepMinutes, c.Booking.SlotStepMinutes)
	}

	if c.Booking.CouplesMaxAttempts < 1 || c.Booking.CouplesMaxAttempts > domain.DefaultCouplesMaxAttempts {
		return fmt.Errorf("%w: booking.couples_max_attempts must be between 1 and %d, got %d",
			ErrInvalidConfig, domain.DefaultCouplesMaxAttempts, c.Booking.CouplesMaxAttempts)
	}
	if c.Booking.CouplesBackoffStepMs < 0 {
		return fmt.Errorf("%w: booking.couples_backoff_step_ms must not be negative", ErrInvalidConfig)
	}

	return nil
}
