package config

import (
	"errors"
	"time"

	"go-cartmaster/shared/common/env"
)

var (
	ErrInvalidHTTPPort  = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout  = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrDSN              = errors.New("DB_DSN must be set")
	ErrInvalidPoolSize  = errors.New("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
	ErrConnMaxLifetime  = errors.New("DB_CONN_MAX_LIFETIME must not be negative")
	ErrEmptyServiceName = errors.New("SERVICE_NAME must not be empty")
	ErrInvalidIDNode    = errors.New("ID_NODE must be between 0 and 1023")
)

// รวมการโหลดค่าคอนฟิกทั้งหมดไว้ในจุดเดียว
type Config struct {
	HTTPPort          int
	GracefulTimeout   time.Duration
	DSN               string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool
	GatewayHost       string
	GatewayBasePath   string
	OtelCollectorAddr string
	ServiceName       string
	IDNode            int64
}

// Load อ่านไฟล์ .env (ถ้ามี) ก่อน แล้วค่อยอ่าน environment variables
func Load() (*Config, error) {
	if err := env.Load(); err != nil {
		return nil, err
	}

	config := &Config{
		HTTPPort:          env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout:   env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		DSN:               env.Get("DB_DSN"),
		DBMaxOpenConns:    env.GetIntDefault("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    env.GetIntDefault("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: env.GetDurationDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		DBAutoMigrate:     env.GetBoolDefault("DB_AUTO_MIGRATE", false),
		GatewayHost:       env.Get("GATEWAY_HOST"),
		GatewayBasePath:   env.GetDefault("GATEWAY_BASEURL", "/api/v1"),
		OtelCollectorAddr: env.Get("OTEL_COLLECTOR_ADDR"),
		ServiceName:       env.GetDefault("SERVICE_NAME", "go-cartmaster"),
		IDNode:            int64(env.GetIntDefault("ID_NODE", 0)),
	}
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.DSN) == 0 {
		return ErrDSN
	}
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return ErrInvalidPoolSize
	}
	if c.DBConnMaxLifetime < 0 {
		return ErrConnMaxLifetime
	}
	if len(c.ServiceName) == 0 {
		return ErrEmptyServiceName
	}
	// ช่วงของ node ใน snowflake
	if c.IDNode < 0 || c.IDNode > 1023 {
		return ErrInvalidIDNode
	}

	return nil
}
