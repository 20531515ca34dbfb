package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "pvoffer"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Engine EngineConfig
	Export ExportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if strings.TrimSpace(cfg.DB.Path) == "" {
		return nil, fmt.Errorf("PVOFFER_DB_PATH must not be empty")
	}
	if cfg.Engine.Timeout <= 0 {
		return nil, fmt.Errorf("PVOFFER_ENGINE_TIMEOUT must be positive")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PVOFFER_APP_ENV" default:"dev"`
	Port         string `envconfig:"PVOFFER_APP_PORT" default:"8090"`
	LogLevel     string `envconfig:"PVOFFER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PVOFFER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Path        string        `envconfig:"PVOFFER_DB_PATH" default:"solar_calculator.db"`
	BusyTimeout time.Duration `envconfig:"PVOFFER_DB_BUSY_TIMEOUT" default:"5s"`
	AutoMigrate bool          `envconfig:"PVOFFER_DB_AUTO_MIGRATE" default:"true"`
}

// DSN renders the sqlite connection string with foreign keys enforced.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", d.Path, d.BusyTimeout.Milliseconds())
}

// EngineConfig describes how the external calculation engine is spawned.
type EngineConfig struct {
	Command string        `envconfig:"PVOFFER_ENGINE_COMMAND" default:"python"`
	Script  string        `envconfig:"PVOFFER_ENGINE_SCRIPT" default:"python_bridge.py"`
	Timeout time.Duration `envconfig:"PVOFFER_ENGINE_TIMEOUT" default:"120s"`
}

// Args returns the argv tail passed to the engine command.
func (e EngineConfig) Args() []string {
	if strings.TrimSpace(e.Script) == "" {
		return nil
	}
	return []string{e.Script}
}

type ExportConfig struct {
	CurrencyLabel string `envconfig:"PVOFFER_EXPORT_CURRENCY" default:"EUR"`
}
