package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	AccrualAddr    string        `env:"ACCRUAL_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
	BatchSize      int           `env:"ACCRUAL_BATCH_SIZE" envDefault:"10"`
	PollInterval   time.Duration `env:"ACCRUAL_POLL_INTERVAL" envDefault:"5s"`
	AccrualTimeout time.Duration `env:"ACCRUAL_TIMEOUT" envDefault:"10s"`
}

// AccrualConfig - модель настроек работы с сервисом расчёта начислений баллов лояльности
type AccrualConfig struct {
	AccrualAddr    string
	BatchSize      int
	PollInterval   time.Duration
	AccrualTimeout time.Duration
}

// Config - модель настроек сервиса
type Config struct {
	LogLevel    string
	DatabaseDSN string
	Accrual     AccrualConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		logLevel     = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN          = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		accrual      = pflag.StringP("accrual", "r", args.AccrualAddr, "Accrual service address in a form host:port.")
		batchSize    = pflag.IntP("batch", "b", args.BatchSize, "Settlement batch size.")
		pollInterval = pflag.DurationP("poll", "p", args.PollInterval, "Settlement poll interval.")
		timeout      = pflag.DurationP("timeout", "t", args.AccrualTimeout, "Accrual request timeout.")
	)
	pflag.Parse()

	return Config{
		LogLevel:    *logLevel,
		DatabaseDSN: *DSN,
		Accrual: AccrualConfig{
			AccrualAddr:    *accrual,
			BatchSize:      *batchSize,
			PollInterval:   *pollInterval,
			AccrualTimeout: *timeout,
		},
	}
}

// String - представление настроек для логов. DSN может содержать учётные
// данные и не выводится
func (c Config) String() string {
	return fmt.Sprintf("log_level=%s accrual=%s batch=%d poll=%s timeout=%s",
		c.LogLevel, c.Accrual.AccrualAddr, c.Accrual.BatchSize, c.Accrual.PollInterval, c.Accrual.AccrualTimeout)
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		DatabaseDSN: "",
		Accrual: AccrualConfig{
			AccrualAddr:    "http://localhost:8081",
			BatchSize:      10,
			PollInterval:   5 * time.Second,
			AccrualTimeout: 10 * time.Second,
		},
	}
}
