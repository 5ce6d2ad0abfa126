// Package config carga la configuración del servicio desde env (y opcionalmente un YAML en CONFIG_PATH).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/juju/errors"
)

type Config struct {
	App  string `yaml:"app" env:"APP_NAME" env-default:"pet-grooming-shop"`
	Port string `yaml:"port" env:"PORT" env-default:"8080"`

	Log  Log  `yaml:"log"`
	HTTP HTTP `yaml:"http"`
	Shop Shop `yaml:"shop"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type HTTP struct {
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`

	// 0 desactiva el rate limit.
	RateLimitRPS   float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

type Shop struct {
	// Zona horaria de la tienda; fechas/horas de turnos se interpretan acá.
	Timezone string `yaml:"timezone" env:"STORE_TIMEZONE" env-default:"Local"`
	// Método de pago inicial del registro financiero.
	PaymentMethod string `yaml:"payment_method" env:"PAYMENT_METHOD" env-default:"undefined"`
}

// Load lee CONFIG_PATH si existe; si no, solo env.
func Load() (*Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Annotate(err, "read env")
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resuelve Shop.Timezone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Shop.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.NotValidf("STORE_TIMEZONE %q (%v)", tz, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
