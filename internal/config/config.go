package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config interface {
	EnvConfig
	CorsConfig
	SessionConfig
	DataConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetLogFile() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Session
	Data
}

// New reads the configuration from the environment.
func New() (Config, error) {
	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, errors.Wrap(err, "[config New] parse env")
	}
	return c, nil
}
