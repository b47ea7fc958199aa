package config

import (
	"fmt"
	"strings"
)

type EnvVars struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppName  string `env:"APP_NAME" envDefault:"CRM Dashboard"`
	Env      string `env:"ENV" envDefault:"DEV"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	port := e.Port
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return "DEV"
	}
	return e.Env
}

func (e EnvVars) GetLogLevel() string {
	return e.LogLevel
}

// GetLogFile returns the path of the rotating log file, empty for stderr.
func (e EnvVars) GetLogFile() string {
	return e.LogFile
}
