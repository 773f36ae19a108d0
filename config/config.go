package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"io/fs"
	"time"
)

// Config represents the converter configuration.
type Config struct {
	Server Server
	XRates XRates
	Logger Logger
}

// Server represents the HTTP server configuration.
type Server struct {
	ListenAddr string `env:"CONVERTER_LISTEN_ADDR" env-default:":8080"`
}

// XRates represents the rate page configuration.
type XRates struct {
	URL     string        `env:"CONVERTER_XRATES_URL" env-default:"https://www.x-rates.com"`
	Timeout time.Duration `env:"CONVERTER_HTTP_TIMEOUT" env-default:"5s"`
}

// Logger represents a logger configuration.
type Logger struct {
	Level string `env:"CONVERTER_LOG_LEVEL" env-default:"info"`
}

// Load reads the optional env file at path into the environment, then the environment into a Config.
// Variables already set in the environment are not overridden by the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file [%v]: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}
