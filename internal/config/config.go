// Package config holds the service configuration and its loading rules:
// YAML file first, environment variables on top.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration. Source priority:
//  1. explicit path passed to MustLoad/Load;
//  2. CONFIG_PATH environment variable;
//  3. ./local.yaml in the working directory;
//  4. environment variables only.
type Config struct {
	Env  string     `yaml:"env"  env:"ENV" env-default:"local"`
	HTTP HTTPConfig `yaml:"http"`
	Apod ApodConfig `yaml:"apod"`
}

// HTTPConfig is the listen address of the local API.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr returns host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// ApodConfig configures the upstream APOD endpoint.
type ApodConfig struct {
	BaseURL string        `yaml:"base_url" env:"APOD_BASE_URL" env-default:"https://api.nasa.gov/planetary/apod"`
	APIKey  string        `yaml:"api_key"  env:"NASA_API_KEY"  env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"APOD_TIMEOUT"  env-default:"30s"`
	Thumbs  bool          `yaml:"thumbs"   env:"APOD_THUMBS"   env-default:"false"`
}

// MustLoad is Load with panic on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load loads the configuration following the priority described on Config.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
