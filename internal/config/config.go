package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	CORS     CORSConfig     `envPrefix:"CORS_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type DatabaseConfig struct {
	Hosts    []string `env:"HOSTS" envDefault:"localhost:27017"`
	Database string   `env:"DATABASE" envDefault:"inventory"`
	Username string   `env:"USERNAME"`
	Password string   `env:"PASSWORD"`
	AuthDB   string   `env:"AUTH_DB" envDefault:"admin"`
	Direct   bool     `env:"DIRECT" envDefault:"true"`
}

type AuthConfig struct {
	// JWTSecret verifies bearer tokens. Injected so tests can construct
	// verifiers with fixed secrets; there is no process-wide constant.
	JWTSecret  string `env:"JWT_SECRET,required"`
	CookieName string `env:"COOKIE_NAME" envDefault:"accessToken"`
}

type CORSConfig struct {
	OriginPattern string `env:"ORIGIN_PATTERN" envDefault:"^https?://localhost(:[0-9]+)?$"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
