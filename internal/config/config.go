package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Regretly"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"regretly"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret used to verify bearer tokens issued by the account
		// service.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Settings struct {
		// Path of the settings file; empty means the XDG default.
		Path string `envconfig:"SETTINGS_PATH"`
	}

	User struct {
		// Identity for the TUI, which talks to the database directly
		// instead of going through the API's token check.
		ID string `envconfig:"USER_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// UserID parses the configured identity. uuid.Nil means signed out.
func (c *Config) UserID() uuid.UUID {
	id, err := uuid.Parse(c.User.ID)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
