package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"license-management/internal/platform/httpclient"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load lee YAML (CONFIG_PATH o ./config.yaml) y después env vars.
// Prioridad: ENV > YAML > env-default. Si CONFIG_PATH no se definió y ./config.yaml
// no existe, solo se usan env + defaults.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if explicit {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Dashboard.ExpiringWindowDays < 1 {
		errs = append(errs, fmt.Errorf("dashboard.expiring_window_days must be > 0, got %d", c.Dashboard.ExpiringWindowDays))
	}
	if strings.TrimSpace(c.HostStore.BaseURL) != "" {
		if err := httpclient.ValidateBaseURL(c.HostStore.BaseURL); err != nil {
			errs = append(errs, fmt.Errorf("host_store.base_url: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
