package config

import "time"

// Config es la configuración raíz del servicio.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	HostStore HostStoreConfig `yaml:"host_store"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig: si DSN está vacío se usa storage in-memory.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DB_DSN"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	App    string `yaml:"app"    env:"APP_NAME"   env-default:"license-management"`
}

type DashboardConfig struct {
	// ExpiringWindowDays: días hacia adelante que cuentan como "expiring soon" (inclusive).
	ExpiringWindowDays int `yaml:"expiring_window_days" env:"EXPIRING_WINDOW_DAYS" env-default:"30"`
}

// HostStoreConfig: si BaseURL está vacío, el store compartido vive en este proceso.
type HostStoreConfig struct {
	BaseURL string        `yaml:"base_url" env:"HOST_STORE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"HOST_STORE_TIMEOUT" env-default:"5s"`
}

type FixturesConfig struct {
	Path string `yaml:"path" env:"FIXTURES_PATH"`
}

func (c Config) UsePostgres() bool {
	return c.Database.DSN != ""
}

func (c Config) UseHostStore() bool {
	return c.HostStore.BaseURL != ""
}
