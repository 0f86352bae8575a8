package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSpanner  = "spanner"
	DriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	Log          LogConfig
	Storage      StorageConfig
	Provisioning ProvisioningConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level     string
	Format    string
	Output    string
	GormLevel string
}

type StorageConfig struct {
	Driver   string
	Spanner  SpannerConfig
	Postgres PostgresConfig
}

type SpannerConfig struct {
	// Database is the fully qualified name:
	// projects/<p>/instances/<i>/databases/<d>.
	Database string
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ProvisioningConfig bounds template application.
type ProvisioningConfig struct {
	// Timeout caps the whole transactional boundary. Zero disables it.
	Timeout time.Duration
}

// Load reads configuration from an optional config.yaml, then CATALOG_* environment
// variables (CATALOG_STORAGE_DRIVER, CATALOG_PROVISIONING_TIMEOUT, ...), then defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/catalog")

	setDefaults(v)

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront-catalog")
	v.SetDefault("app.env", "development")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.gorm_level", "warn")

	v.SetDefault("storage.driver", DriverSpanner)
	v.SetDefault("storage.spanner.database", "projects/test-project/instances/emulator-instance/databases/test-db")
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", 5432)
	v.SetDefault("storage.postgres.user", "postgres")
	v.SetDefault("storage.postgres.password", "")
	v.SetDefault("storage.postgres.dbname", "catalog")
	v.SetDefault("storage.postgres.sslmode", "disable")
	v.SetDefault("storage.postgres.max_open_conns", 20)
	v.SetDefault("storage.postgres.max_idle_conns", 5)
	v.SetDefault("storage.postgres.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("provisioning.timeout", 30*time.Second)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		HTTP: HTTPConfig{
			Addr:            v.GetString("http.addr"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Log: LogConfig{
			Level:     v.GetString("log.level"),
			Format:    v.GetString("log.format"),
			Output:    v.GetString("log.output"),
			GormLevel: v.GetString("log.gorm_level"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
			Spanner: SpannerConfig{
				Database: v.GetString("storage.spanner.database"),
			},
			Postgres: PostgresConfig{
				Host:            v.GetString("storage.postgres.host"),
				Port:            v.GetInt("storage.postgres.port"),
				User:            v.GetString("storage.postgres.user"),
				Password:        v.GetString("storage.postgres.password"),
				DBName:          v.GetString("storage.postgres.dbname"),
				SSLMode:         v.GetString("storage.postgres.sslmode"),
				MaxOpenConns:    v.GetInt("storage.postgres.max_open_conns"),
				MaxIdleConns:    v.GetInt("storage.postgres.max_idle_conns"),
				ConnMaxLifetime: v.GetDuration("storage.postgres.conn_max_lifetime"),
			},
		},
		Provisioning: ProvisioningConfig{
			Timeout: v.GetDuration("provisioning.timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSpanner:
		if c.Storage.Spanner.Database == "" {
			return errors.New("config: storage.spanner.database is required")
		}
	case DriverPostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.DBName == "" {
			return errors.New("config: storage.postgres.host and dbname are required")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Provisioning.Timeout < 0 {
		return errors.New("config: provisioning.timeout cannot be negative")
	}
	if c.HTTP.Addr == "" {
		return errors.New("config: http.addr is required")
	}
	return nil
}

// DSN returns a postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// URL returns the postgres:// form used by golang-migrate.
func (p PostgresConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}
