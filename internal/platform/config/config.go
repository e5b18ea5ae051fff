package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Storage StorageConfig `mapstructure:"storage"`
	AI      AIConfig      `mapstructure:"ai"`
	Log     LogConfig     `mapstructure:"log"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (h HTTPConfig) Addr() string { return fmt.Sprintf(":%d", h.Port) }

type StorageConfig struct {
	Driver        string `mapstructure:"driver"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
}

// AIConfig: sin APIKey el asistente responde con el mensaje de "API Key fehlt".
// No es un error de configuración.
type AIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-care-manager")

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 60*time.Second)

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "petcare.db")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_prefix", "")

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ai.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Nombres de env sin prefijo que ya usaban los despliegues; PETCARE_* sigue teniendo prioridad.
var legacyEnv = map[string][]string{
	"ai.api_key":           {"PETCARE_AI_API_KEY", "GEMINI_API_KEY", "API_KEY"},
	"http.port":            {"PETCARE_HTTP_PORT", "PORT"},
	"storage.postgres_dsn": {"PETCARE_STORAGE_POSTGRES_DSN", "DB_DSN"},
	"log.level":            {"PETCARE_LOG_LEVEL", "LOG_LEVEL"},
	"log.format":           {"PETCARE_LOG_FORMAT", "LOG_FORMAT"},
	"app.name":             {"PETCARE_APP_NAME", "APP_NAME"},
}

// Load lee defaults, luego petcare.yaml (si existe) y por último env.
// configFile vacío => busca petcare.yaml en "." y en $XDG_CONFIG_HOME/petcare.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("petcare")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("PETCARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
		// sin archivo: defaults + env
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.AI.APIKey = strings.TrimSpace(cfg.AI.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "petcare")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "petcare")
}

// Validate chequea que el driver elegido tenga lo que necesita.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: http.port %d out of range", c.HTTP.Port)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("config: storage.sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return errors.New("config: storage.postgres_dsn (or DB_DSN) is required for the postgres driver")
		}
	case DriverRedis:
		if strings.TrimSpace(c.Storage.RedisAddr) == "" {
			return errors.New("config: storage.redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q (must be memory, sqlite, postgres or redis)", c.Storage.Driver)
	}

	if strings.TrimSpace(c.AI.Model) == "" {
		return errors.New("config: ai.model is required")
	}
	return nil
}
