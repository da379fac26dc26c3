package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBackendURL = "http://localhost:8090"
	DefaultConfigFile = "planner.yml"
)

type LogConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=JSON CONSOLE"`
	Debug  bool   `yaml:"debug"`
}

// Config is the client configuration, read from planner.yml and the environment.
type Config struct {
	BackendURL string `yaml:"backendURL" validate:"required,url"`
	// Zero disables the client-side timeout; requests are then bounded only by their context.
	RequestTimeout time.Duration `yaml:"requestTimeout" validate:"gte=0"`
	Log            LogConfig     `yaml:"log"`
}

func Default() Config {
	return Config{
		BackendURL: DefaultBackendURL,
		Log:        LogConfig{Format: "CONSOLE"},
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv reads .env into the environment when the file exists.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msg("No .env file found (using environment variables)")
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load builds the configuration from defaults, then the YAML file, then the
// environment. path may be empty: PLANNER_CONFIG is used, then planner.yml
// when present. An explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("PLANNER_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("load config: read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	cfg.Log.Format = strings.ToUpper(cfg.Log.Format)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.BackendURL = Get("BACKEND_URL", cfg.BackendURL)
	cfg.Log.Format = Get("PLANNER_LOG_FORMAT", cfg.Log.Format)

	if v := Get("PLANNER_DEBUG", ""); v != "" {
		cfg.Log.Debug = strings.EqualFold(v, "YES") || strings.EqualFold(v, "true")
	}

	if v := Get("REQUEST_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	return nil
}
