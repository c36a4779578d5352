package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type Environment struct {
	Env    string       `koanf:"env" validate:"oneof=development production test"`
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	CORS   CORSConfig   `koanf:"cors"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port" validate:"required"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"min=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver          string        `koanf:"driver" validate:"oneof=postgres sqlite"`
	URL             string        `koanf:"url" validate:"required"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=0,max=1000"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// Addr is the listen address of the HTTP server
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func (e *Environment) IsDevelopment() bool {
	return e.Env == "development"
}

// envKeys maps the supported environment variables onto config keys
var envKeys = map[string]string{
	"APP_ENV":              "env",
	"HOST":                 "server.host",
	"PORT":                 "server.port",
	"DB_DRIVER":            "db.driver",
	"DB_URL":               "db.url",
	"DB_AUTO_MIGRATE":      "db.auto_migrate",
	"DB_MAX_OPEN_CONNS":    "db.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "db.max_idle_conns",
	"DB_CONN_MAX_LIFETIME": "db.conn_max_lifetime",
	"CORS_ALLOWED_ORIGINS": "cors.allowed_origins",
	"LOG_LEVEL":            "log.level",
}

// NewFlagSet registers the flags shared by every command.
// Callers may add their own flags before parsing.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "config.yaml", "path to an optional YAML config file")
	flags.String("env", "development", "runtime environment (development, production, test)")
	flags.String("server.host", "0.0.0.0", "listen host")
	flags.String("server.port", "8080", "listen port")
	flags.Duration("server.read_header_timeout", 10*time.Second, "time allowed to read request headers")
	flags.Duration("server.shutdown_timeout", 10*time.Second, "graceful shutdown timeout")
	flags.String("db.driver", "postgres", "database driver (postgres, sqlite)")
	flags.String("db.url", "", "database connection string")
	flags.Bool("db.auto_migrate", true, "create the schema on startup")
	flags.Int("db.max_open_conns", 10, "maximum open database connections")
	flags.Int("db.max_idle_conns", 5, "maximum idle database connections")
	flags.Duration("db.conn_max_lifetime", 30*time.Minute, "maximum lifetime of a database connection")
	flags.StringSlice("cors.allowed_origins", []string{"*"}, "allowed CORS origins")
	flags.String("log.level", "info", "log level (debug, info, warn, error)")
	return flags
}

// LoadDotEnv reads a .env file unless running in production
func LoadDotEnv() {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}
}

// Load builds the configuration from flag defaults, the optional YAML file,
// the environment and explicitly set flags, in increasing precedence.
// The flag set must already be parsed.
func Load(flags *pflag.FlagSet) (*Environment, error) {
	k := koanf.New(".")

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read config flag: %w", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err = k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Environment
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

var validate = validator.New()

func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Namespace(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}
