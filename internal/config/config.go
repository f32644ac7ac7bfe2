package config

import (
	stderrors "errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/toyz/testgen/internal/errors"
)

// Supported HTTP engines
const (
	EngineEcho  = "echo"
	EngineGin   = "gin"
	EngineFiber = "fiber"
)

// Environment variables read by Load
const (
	EnvConfigPath = "TESTGEN_CONFIG"
	EnvPort       = "PORT"
	EnvHost       = "TESTGEN_HOST"
	EnvEngine     = "TESTGEN_ENGINE"
	EnvCORSOrigin = "TESTGEN_CORS_ORIGIN"
	EnvCacheSize  = "TESTGEN_CACHE_SIZE"
	EnvLogLevel   = "TESTGEN_LOG_LEVEL"
)

const defaultEnvFile = ".env"

// Config holds service configuration
type Config struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Engine          string        `yaml:"engine"`
	CORSOrigin      string        `yaml:"cors_origin"`
	CacheSize       int           `yaml:"cache_size"`
	LogLevel        string        `yaml:"log_level"`
	Development     bool          `yaml:"development"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// Options controls where Load looks for configuration
type Options struct {
	ConfigPath string // YAML file; falls back to TESTGEN_CONFIG
	EnvFile    string // dotenv file; defaults to .env, missing files are ignored
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Host:            "",
		Port:            8080,
		Engine:          EngineEcho,
		CORSOrigin:      "*",
		CacheSize:       256,
		LogLevel:        "info",
		ShutdownTimeout: 30 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// Load builds a Config from defaults, a dotenv file, a YAML file and the environment, in that order
func Load(opts Options) (*Config, error) {
	cfg := Default()

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapConfigurationError(envFile, "load", err)
	}

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapFileSystemError("read", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapConfigurationError(path, "parse", err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvHost)); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEngine)); v != "" {
		c.Engine = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvCORSOrigin)); v != "" {
		c.CORSOrigin = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}

	port, err := intFromEnv(EnvPort)
	if err != nil {
		return err
	}
	if port != nil {
		c.Port = *port
	}

	size, err := intFromEnv(EnvCacheSize)
	if err != nil {
		return err
	}
	if size != nil {
		c.CacheSize = *size
	}

	return nil
}

func intFromEnv(key string) (*int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.ConfigurationError(key, "expected an integer, got '"+raw+"'")
	}
	return &v, nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineEcho, EngineGin, EngineFiber:
	default:
		return errors.ConfigurationError("engine", "unknown engine '"+c.Engine+"' (want echo, gin or fiber)").
			WithSuggestion("set TESTGEN_ENGINE or --engine to one of: echo, gin, fiber")
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.ConfigurationError("port", "port "+strconv.Itoa(c.Port)+" is out of range")
	}
	if c.CacheSize < 0 {
		return errors.ConfigurationError("cache_size", "must not be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.ConfigurationError("max_body_bytes", "must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.ConfigurationError("shutdown_timeout", "must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.ConfigurationError("log_level", err.Error())
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
