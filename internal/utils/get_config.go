package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Application
	AppName          string `yaml:"APP_NAME"`
	AppPort          string `yaml:"APP_PORT"`
	LogFile          string `yaml:"LOG_FILE"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	DefaultLang      string `yaml:"DEFAULT_LANG"`
	PrintRoutes      bool   `yaml:"PRINT_ROUTES"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBPath     string `yaml:"DB_PATH"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
	DBLogLevel string `yaml:"DB_LOG_LEVEL"`
}

var config = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		AppName:          "Recipe Book",
		AppPort:          "8000",
		LogFile:          "./logs/app.log",
		RateLimitMax:     10,
		CORSAllowOrigins: "*",
		DefaultLang:      "ru",
		DBDriver:         "sqlite",
		DBPath:           "cooking.db",
		DBPort:           "5432",
		DBSSLMode:        "disable",
		DBTimeZone:       "UTC",
		DBLogLevel:       "warn",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then a .env
// file, then process environment variables. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Infof("config file %s not found, using defaults and environment", path)
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("error loading .env file: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	config = cfg
	return cfg, nil
}

func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"APP_NAME":           &c.AppName,
		"APP_PORT":           &c.AppPort,
		"LOG_FILE":           &c.LogFile,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"DEFAULT_LANG":       &c.DefaultLang,
		"DB_DRIVER":          &c.DBDriver,
		"DB_PATH":            &c.DBPath,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_SSLMODE":         &c.DBSSLMode,
		"DB_TIMEZONE":        &c.DBTimeZone,
		"DB_LOG_LEVEL":       &c.DBLogLevel,
	}
	for key, dst := range stringVars {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_MAX %q: %w", v, err)
		}
		c.RateLimitMax = n
	}
	if v, ok := os.LookupEnv("PRINT_ROUTES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PRINT_ROUTES %q: %w", v, err)
		}
		c.PrintRoutes = b
	}
	return nil
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_NAME":
		return config.AppName
	case "APP_PORT":
		return config.AppPort
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "DEFAULT_LANG":
		return config.DefaultLang
	case "PRINT_ROUTES":
		return getBoolString(config.PrintRoutes)
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_PATH":
		return config.DBPath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "DB_LOG_LEVEL":
		return config.DBLogLevel
	default:
		return ""
	}
}
