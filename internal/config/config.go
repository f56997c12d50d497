package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Claves de entorno (también las usa petdesk para enlazar flags de cobra).
const (
	KeyAppName     = "APP_NAME"
	KeyPort        = "PORT"
	KeyDatabaseDSN = "DB_DSN"
	KeyLogLevel    = "LOG_LEVEL"
	KeyLogFormat   = "LOG_FORMAT"
	KeyDeskAPIURL  = "PETDESK_API_URL"
	KeyDeskTimeout = "PETDESK_TIMEOUT"
	KeyDeskLogFile = "PETDESK_LOG_FILE"
)

const (
	defaultAppName = "pet-store-admin"
	defaultPort    = 8080
	defaultTimeout = 10 * time.Second
)

type Config struct {
	AppName string
	Port    int

	// DatabaseDSN vacío = storage in-memory.
	DatabaseDSN string

	Log  LogConfig
	Desk DeskConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// DeskConfig configura el front (petdesk).
type DeskConfig struct {
	APIURL  string
	Timeout time.Duration
	LogFile string
}

// Load lee .env (si existe) y el entorno.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith permite pasar un viper con flags ya enlazados (petdesk).
func LoadWith(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		AppName:     strings.TrimSpace(v.GetString(KeyAppName)),
		Port:        v.GetInt(KeyPort),
		DatabaseDSN: strings.TrimSpace(v.GetString(KeyDatabaseDSN)),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Desk: DeskConfig{
			APIURL:  strings.TrimSpace(v.GetString(KeyDeskAPIURL)),
			Timeout: parseDuration(v.GetString(KeyDeskTimeout), defaultTimeout),
			LogFile: strings.TrimSpace(v.GetString(KeyDeskLogFile)),
		},
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("PORT must be between 1 and 65535")
	}
	if cfg.AppName == "" {
		cfg.AppName = defaultAppName
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAppName, defaultAppName)
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyDatabaseDSN, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetDefault(KeyDeskAPIURL, "http://localhost:8080")
	v.SetDefault(KeyDeskTimeout, defaultTimeout.String())
	v.SetDefault(KeyDeskLogFile, "petdesk.log")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
