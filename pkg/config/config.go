package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Log      LogConfig
	Rota     RotaConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig governs the shared access gate. Codes may be supplied in plain
// text (development) or as bcrypt hashes; a matching code is exchanged for a
// signed session token.
type AuthConfig struct {
	AccessCodes      []string
	AccessCodeHashes []string
	SessionSecret    string
	SessionTTL       time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SpecialDate is a fixed calendar date injected into the rota regardless of
// whether it falls on a Sunday.
type SpecialDate struct {
	Year  int
	Month int
	Day   int
	Kind  string
}

// RotaConfig drives schedule generation: how many consecutive Sundays a team
// serves before rotating, and which holidays are folded into the calendar.
type RotaConfig struct {
	DwellWeeks   int
	SpecialDates []SpecialDate
	SnapshotTTL  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Auth = AuthConfig{
		AccessCodes:      splitAndTrim(v.GetString("ACCESS_CODES")),
		AccessCodeHashes: splitAndTrim(v.GetString("ACCESS_CODE_HASHES")),
		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionTTL:       parseDuration(v.GetString("SESSION_TTL"), 30*24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	specials, err := parseSpecialDates(v.GetString("ROTA_SPECIAL_DATES"))
	if err != nil {
		return nil, err
	}
	cfg.Rota = RotaConfig{
		DwellWeeks:   v.GetInt("ROTA_DWELL_WEEKS"),
		SpecialDates: specials,
		SnapshotTTL:  parseDuration(v.GetString("ROTA_SNAPSHOT_TTL"), 7*24*time.Hour),
	}
	if cfg.Rota.DwellWeeks <= 0 {
		return nil, fmt.Errorf("ROTA_DWELL_WEEKS must be positive, got %d", cfg.Rota.DwellWeeks)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "worship_rota")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ACCESS_CODES", "")
	v.SetDefault("ACCESS_CODE_HASHES", "")
	v.SetDefault("SESSION_SECRET", "dev_secret")
	v.SetDefault("SESSION_TTL", "720h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ROTA_DWELL_WEEKS", 2)
	v.SetDefault("ROTA_SPECIAL_DATES", "")
	v.SetDefault("ROTA_SNAPSHOT_TTL", "168h")
}

// parseSpecialDates reads entries like "2025-12-25:christmas,2026-04-05:easter".
func parseSpecialDates(raw string) ([]SpecialDate, error) {
	entries := splitAndTrim(raw)
	result := make([]SpecialDate, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("invalid special date %q, expected YYYY-MM-DD:kind", entry)
		}
		dateParts := strings.Split(parts[0], "-")
		if len(dateParts) != 3 {
			return nil, fmt.Errorf("invalid special date %q, expected YYYY-MM-DD:kind", entry)
		}
		year, err := strconv.Atoi(dateParts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid special date year in %q", entry)
		}
		month, err := strconv.Atoi(dateParts[1])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid special date month in %q", entry)
		}
		day, err := strconv.Atoi(dateParts[2])
		if err != nil || day < 1 || day > 31 {
			return nil, fmt.Errorf("invalid special date day in %q", entry)
		}
		result = append(result, SpecialDate{Year: year, Month: month, Day: day, Kind: strings.ToLower(parts[1])})
	}
	return result, nil
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
