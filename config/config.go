package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Source kinds for the schedule repository.
const (
	SourceSheets = "sheets"
	SourceCSV    = "csv"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Classroom Occupancy specifics
	Source       SourceConfig
	GoogleSheets GoogleSheetsConfig
	CSV          CSVConfig
	Refresh      RefreshConfig
	Cache        CacheConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SourceConfig selects where raw schedule rows come from: "sheets" or "csv".
type SourceConfig struct {
	Kind string
}

type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReadRange       string
}

type CSVConfig struct {
	Path string
}

type RefreshConfig struct {
	Enabled  bool
	Interval time.Duration
}

// CacheConfig controls the retained snapshot history.
type CacheConfig struct {
	HistorySize int
	HistoryTTL  time.Duration
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Schedule source
	cfg.Source.Kind = viper.GetString("source.kind")

	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	cfg.GoogleSheets.ReadRange = viper.GetString("google_sheets.read_range")
	if googleCreds := viper.GetString("google_sheets_credentials"); googleCreds != "" {
		cfg.GoogleSheets.CredentialsPath = googleCreds
	}
	if spreadsheetID := viper.GetString("google_sheets_spreadsheet_id"); spreadsheetID != "" {
		cfg.GoogleSheets.SpreadsheetID = spreadsheetID
	}

	cfg.CSV.Path = viper.GetString("csv.path")

	// Periodic refresh
	cfg.Refresh.Enabled = viper.GetBool("refresh.enabled")
	cfg.Refresh.Interval = viper.GetDuration("refresh.interval")

	// Snapshot history cache
	cfg.Cache.HistorySize = viper.GetInt("cache.history_size")
	cfg.Cache.HistoryTTL = viper.GetDuration("cache.history_ttl")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Source.Kind {
	case SourceSheets:
		if cfg.GoogleSheets.SpreadsheetID == "" {
			return fmt.Errorf("source.kind is %q but google_sheets.spreadsheet_id is empty", SourceSheets)
		}
	case SourceCSV:
		if cfg.CSV.Path == "" {
			return fmt.Errorf("source.kind is %q but csv.path is empty", SourceCSV)
		}
	default:
		return fmt.Errorf("unknown source.kind %q (want %q or %q)", cfg.Source.Kind, SourceSheets, SourceCSV)
	}

	if cfg.Refresh.Enabled && cfg.Refresh.Interval <= 0 {
		return fmt.Errorf("refresh.interval must be positive when refresh is enabled")
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("source.kind", SourceSheets)
	viper.SetDefault("google_sheets.read_range", "Schedule!A1:Z")
	viper.SetDefault("csv.path", "latest_schedule.csv")

	viper.SetDefault("refresh.enabled", true)
	viper.SetDefault("refresh.interval", "6h")

	viper.SetDefault("cache.history_size", 8)
	viper.SetDefault("cache.history_ttl", "24h")

	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
