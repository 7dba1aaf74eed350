package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Unified Calendar specifics
	Backend BackendConfig
	Sync    SyncConfig
	Storage StorageConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the calendar backend API the engine talks to.
type BackendConfig struct {
	BaseURL string

	// Bootstrap credentials. When set, they are written into the
	// credential store on startup so a fresh install can authenticate
	// without a manual insert.
	Token     string
	AuthToken string
}

type SyncConfig struct {
	PollIntervalSeconds int
	EnabledSources      []string

	// Push notifications
	WebhookURL   string
	NgrokAPIBase string
}

type StorageConfig struct {
	CredentialsPath string
	TasksPath       string
}

type WebhookConfig struct {
	Enabled         bool
	ChannelToken    string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.APIKey = viper.GetString("http_server.api_key")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend API
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.Token = viper.GetString("backend.token")
	cfg.Backend.AuthToken = viper.GetString("backend.auth_token")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if token := viper.GetString("backend_token"); token != "" {
		cfg.Backend.Token = token
	}

	// Sync
	cfg.Sync.PollIntervalSeconds = viper.GetInt("sync.poll_interval_seconds")
	cfg.Sync.WebhookURL = viper.GetString("sync.webhook_url")
	cfg.Sync.NgrokAPIBase = viper.GetString("sync.ngrok_api_base")

	var sources []string
	if rawSources := viper.GetString("sync.enabled_sources"); rawSources != "" {
		for _, s := range strings.Split(rawSources, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				sources = append(sources, s)
			}
		}
	}
	cfg.Sync.EnabledSources = sources

	// Storage
	cfg.Storage.CredentialsPath = viper.GetString("storage.credentials_path")
	cfg.Storage.TasksPath = viper.GetString("storage.tasks_path")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.ChannelToken = viper.GetString("webhook.channel_token")
	if channelToken := viper.GetString("webhook_channel_token"); channelToken != "" {
		cfg.Webhook.ChannelToken = channelToken
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

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("backend.base_url", "http://localhost:5000")
	viper.SetDefault("sync.poll_interval_seconds", 300)
	viper.SetDefault("sync.ngrok_api_base", "http://ngrok:4040")
	viper.SetDefault("storage.credentials_path", "data/credentials.db")
	viper.SetDefault("storage.tasks_path", "data/tasks.db")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}
