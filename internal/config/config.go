package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SVTVIEW"

// Config is the typed application configuration.
type Config struct {
	Log         LogConfig
	Port        string
	Hub         HubConfig
	Aggregation AggregationConfig
	Store       StoreConfig
}

type LogConfig struct {
	Level string
}

// HubConfig addresses the home-automation hub and tunes calls made to it.
type HubConfig struct {
	Protocol string
	Host     string
	Port     int
	Timeout  time.Duration
	Retries  int
	Backoff  time.Duration
	Timezone string
}

type AggregationConfig struct {
	Concurrency     int
	RefreshInterval time.Duration
}

type StoreConfig struct {
	DSN string
}

var (
	errInvalidProtocol = errors.New("hub.protocol must be http or https")
	errInvalidHubPort  = errors.New("hub.port must be in 1..65535")
	errEmptyHost       = errors.New("hub.host is required")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("port", "8090")
	v.SetDefault("hub.protocol", "http")
	v.SetDefault("hub.host", "127.0.0.1")
	v.SetDefault("hub.port", 8080)
	v.SetDefault("hub.timeout", 10*time.Second)
	v.SetDefault("hub.retries", 2)
	v.SetDefault("hub.backoff", 200*time.Millisecond)
	v.SetDefault("hub.timezone", "Local")
	v.SetDefault("aggregation.concurrency", 1)
	v.SetDefault("aggregation.refresh_interval", 5*time.Minute)
	v.SetDefault("store.dsn", "file::memory:?cache=shared")
}

// Load reads configs/config.yml (or the file in dir) and applies SVTVIEW_* env overrides.
// A missing config file is not an error; defaults apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Log:  LogConfig{Level: strings.ToLower(strings.TrimSpace(v.GetString("log.level")))},
		Port: v.GetString("port"),
		Hub: HubConfig{
			Protocol: strings.ToLower(strings.TrimSpace(v.GetString("hub.protocol"))),
			Host:     strings.TrimSpace(v.GetString("hub.host")),
			Port:     v.GetInt("hub.port"),
			Timeout:  v.GetDuration("hub.timeout"),
			Retries:  v.GetInt("hub.retries"),
			Backoff:  v.GetDuration("hub.backoff"),
			Timezone: strings.TrimSpace(v.GetString("hub.timezone")),
		},
		Aggregation: AggregationConfig{
			Concurrency:     v.GetInt("aggregation.concurrency"),
			RefreshInterval: v.GetDuration("aggregation.refresh_interval"),
		},
		Store: StoreConfig{DSN: v.GetString("store.dsn")},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Hub.Protocol {
	case "http", "https":
	default:
		return errInvalidProtocol
	}
	if c.Hub.Host == "" {
		return errEmptyHost
	}
	if c.Hub.Port <= 0 || c.Hub.Port > 65535 {
		return errInvalidHubPort
	}
	if _, err := c.Hub.Location(); err != nil {
		return fmt.Errorf("hub.timezone %q: %w", c.Hub.Timezone, err)
	}
	if c.Hub.Retries < 0 {
		c.Hub.Retries = 0
	}
	if c.Aggregation.Concurrency < 1 {
		c.Aggregation.Concurrency = 1
	}
	return nil
}

// Location resolves the hub timezone used to parse its timestamps.
func (h HubConfig) Location() (*time.Location, error) {
	switch h.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(h.Timezone)
}

// BaseURL returns protocol://host:port.
func (h HubConfig) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", h.Protocol, h.Host, h.Port)
}
