// Package config loads service settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete service configuration.
type Config struct {
	Name     string   `mapstructure:"name"`
	HTTP     HTTP     `mapstructure:"http"`
	Log      Log      `mapstructure:"log"`
	Registry Registry `mapstructure:"registry"`
	Postgres Postgres `mapstructure:"postgres"`
	Redis    Redis    `mapstructure:"redis"`
	OTel     OTel     `mapstructure:"otel"`
}

// HTTP configures the listener; TLS is used when both cert and key are set.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	CertFile       string   `mapstructure:"cert_file"`
	KeyFile        string   `mapstructure:"key_file"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Log sets the minimum log level.
type Log struct {
	Level string `mapstructure:"level"`
}

// Registry sizes the bounded structures.
type Registry struct {
	Slots               int `mapstructure:"slots"`
	ReservationCapacity int `mapstructure:"reservation_capacity"`
}

// Postgres configures the event journal. An empty DSN disables it.
type Postgres struct {
	DSN string `mapstructure:"dsn"`
}

// Redis configures the event stream. An empty Addr disables it.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Stream   string `mapstructure:"stream"`
	MaxLen   int64  `mapstructure:"max_len"`
}

// OTel configures trace export. Zero probability disables tracing.
type OTel struct {
	Host        string  `mapstructure:"host"`
	Probability float64 `mapstructure:"probability"`
}

// Load reads config/<service>.yaml or ./<service>.yaml when present, then
// applies environment overrides such as FRONTDESK_HTTP_ADDR for http.addr.
func Load(service string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(service)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(strings.ToUpper(service))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, service)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("name", service)
	v.SetDefault("http.addr", ":8443")
	v.SetDefault("http.cert_file", "")
	v.SetDefault("http.key_file", "")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("log.level", "info")
	v.SetDefault("registry.slots", 10)
	v.SetDefault("registry.reservation_capacity", 5)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.stream", service+":events")
	v.SetDefault("redis.max_len", 1000)
	v.SetDefault("otel.host", "")
	v.SetDefault("otel.probability", 0.0)
}
