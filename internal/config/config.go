package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"SERVER_PORT" default:"8000"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
	// Mode selects the gin mode: "release" or "debug" (verbose routing output,
	// the dev-server analog of a reload flag).
	Mode string `envconfig:"SERVER_MODE" default:"release"`
}

type Weather struct {
	// SimulatedLatency mimics the round trip to a real weather provider before
	// a reading is returned. Zero disables the delay.
	SimulatedLatency time.Duration `envconfig:"WEATHER_SIMULATED_LATENCY" default:"100ms"`
}

type Client struct {
	StaticDir     string `envconfig:"CLIENT_STATIC_DIR" default:"./web/static"`
	AllowedOrigin string `envconfig:"CLIENT_ALLOWED_ORIGIN" default:"*"`
}

type Config struct {
	Server  Server
	Weather Weather
	Client  Client

	LogsPath      string `envconfig:"LOGS_PATH" default:"./log/weather-web-app.log"`
	AccessLogPath string `envconfig:"ACCESS_LOG_PATH" default:"./log/access.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
