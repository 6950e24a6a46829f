package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env"
)

// Configuration holds every environment-provided setting, loaded once in main
// and injected into each component. Route handlers never read os.Getenv
// directly, so credential precedence stays consistent across endpoints.
type Configuration struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// URL pública usada para montar redirect/callback do OAuth.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// Facebook app + Graph API
	ApiVersion      string `env:"FB_API_VERSION" envDefault:"v24.0"`
	AppID           string `env:"FACEBOOK_APP_ID"`
	AppSecret       string `env:"FACEBOOK_APP_SECRET"`
	AccessToken     string `env:"FACEBOOK_ACCESS_TOKEN"`
	AdAccountID     string `env:"FB_AD_ACCOUNT_ID"`
	PageID          string `env:"FB_PAGE_ID"`
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`

	// Webhook
	VerifyToken string `env:"FACEBOOK_WEBHOOK_VERIFY_TOKEN"`

	// wit.ai (entity extraction)
	WitToken string `env:"WIT_AI_TOKEN"`

	// Base URLs are overridable so tests can point clients at a local server.
	GraphBaseURL string `env:"GRAPH_BASE_URL" envDefault:"https://graph.facebook.com"`
	WitBaseURL   string `env:"WIT_BASE_URL" envDefault:"https://api.wit.ai"`

	// Order store backend: "memory" (default), "gorm" ou "redis".
	OrdersBackend string `env:"ORDERS_BACKEND" envDefault:"memory"`

	Database string `env:"DATABASE" envDefault:"sqlite3"` // "sqlite3" ou "postgres"
	DbHost   string `env:"DB_HOST"`
	DbPort   string `env:"DB_PORT"`
	DbUser   string `env:"DB_USER"`
	DbName   string `env:"DB_NAME"`
	DbPass   string `env:"DB_PASS"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load parses the environment into a Configuration.
func Load() (Configuration, error) {
	var c Configuration
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("config: %v", err)
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	c.GraphBaseURL = strings.TrimRight(c.GraphBaseURL, "/")
	c.WitBaseURL = strings.TrimRight(c.WitBaseURL, "/")
	return c, nil
}
