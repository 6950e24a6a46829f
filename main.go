package main

import (
	"strings"

	"adspanel/config"
	"adspanel/controllers"
	"adspanel/conversation"
	"adspanel/db"
	"adspanel/router"
	"adspanel/store"
	"adspanel/tools"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	initLogger(cfg)

	orders, err := buildOrderStore(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	messenger := tools.MessengerClient{
		AccessToken: cfg.PageAccessToken,
		ApiVersion:  cfg.ApiVersion,
		BaseURL:     cfg.GraphBaseURL,
	}
	graph := tools.GraphClient{
		ApiVersion: cfg.ApiVersion,
		BaseURL:    cfg.GraphBaseURL,
	}
	wit := tools.WitClient{
		Token:   cfg.WitToken,
		BaseURL: cfg.WitBaseURL,
	}

	conv := &conversation.Handler{
		Store:     orders,
		Messenger: messenger,
		Extractor: wit,
	}

	r := gin.New()
	router.Initialize(r, router.Controllers{
		Webhook:  &controllers.WebhookController{Cfg: cfg, Conv: conv},
		Orders:   &controllers.OrdersController{Store: orders},
		Ads:      &controllers.AdsController{Cfg: cfg, Graph: graph},
		OAuth:    &controllers.OAuthController{Cfg: cfg, Graph: graph},
		Messages: &controllers.MessagesController{Messenger: messenger},
	})

	logrus.Infof("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}

func initLogger(cfg config.Configuration) {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// buildOrderStore picks the persistence backend. Memory is the default and
// needs no external service; gorm and redis keep records across restarts.
func buildOrderStore(cfg config.Configuration) (store.OrderStore, error) {
	switch strings.ToLower(cfg.OrdersBackend) {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "gorm", "db", "database":
		database, err := db.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(database), nil
	case "redis":
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	default:
		logrus.Warnf("unknown ORDERS_BACKEND %q, falling back to memory", cfg.OrdersBackend)
		return store.NewMemoryStore(), nil
	}
}
