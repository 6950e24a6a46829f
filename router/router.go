package router

import (
	"adspanel/controllers"
	"adspanel/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controllers bundles every route handler the app wires up.
type Controllers struct {
	Webhook  *controllers.WebhookController
	Orders   *controllers.OrdersController
	Ads      *controllers.AdsController
	OAuth    *controllers.OAuthController
	Messages *controllers.MessagesController
}

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, ctl Controllers) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Messenger webhook (verificação + entregas)
	fb := api.Group("/facebook")
	fb.GET("/webhook", ctl.Webhook.Verify)
	fb.POST("/webhook", ctl.Webhook.Receive)

	// OAuth (browser flow)
	fb.GET("/connect", Logger(), ctl.OAuth.Connect)
	fb.GET("/callback", Logger(), ctl.OAuth.Callback)

	// Ads gateway (proxied to the Graph API)
	fb.GET("/campaigns", Logger(), ctl.Ads.ListCampaigns)
	fb.POST("/campaigns", Logger(), ctl.Ads.CreateCampaign)
	fb.PATCH("/campaigns", Logger(), ctl.Ads.UpdateCampaignStatus)
	fb.GET("/adsets", Logger(), ctl.Ads.ListAdSets)
	fb.POST("/adsets", Logger(), ctl.Ads.CreateAdSet)
	fb.PATCH("/adsets", Logger(), ctl.Ads.UpdateAdSetStatus)
	fb.GET("/ads", Logger(), ctl.Ads.ListAds)
	fb.POST("/ads", Logger(), ctl.Ads.CreateAd)
	fb.POST("/adcreatives", Logger(), ctl.Ads.CreateAdCreative)
	fb.GET("/adaccounts", Logger(), ctl.Ads.ListAdAccounts)

	// Outbound one-off messages
	fb.POST("/sendMessage", Logger(), ctl.Messages.Send)

	// Order persistence API
	api.POST("/orders", Logger(), ctl.Orders.Upsert)
	api.GET("/orders", Logger(), ctl.Orders.Get)
	api.DELETE("/orders", Logger(), ctl.Orders.Delete)

	// Smoke-test endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	logrus.Info("Routes initialized")
}
