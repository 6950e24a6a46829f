package controllers

import (
	"net/http"

	"adspanel/config"
	"adspanel/tools"

	"github.com/gin-gonic/gin"
)

// userTokenCookie carries the OAuth user token set by the callback route.
const userTokenCookie = "fb_user_token"

// resolveAccessToken picks the Graph credential for a request: a cookie from
// the OAuth flow overrides the configured default token. Uniform across every
// ads route.
func resolveAccessToken(c *gin.Context, cfg config.Configuration) string {
	if token, err := c.Cookie(userTokenCookie); err == nil && token != "" {
		return token
	}
	return cfg.AccessToken
}

// proxyGraph relays an upstream Graph reply verbatim: body, status and
// content-type, including error payloads. A transport failure (upstream
// unreachable) becomes a 502.
func proxyGraph(c *gin.Context, resp *tools.GraphResponse, err error) {
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadGateway)
		return
	}
	c.Data(resp.StatusCode, resp.ContentType, resp.Body)
}
