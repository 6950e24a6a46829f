package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"adspanel/config"
	"adspanel/tools"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OAuthController runs the Facebook login flow that produces the per-user
// ads credential stored in the fb_user_token cookie.
type OAuthController struct {
	Cfg   config.Configuration
	Graph tools.GraphClient
}

const oauthScopes = "ads_management,ads_read,pages_show_list"

// Connect redirects to the Facebook login dialog.
//
// GET /api/facebook/connect
func (ctl *OAuthController) Connect(c *gin.Context) {
	if ctl.Cfg.AppID == "" {
		RespondError(c, "Missing Facebook app credentials", http.StatusInternalServerError)
		return
	}

	q := url.Values{}
	q.Set("client_id", ctl.Cfg.AppID)
	q.Set("redirect_uri", ctl.Cfg.PublicBaseURL+"/api/facebook/callback")
	q.Set("scope", oauthScopes)
	q.Set("state", tools.RandomString(24))

	dialogURL := fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth?%s",
		ctl.Cfg.ApiVersion, q.Encode())
	c.Redirect(http.StatusFound, dialogURL)
}

// Callback exchanges the code, stores the user token in an HttpOnly cookie
// and sends the browser back to the ads panel.
//
// GET /api/facebook/callback
func (ctl *OAuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		RespondError(c, "Missing code", http.StatusBadRequest)
		return
	}
	if ctl.Cfg.AppID == "" || ctl.Cfg.AppSecret == "" {
		RespondError(c, "Missing Facebook app credentials", http.StatusInternalServerError)
		return
	}

	// Must match the redirect_uri used when initiating OAuth.
	redirectURI := ctl.Cfg.PublicBaseURL + "/api/facebook/callback"

	resp, err := ctl.Graph.ExchangeOAuthCode(c.Request.Context(),
		ctl.Cfg.AppID, ctl.Cfg.AppSecret, redirectURI, code)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadGateway)
		return
	}
	if resp.StatusCode >= 300 {
		logrus.Warnf("oauth: token exchange failed: %s", string(resp.Body))
		c.Data(resp.StatusCode, resp.ContentType, resp.Body)
		return
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(resp.Body, &token); err != nil || token.AccessToken == "" {
		RespondError(c, "No access_token in response", http.StatusInternalServerError)
		return
	}

	maxAge := token.ExpiresIn
	if maxAge <= 0 {
		maxAge = 2 * 60 * 60
	}
	c.SetCookie(userTokenCookie, token.AccessToken, maxAge, "/", "", true, true)

	c.Redirect(http.StatusFound, ctl.Cfg.PublicBaseURL+"/facebookads?connected=1")
}
