package controllers

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// GET /api/facebook/adaccounts lists the ad accounts linked to the token's user.
func (ctl *AdsController) ListAdAccounts(c *gin.Context) {
	q := url.Values{}
	q.Set("fields", c.DefaultQuery("fields", "id,name,account_status,amount_spent"))
	q.Set("limit", c.DefaultQuery("limit", "50"))

	resp, err := ctl.Graph.Get(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		"me/adaccounts", q)
	proxyGraph(c, resp, err)
}
