package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// GET /api/facebook/ads[?campaignId=...|adsetId=...]
func (ctl *AdsController) ListAds(c *gin.Context) {
	endpoint := ctl.Cfg.AdAccountID + "/ads"
	if campaignID := c.Query("campaignId"); campaignID != "" {
		endpoint = campaignID + "/ads"
	} else if adsetID := c.Query("adsetId"); adsetID != "" {
		endpoint = adsetID + "/ads"
	}

	q := url.Values{}
	q.Set("fields", c.DefaultQuery("fields", "id,name,status,adset_id,campaign_id"))
	q.Set("limit", c.DefaultQuery("limit", "50"))

	resp, err := ctl.Graph.Get(c.Request.Context(), resolveAccessToken(c, ctl.Cfg), endpoint, q)
	proxyGraph(c, resp, err)
}

type createAdRequest struct {
	Name     string `json:"name"`
	AdsetID  string `json:"adset_id"`
	Creative struct {
		CreativeID string `json:"creative_id"`
	} `json:"creative"`
	Status string `json:"status"`
}

// POST /api/facebook/ads
func (ctl *AdsController) CreateAd(c *gin.Context) {
	var body createAdRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.AdsetID == "" || body.Creative.CreativeID == "" {
		RespondError(c, "adset_id and creative.creative_id are required", http.StatusBadRequest)
		return
	}

	if body.Name == "" {
		body.Name = "Test Ad"
	}
	if body.Status == "" {
		body.Status = "PAUSED"
	}

	resp, err := ctl.Graph.Post(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		ctl.Cfg.AdAccountID+"/ads", gin.H{
			"name":     body.Name,
			"adset_id": body.AdsetID,
			"creative": gin.H{"creative_id": body.Creative.CreativeID},
			"status":   body.Status,
		})
	proxyGraph(c, resp, err)
}
