package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/facebook/adsets[?campaignId=...]
func (ctl *AdsController) ListAdSets(c *gin.Context) {
	endpoint := ctl.Cfg.AdAccountID + "/adsets"
	if campaignID := c.Query("campaignId"); campaignID != "" {
		endpoint = campaignID + "/adsets"
	}

	q := url.Values{}
	q.Set("fields", c.DefaultQuery("fields", "id,name,status,campaign_id"))
	q.Set("limit", c.DefaultQuery("limit", "50"))

	resp, err := ctl.Graph.Get(c.Request.Context(), resolveAccessToken(c, ctl.Cfg), endpoint, q)
	proxyGraph(c, resp, err)
}

type createAdSetRequest struct {
	CampaignID  string `json:"campaignId"`
	Name        string `json:"name"`
	DailyBudget int    `json:"daily_budget"`
	BidAmount   int    `json:"bid_amount"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Targeting   string `json:"targeting"`
}

// POST /api/facebook/adsets
func (ctl *AdsController) CreateAdSet(c *gin.Context) {
	var body createAdSetRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.CampaignID == "" {
		RespondError(c, "campaignId is required", http.StatusBadRequest)
		return
	}

	if body.Name == "" {
		body.Name = "Test Ad Set"
	}
	if body.BidAmount <= 0 {
		body.BidAmount = 100
	}
	if body.DailyBudget <= 0 {
		body.DailyBudget = 1000
	}
	if body.Targeting == "" {
		body.Targeting = `{"geo_locations":{"countries":["US"]}}`
	}
	if body.StartTime == "" {
		body.StartTime = time.Now().Format(time.RFC3339)
	}
	if body.EndTime == "" {
		body.EndTime = time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339)
	}

	resp, err := ctl.Graph.Post(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		ctl.Cfg.AdAccountID+"/adsets", gin.H{
			"name":              body.Name,
			"optimization_goal": "REACH",
			"billing_event":     "IMPRESSIONS",
			"bid_amount":        strconv.Itoa(body.BidAmount),
			"daily_budget":      strconv.Itoa(body.DailyBudget),
			"campaign_id":       body.CampaignID,
			"targeting":         body.Targeting,
			"start_time":        body.StartTime,
			"end_time":          body.EndTime,
		})
	proxyGraph(c, resp, err)
}

// PATCH /api/facebook/adsets
func (ctl *AdsController) UpdateAdSetStatus(c *gin.Context) {
	var body updateStatusRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.ID == "" || body.Status == "" {
		RespondError(c, "id and status are required", http.StatusBadRequest)
		return
	}

	resp, err := ctl.Graph.Post(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		body.ID, gin.H{"status": body.Status})
	proxyGraph(c, resp, err)
}
