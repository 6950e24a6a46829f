package controllers

import (
	"net/http"
	"net/url"

	"adspanel/config"
	"adspanel/tools"

	"github.com/gin-gonic/gin"
)

// AdsController proxies CRUD calls for campaigns, ad sets, ads, creatives and
// ad accounts to the Graph API. Upstream replies (success or error) are
// relayed verbatim; only input validation is handled locally.
type AdsController struct {
	Cfg   config.Configuration
	Graph tools.GraphClient
}

// GET /api/facebook/campaigns
func (ctl *AdsController) ListCampaigns(c *gin.Context) {
	q := url.Values{}
	q.Set("fields", c.DefaultQuery("fields", "id,name,status,objective"))
	q.Set("limit", c.DefaultQuery("limit", "50"))

	resp, err := ctl.Graph.Get(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		ctl.Cfg.AdAccountID+"/campaigns", q)
	proxyGraph(c, resp, err)
}

type createCampaignRequest struct {
	Name string `json:"name"`
}

// POST /api/facebook/campaigns
//
// New campaigns start PAUSED so nothing spends money before review.
func (ctl *AdsController) CreateCampaign(c *gin.Context) {
	var body createCampaignRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		RespondError(c, "name is required", http.StatusBadRequest)
		return
	}

	resp, err := ctl.Graph.Post(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		ctl.Cfg.AdAccountID+"/campaigns", gin.H{
			"name":                            body.Name,
			"objective":                       "OUTCOME_TRAFFIC",
			"status":                          "PAUSED",
			"special_ad_categories":           "NONE",
			"is_adset_budget_sharing_enabled": false,
		})
	proxyGraph(c, resp, err)
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PATCH /api/facebook/campaigns activates or pauses by posting to the object id.
func (ctl *AdsController) UpdateCampaignStatus(c *gin.Context) {
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
