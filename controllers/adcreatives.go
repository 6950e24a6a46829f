package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createAdCreativeRequest struct {
	Name    string `json:"name"`
	PageID  string `json:"pageId"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

// POST /api/facebook/adcreatives
func (ctl *AdsController) CreateAdCreative(c *gin.Context) {
	var body createAdCreativeRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if body.Name == "" {
		body.Name = "Creative"
	}
	if body.PageID == "" {
		body.PageID = ctl.Cfg.PageID
	}
	if body.Link == "" {
		body.Link = "https://example.com"
	}
	if body.Message == "" {
		body.Message = "Check out our example!"
	}

	resp, err := ctl.Graph.Post(c.Request.Context(), resolveAccessToken(c, ctl.Cfg),
		ctl.Cfg.AdAccountID+"/adcreatives", gin.H{
			"name": body.Name,
			"object_story_spec": gin.H{
				"page_id": body.PageID,
				"link_data": gin.H{
					"link":    body.Link,
					"message": body.Message,
				},
			},
		})
	proxyGraph(c, resp, err)
}
