package controllers

import (
	"net/http"

	"adspanel/conversation"

	"github.com/gin-gonic/gin"
)

// MessagesController sends one-off Messenger texts on behalf of the panel.
type MessagesController struct {
	Messenger conversation.MessageSender
}

type sendMessageRequest struct {
	PSID    string `json:"psid"`
	Message string `json:"message"`
}

// POST /api/facebook/sendMessage
func (ctl *MessagesController) Send(c *gin.Context) {
	var body sendMessageRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.PSID == "" || body.Message == "" {
		RespondError(c, "Missing fields", http.StatusBadRequest)
		return
	}

	if err := ctl.Messenger.SendText(c.Request.Context(), body.PSID, body.Message); err != nil {
		RespondError(c, err.Error(), http.StatusBadGateway)
		return
	}

	RespondSuccess(c, gin.H{"success": true})
}
