package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"adspanel/config"
	"adspanel/conversation"
	"adspanel/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// WebhookController receives Messenger webhook traffic: the GET verification
// handshake and the POST event deliveries.
type WebhookController struct {
	Cfg  config.Configuration
	Conv *conversation.Handler
}

// Verify answers the webhook verification handshake.
//
// GET /api/facebook/webhook?hub.mode=subscribe&hub.verify_token=...&hub.challenge=...
func (ctl *WebhookController) Verify(c *gin.Context) {
	if ctl.Cfg.VerifyToken == "" {
		RespondError(c, "verify token not configured", http.StatusInternalServerError)
		return
	}

	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && challenge != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(ctl.Cfg.VerifyToken)) == 1 {
		c.String(http.StatusOK, "%s", challenge)
		return
	}

	RespondError(c, "invalid verification", http.StatusForbidden)
}

// Receive handles a webhook delivery.
//
// The signature must be checked on the raw bytes before any parsing; on
// failure the whole delivery is rejected. Once the signature passes, Meta
// always gets {"received": true} with 200; anything else would trigger
// redelivery of events we already saw.
//
// POST /api/facebook/webhook
func (ctl *WebhookController) Receive(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		RespondError(c, "failed to read body", http.StatusBadRequest)
		return
	}

	if !VerifySignature(raw, c.GetHeader("X-Hub-Signature-256"), ctl.Cfg.AppSecret) {
		RespondError(c, "invalid signature", http.StatusUnauthorized)
		return
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logrus.Warnf("webhook: invalid json payload: %v", err)
		RespondSuccess(c, gin.H{"received": true})
		return
	}

	if payload.Object == "page" {
		ctl.dispatch(c, payload)
	} else {
		logrus.Debugf("webhook: ignoring object %q", payload.Object)
	}

	RespondSuccess(c, gin.H{"received": true})
}

// dispatch walks the batched events one at a time, in order. A failure in one
// event never blocks the next: the handler reports per-step errors through
// its Outcome and we only log them here.
func (ctl *WebhookController) dispatch(c *gin.Context, payload models.WebhookPayload) {
	for _, entry := range payload.Entry {
		for _, messaging := range entry.Messaging {
			ev := messaging.ToInboundEvent()

			if ev.IsEcho {
				// Echo do nosso próprio envio; reagir geraria um loop.
				logrus.Debugf("webhook: skipping echo from %s", ev.SenderID)
				continue
			}
			if ev.MessageText == "" {
				if ev.PostbackPayload != "" {
					logrus.Debugf("webhook: postback %q from %s", ev.PostbackPayload, ev.SenderID)
				}
				continue
			}

			out := ctl.Conv.HandleMessage(c.Request.Context(), ev.SenderID, ev.MessageText)
			logrus.WithFields(logrus.Fields{
				"user": ev.SenderID,
				"rule": out.Rule,
			}).Info("webhook: event processed")
		}
	}
}
