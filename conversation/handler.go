package conversation

import (
	"context"
	"fmt"
	"strings"

	"adspanel/models"
	"adspanel/store"
	"adspanel/tools"

	"github.com/sirupsen/logrus"
)

// Quick-reply labels and payloads. Rule matching compares the incoming text
// against the labels, because tapping a quick reply echoes its title back as
// a plain text message.
const (
	CommandConfirm       = "/confirm"
	LabelConfirmOrder    = "✅ Confirm Order"
	LabelCancelOrder     = "❌ Cancel Order"
	PayloadConfirmPrefix = "CONFIRM_ORDER_"
	PayloadCancelOrder   = "CANCEL_ORDER"
)

// Rule names reported in Outcome.
const (
	RuleCommand   = "command"
	RuleConfirmed = "quick_reply_confirm"
	RuleCancelled = "quick_reply_cancel"
	RuleFreeText  = "free_text"
)

// MessageSender sends replies back to the messaging platform. Fire-and-forget
// from the handler's point of view: errors land in the Outcome, nothing more.
type MessageSender interface {
	SendText(ctx context.Context, psid string, text string) error
	SendQuickReplies(ctx context.Context, psid string, text string, options []tools.QuickReplyOption) error
}

// EntityExtractor maps free text onto partial order fields.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) (models.OrderFields, error)
}

// Handler runs the rule-based conversation flow for one incoming message.
// Rules are evaluated in strict priority order; the first match wins.
type Handler struct {
	Store     store.OrderStore
	Messenger MessageSender
	Extractor EntityExtractor
}

// Outcome records which rule matched and the per-step errors, so callers can
// assert on degraded-but-continued behavior instead of inspecting logs.
// None of these errors ever reach the webhook response.
type Outcome struct {
	Rule       string
	OrderID    string
	Extracted  models.OrderFields
	ExtractErr error
	StoreErr   error
	SendErr    error
}

// HandleMessage processes one text message from a user.
func (h *Handler) HandleMessage(ctx context.Context, senderID string, text string) Outcome {
	trimmed := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(strings.ToLower(trimmed), CommandConfirm):
		return h.startConfirmation(ctx, senderID)
	case trimmed == LabelConfirmOrder:
		return h.settleOrder(ctx, senderID, RuleConfirmed, models.ORDER_STATUS_CONFIRMED,
			"Thank you! Your order has been confirmed. 🎉")
	case trimmed == LabelCancelOrder:
		return h.settleOrder(ctx, senderID, RuleCancelled, models.ORDER_STATUS_CANCELLED,
			"Your order has been cancelled.")
	default:
		return h.collectOrderDetails(ctx, senderID, trimmed)
	}
}

// startConfirmation handles "/confirm": creates a fresh pending order and
// offers the confirm/cancel quick replies.
func (h *Handler) startConfirmation(ctx context.Context, senderID string) Outcome {
	out := Outcome{Rule: RuleCommand, OrderID: models.NewOrderID()}

	pending := models.OrderFields{Status: models.ORDER_STATUS_PENDING}
	if _, err := h.Store.Put(ctx, senderID, pending, out.OrderID); err != nil {
		out.StoreErr = err
		logrus.WithField("user", senderID).Warnf("conversation: could not store pending order: %v", err)
	}

	text := fmt.Sprintf("Order %s created! Please confirm:", out.OrderID)
	options := []tools.QuickReplyOption{
		{Title: LabelConfirmOrder, Payload: PayloadConfirmPrefix + out.OrderID},
		{Title: LabelCancelOrder, Payload: PayloadCancelOrder},
	}
	if err := h.Messenger.SendQuickReplies(ctx, senderID, text, options); err != nil {
		out.SendErr = err
		logrus.WithField("user", senderID).Warnf("conversation: send quick replies failed: %v", err)
	}
	return out
}

// settleOrder handles the confirm/cancel quick-reply taps: acknowledge, then
// persist the new status on the user's existing record.
func (h *Handler) settleOrder(ctx context.Context, senderID string, rule string, status string, reply string) Outcome {
	out := Outcome{Rule: rule}

	if err := h.Messenger.SendText(ctx, senderID, reply); err != nil {
		out.SendErr = err
		logrus.WithField("user", senderID).Warnf("conversation: send text failed: %v", err)
	}
	if _, err := h.Store.Put(ctx, senderID, models.OrderFields{Status: status}, ""); err != nil {
		out.StoreErr = err
		logrus.WithField("user", senderID).Warnf("conversation: could not store status %q: %v", status, err)
	}
	return out
}

// collectOrderDetails handles free text: run the extractor, persist whatever
// it found, then either thank the user or ask for the missing fields.
func (h *Handler) collectOrderDetails(ctx context.Context, senderID string, text string) Outcome {
	out := Outcome{Rule: RuleFreeText}

	fields, err := h.Extractor.Extract(ctx, text)
	if err != nil {
		// Recoverable: the extractor degrades to an empty result.
		out.ExtractErr = err
		logrus.WithField("user", senderID).Warnf("conversation: extraction failed: %v", err)
	}
	out.Extracted = fields

	if fields.HasAny() {
		if _, err := h.Store.Put(ctx, senderID, fields, ""); err != nil {
			out.StoreErr = err
			logrus.WithField("user", senderID).Warnf("conversation: could not store fields: %v", err)
		}
	}

	reply := "Please share your order details: name, email, phone and address. " +
		"Feel free to write them in your own words."
	if fields.Complete() {
		reply = "Thank you! Your order details have been saved. ✅"
	}
	if err := h.Messenger.SendText(ctx, senderID, reply); err != nil {
		out.SendErr = err
		logrus.WithField("user", senderID).Warnf("conversation: send text failed: %v", err)
	}
	return out
}
