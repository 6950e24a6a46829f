package models

// Estruturas mínimas do webhook do Messenger (object = "page").
// Ref: https://developers.facebook.com/docs/messenger-platform/webhooks

type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is one event inside entry[].messaging[]: a user message,
// an echo of our own outbound message, or a postback.
type MessagingEvent struct {
	Sender    MessagingUser      `json:"sender"`
	Recipient MessagingUser      `json:"recipient"`
	Timestamp int64              `json:"timestamp"`
	Message   *Message           `json:"message,omitempty"`
	Postback  *MessagingPostback `json:"postback,omitempty"`
}

type MessagingUser struct {
	ID string `json:"id"` // PSID
}

type Message struct {
	MID        string      `json:"mid"`
	Text       string      `json:"text"`
	IsEcho     bool        `json:"is_echo,omitempty"`
	QuickReply *QuickReply `json:"quick_reply,omitempty"`
}

type QuickReply struct {
	Payload string `json:"payload"`
}

type MessagingPostback struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// InboundEvent is the flattened view the conversation pipeline works with.
// Construído por entrega de webhook, nunca persistido.
type InboundEvent struct {
	SenderID        string
	RecipientID     string
	MessageText     string
	IsEcho          bool
	PostbackPayload string
}

// ToInboundEvent flattens a raw messaging event.
func (m MessagingEvent) ToInboundEvent() InboundEvent {
	ev := InboundEvent{
		SenderID:    m.Sender.ID,
		RecipientID: m.Recipient.ID,
	}
	if m.Message != nil {
		ev.MessageText = m.Message.Text
		ev.IsEcho = m.Message.IsEcho
	}
	if m.Postback != nil {
		ev.PostbackPayload = m.Postback.Payload
	}
	return ev
}
