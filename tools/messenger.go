package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MessengerClient is a thin client for Messenger Send API calls
// (POST /{version}/me/messages with a page access token).
type MessengerClient struct {
	AccessToken string
	ApiVersion  string // e.g. v24.0
	BaseURL     string // defaults to https://graph.facebook.com
}

// QuickReplyOption is one tappable canned response: a display label plus an
// opaque payload echoed back when the user taps it.
type QuickReplyOption struct {
	Title   string
	Payload string
}

func (c MessengerClient) post(ctx context.Context, message map[string]any, psid string) error {
	if strings.TrimSpace(c.AccessToken) == "" {
		return fmt.Errorf("messenger access token not set")
	}

	apiVersion := strings.TrimSpace(c.ApiVersion)
	if apiVersion == "" {
		apiVersion = "v24.0"
	}
	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}

	// The page token travels as a query param, same as every Graph call.
	q := url.Values{}
	q.Set("access_token", strings.TrimSpace(c.AccessToken))
	reqURL := fmt.Sprintf("%s/%s/me/messages?%s",
		strings.TrimRight(baseURL, "/"), apiVersion, q.Encode())

	reqBody := map[string]any{
		"recipient": map[string]string{"id": psid},
		"message":   message,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("messenger api error: status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}

// SendText sends a plain text message to a PSID.
func (c MessengerClient) SendText(ctx context.Context, psid string, text string) error {
	return c.post(ctx, map[string]any{"text": text}, psid)
}

// SendQuickReplies sends a text message with tappable quick-reply options.
func (c MessengerClient) SendQuickReplies(ctx context.Context, psid string, text string, options []QuickReplyOption) error {
	replies := make([]map[string]string, 0, len(options))
	for _, opt := range options {
		replies = append(replies, map[string]string{
			"content_type": "text",
			"title":        opt.Title,
			"payload":      opt.Payload,
		})
	}
	return c.post(ctx, map[string]any{
		"text":          text,
		"quick_replies": replies,
	}, psid)
}
