package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adspanel/models"
)

const witApiVersion = "20240304"

// Entity keys wit.ai uses for built-in entities, with the bare fallback
// names some apps are trained with.
const (
	witEntityContact        = "wit$contact:contact"
	witEntityContactAlt     = "contact"
	witEntityEmail          = "wit$email:email"
	witEntityEmailAlt       = "email"
	witEntityPhoneNumber    = "wit$phone_number:phone_number"
	witEntityPhoneNumberAlt = "phone_number"
	witEntityLocation       = "wit$location:location"
	witEntityLocationAlt    = "location"
)

// WitClient calls the wit.ai /message endpoint and maps detected entities
// onto the order-data schema.
type WitClient struct {
	Token   string
	BaseURL string // defaults to https://api.wit.ai
}

type witEntity struct {
	Value string `json:"value"`
	Body  string `json:"body"`
}

// Extract runs a single NLU call for the message text. A missing token or a
// non-success upstream status yields empty fields plus an error the caller
// may log; either way the conversation flow continues.
func (c WitClient) Extract(ctx context.Context, text string) (models.OrderFields, error) {
	var fields models.OrderFields

	if strings.TrimSpace(c.Token) == "" {
		return fields, fmt.Errorf("WIT_AI_TOKEN not set")
	}

	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.wit.ai"
	}

	q := url.Values{}
	q.Set("v", witApiVersion)
	q.Set("q", text)
	reqURL := strings.TrimRight(baseURL, "/") + "/message?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fields, err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.Token))

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fields, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fields, fmt.Errorf("wit.ai error: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Entities map[string][]witEntity `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fields, err
	}

	if ent, ok := firstEntity(parsed.Entities, witEntityContact, witEntityContactAlt); ok {
		fields.Name = strings.TrimSpace(ent.Value)
	}
	if ent, ok := firstEntity(parsed.Entities, witEntityEmail, witEntityEmailAlt); ok {
		fields.Email = strings.TrimSpace(ent.Value)
	}
	if ent, ok := firstEntity(parsed.Entities, witEntityPhoneNumber, witEntityPhoneNumberAlt); ok {
		fields.Phone = DigitsOnly(ent.Value)
	}
	if ent, ok := firstEntity(parsed.Entities, witEntityLocation, witEntityLocationAlt); ok {
		value := strings.TrimSpace(ent.Value)
		if value == "" {
			value = strings.TrimSpace(ent.Body)
		}
		fields.Address = value
	}

	return fields, nil
}

// firstEntity returns the first entity under the first key that has one.
func firstEntity(entities map[string][]witEntity, keys ...string) (witEntity, bool) {
	for _, key := range keys {
		if list := entities[key]; len(list) > 0 {
			return list[0], true
		}
	}
	return witEntity{}, false
}
