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

// GraphClient issues Graph API requests on behalf of the ads gateway routes.
// Responses are returned raw so handlers can proxy body, status and
// content-type verbatim, including upstream error payloads.
type GraphClient struct {
	ApiVersion string // e.g. v24.0
	BaseURL    string // defaults to https://graph.facebook.com
}

// GraphResponse is the upstream reply, untouched.
type GraphResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (c GraphClient) buildURL(token string, path string, query url.Values) string {
	apiVersion := strings.TrimSpace(c.ApiVersion)
	if apiVersion == "" {
		apiVersion = "v24.0"
	}
	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}

	q := url.Values{}
	q.Set("access_token", token)
	for key, vals := range query {
		for _, v := range vals {
			q.Add(key, v)
		}
	}

	return fmt.Sprintf("%s/%s/%s?%s",
		strings.TrimRight(baseURL, "/"), apiVersion, strings.TrimPrefix(path, "/"), q.Encode())
}

func (c GraphClient) do(req *http.Request) (*GraphResponse, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	return &GraphResponse{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// Get issues a GET to /{version}/{path} with the token and extra query params.
func (c GraphClient) Get(ctx context.Context, token string, path string, query url.Values) (*GraphResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(token, path, query), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// ExchangeOAuthCode trades a login-dialog code for a user access token.
// No access_token param here: the app credentials authenticate the call.
func (c GraphClient) ExchangeOAuthCode(ctx context.Context, clientID, clientSecret, redirectURI, code string) (*GraphResponse, error) {
	apiVersion := strings.TrimSpace(c.ApiVersion)
	if apiVersion == "" {
		apiVersion = "v24.0"
	}
	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}

	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("client_secret", clientSecret)
	q.Set("redirect_uri", redirectURI)
	q.Set("code", code)

	reqURL := fmt.Sprintf("%s/%s/oauth/access_token?%s",
		strings.TrimRight(baseURL, "/"), apiVersion, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// Post issues a JSON POST to /{version}/{path}.
func (c GraphClient) Post(ctx context.Context, token string, path string, body any) (*GraphResponse, error) {
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(token, path, nil), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}
