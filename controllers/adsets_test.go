package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAdSetsScopesByCampaign(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{"data":[]}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("GET", "/api/facebook/adsets?campaignId=c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Len(t, fg.calls, 1)
	assert.Equal(t, "/v24.0/c1/adsets", fg.calls[0].Path)
}

func TestListAdSetsDefaultsToAdAccount(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{"data":[]}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("GET", "/api/facebook/adsets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Len(t, fg.calls, 1)
	assert.Equal(t, "/v24.0/act_123/adsets", fg.calls[0].Path)
}

func TestCreateAdSetAppliesDefaults(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{"id":"as-new"}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("POST", "/api/facebook/adsets",
		bytes.NewBufferString(`{"campaignId":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fg.calls, 1)
	body := fg.calls[0].Body
	assert.Equal(t, "Test Ad Set", body["name"])
	assert.Equal(t, "c1", body["campaign_id"])
	assert.Equal(t, "REACH", body["optimization_goal"])
	assert.Equal(t, "IMPRESSIONS", body["billing_event"])
	assert.Equal(t, "100", body["bid_amount"])
	assert.Equal(t, "1000", body["daily_budget"])
	assert.JSONEq(t, `{"geo_locations":{"countries":["US"]}}`, body["targeting"].(string))
	assert.NotEmpty(t, body["start_time"])
	assert.NotEmpty(t, body["end_time"])
}

func TestCreateAdSetRequiresCampaignID(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("POST", "/api/facebook/adsets",
		bytes.NewBufferString(`{"name":"My Set"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"campaignId is required"}`, w.Body.String())
	assert.Empty(t, fg.calls)
}

func TestListAdsScoping(t *testing.T) {
	tests := []struct {
		name string
		url  string
		path string
	}{
		{name: "by campaign", url: "/api/facebook/ads?campaignId=c1", path: "/v24.0/c1/ads"},
		{name: "by adset", url: "/api/facebook/ads?adsetId=as1", path: "/v24.0/as1/ads"},
		{name: "whole account", url: "/api/facebook/ads", path: "/v24.0/act_123/ads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := newFakeGraph(t, http.StatusOK, `{"data":[]}`)
			r := newAdsRouter(fg)

			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Len(t, fg.calls, 1)
			assert.Equal(t, tt.path, fg.calls[0].Path)
		})
	}
}

func TestCreateAdRequiresAdsetAndCreative(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("POST", "/api/facebook/ads",
		bytes.NewBufferString(`{"adset_id":"as1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"adset_id and creative.creative_id are required"}`, w.Body.String())
	assert.Empty(t, fg.calls)
}

func TestCreateAdAppliesDefaults(t *testing.T) {
	fg := newFakeGraph(t, http.StatusOK, `{"id":"ad-new"}`)
	r := newAdsRouter(fg)

	req := httptest.NewRequest("POST", "/api/facebook/ads",
		bytes.NewBufferString(`{"adset_id":"as1","creative":{"creative_id":"cr1"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fg.calls, 1)
	body := fg.calls[0].Body
	assert.Equal(t, "Test Ad", body["name"])
	assert.Equal(t, "PAUSED", body["status"])
	assert.Equal(t, "as1", body["adset_id"])
	creative := body["creative"].(map[string]any)
	assert.Equal(t, "cr1", creative["creative_id"])
}
