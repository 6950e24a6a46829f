package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adspanel/models"
	"adspanel/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrdersRouter(st store.OrderStore) *gin.Engine {
	ctl := &OrdersController{Store: st}
	r := gin.New()
	r.POST("/api/orders", ctl.Upsert)
	r.GET("/api/orders", ctl.Get)
	r.DELETE("/api/orders", ctl.Delete)
	return r
}

func doJSON(r *gin.Engine, method string, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrdersUpsertRequiresUserID(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	w := doJSON(r, "POST", "/api/orders", gin.H{"name": "Maria"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"userId is required"}`, w.Body.String())
}

func TestOrdersUpsertCreatesAndReturnsRecord(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	w := doJSON(r, "POST", "/api/orders", gin.H{
		"userId": "psid-1",
		"name":   "Maria Silva",
		"email":  "maria@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Order   models.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "psid-1", resp.Order.UserID)
	assert.Equal(t, "Maria Silva", resp.Order.Name)
	assert.NotEmpty(t, resp.Order.OrderID)
	assert.NotNil(t, resp.Order.UpdatedAt)
}

func TestOrdersUpsertMergesWithoutErasing(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-1", "name": "Maria", "email": "maria@example.com"})
	w := doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-1", "phone": "5551234567"})

	var resp struct {
		Order models.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maria", resp.Order.Name)
	assert.Equal(t, "maria@example.com", resp.Order.Email)
	assert.Equal(t, "5551234567", resp.Order.Phone)
}

func TestOrdersGetByUser(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())
	doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-1", "name": "Maria"})

	w := doJSON(r, "GET", "/api/orders?userId=psid-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Order models.OrderRecord `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maria", resp.Order.Name)
}

func TestOrdersGetUnknownUser(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	w := doJSON(r, "GET", "/api/orders?userId=nobody", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, w.Body.String())
}

func TestOrdersGetAll(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())
	doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-2", "name": "B"})
	doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-1", "name": "A"})

	w := doJSON(r, "GET", "/api/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Orders []models.OrderRecord `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, "psid-1", resp.Orders[0].UserID)
	assert.Equal(t, "psid-2", resp.Orders[1].UserID)
}

func TestOrdersGetAllEmpty(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	w := doJSON(r, "GET", "/api/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orders":[]}`, w.Body.String())
}

func TestOrdersDelete(t *testing.T) {
	st := store.NewMemoryStore()
	r := newOrdersRouter(st)
	doJSON(r, "POST", "/api/orders", gin.H{"userId": "psid-1", "name": "Maria"})

	w := doJSON(r, "DELETE", "/api/orders?userId=psid-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Order deleted"}`, w.Body.String())

	get := doJSON(r, "GET", "/api/orders?userId=psid-1", nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestOrdersDeleteRequiresUserID(t *testing.T) {
	r := newOrdersRouter(store.NewMemoryStore())

	w := doJSON(r, "DELETE", "/api/orders", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"userId is required"}`, w.Body.String())
}
