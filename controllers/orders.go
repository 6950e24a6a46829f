package controllers

import (
	"net/http"

	"adspanel/models"
	"adspanel/store"

	"github.com/gin-gonic/gin"
)

// OrdersController exposes the order persistence API backed by the injected
// OrderStore. Writes merge field-by-field; empty incoming fields never erase
// existing data.
type OrdersController struct {
	Store store.OrderStore
}

type upsertOrderRequest struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// POST /api/orders
func (ctl *OrdersController) Upsert(c *gin.Context) {
	var body upsertOrderRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.UserID == "" {
		RespondError(c, "userId is required", http.StatusBadRequest)
		return
	}

	fields := models.OrderFields{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
		Status:  body.Status,
	}

	if _, err := ctl.Store.Put(c.Request.Context(), body.UserID, fields, ""); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	rec, err := ctl.Store.Get(c.Request.Context(), body.UserID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "order": rec})
}

// GET /api/orders[?userId=...]
func (ctl *OrdersController) Get(c *gin.Context) {
	userID := c.Query("userId")

	if userID == "" {
		orders, err := ctl.Store.All(c.Request.Context())
		if err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []models.OrderRecord{}
		}
		RespondSuccess(c, gin.H{"orders": orders})
		return
	}

	rec, err := ctl.Store.Get(c.Request.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			RespondError(c, "Order not found", http.StatusNotFound)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"order": rec})
}

// DELETE /api/orders?userId=...
func (ctl *OrdersController) Delete(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		RespondError(c, "userId is required", http.StatusBadRequest)
		return
	}

	if err := ctl.Store.Delete(c.Request.Context(), userID); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "message": "Order deleted"})
}
