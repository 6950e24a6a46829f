package models

import (
	"fmt"
	"math/rand"
	"time"
)

/************************************************
/**** MARK: ORDER STATUS ****/
/************************************************/
const ORDER_STATUS_PENDING = "pending"
const ORDER_STATUS_CONFIRMED = "confirmed"
const ORDER_STATUS_CANCELLED = "cancelled"
const ORDER_STATUS_COMPLETED = "completed"
const ORDER_STATUS_SUBMITTED = "submitted"

// OrderFields is a partial order fragment extracted from a single message.
// Every field is optional; phone is always digits-only.
type OrderFields struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

// HasAny reports whether at least one field carries a value.
func (f OrderFields) HasAny() bool {
	return f.Name != "" || f.Email != "" || f.Phone != "" || f.Address != "" || f.Status != ""
}

// Complete reports whether all four contact fields are filled.
// Status does not count: it is set by the confirm flow, not extracted.
func (f OrderFields) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Phone != "" && f.Address != ""
}

// OrderRecord acumula os fragmentos observados para um usuário (um registro
// por PSID, last-write-wins por campo).
type OrderRecord struct {
	UserID    string     `gorm:"primary_key" json:"userId"`
	OrderID   string     `gorm:"column:order_id" json:"orderId"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Status    string     `json:"status,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Merge overlays non-empty incoming fields onto the record. Empty incoming
// fields never erase existing data.
func (r *OrderRecord) Merge(f OrderFields) {
	if f.Name != "" {
		r.Name = f.Name
	}
	if f.Email != "" {
		r.Email = f.Email
	}
	if f.Phone != "" {
		r.Phone = f.Phone
	}
	if f.Address != "" {
		r.Address = f.Address
	}
	if f.Status != "" {
		r.Status = f.Status
	}
}

// NewOrderID generates a time-based order identifier with a random suffix,
// format ORD<epochMillis><0-999>. The top-level rand functions are locked, so
// concurrent request goroutines can mint ids.
func NewOrderID() string {
	return fmt.Sprintf("ORD%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}
