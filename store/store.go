package store

import (
	"context"
	"errors"
	"time"

	"adspanel/models"
)

// ErrNotFound is returned by Get when no record exists for the user.
var ErrNotFound = errors.New("order not found")

// OrderStore persists per-user order records. Writes merge field-by-field
// (non-empty incoming fields win); no transactional guarantees are required,
// last-write-wins is acceptable for the conversational write pattern.
type OrderStore interface {
	// Put merges fields into the user's record, assigns orderID when given
	// (generating one for new records otherwise), stamps the update time and
	// returns the resolved order id.
	Put(ctx context.Context, userID string, fields models.OrderFields, orderID string) (string, error)
	Get(ctx context.Context, userID string) (*models.OrderRecord, error)
	All(ctx context.Context) ([]models.OrderRecord, error)
	Delete(ctx context.Context, userID string) error
}

// apply implements the shared merge contract for every backend.
func apply(rec *models.OrderRecord, userID string, fields models.OrderFields, orderID string) {
	rec.UserID = userID
	rec.Merge(fields)
	if orderID != "" {
		rec.OrderID = orderID
	}
	if rec.OrderID == "" {
		rec.OrderID = models.NewOrderID()
	}
	now := time.Now()
	rec.UpdatedAt = &now
}
