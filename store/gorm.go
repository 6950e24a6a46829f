package store

import (
	"context"

	"adspanel/models"

	"github.com/jinzhu/gorm"
)

// GormStore backs the order store with a relational database (sqlite3 or
// postgres via db.Connect). Use AUTOMIGRATE=1 in dev to create the table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(database *gorm.DB) *GormStore {
	return &GormStore{db: database}
}

func (s *GormStore) Put(ctx context.Context, userID string, fields models.OrderFields, orderID string) (string, error) {
	var rec models.OrderRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		return "", err
	}

	apply(&rec, userID, fields, orderID)

	if err := s.db.Save(&rec).Error; err != nil {
		return "", err
	}
	return rec.OrderID, nil
}

func (s *GormStore) Get(ctx context.Context, userID string) (*models.OrderRecord, error) {
	var rec models.OrderRecord
	if err := s.db.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) All(ctx context.Context) ([]models.OrderRecord, error) {
	var recs []models.OrderRecord
	if err := s.db.Order("user_id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *GormStore) Delete(ctx context.Context, userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.OrderRecord{}).Error
}
