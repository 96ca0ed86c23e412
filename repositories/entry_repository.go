package repositories

import (
	"context"
	"fmt"

	"booking-wizard/models"

	"gorm.io/gorm"
)

// EntryRepository is the only place that executes SQL against Entries.
type EntryRepository struct {
	DB *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{DB: db}
}

// Create inserts one row and returns it as stored, generated columns included.
func (r *EntryRepository) Create(ctx context.Context, textValue, email string) (models.Entry, error) {
	row := models.Entry{TextValue: textValue, Email: email}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	var stored models.Entry
	if err := r.DB.WithContext(ctx).First(&stored, row.ID).Error; err != nil {
		return models.Entry{}, fmt.Errorf("reload entry %d: %w", row.ID, err)
	}
	return stored, nil
}

func (r *EntryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("lookup entry %d: %w", id, err)
	}
	return n > 0, nil
}
