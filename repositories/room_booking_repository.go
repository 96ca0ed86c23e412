package repositories

import (
	"context"
	"fmt"

	"booking-wizard/models"

	"gorm.io/gorm"
)

type RoomBookingRepository struct {
	DB *gorm.DB
}

func NewRoomBookingRepository(db *gorm.DB) *RoomBookingRepository {
	return &RoomBookingRepository{DB: db}
}

// Create inserts one booking and returns the stored row. A missing parent
// entry surfaces as ErrEntryNotFound.
func (r *RoomBookingRepository) Create(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	row := models.RoomBooking{
		EntryID:    entryID,
		RoomNumber: roomNumber,
		NumGuests:  numGuests,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.RoomBooking{}, ErrEntryNotFound
		}
		return models.RoomBooking{}, fmt.Errorf("insert room booking: %w", err)
	}

	var stored models.RoomBooking
	if err := r.DB.WithContext(ctx).First(&stored, row.ID).Error; err != nil {
		return models.RoomBooking{}, fmt.Errorf("reload room booking %d: %w", row.ID, err)
	}
	return stored, nil
}
