package services

import (
	"context"
	"errors"
	"strings"

	"booking-wizard/models"
	"booking-wizard/repositories"

	"go.uber.org/zap"
)

type RoomBookingStore interface {
	Create(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error)
}

// EntryLookup answers whether an entry id exists.
type EntryLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type RoomBookingService struct {
	Store   RoomBookingStore
	Entries EntryLookup
	Log     *zap.Logger
}

func NewRoomBookingService(store RoomBookingStore, entries EntryLookup, log *zap.Logger) *RoomBookingService {
	return &RoomBookingService{Store: store, Entries: entries, Log: log}
}

// CreateBooking validates the booking, checks the referenced entry exists and
// inserts one row. The foreign key on RoomBookings.entryId still guards the
// gap between the lookup and the insert.
func (s *RoomBookingService) CreateBooking(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	roomNumber = strings.TrimSpace(roomNumber)

	if err := validateBooking(entryID, roomNumber, numGuests); err != nil {
		return models.RoomBooking{}, err
	}

	ok, err := s.Entries.Exists(ctx, entryID)
	if err != nil {
		return models.RoomBooking{}, UnexpectedError(err)
	}
	if !ok {
		return models.RoomBooking{}, NotFoundError(MsgEntryNotFound, repositories.ErrEntryNotFound)
	}

	booking, err := s.Store.Create(ctx, entryID, roomNumber, numGuests)
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return models.RoomBooking{}, NotFoundError(MsgEntryNotFound, err)
		}
		return models.RoomBooking{}, UnexpectedError(err)
	}

	s.Log.Debug("room booking stored",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("entry_id", booking.EntryID),
	)
	return booking, nil
}
