package services

import (
	"context"
	"errors"
	"time"

	"booking-wizard/models"
)

type fakeEntryStore struct {
	nextID   uint
	created  []models.Entry
	known    map[uint]bool
	err      error
	existErr error
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{nextID: 1, known: map[uint]bool{}}
}

func (f *fakeEntryStore) Create(_ context.Context, textValue, email string) (models.Entry, error) {
	if f.err != nil {
		return models.Entry{}, f.err
	}
	e := models.Entry{ID: f.nextID, TextValue: textValue, Email: email, CreatedAt: time.Now()}
	f.nextID++
	f.known[e.ID] = true
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeEntryStore) Exists(_ context.Context, id uint) (bool, error) {
	if f.existErr != nil {
		return false, f.existErr
	}
	return f.known[id], nil
}

type fakeBookingStore struct {
	created []models.RoomBooking
	err     error
}

func (f *fakeBookingStore) Create(_ context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	if f.err != nil {
		return models.RoomBooking{}, f.err
	}
	b := models.RoomBooking{
		ID:         uint(len(f.created) + 1),
		EntryID:    entryID,
		RoomNumber: roomNumber,
		NumGuests:  numGuests,
		CreatedAt:  time.Now(),
	}
	f.created = append(f.created, b)
	return b, nil
}

var errStoreDown = errors.New("dial tcp 127.0.0.1:3306: connection refused")
