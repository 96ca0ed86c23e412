// Package wizard is the two-screen client flow: collect an entry, then book
// a room against it.
package wizard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"booking-wizard/client"
	"booking-wizard/models"
)

// Step is the screen the wizard is showing.
type Step int

const (
	CollectingEntry Step = iota
	CollectingBooking
)

func (s Step) String() string {
	if s == CollectingBooking {
		return "collecting_booking"
	}
	return "collecting_entry"
}

// Status is the sub-state of a single screen.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

const (
	MsgEnterValue     = "Please enter a value before submitting."
	MsgEnterRoom      = "Please enter a room number."
	MsgEnterGuests    = "Please enter a valid number of guests (1 or more)."
	MsgSomethingWrong = "Something went wrong."
)

var (
	ErrSubmitInProgress = errors.New("wizard: a submission is already in progress")
	ErrWrongStep        = errors.New("wizard: action not available on this screen")
	ErrAlreadyBooked    = errors.New("wizard: booking already confirmed")
)

// API is the backend as the wizard needs it; *client.Client satisfies it.
type API interface {
	SubmitEntry(ctx context.Context, textValue, email string) (models.Entry, error)
	CreateRoomBooking(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error)
}

// Screen is what a form shows: its status and the last error message.
type Screen struct {
	Status  Status
	Message string
}

// BookingContext is handed to the booking screen when the entry step
// succeeds. It is a copy; later changes to the wizard do not reach it.
type BookingContext struct {
	Entry models.Entry
}

// State is a snapshot of the whole wizard.
type State struct {
	Step          Step
	EntryScreen   Screen
	BookingScreen Screen
	Context       *BookingContext
	Booking       *models.RoomBooking
}

type Wizard struct {
	api API

	mu      sync.Mutex
	step    Step
	entry   Screen
	booking Screen
	bctx    BookingContext
	result  *models.RoomBooking
}

func New(api API) *Wizard {
	return &Wizard{api: api}
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := State{Step: w.step, EntryScreen: w.entry, BookingScreen: w.booking}
	if w.step == CollectingBooking {
		c := w.bctx
		st.Context = &c
	}
	if w.result != nil {
		b := *w.result
		st.Booking = &b
	}
	return st
}

// SubmitEntry runs the entry screen. On success the wizard moves to the
// booking screen with the created entry as its context. Guard failures and
// server errors leave the screen in the error state, ready for another try.
func (w *Wizard) SubmitEntry(ctx context.Context, textValue, email string) error {
	w.mu.Lock()
	if w.step != CollectingEntry {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if w.entry.Status == Loading {
		w.mu.Unlock()
		return ErrSubmitInProgress
	}
	if strings.TrimSpace(textValue) == "" {
		w.entry = Screen{Status: Failed, Message: MsgEnterValue}
		w.mu.Unlock()
		return nil
	}
	w.entry = Screen{Status: Loading}
	w.mu.Unlock()

	entry, err := w.api.SubmitEntry(ctx, textValue, email)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.entry = Screen{Status: Failed, Message: messageFor(err)}
		return nil
	}
	w.entry = Screen{Status: Success}
	w.bctx = BookingContext{Entry: entry}
	w.step = CollectingBooking
	return nil
}

// SubmitBooking runs the booking screen. numGuests is the raw form text; it
// must parse as a whole number of at least 1 before anything is sent.
func (w *Wizard) SubmitBooking(ctx context.Context, roomNumber, numGuests string) error {
	w.mu.Lock()
	if w.step != CollectingBooking {
		w.mu.Unlock()
		return ErrWrongStep
	}
	switch w.booking.Status {
	case Loading:
		w.mu.Unlock()
		return ErrSubmitInProgress
	case Success:
		w.mu.Unlock()
		return ErrAlreadyBooked
	}
	if strings.TrimSpace(roomNumber) == "" {
		w.booking = Screen{Status: Failed, Message: MsgEnterRoom}
		w.mu.Unlock()
		return nil
	}
	guests, err := strconv.Atoi(strings.TrimSpace(numGuests))
	if err != nil || guests < 1 {
		w.booking = Screen{Status: Failed, Message: MsgEnterGuests}
		w.mu.Unlock()
		return nil
	}
	entryID := w.bctx.Entry.ID
	w.booking = Screen{Status: Loading}
	w.mu.Unlock()

	booking, err := w.api.CreateRoomBooking(ctx, entryID, roomNumber, guests)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.booking = Screen{Status: Failed, Message: messageFor(err)}
		return nil
	}
	w.booking = Screen{Status: Success}
	w.result = &booking
	return nil
}

func messageFor(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgSomethingWrong
}
