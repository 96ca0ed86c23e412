package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"booking-wizard/client"
	"booking-wizard/models"
	"booking-wizard/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAPI struct{}

func (scriptedAPI) SubmitEntry(_ context.Context, textValue, email string) (models.Entry, error) {
	if !strings.Contains(email, "@") {
		return models.Entry{}, &client.APIError{StatusCode: http.StatusBadRequest, Message: "email is not valid"}
	}
	return models.Entry{ID: 1, TextValue: strings.TrimSpace(textValue), Email: email, CreatedAt: time.Now()}, nil
}

func (scriptedAPI) CreateRoomBooking(_ context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	return models.RoomBooking{ID: 2, EntryID: entryID, RoomNumber: roomNumber, NumGuests: numGuests, CreatedAt: time.Now()}, nil
}

func TestRun_RetriesUntilConfirmed(t *testing.T) {
	input := strings.Join([]string{
		"Bob", "not-an-email",
		"Bob", "bob@example.com",
		"101", "zero",
		"101", "2",
	}, "\n") + "\n"
	var out bytes.Buffer

	err := run(context.Background(), wizard.New(scriptedAPI{}), strings.NewReader(input), &out)

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Error: email is not valid")
	assert.Contains(t, text, "Error: "+wizard.MsgEnterGuests)
	assert.Contains(t, text, "Booking confirmed!")
	assert.Contains(t, text, "Room:      101")
	assert.Contains(t, text, "Guests:    2")
}

func TestRun_EOF(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), wizard.New(scriptedAPI{}), strings.NewReader("Bob\n"), &out)
	assert.ErrorIs(t, err, io.EOF)
}

type countingAPI struct {
	scriptedAPI
	calls atomic.Int32
}

func (a *countingAPI) SubmitEntry(ctx context.Context, textValue, email string) (models.Entry, error) {
	a.calls.Add(1)
	return a.scriptedAPI.SubmitEntry(ctx, textValue, email)
}

func (a *countingAPI) CreateRoomBooking(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	a.calls.Add(1)
	return a.scriptedAPI.CreateRoomBooking(ctx, entryID, roomNumber, numGuests)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &countingAPI{}
	input := strings.Repeat("Bob\nnot-an-email\n", 4)
	var out bytes.Buffer

	err := run(ctx, wizard.New(api), strings.NewReader(input), &out)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, api.calls.Load())
	assert.NotContains(t, out.String(), "Name: ")
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	api := &countingAPI{}
	errc := make(chan error, 1)
	go func() {
		errc <- run(ctx, wizard.New(api), pr, io.Discard)
	}()

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.Zero(t, api.calls.Load())
}

func TestRun_CancelAfterBookingFailureStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := &cancellingAPI{cancel: cancel}
	input := strings.Join([]string{"Bob", "bob@example.com", "101", "2", "101", "2"}, "\n") + "\n"
	var out bytes.Buffer

	err := run(ctx, wizard.New(api), strings.NewReader(input), &out)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), api.bookings.Load())
	assert.NotContains(t, out.String(), wizard.MsgSomethingWrong)
}

// cancellingAPI cancels the run while the first booking is in flight, the
// way Ctrl-C would.
type cancellingAPI struct {
	scriptedAPI
	cancel   context.CancelFunc
	bookings atomic.Int32
}

func (a *cancellingAPI) CreateRoomBooking(ctx context.Context, _ uint, _ string, _ int) (models.RoomBooking, error) {
	a.bookings.Add(1)
	a.cancel()
	return models.RoomBooking{}, ctx.Err()
}
