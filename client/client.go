// Package client talks to the entry and room-booking endpoints.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"booking-wizard/models"

	"github.com/go-resty/resty/v2"
)

// APIError is a response whose envelope said success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

type Client struct {
	http *resty.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:4000".
func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

func (c *Client) SubmitEntry(ctx context.Context, textValue, email string) (models.Entry, error) {
	body := map[string]string{"textValue": textValue, "email": email}
	return post[models.Entry](ctx, c.http, "/api/submit", body)
}

func (c *Client) CreateRoomBooking(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error) {
	body := map[string]any{"entryId": entryID, "roomNumber": roomNumber, "numGuests": numGuests}
	return post[models.RoomBooking](ctx, c.http, "/api/room-booking", body)
}

// post decodes the envelope whatever the status code so server messages
// reach the caller.
func post[T any](ctx context.Context, rc *resty.Client, path string, body any) (T, error) {
	var zero T
	var env envelope[T]

	resp, err := rc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		SetError(&env).
		Post(path)
	if err != nil {
		return zero, fmt.Errorf("POST %s: %w", path, err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return zero, &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	if env.Data == nil {
		return zero, fmt.Errorf("POST %s: response has no data", path)
	}
	return *env.Data, nil
}
