package controllers

import (
	"context"
	"net/http"

	"booking-wizard/middleware"
	"booking-wizard/models"
	"booking-wizard/services"
	"booking-wizard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidBody = "invalid request body"

// statusByKind maps workflow error kinds to HTTP status codes.
var statusByKind = map[services.ErrorKind]int{
	services.KindValidation: http.StatusBadRequest,
	services.KindNotFound:   http.StatusNotFound,
	services.KindUnexpected: http.StatusInternalServerError,
}

// EntrySubmitter is the entry workflow as seen by the HTTP layer.
type EntrySubmitter interface {
	SubmitEntry(ctx context.Context, textValue, email string) (models.Entry, error)
}

type BookingCreator interface {
	CreateBooking(ctx context.Context, entryID uint, roomNumber string, numGuests int) (models.RoomBooking, error)
}

// respondError writes the failure envelope for err. Unexpected errors are
// logged with their cause and replaced by the generic message.
func respondError(c *gin.Context, log *zap.Logger, op string, err error) {
	kind := services.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if kind == services.KindUnexpected {
		log.Error(op+" failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
	}
	utils.JSONError(c, status, services.PublicMessage(err))
}
