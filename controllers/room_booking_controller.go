package controllers

import (
	"net/http"

	"booking-wizard/services"
	"booking-wizard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateRoomBookingRequest keeps numGuests loose: forms post it as either a
// number or a string, and ParseGuestCount decides.
type CreateRoomBookingRequest struct {
	EntryID    uint   `json:"entryId"`
	RoomNumber string `json:"roomNumber"`
	NumGuests  any    `json:"numGuests"`
}

type RoomBookingController struct {
	BookingSvc BookingCreator
	Log        *zap.Logger
}

func NewRoomBookingController(svc BookingCreator, log *zap.Logger) *RoomBookingController {
	return &RoomBookingController{BookingSvc: svc, Log: log}
}

// CreateRoomBooking handles POST /api/room-booking.
func (ctrl *RoomBookingController) CreateRoomBooking(c *gin.Context) {
	var req CreateRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	guests, err := services.ParseGuestCount(req.NumGuests)
	if err != nil {
		// 0 never passes the workflow, which reports roomNumber first.
		guests = 0
	}

	booking, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), req.EntryID, req.RoomNumber, guests)
	if err != nil {
		respondError(c, ctrl.Log, "createRoomBooking", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Room booked successfully", booking)
}
