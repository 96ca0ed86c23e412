package controllers

import (
	"net/http"

	"booking-wizard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubmitEntryRequest struct {
	TextValue string `json:"textValue"`
	Email     string `json:"email"`
}

type EntryController struct {
	EntrySvc EntrySubmitter
	Log      *zap.Logger
}

func NewEntryController(svc EntrySubmitter, log *zap.Logger) *EntryController {
	return &EntryController{EntrySvc: svc, Log: log}
}

// SubmitEntry handles POST /api/submit.
func (ctrl *EntryController) SubmitEntry(c *gin.Context) {
	var req SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, err := ctrl.EntrySvc.SubmitEntry(c.Request.Context(), req.TextValue, req.Email)
	if err != nil {
		respondError(c, ctrl.Log, "submitEntry", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Entry saved successfully", entry)
}
