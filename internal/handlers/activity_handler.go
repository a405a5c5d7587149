package handlers

import (
	"net/http"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/middleware"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ActivityHandler exposes the mobile-client interval operations. The
// endpoint names differ from the dashboard's, but every one of them is a
// thin wrapper over the same ledger service, so open/close semantics are
// identical across clients.
type ActivityHandler struct {
	ledger *services.LedgerService
	logger *logrus.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(ledger *services.LedgerService, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ChangeStatusRequest is the status transition payload
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// ClockIn opens an Available interval for the authenticated employee
// POST /api/clockin
func (h *ActivityHandler) ClockIn(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondMissingUserContext(c)
		return
	}

	interval, err := h.ledger.ChangeStatus(userCtx.EmployeeID, models.StatusAvailable, "")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Clocked in",
		"interval": interval,
	})
}

// ClockOut closes whatever interval is open for the authenticated employee
// POST /api/clockout
func (h *ActivityHandler) ClockOut(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondMissingUserContext(c)
		return
	}

	if err := h.ledger.ClockOut(userCtx.EmployeeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clocked out"})
}

// MarkIdle transitions the authenticated employee into Idle
// POST /api/markidle
func (h *ActivityHandler) MarkIdle(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondMissingUserContext(c)
		return
	}

	interval, err := h.ledger.ChangeStatus(userCtx.EmployeeID, models.StatusIdle, "")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Marked idle",
		"interval": interval,
	})
}

// ChangeStatus transitions the authenticated employee into the named status
// POST /api/change-status
func (h *ActivityHandler) ChangeStatus(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondMissingUserContext(c)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Status is required.")
		return
	}

	interval, err := h.ledger.ChangeStatus(userCtx.EmployeeID, req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"employee_id": userCtx.EmployeeID,
		"status":      req.Status,
	}).Info("Status change requested")

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Status changed",
		"interval": interval,
	})
}

// ActivityMarked closes the open Idle interval once activity is detected
// POST /api/activitymarked
func (h *ActivityHandler) ActivityMarked(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		respondMissingUserContext(c)
		return
	}

	if err := h.ledger.Close(userCtx.EmployeeID, models.StatusIdle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity marked"})
}
