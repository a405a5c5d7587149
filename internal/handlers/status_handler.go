package handlers

import (
	"net/http"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusHandler serves the ledger projections: the live status board, the
// daily timelines and the exportable report.
type StatusHandler struct {
	ledger *services.LedgerService
	logger *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(ledger *services.LedgerService, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetAgentStatus returns the current status per employee with live duration
// GET /api/agent-status
func (h *StatusHandler) GetAgentStatus(c *gin.Context) {
	entries, err := h.ledger.CurrentStatuses()
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch agent statuses")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEmployeeStatus returns all intervals for a day across all employees,
// ordered by employee then start time ascending
// GET /api/employee-status?date=YYYY-MM-DD
func (h *StatusHandler) GetEmployeeStatus(c *gin.Context) {
	date := c.Query("date")

	entries, err := h.ledger.DailyHistory(date, "")
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch employee statuses")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetSingleEmployee returns one employee's intervals for a day, newest
// first
// GET /api/single-employee?date=YYYY-MM-DD&email=...
func (h *StatusHandler) GetSingleEmployee(c *gin.Context) {
	date := c.Query("date")
	email := c.Query("email")
	if email == "" {
		respondBadRequest(c, "Email is required.")
		return
	}

	entries, err := h.ledger.DailyHistory(date, email)
	if err != nil {
		h.logger.WithError(err).WithField("email", email).Error("Failed to fetch employee statuses")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GenerateReport returns the closed intervals for a day, optionally
// filtered by team, for spreadsheet export on the client
// GET /api/generate-report?team=...&date=YYYY-MM-DD
func (h *StatusHandler) GenerateReport(c *gin.Context) {
	date := c.Query("date")
	team := c.Query("team")

	entries, err := h.ledger.TeamReport(date, team)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate report")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
