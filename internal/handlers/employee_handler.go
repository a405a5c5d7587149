package handlers

import (
	"net/http"
	"strings"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/config"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/database"
	"github.com/ameetempireone721/employeemonitoringsystem/pkg/password"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EmployeeHandler handles roster administration: listing, team
// reassignment, account creation and password reset. The mutating
// endpoints are admin-only (gated by middleware).
type EmployeeHandler struct {
	employeeRepo *database.EmployeeRepository
	cfg          *config.Config
	logger       *logrus.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeRepo *database.EmployeeRepository, cfg *config.Config, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetEmployees returns the roster: id, display name, team
// GET /api/getemployees
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	entries, err := h.employeeRepo.ListEmployees()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list employees")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateTeamRequest is the team reassignment payload
type UpdateTeamRequest struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	NewTeam    string `json:"newTeam" binding:"required"`
}

// UpdateTeam reassigns an employee's team
// POST /api/update-team
func (h *EmployeeHandler) UpdateTeam(c *gin.Context) {
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Employee ID and new team are required.")
		return
	}

	if err := h.employeeRepo.UpdateTeam(req.EmployeeID, req.NewTeam); err != nil {
		h.logger.WithError(err).WithField("employee_id", req.EmployeeID).Error("Failed to update team")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team updated successfully."})
}

// SignupRequest is the account creation payload
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Team      string `json:"team" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// Signup creates a new employee account. Only emails within the approved
// domain are accepted; duplicates are a conflict.
// POST /api/signup
func (h *EmployeeHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "First name, last name, email, team and password are required.")
		return
	}

	domain := h.cfg.Security.ApprovedEmailDomain
	if !strings.HasSuffix(strings.ToLower(req.Email), "@"+domain) {
		respondBadRequest(c, "Email must be from the @"+domain+" domain.")
		return
	}

	hash := password.Hash(req.Password, h.cfg.Security.PasswordSalt)

	employee, err := h.employeeRepo.CreateEmployee(req.FirstName, req.LastName, req.Email, req.Team, hash, req.IsAdmin)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Warn("Signup failed")
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"employee_id": employee.EmployeeID,
		"team":        employee.Team,
		"is_admin":    employee.IsAdmin,
	}).Info("Employee registered")

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"employee": employee,
	})
}

// ResetPasswordRequest is the password reset payload
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword overwrites an employee's password hash
// POST /api/reset-password
func (h *EmployeeHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and new password are required.")
		return
	}

	hash := password.Hash(req.NewPassword, h.cfg.Security.PasswordSalt)

	if err := h.employeeRepo.UpdatePassword(req.Email, hash); err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to reset password")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}
