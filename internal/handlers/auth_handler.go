package handlers

import (
	"errors"
	"net/http"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/config"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/database"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/utils"
	"github.com/ameetempireone721/employeemonitoringsystem/pkg/jwt"
	"github.com/ameetempireone721/employeemonitoringsystem/pkg/password"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles login
type AuthHandler struct {
	jwtService   *jwt.Service
	employeeRepo *database.EmployeeRepository
	cfg          *config.Config
	logger       *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtService *jwt.Service, employeeRepo *database.EmployeeRepository, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		jwtService:   jwtService,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token plus the employee record
type LoginResponse struct {
	Message string           `json:"message"`
	User    *models.Employee `json:"user"`
	Token   string           `json:"token"`
}

// Login authenticates an employee and mints a bearer token
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required.")
		return
	}

	employee, err := h.employeeRepo.GetEmployeeByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			// Unknown email and wrong password are indistinguishable
			respondError(c, models.ErrInvalidCredentials)
			return
		}
		h.logger.WithError(err).Error("Login lookup failed")
		respondError(c, err)
		return
	}

	if !password.Verify(req.Password, h.cfg.Security.PasswordSalt, employee.PasswordHash) {
		respondError(c, models.ErrInvalidCredentials)
		return
	}

	// Mobile clients get the long-lived token
	client := jwt.WebClient
	device := utils.ParseUserAgent(c.Request.UserAgent())
	if device.IsMobileClient() {
		client = jwt.MobileClient
	}

	token, err := h.jwtService.GenerateToken(employee.EmployeeID, employee.Email, employee.IsAdmin, client)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"employee_id": employee.EmployeeID,
		"client":      client,
		"device_type": device.DeviceType,
	}).Info("Login successful")

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    employee,
		Token:   token,
	})
}
