package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/services"
	"github.com/gravadigital/promoter-portal-api/internal/validation"
)

// AuthHandler handles login requests for both roles.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// AdminLoginRequest is the body for admin logins.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CustomerLoginRequest is the body for customer logins. Customers have
// no password; access is granted by the allow-list alone.
type CustomerLoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// AdminLogin handles POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	log := logger.Handler("auth")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "email and password are required")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	result, err := h.auth.LoginAdmin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.UnauthorizedError(c, "invalid credentials")
			return
		}
		log.Error("Admin login failed", "error", err)
		response.InternalServerError(c, "login failed")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// CustomerLogin handles POST /api/auth/customer/login
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	log := logger.Handler("auth")

	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "email is required")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	result, err := h.auth.LoginCustomer(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.UnauthorizedError(c, "invalid credentials")
			return
		}
		log.Error("Customer login failed", "error", err)
		response.InternalServerError(c, "login failed")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// RegisterAdmin handles POST /api/auth/admin/register. Only an existing
// admin can create further admin accounts.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	log := logger.Handler("auth")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "email and password are required")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	admin, err := h.auth.RegisterAdmin(req.Email, req.Password)
	if err != nil {
		log.Error("Admin registration failed", "error", err)
		response.BadRequestError(c, err.Error())
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Admin created successfully", admin)
}
