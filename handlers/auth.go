package handlers

import (
	"errors"
	"net/http"

	"staygrid/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles admin login and registration.
type AuthHandler struct {
	Svc    admin.AdminService
	Logger *zap.Logger
}

func NewAuthHandler(svc admin.AdminService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login authenticates an admin and issues a session token.
//
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, acct, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.Logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": acct})
}

// Register creates a new admin account. Restricted to authenticated admins.
//
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	acct, err := h.Svc.Register(c.Request.Context(), input.Email, input.Name, input.Password)
	if err != nil {
		h.Logger.Error("Registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": acct})
}
