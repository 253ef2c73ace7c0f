package handler

import (
	"errors"
	"net/http"

	"film_api/internal/model"
	"film_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

// Register creates a regular user account
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, model.RoleUser)
}

// RegisterAdmin creates an admin account
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, model.RoleAdmin)
}

func (h *AuthHandler) register(c *gin.Context, role string) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondInternal(c, h.log, "registration failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, model.RegisteredUser{ID: user.ID, Username: user.Username})
}

// Login exchanges credentials for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	token, _, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		respondInternal(c, h.log, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/register-admin", h.RegisterAdmin)
		authGroup.POST("/login", h.Login)
	}
}
