package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/auth"
	"jobboard/backend/internal/dtos"
	"jobboard/backend/internal/services"
)

type AuthHandler struct {
	Auth      AuthStore
	JWTSecret string
}

func NewAuthHandler(authStore AuthStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{Auth: authStore, JWTSecret: jwtSecret}
}

// Register is the POST /auth/register endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.NewToken(h.JWTSecret, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}

// Login is the POST /auth/login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.NewToken(h.JWTSecret, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}
