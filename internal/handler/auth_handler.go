package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/service"
)

// AuthHandler handles login and token refresh
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Param        request  body  loginRequest  true  "Credentials"
// @Success      200  {object}  common.APIResponse{data=service.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	common.SuccessResponse(c, data)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Tags         auth
// @Param        request  body  refreshRequest  true  "Refresh token"
// @Success      200  {object}  common.APIResponse{data=service.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err, "Token refresh failed")
		return
	}

	common.SuccessResponse(c, data)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.GetActor(c)

	data, err := h.service.GetCurrentUser(actor.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch current user")
		return
	}

	common.SuccessResponse(c, data)
}
