package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
	"github.com/promptdeck/promptdeck-backend/pkg/ginutil"
)

// respondError maps service sentinel errors to HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Not found", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", err)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrExpiredToken):
		common.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", err)
	case errors.Is(err, common.ErrAccountInactive):
		common.ErrorResponse(c, http.StatusForbidden, "Account is deactivated", err)
	case errors.Is(err, common.ErrEmailTaken):
		common.ErrorResponse(c, http.StatusConflict, "Email already registered", err)
	case errors.Is(err, common.ErrInvalidStatus),
		errors.Is(err, common.ErrInvalidRole),
		errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, fallback, err)
	}
}

// parsePagination reads page/limit query parameters with defaults
func parsePagination(c *gin.Context) (page, limit int) {
	page = ginutil.QueryInt(c, "page", 1)
	limit = ginutil.QueryInt(c, "limit", 20)
	return page, limit
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// invalidateCatalog drops cached listings for one content kind, nil-safe
func invalidateCatalog(cacheService cache.Service, prefix string) {
	if cacheService == nil {
		return
	}
	cacheService.InvalidateCatalog(context.Background(), prefix)
}
