package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/service"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
	"github.com/promptdeck/promptdeck-backend/pkg/ginutil"
)

// GuideHandler handles HTTP requests for guides
type GuideHandler struct {
	service service.GuideService
	cache   cache.Service
}

// NewGuideHandler creates a new GuideHandler
func NewGuideHandler(service service.GuideService, cacheService cache.Service) *GuideHandler {
	return &GuideHandler{service: service, cache: cacheService}
}

// ListGuides godoc
// @Summary      List guides
// @Tags         guides
// @Produce      json
// @Param        q       query  string  false  "Search term"
// @Param        status  query  string  false  "Status filter (privileged only)"  default(published)
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Guide}
// @Router       /guides [get]
//
//nolint:dupl // each content kind gets its own listing endpoint
func (h *GuideHandler) ListGuides(c *gin.Context) {
	page, limit := parsePagination(c)
	term := c.Query("q")

	status := domain.StatusPublished
	if raw := c.Query("status"); raw != "" {
		status = domain.ContentStatus(raw)
		if !status.Valid() {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
			return
		}
	}
	if status != domain.StatusPublished && !policy.CanModerate(middleware.GetActor(c)) {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	data, meta, err := h.service.Search(term, status, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch guides")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetGuide godoc
// @Summary      Get guide
// @Tags         guides
// @Param        id  path  int  true  "Guide ID"
// @Success      200  {object}  common.APIResponse{data=domain.Guide}
// @Failure      404  {object}  common.APIResponse
// @Router       /guides/{id} [get]
func (h *GuideHandler) GetGuide(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid guide ID", err)
		return
	}

	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch guide")
		return
	}

	if data.Status != domain.StatusPublished {
		actor := middleware.GetActor(c)
		if !policy.CanModerate(actor) && !policy.CanEdit(data.AuthorID, actor) {
			common.ErrorResponse(c, http.StatusNotFound, "Not found", common.ErrNotFound)
			return
		}
	}

	common.SuccessResponse(c, data)
}

// CreateGuide godoc
// @Summary      Create guide
// @Tags         guides
// @Security     BearerAuth
// @Param        request  body  domain.CreateGuideRequest  true  "Guide"
// @Success      201  {object}  common.APIResponse{data=domain.Guide}
// @Router       /guides [post]
func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var req domain.CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to create guide")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixGuides)
	common.CreatedResponse(c, data)
}

// UpdateGuide godoc
// @Summary      Update guide
// @Tags         guides
// @Security     BearerAuth
// @Param        id       path  int                true  "Guide ID"
// @Param        request  body  domain.GuidePatch  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.Guide}
// @Router       /guides/{id} [patch]
func (h *GuideHandler) UpdateGuide(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid guide ID", err)
		return
	}

	var patch domain.GuidePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.Update(id, &patch, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update guide")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixGuides)
	common.SuccessResponse(c, data)
}

// UpdateGuideStatus godoc
// @Summary      Moderate guide status
// @Tags         guides
// @Security     BearerAuth
// @Param        id       path  int            true  "Guide ID"
// @Param        request  body  statusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.Guide}
// @Router       /guides/{id}/status [patch]
func (h *GuideHandler) UpdateGuideStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid guide ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	status := domain.ContentStatus(req.Status)
	if !status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.UpdateStatus(id, status, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update guide status")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixGuides)
	common.SuccessResponse(c, data)
}

// DeleteGuide godoc
// @Summary      Delete guide
// @Tags         guides
// @Security     BearerAuth
// @Param        id    path   int   true   "Guide ID"
// @Param        hard  query  bool  false  "Permanent delete (admin only)"
// @Success      200  {object}  common.APIResponse
// @Router       /guides/{id} [delete]
//
//nolint:dupl // delete flow is the same shape for every content kind
func (h *GuideHandler) DeleteGuide(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid guide ID", err)
		return
	}

	actor := middleware.GetActor(c)
	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch guide")
		return
	}
	if !policy.CanEdit(data.AuthorID, actor) {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	hard := ginutil.QueryBool(c, "hard", false)
	if hard && !actor.Role.IsAdmin() {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	if err := h.service.Delete(id, !hard); err != nil {
		respondError(c, err, "Failed to delete guide")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixGuides)
	common.SuccessResponse(c, nil)
}

// RestoreGuide godoc
// @Summary      Restore guide
// @Tags         guides
// @Security     BearerAuth
// @Param        id  path  int  true  "Guide ID"
// @Success      200  {object}  common.APIResponse{data=domain.Guide}
// @Router       /guides/{id}/restore [post]
func (h *GuideHandler) RestoreGuide(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid guide ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore guide")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixGuides)
	common.SuccessResponse(c, data)
}

// ListPendingGuides godoc
// @Summary      Moderation queue
// @Tags         guides
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Guide}
// @Router       /guides/moderation/pending [get]
func (h *GuideHandler) ListPendingGuides(c *gin.Context) {
	page, limit := parsePagination(c)

	data, meta, err := h.service.Search(c.Query("q"), domain.StatusPending, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch pending guides")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}
