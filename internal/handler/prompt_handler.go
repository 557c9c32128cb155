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

// PromptHandler handles HTTP requests for prompts
type PromptHandler struct {
	service service.PromptService
	cache   cache.Service
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(service service.PromptService, cacheService cache.Service) *PromptHandler {
	return &PromptHandler{service: service, cache: cacheService}
}

// ListPrompts godoc
// @Summary      List prompts
// @Description  Search published prompts by title or description. Moderators may filter by any status.
// @Tags         prompts
// @Produce      json
// @Param        q       query  string  false  "Search term"
// @Param        status  query  string  false  "Status filter (privileged only)"  default(published)
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Prompt}
// @Router       /prompts [get]
func (h *PromptHandler) ListPrompts(c *gin.Context) {
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
	actor := middleware.GetActor(c)
	if status != domain.StatusPublished && !policy.CanModerate(actor) {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	data, meta, err := h.service.Search(term, status, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch prompts")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetPrompt godoc
// @Summary      Get prompt
// @Tags         prompts
// @Produce      json
// @Param        id  path  int  true  "Prompt ID"
// @Success      200  {object}  common.APIResponse{data=domain.Prompt}
// @Failure      404  {object}  common.APIResponse
// @Router       /prompts/{id} [get]
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid prompt ID", err)
		return
	}

	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch prompt")
		return
	}

	// Unpublished entries are visible only to moderators and the author
	if data.Status != domain.StatusPublished {
		actor := middleware.GetActor(c)
		if !policy.CanModerate(actor) && !policy.CanEdit(data.AuthorID, actor) {
			common.ErrorResponse(c, http.StatusNotFound, "Not found", common.ErrNotFound)
			return
		}
	}

	common.SuccessResponse(c, data)
}

// CreatePrompt godoc
// @Summary      Create prompt
// @Tags         prompts
// @Security     BearerAuth
// @Param        request  body  domain.CreatePromptRequest  true  "Prompt"
// @Success      201  {object}  common.APIResponse{data=domain.Prompt}
// @Router       /prompts [post]
func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var req domain.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to create prompt")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixPrompts)
	common.CreatedResponse(c, data)
}

// UpdatePrompt godoc
// @Summary      Update prompt
// @Description  Author-or-admin edit. The status field is applied only for admins.
// @Tags         prompts
// @Security     BearerAuth
// @Param        id       path  int                 true  "Prompt ID"
// @Param        request  body  domain.PromptPatch  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.Prompt}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /prompts/{id} [patch]
func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid prompt ID", err)
		return
	}

	var patch domain.PromptPatch
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
		respondError(c, err, "Failed to update prompt")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixPrompts)
	common.SuccessResponse(c, data)
}

// UpdatePromptStatus godoc
// @Summary      Moderate prompt status
// @Tags         prompts
// @Security     BearerAuth
// @Param        id       path  int            true  "Prompt ID"
// @Param        request  body  statusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.Prompt}
// @Router       /prompts/{id}/status [patch]
func (h *PromptHandler) UpdatePromptStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid prompt ID", err)
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
		respondError(c, err, "Failed to update prompt status")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixPrompts)
	common.SuccessResponse(c, data)
}

// DeletePrompt godoc
// @Summary      Delete prompt
// @Description  Soft delete by default. Admins may pass hard=true for permanent removal.
// @Tags         prompts
// @Security     BearerAuth
// @Param        id    path   int   true   "Prompt ID"
// @Param        hard  query  bool  false  "Permanent delete (admin only)"
// @Success      200  {object}  common.APIResponse
// @Router       /prompts/{id} [delete]
func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid prompt ID", err)
		return
	}

	actor := middleware.GetActor(c)
	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch prompt")
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
		respondError(c, err, "Failed to delete prompt")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixPrompts)
	common.SuccessResponse(c, nil)
}

// RestorePrompt godoc
// @Summary      Restore prompt
// @Tags         prompts
// @Security     BearerAuth
// @Param        id  path  int  true  "Prompt ID"
// @Success      200  {object}  common.APIResponse{data=domain.Prompt}
// @Router       /prompts/{id}/restore [post]
func (h *PromptHandler) RestorePrompt(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid prompt ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore prompt")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixPrompts)
	common.SuccessResponse(c, data)
}

// ListPendingPrompts godoc
// @Summary      Moderation queue
// @Tags         prompts
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Prompt}
// @Router       /prompts/moderation/pending [get]
func (h *PromptHandler) ListPendingPrompts(c *gin.Context) {
	page, limit := parsePagination(c)

	data, meta, err := h.service.Search(c.Query("q"), domain.StatusPending, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch pending prompts")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}
