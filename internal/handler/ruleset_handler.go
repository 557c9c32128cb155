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

// RulesetHandler handles HTTP requests for rulesets
type RulesetHandler struct {
	service service.RulesetService
	cache   cache.Service
}

// NewRulesetHandler creates a new RulesetHandler
func NewRulesetHandler(service service.RulesetService, cacheService cache.Service) *RulesetHandler {
	return &RulesetHandler{service: service, cache: cacheService}
}

// ListRulesets godoc
// @Summary      List rulesets
// @Tags         rulesets
// @Produce      json
// @Param        q       query  string  false  "Search term"
// @Param        status  query  string  false  "Status filter (privileged only)"  default(published)
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Ruleset}
// @Router       /rulesets [get]
//
//nolint:dupl // each content kind gets its own listing endpoint
func (h *RulesetHandler) ListRulesets(c *gin.Context) {
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
		respondError(c, err, "Failed to fetch rulesets")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetRuleset godoc
// @Summary      Get ruleset
// @Tags         rulesets
// @Param        id  path  int  true  "Ruleset ID"
// @Success      200  {object}  common.APIResponse{data=domain.Ruleset}
// @Failure      404  {object}  common.APIResponse
// @Router       /rulesets/{id} [get]
func (h *RulesetHandler) GetRuleset(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ruleset ID", err)
		return
	}

	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch ruleset")
		return
	}

	if data.ContentStatus != domain.StatusPublished {
		actor := middleware.GetActor(c)
		if !policy.CanModerate(actor) && !policy.CanEdit(data.AuthorID, actor) {
			common.ErrorResponse(c, http.StatusNotFound, "Not found", common.ErrNotFound)
			return
		}
	}

	common.SuccessResponse(c, data)
}

// CreateRuleset godoc
// @Summary      Create ruleset
// @Tags         rulesets
// @Security     BearerAuth
// @Param        request  body  domain.CreateRulesetRequest  true  "Ruleset"
// @Success      201  {object}  common.APIResponse{data=domain.Ruleset}
// @Router       /rulesets [post]
func (h *RulesetHandler) CreateRuleset(c *gin.Context) {
	var req domain.CreateRulesetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to create ruleset")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixRulesets)
	common.CreatedResponse(c, data)
}

// UpdateRuleset godoc
// @Summary      Update ruleset
// @Tags         rulesets
// @Security     BearerAuth
// @Param        id       path  int                  true  "Ruleset ID"
// @Param        request  body  domain.RulesetPatch  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.Ruleset}
// @Router       /rulesets/{id} [patch]
func (h *RulesetHandler) UpdateRuleset(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ruleset ID", err)
		return
	}

	var patch domain.RulesetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if patch.ContentStatus != nil && !patch.ContentStatus.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.Update(id, &patch, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update ruleset")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixRulesets)
	common.SuccessResponse(c, data)
}

// UpdateRulesetStatus godoc
// @Summary      Moderate ruleset status
// @Tags         rulesets
// @Security     BearerAuth
// @Param        id       path  int            true  "Ruleset ID"
// @Param        request  body  statusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.Ruleset}
// @Router       /rulesets/{id}/status [patch]
func (h *RulesetHandler) UpdateRulesetStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ruleset ID", err)
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
		respondError(c, err, "Failed to update ruleset status")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixRulesets)
	common.SuccessResponse(c, data)
}

// DeleteRuleset godoc
// @Summary      Delete ruleset
// @Tags         rulesets
// @Security     BearerAuth
// @Param        id    path   int   true   "Ruleset ID"
// @Param        hard  query  bool  false  "Permanent delete (admin only)"
// @Success      200  {object}  common.APIResponse
// @Router       /rulesets/{id} [delete]
//
//nolint:dupl // delete flow is the same shape for every content kind
func (h *RulesetHandler) DeleteRuleset(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ruleset ID", err)
		return
	}

	actor := middleware.GetActor(c)
	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch ruleset")
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
		respondError(c, err, "Failed to delete ruleset")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixRulesets)
	common.SuccessResponse(c, nil)
}

// RestoreRuleset godoc
// @Summary      Restore ruleset
// @Tags         rulesets
// @Security     BearerAuth
// @Param        id  path  int  true  "Ruleset ID"
// @Success      200  {object}  common.APIResponse{data=domain.Ruleset}
// @Router       /rulesets/{id}/restore [post]
func (h *RulesetHandler) RestoreRuleset(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid ruleset ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore ruleset")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixRulesets)
	common.SuccessResponse(c, data)
}

// ListPendingRulesets godoc
// @Summary      Moderation queue
// @Tags         rulesets
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Ruleset}
// @Router       /rulesets/moderation/pending [get]
func (h *RulesetHandler) ListPendingRulesets(c *gin.Context) {
	page, limit := parsePagination(c)

	data, meta, err := h.service.Search(c.Query("q"), domain.StatusPending, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch pending rulesets")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}
