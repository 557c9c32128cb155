package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"github.com/promptdeck/promptdeck-backend/internal/service"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
	"github.com/promptdeck/promptdeck-backend/pkg/ginutil"
)

// AgentHandler handles HTTP requests for agents
type AgentHandler struct {
	service service.AgentService
	cache   cache.Service
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(service service.AgentService, cacheService cache.Service) *AgentHandler {
	return &AgentHandler{service: service, cache: cacheService}
}

// ListAgents godoc
// @Summary      List agents
// @Description  Search published agents. The operational status filter is public; the content_status filter is privileged.
// @Tags         agents
// @Produce      json
// @Param        q               query  string  false  "Search term"
// @Param        status          query  string  false  "Operational status filter"
// @Param        content_status  query  string  false  "Moderation status filter (privileged only)"  default(published)
// @Param        page            query  int     false  "Page number"  default(1)
// @Param        limit           query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Agent}
// @Router       /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := repository.AgentFilter{
		Term:          c.Query("q"),
		ContentStatus: domain.StatusPublished,
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = domain.AgentStatus(raw)
		if !filter.Status.Valid() {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
			return
		}
	}
	if raw := c.Query("content_status"); raw != "" {
		filter.ContentStatus = domain.ContentStatus(raw)
		if !filter.ContentStatus.Valid() {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid content status", common.ErrInvalidStatus)
			return
		}
	}
	if filter.ContentStatus != domain.StatusPublished && !policy.CanModerate(middleware.GetActor(c)) {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	data, meta, err := h.service.Search(filter, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch agents")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetAgent godoc
// @Summary      Get agent
// @Tags         agents
// @Param        id  path  int  true  "Agent ID"
// @Success      200  {object}  common.APIResponse{data=domain.Agent}
// @Failure      404  {object}  common.APIResponse
// @Router       /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch agent")
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

// CreateAgent godoc
// @Summary      Create agent
// @Tags         agents
// @Security     BearerAuth
// @Param        request  body  domain.CreateAgentRequest  true  "Agent"
// @Success      201  {object}  common.APIResponse{data=domain.Agent}
// @Router       /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req domain.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Status != "" && !req.Status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.Create(&req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to create agent")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.CreatedResponse(c, data)
}

// UpdateAgent godoc
// @Summary      Update agent
// @Description  Author-or-admin edit. The operational status is part of the editable surface; content_status is applied only for admins.
// @Tags         agents
// @Security     BearerAuth
// @Param        id       path  int                true  "Agent ID"
// @Param        request  body  domain.AgentPatch  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.Agent}
// @Router       /agents/{id} [patch]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	var patch domain.AgentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}
	if patch.ContentStatus != nil && !patch.ContentStatus.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid content status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.Update(id, &patch, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update agent")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.SuccessResponse(c, data)
}

// UpdateAgentStatus godoc
// @Summary      Change agent operational status
// @Tags         agents
// @Security     BearerAuth
// @Param        id       path  int            true  "Agent ID"
// @Param        request  body  statusRequest  true  "New operational status"
// @Success      200  {object}  common.APIResponse{data=domain.Agent}
// @Router       /agents/{id}/status [patch]
func (h *AgentHandler) UpdateAgentStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	status := domain.AgentStatus(req.Status)
	if !status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.UpdateStatus(id, status, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update agent status")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.SuccessResponse(c, data)
}

// UpdateAgentContentStatus godoc
// @Summary      Moderate agent content status
// @Tags         agents
// @Security     BearerAuth
// @Param        id       path  int            true  "Agent ID"
// @Param        request  body  statusRequest  true  "New content status"
// @Success      200  {object}  common.APIResponse{data=domain.Agent}
// @Router       /agents/{id}/content-status [patch]
func (h *AgentHandler) UpdateAgentContentStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	status := domain.ContentStatus(req.Status)
	if !status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid content status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.UpdateContentStatus(id, status, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update agent content status")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.SuccessResponse(c, data)
}

// DeleteAgent godoc
// @Summary      Delete agent
// @Tags         agents
// @Security     BearerAuth
// @Param        id    path   int   true   "Agent ID"
// @Param        hard  query  bool  false  "Permanent delete (admin only)"
// @Success      200  {object}  common.APIResponse
// @Router       /agents/{id} [delete]
//
//nolint:dupl // delete flow is the same shape for every content kind
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	actor := middleware.GetActor(c)
	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch agent")
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
		respondError(c, err, "Failed to delete agent")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.SuccessResponse(c, nil)
}

// RestoreAgent godoc
// @Summary      Restore agent
// @Tags         agents
// @Security     BearerAuth
// @Param        id  path  int  true  "Agent ID"
// @Success      200  {object}  common.APIResponse{data=domain.Agent}
// @Router       /agents/{id}/restore [post]
func (h *AgentHandler) RestoreAgent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid agent ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore agent")
		return
	}

	invalidateCatalog(h.cache, cache.PrefixAgents)
	common.SuccessResponse(c, data)
}

// ListPendingAgents godoc
// @Summary      Moderation queue
// @Tags         agents
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Agent}
// @Router       /agents/moderation/pending [get]
func (h *AgentHandler) ListPendingAgents(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := repository.AgentFilter{
		Term:          c.Query("q"),
		ContentStatus: domain.StatusPending,
	}
	data, meta, err := h.service.Search(filter, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch pending agents")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}
