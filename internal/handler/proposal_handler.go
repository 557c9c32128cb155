package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/service"
	"github.com/promptdeck/promptdeck-backend/pkg/ginutil"
)

// ProposalHandler handles HTTP requests for community proposals
type ProposalHandler struct {
	service service.ProposalService
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(service service.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// CreateProposal godoc
// @Summary      Submit proposal
// @Description  Anonymous submission. New proposals always start as pending.
// @Tags         proposals
// @Param        request  body  domain.CreateProposalRequest  true  "Proposal"
// @Success      201  {object}  common.APIResponse{data=domain.Proposal}
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req domain.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create proposal")
		return
	}

	common.CreatedResponse(c, data)
}

// ListProposals godoc
// @Summary      List proposals
// @Description  Review queue for moderators. Defaults to pending submissions.
// @Tags         proposals
// @Security     BearerAuth
// @Param        q       query  string  false  "Search term"
// @Param        status  query  string  false  "Status filter"  default(pending)
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Proposal}
// @Router       /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	page, limit := parsePagination(c)

	status := domain.ProposalPending
	if raw := c.Query("status"); raw != "" {
		status = domain.ProposalStatus(raw)
		if !status.Valid() {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
			return
		}
	}

	data, meta, err := h.service.Search(c.Query("q"), status, page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch proposals")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetProposal godoc
// @Summary      Get proposal
// @Tags         proposals
// @Security     BearerAuth
// @Param        id  path  int  true  "Proposal ID"
// @Success      200  {object}  common.APIResponse{data=domain.Proposal}
// @Failure      404  {object}  common.APIResponse
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid proposal ID", err)
		return
	}

	data, err := h.service.Get(id, false)
	if err != nil {
		respondError(c, err, "Failed to fetch proposal")
		return
	}

	common.SuccessResponse(c, data)
}

// UpdateProposalStatus godoc
// @Summary      Review proposal
// @Description  Approve or reject a proposal. The reviewer is recorded.
// @Tags         proposals
// @Security     BearerAuth
// @Param        id       path  int            true  "Proposal ID"
// @Param        request  body  statusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.Proposal}
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid proposal ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	status := domain.ProposalStatus(req.Status)
	if !status.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid status", common.ErrInvalidStatus)
		return
	}

	data, err := h.service.UpdateStatus(id, status, middleware.GetActor(c))
	if err != nil {
		respondError(c, err, "Failed to update proposal status")
		return
	}

	common.SuccessResponse(c, data)
}

// DeleteProposal godoc
// @Summary      Delete proposal
// @Tags         proposals
// @Security     BearerAuth
// @Param        id    path   int   true   "Proposal ID"
// @Param        hard  query  bool  false  "Permanent delete (admin only)"
// @Success      200  {object}  common.APIResponse
// @Router       /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid proposal ID", err)
		return
	}

	hard := ginutil.QueryBool(c, "hard", false)
	if hard && !middleware.GetActor(c).Role.IsAdmin() {
		common.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions", common.ErrForbidden)
		return
	}

	if err := h.service.Delete(id, !hard); err != nil {
		respondError(c, err, "Failed to delete proposal")
		return
	}

	common.SuccessResponse(c, nil)
}

// RestoreProposal godoc
// @Summary      Restore proposal
// @Tags         proposals
// @Security     BearerAuth
// @Param        id  path  int  true  "Proposal ID"
// @Success      200  {object}  common.APIResponse{data=domain.Proposal}
// @Router       /proposals/{id}/restore [post]
func (h *ProposalHandler) RestoreProposal(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid proposal ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore proposal")
		return
	}

	common.SuccessResponse(c, data)
}
