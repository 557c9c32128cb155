package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/service"
	"github.com/promptdeck/promptdeck-backend/pkg/ginutil"
)

// UserHandler handles admin account management. All routes sit behind
// RequireAdmin.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Param        q      query  string  false  "Search name or email"
// @Param        page   query  int     false  "Page number"  default(1)
// @Param        limit  query  int     false  "Items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.User}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	data, meta, err := h.service.Search(c.Query("q"), page, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetUser godoc
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Failure      404  {object}  common.APIResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	data, err := h.service.Get(id, ginutil.QueryBool(c, "include_deleted", false))
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}

	common.SuccessResponse(c, data)
}

// CreateUser godoc
// @Summary      Create user
// @Tags         users
// @Security     BearerAuth
// @Param        request  body  domain.CreateUserRequest  true  "User"
// @Success      201  {object}  common.APIResponse{data=domain.User}
// @Failure      409  {object}  common.APIResponse
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Role != "" && !req.Role.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid role", common.ErrInvalidRole)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	common.CreatedResponse(c, data)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Patch role, approval requirement or active flag. Role changes never touch existing content.
// @Tags         users
// @Security     BearerAuth
// @Param        id       path  int               true  "User ID"
// @Param        request  body  domain.UserPatch  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if patch.Role != nil && !patch.Role.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid role", common.ErrInvalidRole)
		return
	}

	data, err := h.service.Update(id, &patch)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	common.SuccessResponse(c, data)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Soft delete keeps the email reserved and the account restorable.
// @Tags         users
// @Security     BearerAuth
// @Param        id    path   int   true   "User ID"
// @Param        hard  query  bool  false  "Permanent delete"
// @Success      200  {object}  common.APIResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	if err := h.service.Delete(id, !ginutil.QueryBool(c, "hard", false)); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	common.SuccessResponse(c, nil)
}

// RestoreUser godoc
// @Summary      Restore user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Router       /users/{id}/restore [post]
func (h *UserHandler) RestoreUser(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	data, err := h.service.Restore(id)
	if err != nil {
		respondError(c, err, "Failed to restore user")
		return
	}

	common.SuccessResponse(c, data)
}
