package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
	"kitchenops/entity"
)

type UserHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	SetRole(c *gin.Context)
	ListPermissions(c *gin.Context)
	Grant(c *gin.Context)
	Revoke(c *gin.Context)
}

type userHandler struct {
	userController controller.UserController
}

func NewUserHandler(userController controller.UserController) UserHandler {
	return &userHandler{
		userController: userController,
	}
}

// List returns every user with their role.
func (h *userHandler) List(c *gin.Context) {
	users, err := h.userController.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Create registers a new user.
func (h *userHandler) Create(c *gin.Context) {
	var req entity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userController.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// SetRole changes a user's role.
func (h *userHandler) SetRole(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req entity.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userController.SetRole(c.Request.Context(), id, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// ListPermissions returns one user's explicit grants.
func (h *userHandler) ListPermissions(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	permissions, err := h.userController.ListPermissions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}

// Grant adds one (resource, action) capability for a user.
func (h *userHandler) Grant(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req entity.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permission, err := h.userController.GrantPermission(c.Request.Context(), id, req.Resource, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"permission": permission})
}

// Revoke deletes one grant by its ID.
func (h *userHandler) Revoke(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.userController.RevokePermission(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "permission revoked"})
}
