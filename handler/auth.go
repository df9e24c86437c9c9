package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/entity"
	"kitchenops/service"
)

type AuthHandler interface {
	Login(c *gin.Context)
	Me(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login authenticates an email/password pair and returns the user with a
// signed token.
func (h *authHandler) Login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me echoes the identity carried by the verified token.
func (h *authHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetUint("userID"),
		"email":   c.GetString("userEmail"),
		"role":    c.GetString("userRole"),
	})
}
