package handlers

import (
	"net/http"

	"ordereat-api/middleware"
	"ordereat-api/models"
	"ordereat-api/services"

	"github.com/gin-gonic/gin"
)

type SetDietRequest struct {
	DietID *uint `json:"diet_id"`
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role.Name,
		"diet_id": user.DietID,
	}
}

// Register creates a new account and returns a token for it
func (h *Handler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.Accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := middleware.GenerateToken(h.JWTSecret, h.JWTTTL, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    userResponse(user),
	})
}

// Login authenticates a user and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req services.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.Accounts.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := middleware.GenerateToken(h.JWTSecret, h.JWTTTL, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userResponse(user),
	})
}

// GetProfile returns the authenticated user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Accounts.Me(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SetDiet assigns or clears the caller's special diet
func (h *Handler) SetDiet(c *gin.Context) {
	var req SetDietRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.Accounts.SetDiet(c.Request.Context(), middleware.GetPrincipal(c), req.DietID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
