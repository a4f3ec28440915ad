package handlers

import (
	"net/http"

	"tutorlink/models"
	"tutorlink/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the signed-in user's own profile and role selection.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// identityFromContext rebuilds the actor identity set by JWTAuthMiddleware.
func identityFromContext(c *gin.Context) (models.Identity, bool) {
	uid, exists := c.Get("userID")
	uidStr, ok := uid.(string)
	if !exists || !ok || uidStr == "" {
		return models.Identity{}, false
	}
	id := models.Identity{UID: uidStr}
	if v, ok := c.Get("userName"); ok {
		id.DisplayName, _ = v.(string)
	}
	if id.DisplayName == "" {
		id.DisplayName = "Unknown"
	}
	if v, ok := c.Get("userEmail"); ok {
		id.Email, _ = v.(string)
	}
	if v, ok := c.Get("userPhotoURL"); ok {
		id.PhotoURL, _ = v.(string)
	}
	return id, true
}

func (h *UserHandler) GetMeHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	usr, err := h.Users.GetByID(c.Request.Context(), id.UID)
	if err != nil || usr == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, usr)
}

// SelectRoleHandler records the role picked on the choose page.
func (h *UserHandler) SelectRoleHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		UserType string `json:"userType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	usr, err := h.Users.SelectRole(c.Request.Context(), id.UID, req.UserType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, usr)
}
