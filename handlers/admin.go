package handlers

import (
	"net/http"

	tutorRepo "tutorlink/database/repository/tutor"
	"tutorlink/services/user"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin console lists.
type AdminHandler struct {
	Users  user.UserService
	Tutors tutorRepo.TutorRepository
}

func NewAdminHandler(users user.UserService, tutors tutorRepo.TutorRepository) *AdminHandler {
	return &AdminHandler{Users: users, Tutors: tutors}
}

func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) ListTutorsHandler(c *gin.Context) {
	tutors, err := h.Tutors.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}
