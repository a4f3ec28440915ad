package handlers

import (
	"net/http"

	tutorRepo "tutorlink/database/repository/tutor"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorHandler serves the tutor directory.
type TutorHandler struct {
	Tutors tutorRepo.TutorRepository
}

func NewTutorHandler(tutors tutorRepo.TutorRepository) *TutorHandler {
	return &TutorHandler{Tutors: tutors}
}

// ListTutorsHandler returns every registered tutor.
func (h *TutorHandler) ListTutorsHandler(c *gin.Context) {
	tutors, err := h.Tutors.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// GetTutorHandler returns one tutor's public profile. Email stays private;
// availability is public so the booking pages can render without auth
// context for the tutor.
func (h *TutorHandler) GetTutorHandler(c *gin.Context) {
	tutor, err := h.Tutors.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutor"})
		return
	}
	if tutor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":            tutor.UID,
		"name":           tutor.Name,
		"photoURL":       tutor.PhotoURL,
		"subjects":       tutor.Subjects,
		"datesAvailable": tutor.DatesAvailable,
	})
}
