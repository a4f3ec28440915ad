package handlers

import (
	"net/http"

	studentRepo "tutorlink/database/repository/student"

	"github.com/gin-gonic/gin"
)

// StudentHandler serves the student dashboard's class-date lists.
type StudentHandler struct {
	Students studentRepo.StudentRepository
}

func NewStudentHandler(students studentRepo.StudentRepository) *StudentHandler {
	return &StudentHandler{Students: students}
}

// GetClassDatesHandler returns the signed-in student's upcoming and past
// class dates; the dashboard calendar highlights both sets.
func (h *StudentHandler) GetClassDatesHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	student, err := h.Students.GetOrCreate(c.Request.Context(), id, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcomingClassDates": student.UpcomingClassDates,
		"pastClassDates":     student.PastClassDates,
	})
}

// ListMyStudentsHandler returns the students linked to the signed-in
// parent.
func (h *StudentHandler) ListMyStudentsHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	students, err := h.Students.GetByParent(c.Request.Context(), id.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}
