package handlers

import (
	"net/http"

	sessionRepo "tutorlink/database/repository/session"
	studentRepo "tutorlink/database/repository/student"
	"tutorlink/models"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves booked-session history. Sessions are immutable;
// there are only reads here.
type SessionHandler struct {
	Sessions sessionRepo.SessionRepository
	Students studentRepo.StudentRepository
}

func NewSessionHandler(sessions sessionRepo.SessionRepository, students studentRepo.StudentRepository) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Students: students}
}

// ListSessionsHandler returns the caller's sessions: a tutor sees the
// sessions they teach, a student the sessions they attend, a parent their
// child's (studentId query parameter).
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	role, _ := c.Get("userType")

	var (
		sessions []models.Session
		err      error
	)
	switch role {
	case models.RoleTutor:
		sessions, err = h.Sessions.GetByTutor(c.Request.Context(), id.UID)
	case models.RoleParent:
		studentID := c.Query("studentId")
		if studentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "studentId is required"})
			return
		}
		student, loadErr := h.Students.GetByID(c.Request.Context(), studentID)
		if loadErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
			return
		}
		if student == nil || student.ParentUID != id.UID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own students' sessions"})
			return
		}
		sessions, err = h.Sessions.GetByStudent(c.Request.Context(), studentID)
	default:
		sessions, err = h.Sessions.GetByStudent(c.Request.Context(), id.UID)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list sessions", zap.String("uid", id.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSessionHandler returns one session by id, visible only to its
// participants, the student's parent, or an admin.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	session, err := h.Sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	role, _ := c.Get("userType")
	if !h.canView(c, id.UID, role, session) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *SessionHandler) canView(c *gin.Context, uid string, role any, session *models.Session) bool {
	if role == models.RoleAdmin || session.StudentRef == uid || session.TutorRef == uid {
		return true
	}
	if role == models.RoleParent {
		student, err := h.Students.GetByID(c.Request.Context(), session.StudentRef)
		return err == nil && student != nil && student.ParentUID == uid
	}
	return false
}
