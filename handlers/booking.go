package handlers

import (
	"errors"
	"net/http"

	studentRepo "tutorlink/database/repository/student"
	tutorRepo "tutorlink/database/repository/tutor"
	"tutorlink/models"
	"tutorlink/services/availability"
	"tutorlink/services/booking"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the student/parent booking flow: tutor picker,
// date and slot lookup, selection helpers, and the final submission.
type BookingHandler struct {
	Booking  booking.Service
	Students studentRepo.StudentRepository
	Tutors   tutorRepo.TutorRepository
}

func NewBookingHandler(svc booking.Service, students studentRepo.StudentRepository, tutors tutorRepo.TutorRepository) *BookingHandler {
	return &BookingHandler{Booking: svc, Students: students, Tutors: tutors}
}

// resolveStudent maps the signed-in actor to the student the booking is
// for. A student always books for themselves; a parent must name one of
// their own children via studentId.
func (h *BookingHandler) resolveStudent(c *gin.Context, studentID string) (*models.Student, bool) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	role, _ := c.Get("userType")
	if role == models.RoleParent {
		if studentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "studentId is required when booking as a parent"})
			return nil, false
		}
		student, err := h.Students.GetByID(c.Request.Context(), studentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
			return nil, false
		}
		if student == nil || student.ParentUID != id.UID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only book sessions for your own students"})
			return nil, false
		}
		return student, true
	}

	student, err := h.Students.GetOrCreate(c.Request.Context(), id, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
		return nil, false
	}
	return student, true
}

// ListTutorsHandler returns the tutors the student is linked to. A student
// with no links yet sees every registered tutor so a first booking can
// establish the link.
func (h *BookingHandler) ListTutorsHandler(c *gin.Context) {
	student, ok := h.resolveStudent(c, c.Query("studentId"))
	if !ok {
		return
	}

	var (
		tutors []models.Tutor
		err    error
	)
	if len(student.Tutors) > 0 {
		tutors, err = h.Tutors.GetByIDs(c.Request.Context(), student.Tutors)
	} else {
		tutors, err = h.Tutors.GetAll(c.Request.Context())
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// GetTutorDatesHandler returns the dates a tutor can be booked on.
func (h *BookingHandler) GetTutorDatesHandler(c *gin.Context) {
	tutorID := c.Param("id")
	dates, err := h.Booking.AvailableDates(c.Request.Context(), tutorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorId": tutorID, "datesAvailable": dates})
}

// GetTutorSlotsHandler returns the tutor's ranges for one date, with
// display labels for the picker. A date the tutor has not published is an
// empty list, not an error.
func (h *BookingHandler) GetTutorSlotsHandler(c *gin.Context) {
	tutorID := c.Param("id")
	date := c.Param("date")
	if !datePattern.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	ranges, err := h.Booking.AvailableRangesFor(c.Request.Context(), tutorID, date)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}

	slots := make([]gin.H, 0, len(ranges))
	for _, r := range ranges {
		slots = append(slots, gin.H{"range": r, "label": availability.DisplayLabel(r)})
	}
	c.JSON(http.StatusOK, gin.H{"tutorId": tutorID, "date": date, "timeSlots": slots})
}

// ToggleSelectionHandler flips one (date, label) pair in the caller's
// in-progress selection list and echoes the result back.
func (h *BookingHandler) ToggleSelectionHandler(c *gin.Context) {
	var req struct {
		Selections []models.Selection `json:"selections"`
		Date       string             `json:"date" binding:"required"`
		Label      string             `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selections": booking.ToggleSelection(req.Selections, req.Date, req.Label),
	})
}

// CustomSelectionHandler validates a student-proposed custom time range
// and returns it as a selection.
func (h *BookingHandler) CustomSelectionHandler(c *gin.Context) {
	var req struct {
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sel, err := booking.CustomSelection(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// SubmitBookingHandler books every selection in the request. Each selection
// gets its own outcome; a failure part-way through does not undo sessions
// already created.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var req struct {
		TutorID     string             `json:"tutorId"`
		StudentID   string             `json:"studentId"`
		Subject     string             `json:"subject"`
		Selections  []models.Selection `json:"selections"`
		MeetURL     string             `json:"meetURL"`
		Description string             `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	student, ok := h.resolveStudent(c, req.StudentID)
	if !ok {
		return
	}

	outcomes, err := h.Booking.Submit(c.Request.Context(), booking.Input{
		TutorID:     req.TutorID,
		StudentID:   student.UID,
		Subject:     req.Subject,
		Selections:  req.Selections,
		MeetURL:     req.MeetURL,
		Description: req.Description,
	})
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
			return
		}
		utils.GetLogger().Error("Booking submission failed",
			zap.String("tutorID", req.TutorID),
			zap.String("studentID", student.UID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error booking sessions. Please try again."})
		return
	}

	booked := 0
	for _, o := range outcomes {
		if o.Error == "" {
			booked++
		}
	}

	// Link the tutor to the student on the first successful booking.
	if booked > 0 {
		if err := h.Students.AddTutor(c.Request.Context(), student.UID, req.TutorID); err != nil {
			utils.GetLogger().Warn("Failed to link tutor to student",
				zap.String("studentID", student.UID),
				zap.String("tutorID", req.TutorID),
				zap.Error(err))
		}
	}

	status := http.StatusCreated
	if booked == 0 {
		status = http.StatusInternalServerError
	} else if booked < len(outcomes) {
		status = http.StatusMultiStatus
	}

	c.JSON(status, gin.H{
		"message":  "Booking processed",
		"booked":   booked,
		"total":    len(outcomes),
		"outcomes": outcomes,
	})
}
