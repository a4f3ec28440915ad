package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"tutorlink/services/availability"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AvailabilityHandler serves the tutor-side availability scheduler.
type AvailabilityHandler struct {
	Service availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailabilityHandler returns the signed-in tutor's full availability,
// materializing an empty tutor document on first access.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tutor not authenticated"})
		return
	}

	tutor, err := h.Service.GetOrCreateTutor(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to load tutor availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"datesAvailable": tutor.DatesAvailable,
		"timeSlots":      tutor.TimeSlots,
	})
}

// GetDayHandler returns the sanitized ranges for one date.
func (h *AvailabilityHandler) GetDayHandler(c *gin.Context) {
	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tutor not authenticated"})
		return
	}

	date := c.Param("date")
	if !datePattern.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	// First access may precede any save; make sure the document exists.
	if _, err := h.Service.GetOrCreateTutor(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}

	ranges, err := h.Service.RangesFor(c.Request.Context(), id.UID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "timeRanges": ranges})
}

// SaveDayHandler replaces the ranges for one date. Each submitted range is
// validated in order against the ones accepted before it; the whole payload
// is rejected on the first rule violation. Accepted ranges are merged
// before persisting; an empty list clears the date.
func (h *AvailabilityHandler) SaveDayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tutor not authenticated"})
		return
	}

	date := c.Param("date")
	if !datePattern.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	var req struct {
		TimeRanges []string `json:"timeRanges"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	accepted := make([]string, 0, len(req.TimeRanges))
	for _, slot := range req.TimeRanges {
		r, err := availability.ParseRange(slot)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time range format", "message": slot})
			return
		}
		start := availability.FormatMinutes(r.Start)
		end := availability.FormatMinutes(r.End)
		if err := availability.ValidateSlot(start, end, accepted); err != nil {
			var vErr *availability.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		accepted = append(accepted, slot)
	}

	if _, err := h.Service.GetOrCreateTutor(c.Request.Context(), id); err != nil {
		logger.Error("Failed to load tutor before save", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving availability. Please try again."})
		return
	}

	merged, err := h.Service.Save(c.Request.Context(), id.UID, date, accepted)
	if err != nil {
		logger.Error("Failed to save availability",
			zap.String("tutorID", id.UID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving availability. Please try again."})
		return
	}

	message := "Availability saved successfully!"
	if len(merged) < len(accepted) {
		message = "Availability saved successfully! Overlapping time slots were automatically merged."
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"date":       date,
		"timeRanges": merged,
	})
}
