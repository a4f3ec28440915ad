package booking

import (
	"strings"

	"tutorlink/models"
	"tutorlink/services/availability"
)

// ToggleSelection adds the (date, label) pair when absent and removes it
// when present. The input slice is not modified.
func ToggleSelection(selections []models.Selection, date, label string) []models.Selection {
	out := make([]models.Selection, 0, len(selections)+1)
	found := false
	for _, sel := range selections {
		if sel.Date == date && sel.Time == label {
			found = true
			continue
		}
		out = append(out, sel)
	}
	if !found {
		out = append(out, models.Selection{Date: date, Time: label})
	}
	return out
}

// CustomSelection builds a selection from a student-proposed start/end pair
// outside the tutor's published slots. It is checked only for non-empty
// times and start before end; the tutor-side business-hour and duration
// rules deliberately do not apply.
func CustomSelection(date, start, end string) (models.Selection, error) {
	if strings.TrimSpace(date) == "" {
		return models.Selection{}, NewValidationError("Please select a date")
	}
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return models.Selection{}, NewValidationError("Please fill in both start and end times")
	}
	if start >= end {
		return models.Selection{}, NewValidationError("Start time must be before end time")
	}

	label := availability.DisplayLabel(start + "-" + end)
	return models.Selection{Date: date, Time: label}, nil
}
