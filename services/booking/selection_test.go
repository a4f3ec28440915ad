package booking

import (
	"testing"

	"tutorlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelectionAddsWhenAbsent(t *testing.T) {
	got := ToggleSelection(nil, "2026-09-01", "9:00 AM - 10:00 AM")
	assert.Equal(t, []models.Selection{{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"}}, got)
}

func TestToggleSelectionRemovesWhenPresent(t *testing.T) {
	in := []models.Selection{
		{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"},
		{Date: "2026-09-02", Time: "2:00 PM - 3:00 PM"},
	}
	got := ToggleSelection(in, "2026-09-01", "9:00 AM - 10:00 AM")
	assert.Equal(t, []models.Selection{{Date: "2026-09-02", Time: "2:00 PM - 3:00 PM"}}, got)
}

func TestToggleSelectionDoubleToggleRestores(t *testing.T) {
	in := []models.Selection{{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"}}
	out := ToggleSelection(in, "2026-09-02", "2:00 PM - 3:00 PM")
	out = ToggleSelection(out, "2026-09-02", "2:00 PM - 3:00 PM")
	assert.Equal(t, in, out)
}

func TestToggleSelectionSameLabelDifferentDates(t *testing.T) {
	// The same time label on two dates is two distinct selections.
	out := ToggleSelection(nil, "2026-09-01", "9:00 AM - 10:00 AM")
	out = ToggleSelection(out, "2026-09-02", "9:00 AM - 10:00 AM")
	assert.Len(t, out, 2)

	out = ToggleSelection(out, "2026-09-01", "9:00 AM - 10:00 AM")
	assert.Equal(t, []models.Selection{{Date: "2026-09-02", Time: "9:00 AM - 10:00 AM"}}, out)
}

func TestToggleSelectionInputUnmodified(t *testing.T) {
	in := []models.Selection{{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"}}
	ToggleSelection(in, "2026-09-01", "9:00 AM - 10:00 AM")
	assert.Len(t, in, 1)
}

func TestCustomSelection(t *testing.T) {
	sel, err := CustomSelection("2026-09-01", "05:00", "05:15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", sel.Date)
	// Custom times skip the tutor-side duration and business-hour rules.
	assert.Equal(t, "5:00 AM - 5:15 AM", sel.Time)
}

func TestCustomSelectionRejections(t *testing.T) {
	cases := []struct {
		name             string
		date, start, end string
		message          string
	}{
		{"missing date", "", "09:00", "10:00", "Please select a date"},
		{"missing start", "2026-09-01", "", "10:00", "Please fill in both start and end times"},
		{"missing end", "2026-09-01", "09:00", "", "Please fill in both start and end times"},
		{"backwards", "2026-09-01", "10:00", "09:00", "Start time must be before end time"},
		{"zero length", "2026-09-01", "09:00", "09:00", "Start time must be before end time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CustomSelection(tc.date, tc.start, tc.end)
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.message, vErr.Message)
		})
	}
}
