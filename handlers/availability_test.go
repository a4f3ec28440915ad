package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorlink/models"
	"tutorlink/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityService struct {
	tutor    *models.Tutor
	saved    map[string][]string
	saveErr  error
	lastSave []string
}

func newFakeAvailabilityService() *fakeAvailabilityService {
	return &fakeAvailabilityService{
		tutor: models.NewTutor("tutor-1", "Ada", "ada@example.com", ""),
		saved: map[string][]string{},
	}
}

func (f *fakeAvailabilityService) GetOrCreateTutor(_ context.Context, _ models.Identity) (*models.Tutor, error) {
	return f.tutor, nil
}

func (f *fakeAvailabilityService) Dates(_ context.Context, _ string) ([]string, error) {
	return f.tutor.DatesAvailable, nil
}

func (f *fakeAvailabilityService) RangesFor(_ context.Context, _, date string) ([]string, error) {
	if ranges, ok := f.saved[date]; ok {
		return ranges, nil
	}
	return []string{}, nil
}

func (f *fakeAvailabilityService) Save(_ context.Context, _, date string, ranges []string) ([]string, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.lastSave = ranges
	merged := availability.MergeSlots(ranges)
	f.saved[date] = merged
	return merged, nil
}

func newAvailabilityRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "tutor-1")
		c.Set("userType", models.RoleTutor)
		c.Set("userName", "Ada")
	})
	h := NewAvailabilityHandler(svc)
	r.GET("/api/availability", h.GetAvailabilityHandler)
	r.GET("/api/availability/:date", h.GetDayHandler)
	r.PUT("/api/availability/:date", h.SaveDayHandler)
	return r
}

func putJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSaveDaySuccess(t *testing.T) {
	svc := newFakeAvailabilityService()
	r := newAvailabilityRouter(svc)

	w := putJSON(t, r, "/api/availability/2026-09-01",
		`{"timeRanges":["09:00-10:00","14:00-15:00"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Availability saved successfully!", body["message"])
}

func TestSaveDayReportsMerge(t *testing.T) {
	svc := newFakeAvailabilityService()
	r := newAvailabilityRouter(svc)

	w := putJSON(t, r, "/api/availability/2026-09-01",
		`{"timeRanges":["09:00-10:00","09:30-11:00"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Availability saved successfully! Overlapping time slots were automatically merged.", body["message"])
	assert.Equal(t, []any{"09:00-11:00"}, body["timeRanges"])
}

func TestSaveDayValidationMessages(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		message string
	}{
		{"backwards", `{"timeRanges":["10:00-09:00"]}`, "Start time must be before end time"},
		{"too short", `{"timeRanges":["09:00-09:15"]}`, "Time slot must be at least 30 minutes long"},
		{"duplicate in payload", `{"timeRanges":["09:00-10:00","09:00-10:00"]}`, "This exact time slot already exists"},
		{"before opening", `{"timeRanges":["05:00-07:00"]}`, "Start time cannot be before 6:00 AM"},
		{"after closing", `{"timeRanges":["21:00-22:30"]}`, "End time cannot be after 10:00 PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newFakeAvailabilityService()
			r := newAvailabilityRouter(svc)

			w := putJSON(t, r, "/api/availability/2026-09-01", tc.payload)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tc.message, body["error"])
			assert.Nil(t, svc.lastSave, "rejected payload must not be saved")
		})
	}
}

func TestSaveDayRejectsMalformedRange(t *testing.T) {
	svc := newFakeAvailabilityService()
	r := newAvailabilityRouter(svc)

	w := putJSON(t, r, "/api/availability/2026-09-01", `{"timeRanges":["9am-10am"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveDayRejectsBadDate(t *testing.T) {
	svc := newFakeAvailabilityService()
	r := newAvailabilityRouter(svc)

	w := putJSON(t, r, "/api/availability/not-a-date", `{"timeRanges":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveDaySurfacesPersistenceFailure(t *testing.T) {
	svc := newFakeAvailabilityService()
	svc.saveErr = assert.AnError
	r := newAvailabilityRouter(svc)

	w := putJSON(t, r, "/api/availability/2026-09-01", `{"timeRanges":["09:00-10:00"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Error saving availability. Please try again.", body["error"])
}

func TestGetDayReturnsSavedRanges(t *testing.T) {
	svc := newFakeAvailabilityService()
	r := newAvailabilityRouter(svc)

	putJSON(t, r, "/api/availability/2026-09-01", `{"timeRanges":["09:00-10:00"]}`)

	req := httptest.NewRequest(http.MethodGet, "/api/availability/2026-09-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, []any{"09:00-10:00"}, body["timeRanges"])
}
