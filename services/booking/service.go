package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sessionRepo "tutorlink/database/repository/session"
	studentRepo "tutorlink/database/repository/student"
	tutorRepo "tutorlink/database/repository/tutor"
	"tutorlink/models"
	"tutorlink/services/availability"
	"tutorlink/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Input carries one booking submission.
type Input struct {
	TutorID    string             `json:"tutorId"`
	StudentID  string             `json:"studentId"`
	Subject    string             `json:"subject"`
	Selections []models.Selection `json:"selections"`
	MeetURL    string             `json:"meetURL,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Outcome reports what happened to a single selection. Sessions persisted
// before a mid-loop failure stay persisted; the outcome list makes that
// explicit instead of hiding it.
type Outcome struct {
	Selection models.Selection `json:"selection"`
	Session   *models.Session  `json:"session,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Service matches a student's chosen dates and times against a tutor's
// published availability and records booked sessions.
type Service interface {
	AvailableDates(ctx context.Context, tutorID string) ([]string, error)
	AvailableRangesFor(ctx context.Context, tutorID, date string) ([]string, error)
	Submit(ctx context.Context, input Input) ([]Outcome, error)
}

// DefaultService implements Service.
type DefaultService struct {
	TutorRepo   tutorRepo.TutorRepository
	StudentRepo studentRepo.StudentRepository
	SessionRepo sessionRepo.SessionRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
}

// tutorAvailability is the cached read view of a tutor's published slots.
type tutorAvailability struct {
	DatesAvailable []string            `json:"datesAvailable"`
	TimeSlots      map[string][]string `json:"timeSlots"`
}

func (ta tutorAvailability) hasDate(date string) bool {
	for _, d := range ta.DatesAvailable {
		if d == date {
			return true
		}
	}
	return false
}

func (s *DefaultService) loadAvailability(ctx context.Context, tutorID string) (*tutorAvailability, error) {
	cacheKey := utils.AvailabilityCachePrefix + tutorID

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var ta tutorAvailability
			if err := json.Unmarshal([]byte(raw), &ta); err == nil {
				return &ta, nil
			}
		}
	}

	tutor, err := s.TutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	if tutor == nil {
		return nil, fmt.Errorf("tutor %s not found", tutorID)
	}

	ta := &tutorAvailability{
		DatesAvailable: tutor.DatesAvailable,
		TimeSlots:      tutor.TimeSlots,
	}
	if ta.DatesAvailable == nil {
		ta.DatesAvailable = []string{}
	}
	if ta.TimeSlots == nil {
		ta.TimeSlots = map[string][]string{}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(ta); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, s.CacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache tutor availability",
					zap.String("tutorID", tutorID), zap.Error(err))
			}
		}
	}
	return ta, nil
}

// AvailableDates returns the dates a student may pick for a tutor; the
// date picker disables everything else.
func (s *DefaultService) AvailableDates(ctx context.Context, tutorID string) ([]string, error) {
	ta, err := s.loadAvailability(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	return ta.DatesAvailable, nil
}

// AvailableRangesFor returns the tutor's published ranges for a date.
// A date outside the tutor's availability index yields an empty sequence.
func (s *DefaultService) AvailableRangesFor(ctx context.Context, tutorID, date string) ([]string, error) {
	ta, err := s.loadAvailability(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !ta.hasDate(date) {
		return []string{}, nil
	}
	ranges := ta.TimeSlots[date]
	if ranges == nil {
		return []string{}, nil
	}
	return ranges, nil
}

// Submit creates one session record per selection and appends each date to
// the student's upcoming-class list. Persistence runs sequentially with no
// rollback: sessions created before a failure remain created and are
// reported in the outcome list. An error is returned only when the input
// is invalid (nothing written) or the participants cannot be loaded.
func (s *DefaultService) Submit(ctx context.Context, input Input) ([]Outcome, error) {
	if input.TutorID == "" || input.Subject == "" || len(input.Selections) == 0 {
		return nil, NewValidationError("Please fill in all required fields and select at least one session.")
	}

	tutor, err := s.TutorRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	if tutor == nil {
		return nil, NewValidationError("Selected tutor no longer exists")
	}

	student, err := s.StudentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student == nil {
		return nil, NewValidationError("Student record not found")
	}

	logger := utils.GetLogger()
	outcomes := make([]Outcome, 0, len(input.Selections))

	for _, sel := range input.Selections {
		start, end, err := availability.SplitLabel(sel.Time)
		if err != nil {
			outcomes = append(outcomes, Outcome{Selection: sel, Error: "invalid time label"})
			continue
		}

		session := &models.Session{
			Date:        sel.Date,
			StartTime:   start,
			EndTime:     end,
			Student:     student.Name,
			Tutor:       tutor.Name,
			StudentRef:  student.UID,
			TutorRef:    tutor.UID,
			Subject:     input.Subject,
			MeetURL:     input.MeetURL,
			Description: input.Description,
			Status:      models.SessionScheduled,
		}

		if _, err := s.SessionRepo.Create(ctx, session); err != nil {
			logger.Error("failed to persist booked session",
				zap.String("tutorID", tutor.UID),
				zap.String("studentID", student.UID),
				zap.String("date", sel.Date),
				zap.Error(err))
			outcomes = append(outcomes, Outcome{Selection: sel, Error: err.Error()})
			continue
		}

		// Set-union append: booking two sessions on the same date adds it once.
		if err := s.StudentRepo.AddUpcomingClassDate(ctx, student.UID, sel.Date); err != nil {
			logger.Error("failed to append upcoming class date",
				zap.String("studentID", student.UID),
				zap.String("date", sel.Date),
				zap.Error(err))
			outcomes = append(outcomes, Outcome{Selection: sel, Session: session, Error: err.Error()})
			continue
		}

		outcomes = append(outcomes, Outcome{Selection: sel, Session: session})
	}

	return outcomes, nil
}
