package availability

import (
	"context"
	"fmt"
	"time"

	tutorRepo "tutorlink/database/repository/tutor"
	"tutorlink/models"
	"tutorlink/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service manages a tutor's published availability: the {date -> ranges}
// map and its derived datesAvailable index.
type Service interface {
	GetOrCreateTutor(ctx context.Context, id models.Identity) (*models.Tutor, error)
	Dates(ctx context.Context, tutorID string) ([]string, error)
	RangesFor(ctx context.Context, tutorID, date string) ([]string, error)
	Save(ctx context.Context, tutorID, date string, ranges []string) ([]string, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo      tutorRepo.TutorRepository
	Cache     *redis.Client
	CacheTTL  time.Duration
	DebugMode bool
}

// GetOrCreateTutor materializes an empty tutor document on first access.
func (s *DefaultService) GetOrCreateTutor(ctx context.Context, id models.Identity) (*models.Tutor, error) {
	tutor, err := s.Repo.GetOrCreate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	return tutor, nil
}

// Dates returns the tutor's availability index.
func (s *DefaultService) Dates(ctx context.Context, tutorID string) ([]string, error) {
	tutor, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	if tutor == nil {
		return nil, fmt.Errorf("tutor %s not found", tutorID)
	}
	if tutor.DatesAvailable == nil {
		return []string{}, nil
	}
	return tutor.DatesAvailable, nil
}

// RangesFor returns the sanitized ranges published for a date; empty when
// the date has no entry.
func (s *DefaultService) RangesFor(ctx context.Context, tutorID, date string) ([]string, error) {
	tutor, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}
	if tutor == nil {
		return nil, fmt.Errorf("tutor %s not found", tutorID)
	}
	return s.Sanitize(tutor.TimeSlots[date]), nil
}

// Sanitize drops malformed, rule-violating, and duplicate slots loaded
// from the database. Dropped slots are logged in debug mode only; the
// user never sees them.
func (s *DefaultService) Sanitize(slots []string) []string {
	valid := make([]string, 0, len(slots))
	for _, slot := range slots {
		r, err := ParseRange(slot)
		if err != nil {
			s.debugLog("dropping malformed time slot", slot, err.Error())
			continue
		}
		if err := ValidateSlot(FormatMinutes(r.Start), FormatMinutes(r.End), valid); err != nil {
			s.debugLog("dropping invalid time slot", slot, err.Error())
			continue
		}
		valid = append(valid, slot)
	}
	return valid
}

// Save merges the proposed ranges and persists the result, keeping the
// timeSlots map and datesAvailable index consistent. An empty merged set
// removes the date from both. Returns the merged ranges that were stored.
func (s *DefaultService) Save(ctx context.Context, tutorID, date string, ranges []string) ([]string, error) {
	merged := MergeSlots(ranges)

	if err := s.Repo.SaveAvailability(ctx, tutorID, date, merged); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	s.invalidateCache(ctx, tutorID)
	return merged, nil
}

// invalidateCache drops the tutor's cached availability after a save so
// booking reads never serve stale ranges longer than one round trip.
func (s *DefaultService) invalidateCache(ctx context.Context, tutorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCachePrefix+tutorID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("tutorID", tutorID), zap.Error(err))
	}
}

func (s *DefaultService) debugLog(msg, slot, reason string) {
	if !s.DebugMode {
		return
	}
	utils.GetLogger().Debug(msg, zap.String("slot", slot), zap.String("reason", reason))
}
