package tutorRepo

import (
	"context"

	"tutorlink/models"
)

// TutorRepository defines data access for tutor documents.
//
// SaveAvailability is the only writer of the timeSlots/datesAvailable pair:
// it updates both fields in one command so a reader can never observe the
// slot map and the date index out of sync.
type TutorRepository interface {
	GetByID(ctx context.Context, uid string) (*models.Tutor, error)
	GetByIDs(ctx context.Context, uids []string) ([]models.Tutor, error)
	GetAll(ctx context.Context) ([]models.Tutor, error)
	GetOrCreate(ctx context.Context, id models.Identity) (*models.Tutor, error)
	Update(ctx context.Context, tutor *models.Tutor) error
	SaveAvailability(ctx context.Context, uid, date string, ranges []string) error
}
