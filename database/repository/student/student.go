package studentRepo

import (
	"context"

	"tutorlink/models"
)

// StudentRepository defines data access for student documents. The class
// date appends are set-union: repeating an append with the same date never
// produces a duplicate entry.
type StudentRepository interface {
	GetByID(ctx context.Context, uid string) (*models.Student, error)
	GetByParent(ctx context.Context, parentUID string) ([]models.Student, error)
	GetOrCreate(ctx context.Context, id models.Identity, parentUID string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	AddUpcomingClassDate(ctx context.Context, uid, date string) error
	AddPastClassDate(ctx context.Context, uid, date string) error
	AddTutor(ctx context.Context, uid, tutorUID string) error
}
