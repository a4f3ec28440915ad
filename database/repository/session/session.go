package sessionRepo

import (
	"context"

	"tutorlink/models"
)

// SessionRepository defines data access for session records. Create
// assigns the record's UID (auto-identifier) and writes it into the
// document so the persisted record is self-describing. Sessions have no
// update or delete path.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) (string, error)
	GetByID(ctx context.Context, uid string) (*models.Session, error)
	GetByStudent(ctx context.Context, studentUID string) ([]models.Session, error)
	GetByTutor(ctx context.Context, tutorUID string) ([]models.Session, error)
}
