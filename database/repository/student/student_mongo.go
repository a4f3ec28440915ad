package studentRepo

import (
	"context"
	"fmt"
	"time"

	"tutorlink/database"
	"tutorlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	coll := database.Collection("students")
	repo := &MongoStudentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoStudentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "parentUid", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a student by its unique UID.
func (r *MongoStudentRepo) GetByID(ctx context.Context, uid string) (*models.Student, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with uid %s: %w", uid, err)
	}
	return &student, nil
}

// GetByParent retrieves the students linked to a parent.
func (r *MongoStudentRepo) GetByParent(ctx context.Context, parentUID string) ([]models.Student, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"parentUid": parentUID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, nil
}

// GetOrCreate fetches the student document for an identity, materializing
// an empty one on first access.
func (r *MongoStudentRepo) GetOrCreate(ctx context.Context, id models.Identity, parentUID string) (*models.Student, error) {
	student, err := r.GetByID(ctx, id.UID)
	if err != nil {
		return nil, err
	}
	if student != nil {
		return student, nil
	}

	student = models.NewStudent(id.UID, id.DisplayName, id.Email, id.PhotoURL, parentUID)

	insertCtx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(insertCtx, student); err != nil {
		return nil, fmt.Errorf("failed to create student %s: %w", id.UID, err)
	}
	return student, nil
}

// Update modifies an existing student document.
func (r *MongoStudentRepo) Update(ctx context.Context, student *models.Student) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": student.UID}, bson.M{"$set": student})
	if err != nil {
		return fmt.Errorf("failed to update student with uid %s: %w", student.UID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with uid %s not found", student.UID)
	}
	return nil
}

func (r *MongoStudentRepo) addToSet(ctx context.Context, uid, field, value string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$addToSet": bson.M{field: value}},
	)
	if err != nil {
		return fmt.Errorf("failed to append %s for student %s: %w", field, uid, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with uid %s not found", uid)
	}
	return nil
}

// AddUpcomingClassDate appends a date to upcomingClassDates (no duplicates).
func (r *MongoStudentRepo) AddUpcomingClassDate(ctx context.Context, uid, date string) error {
	return r.addToSet(ctx, uid, "upcomingClassDates", date)
}

// AddPastClassDate appends a date to pastClassDates (no duplicates).
func (r *MongoStudentRepo) AddPastClassDate(ctx context.Context, uid, date string) error {
	return r.addToSet(ctx, uid, "pastClassDates", date)
}

// AddTutor links a tutor to the student (no duplicates).
func (r *MongoStudentRepo) AddTutor(ctx context.Context, uid, tutorUID string) error {
	return r.addToSet(ctx, uid, "tutors", tutorUID)
}
