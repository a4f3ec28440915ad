package tutorRepo

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

// MongoTutorRepo implements TutorRepository using MongoDB.
type MongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo creates a new instance of TutorRepository using MongoDB.
func NewMongoTutorRepo() TutorRepository {
	coll := database.Collection("tutors")
	repo := &MongoTutorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tutor by its unique UID.
func (r *MongoTutorRepo) GetByID(ctx context.Context, uid string) (*models.Tutor, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&tutor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor with uid %s: %w", uid, err)
	}
	return &tutor, nil
}

// GetByIDs retrieves the tutors whose UIDs are in the given list.
func (r *MongoTutorRepo) GetByIDs(ctx context.Context, uids []string) ([]models.Tutor, error) {
	if len(uids) == 0 {
		return []models.Tutor{}, nil
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"uid": bson.M{"$in": uids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var tutors []models.Tutor
	for cursor.Next(ctx) {
		var t models.Tutor
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tutor: %w", err)
		}
		tutors = append(tutors, t)
	}
	return tutors, nil
}

// GetAll retrieves all tutor documents.
func (r *MongoTutorRepo) GetAll(ctx context.Context) ([]models.Tutor, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var tutors []models.Tutor
	for cursor.Next(ctx) {
		var t models.Tutor
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tutor: %w", err)
		}
		tutors = append(tutors, t)
	}
	return tutors, nil
}

// GetOrCreate fetches the tutor document for an identity, materializing an
// empty one on first access.
func (r *MongoTutorRepo) GetOrCreate(ctx context.Context, id models.Identity) (*models.Tutor, error) {
	tutor, err := r.GetByID(ctx, id.UID)
	if err != nil {
		return nil, err
	}
	if tutor != nil {
		return tutor, nil
	}

	tutor = models.NewTutor(id.UID, id.DisplayName, id.Email, id.PhotoURL)

	insertCtx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(insertCtx, tutor); err != nil {
		return nil, fmt.Errorf("failed to create tutor %s: %w", id.UID, err)
	}
	return tutor, nil
}

// Update modifies an existing tutor document.
func (r *MongoTutorRepo) Update(ctx context.Context, tutor *models.Tutor) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": tutor.UID}, bson.M{"$set": tutor})
	if err != nil {
		return fmt.Errorf("failed to update tutor with uid %s: %w", tutor.UID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with uid %s not found", tutor.UID)
	}
	return nil
}

// SaveAvailability upserts the merged ranges for one date and keeps the
// datesAvailable index in step. Both fields are written by a single
// UpdateOne command: a non-empty set of ranges sets the date key and adds
// the date to the index, an empty set unsets the key and pulls the date.
func (r *MongoTutorRepo) SaveAvailability(ctx context.Context, uid, date string, ranges []string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	slotField := "timeSlots." + date

	var update bson.M
	if len(ranges) > 0 {
		update = bson.M{
			"$set":      bson.M{slotField: ranges},
			"$addToSet": bson.M{"datesAvailable": date},
		}
	} else {
		update = bson.M{
			"$unset": bson.M{slotField: ""},
			"$pull":  bson.M{"datesAvailable": date},
		}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, update)
	if err != nil {
		return fmt.Errorf("failed to save availability for tutor %s on %s: %w", uid, date, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with uid %s not found", uid)
	}
	return nil
}
