package repositories

import (
	"context"
	"errors"
	"time"

	"gravity-server/internal/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository stores contact-form submissions.
type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: db.Collection(database.ContactCollection)}
}

// Insert stores a contact message and returns its assigned ID.
func (r *ContactRepository) Insert(ctx context.Context, msg *database.ContactMessage) (primitive.ObjectID, error) {
	msg.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected insert id type")
	}
	return id, nil
}
