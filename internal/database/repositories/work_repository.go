package repositories

import (
	"context"
	"errors"

	"gravity-server/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkRepository provides access to the employee work-log collection.
type WorkRepository struct {
	collection *mongo.Collection
}

func NewWorkRepository(db *mongo.Database) *WorkRepository {
	return &WorkRepository{collection: db.Collection(database.WorkCollection)}
}

// Insert stores a new work entry and returns its assigned ID.
func (r *WorkRepository) Insert(ctx context.Context, entry *database.WorkEntry) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected insert id type")
	}
	return id, nil
}

// FindByEmployeeEmail retrieves all work entries logged by one employee,
// newest first.
func (r *WorkRepository) FindByEmployeeEmail(ctx context.Context, email string) ([]database.WorkEntry, error) {
	return r.findMany(ctx, bson.M{"employee.email": email})
}

// List retrieves work entries across employees for the HR progress view.
// Either filter may be empty.
func (r *WorkRepository) List(ctx context.Context, employeeEmail, month string) ([]database.WorkEntry, error) {
	filter := bson.M{}
	if employeeEmail != "" {
		filter["employee.email"] = employeeEmail
	}
	if month != "" {
		filter["month"] = month
	}
	return r.findMany(ctx, filter)
}

func (r *WorkRepository) findMany(ctx context.Context, filter bson.M) ([]database.WorkEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []database.WorkEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
