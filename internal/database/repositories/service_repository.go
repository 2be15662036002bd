package repositories

import (
	"context"
	"errors"

	"gravity-server/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository provides access to the public service listings.
type ServiceRepository struct {
	collection *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection(database.ServicesCollection)}
}

// List retrieves all service listings.
func (r *ServiceRepository) List(ctx context.Context) ([]database.Service, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []database.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FindByID retrieves a single service listing.
func (r *ServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*database.Service, error) {
	var service database.Service
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// Insert adds a new service listing and returns its assigned ID.
func (r *ServiceRepository) Insert(ctx context.Context, service *database.Service) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, service)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected insert id type")
	}
	return id, nil
}
