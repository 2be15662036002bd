package repositories

import (
	"context"
	"errors"
	"time"

	"gravity-server/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("record not found")

// UserRepository provides access to the users collection. FindByEmail is the
// only method on the authorization path; every check issues a fresh read so
// role changes are visible on the next request.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(database.UsersCollection)}
}

// FindByEmail retrieves a user by email, the unique lookup key.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*database.User, error) {
	var user database.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertIfAbsent saves a user on first login. When a record with the same
// email already exists it is returned untouched, so repeated logins never
// clobber a role or flags an admin has set since.
func (r *UserRepository) UpsertIfAbsent(ctx context.Context, user *database.User) (*database.User, bool, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	user.Timestamp = time.Now().UnixMilli()
	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(ctx, bson.M{"email": user.Email}, bson.M{"$set": user}, opts)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// List retrieves all users.
func (r *UserRepository) List(ctx context.Context) ([]database.User, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []database.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole retrieves all users holding the given role tag.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]database.User, error) {
	cur, err := r.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []database.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateByEmail applies the given field updates to a user record and stamps
// the modification time.
func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, fields bson.M) error {
	if fields == nil {
		fields = bson.M{}
	}
	fields["timestamp"] = time.Now().UnixMilli()

	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole changes a user's role tag. The change binds on the user's very
// next request since the token never carries the role.
func (r *UserRepository) UpdateRole(ctx context.Context, email, role string) error {
	return r.UpdateByEmail(ctx, email, bson.M{"role": role})
}

// Fire marks a user as let go. Fired users stay in the collection.
func (r *UserRepository) Fire(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"fire": database.FireFlagValue}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus records the HR verification status for a user.
func (r *UserRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
