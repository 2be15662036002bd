package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"gravity-server/internal/auth"
	"gravity-server/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// newTestDatabase connects to a local MongoDB and skips the test when none
// is running.
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available, skipping integration tests: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not available, skipping integration tests: %v", err)
	}

	db := client.Database("gravity_test")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}

func TestUserRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("FindByEmailMissing", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpsertIfAbsent", func(t *testing.T) {
		user := &database.User{Email: "a@x.com", Name: "Alice", Role: auth.RoleEmployee}
		stored, created, err := repo.UpsertIfAbsent(ctx, user)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "a@x.com", stored.Email)

		// Second login must not clobber the stored record
		again := &database.User{Email: "a@x.com", Name: "Alice Renamed"}
		stored, created, err = repo.UpsertIfAbsent(ctx, again)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Alice", stored.Name)
		assert.Equal(t, auth.RoleEmployee, stored.Role)
	})

	t.Run("UpdateRole", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(ctx, "a@x.com", auth.RoleHR))

		user, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, auth.RoleHR, user.Role)
	})

	t.Run("UpdateRoleMissing", func(t *testing.T) {
		err := repo.UpdateRole(ctx, "nobody@x.com", auth.RoleHR)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("FireAndStatus", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)

		require.NoError(t, repo.Fire(ctx, user.ID))
		require.NoError(t, repo.SetStatus(ctx, user.ID, database.StatusVerified))

		user, err = repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, user.IsFired())
		assert.True(t, user.IsVerified())
	})

	t.Run("ListByRole", func(t *testing.T) {
		_, _, err := repo.UpsertIfAbsent(ctx, &database.User{
			Email: "b@x.com", Role: auth.RoleEmployee,
		})
		require.NoError(t, err)

		employees, err := repo.ListByRole(ctx, auth.RoleEmployee)
		require.NoError(t, err)
		require.Len(t, employees, 1)
		assert.Equal(t, "b@x.com", employees[0].Email)
	})
}
