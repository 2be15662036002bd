package interfaces

import (
	"context"

	"gravity-server/internal/auth"
	"gravity-server/internal/database"
)

// TokenVerifier validates a presented bearer token and returns the decoded
// identity claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserStore resolves the current user record during authorization. The role
// read here is authoritative; the token never carries it.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*database.User, error)
}
